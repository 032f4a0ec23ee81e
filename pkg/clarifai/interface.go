package clarifai

import "context"

// IClarifai defines the interface for the Clarifai workflow client.
// Implementations are safe for concurrent use.
type IClarifai interface {
	// RecognizeFood runs the food-recognition workflow on one image and
	// returns the detected concepts, filtered and deduplicated.
	RecognizeFood(ctx context.Context, imageBase64 string) ([]Concept, error)
}

// New creates a new Clarifai client with the given configuration
func New(cfg Config) (IClarifai, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClarifaiImpl(cfg), nil
}
