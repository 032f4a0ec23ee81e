package openaichat

import "context"

// IOpenAIChat defines the interface for the OpenAI chat/vision client.
// Implementations are safe for concurrent use. Calls are synchronous and
// blocking; failures are returned as errors and never retried here.
type IOpenAIChat interface {
	// CompleteText sends a text-only chat completion request.
	CompleteText(ctx context.Context, req TextRequest) (string, error)

	// CompleteVision sends a prompt plus one or more images.
	CompleteVision(ctx context.Context, req VisionRequest) (string, error)
}

// New creates a new OpenAI chat client with the given configuration
func New(cfg Config) (IOpenAIChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIChatImpl(cfg), nil
}
