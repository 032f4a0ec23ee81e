package clarifai

import "time"

const (
	// DefaultBaseURL is the default Clarifai API endpoint
	DefaultBaseURL = "https://api.clarifai.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// MinConfidence is the cut-off below which concepts are discarded.
	// Workflow scores are 0..1; kept concepts are rescaled to 0..100.
	MinConfidence = 0.5

	// statusSuccess is Clarifai's OK status code.
	statusSuccess = 10000
)
