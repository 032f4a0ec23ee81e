package openaichat

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o"

	// DefaultVisionModel is the default model for image-carrying prompts
	DefaultVisionModel = "gpt-4o"

	// DefaultIntentModel is the cheaper model used for intent classification
	DefaultIntentModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// DefaultMaxTokens applies when a request leaves MaxTokens at zero
	DefaultMaxTokens = 1500

	// DefaultTemperature applies when a request leaves Temperature at zero
	DefaultTemperature = 0.7

	// dataURLPrefix is prepended to bare base64 images before sending
	dataURLPrefix = "data:image/jpeg;base64,"
)
