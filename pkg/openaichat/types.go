package openaichat

import (
	"fmt"
	"time"
)

// Config holds OpenAI chat client configuration
type Config struct {
	APIKey      string
	Model       string // default model for CompleteText
	VisionModel string // model for CompleteVision
	BaseURL     string // optional OpenAI-compatible endpoint override
	Timeout     time.Duration
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaichat: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.VisionModel == "" {
		c.VisionModel = DefaultVisionModel
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Message is one prior conversation turn included in the model context.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// TextRequest is a text-only completion request. Zero MaxTokens and
// Temperature fall back to the package defaults.
type TextRequest struct {
	Prompt       string
	SystemPrompt string
	History      []Message // optional prior turns, oldest first
	Model        string    // optional per-request model override
	MaxTokens    int
	Temperature  float64
}

// VisionRequest is a completion request carrying one or more images.
// Images may be raw base64 or data URLs; they are normalized to data-URL
// form before sending.
type VisionRequest struct {
	Prompt      string
	Images      []string
	MaxTokens   int
	Temperature float64
}
