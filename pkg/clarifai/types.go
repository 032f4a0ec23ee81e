package clarifai

import (
	"fmt"
	"net/http"
)

// Config holds Clarifai client configuration
type Config struct {
	PAT        string // Personal Access Token
	UserID     string
	AppID      string
	WorkflowID string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PAT == "" {
		return fmt.Errorf("clarifai: PAT is required")
	}
	if c.UserID == "" {
		return fmt.Errorf("clarifai: UserID is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("clarifai: AppID is required")
	}
	if c.WorkflowID == "" {
		return fmt.Errorf("clarifai: WorkflowID is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// clarifaiImpl is the internal implementation of IClarifai
type clarifaiImpl struct {
	pat        string
	userID     string
	appID      string
	workflowID string
	baseURL    string
	httpClient *http.Client
}

// Concept is a recognized label with its confidence as a 0-100 percentage.
type Concept struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Clarifai workflow-results wire types

type workflowRequest struct {
	Inputs []workflowInput `json:"inputs"`
}

type workflowInput struct {
	Data inputData `json:"data"`
}

type inputData struct {
	Image inputImage `json:"image"`
}

type inputImage struct {
	Base64 string `json:"base64"`
}

type workflowResponse struct {
	Status  apiStatus        `json:"status"`
	Results []workflowResult `json:"results"`
}

type apiStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type workflowResult struct {
	Outputs []workflowOutput `json:"outputs"`
}

type workflowOutput struct {
	Data outputData `json:"data"`
}

type outputData struct {
	Concepts []outputConcept `json:"concepts"`
}

type outputConcept struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
