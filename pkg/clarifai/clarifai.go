package clarifai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// newClarifaiImpl creates a new Clarifai implementation
func newClarifaiImpl(cfg Config) *clarifaiImpl {
	return &clarifaiImpl{
		pat:        cfg.PAT,
		userID:     cfg.UserID,
		appID:      cfg.AppID,
		workflowID: cfg.WorkflowID,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// RecognizeFood sends one image through the recognition workflow.
// Accepts raw base64 or a data URL; anything before the first comma is
// treated as the data-URL prefix and stripped.
func (cl *clarifaiImpl) RecognizeFood(ctx context.Context, imageBase64 string) ([]Concept, error) {
	if idx := strings.Index(imageBase64, ","); idx >= 0 {
		imageBase64 = imageBase64[idx+1:]
	}

	imageBytes, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("clarifai: decode image: %w", err)
	}

	resp, err := cl.postWorkflowResults(ctx, imageBytes)
	if err != nil {
		return nil, err
	}

	if resp.Status.Code != statusSuccess {
		return nil, fmt.Errorf("clarifai: workflow error: %s", resp.Status.Description)
	}

	return collectConcepts(resp), nil
}

func (cl *clarifaiImpl) postWorkflowResults(ctx context.Context, imageBytes []byte) (*workflowResponse, error) {
	url := fmt.Sprintf("%s/v2/users/%s/apps/%s/workflows/%s/results",
		cl.baseURL, cl.userID, cl.appID, cl.workflowID)

	req := workflowRequest{
		Inputs: []workflowInput{
			{Data: inputData{Image: inputImage{Base64: base64.StdEncoding.EncodeToString(imageBytes)}}},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("clarifai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("clarifai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Key "+cl.pat)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("clarifai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("clarifai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result workflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("clarifai: failed to decode response: %w", err)
	}

	return &result, nil
}

// collectConcepts flattens workflow outputs into Concepts: scores above
// MinConfidence only, rescaled to 0-100 with 2 decimals, deduplicated by
// name keeping first-appearance order.
func collectConcepts(resp *workflowResponse) []Concept {
	if len(resp.Results) == 0 {
		return []Concept{}
	}

	seen := make(map[string]bool)
	concepts := make([]Concept, 0)

	for _, output := range resp.Results[0].Outputs {
		for _, c := range output.Data.Concepts {
			if c.Value <= MinConfidence {
				continue
			}
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			concepts = append(concepts, Concept{
				Name:       c.Name,
				Confidence: math.Round(c.Value*100*100) / 100,
			})
		}
	}

	return concepts
}
