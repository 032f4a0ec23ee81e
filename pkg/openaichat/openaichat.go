package openaichat

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// openAIChatImpl is the internal implementation of IOpenAIChat
type openAIChatImpl struct {
	client      *openai.Client
	model       string
	visionModel string
}

// newOpenAIChatImpl creates a new OpenAI chat implementation
func newOpenAIChatImpl(cfg Config) *openAIChatImpl {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &openAIChatImpl{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		visionModel: cfg.VisionModel,
	}
}

// CompleteText sends a text-only chat completion request.
func (o *openAIChatImpl) CompleteText(ctx context.Context, req TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, m := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokensOrDefault(req.MaxTokens),
		Temperature: temperatureOrDefault(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openaichat: API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openaichat: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteVision sends a prompt plus images as a multi-part user message.
func (o *openAIChatImpl) CompleteVision(ctx context.Context, req VisionRequest) (string, error) {
	parts := make([]openai.ChatMessagePart, 0, len(req.Images)+1)
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: req.Prompt,
	})

	for _, img := range req.Images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    NormalizeImageURL(img),
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
		MaxTokens:   maxTokensOrDefault(req.MaxTokens),
		Temperature: temperatureOrDefault(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openaichat: vision API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openaichat: empty vision response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// NormalizeImageURL converts raw base64 or any data URL into the data-URL
// form the API expects: strip an existing prefix (text up to the first
// comma), then re-add the default MIME prefix.
func NormalizeImageURL(img string) string {
	if idx := strings.Index(img, ","); idx >= 0 {
		img = img[idx+1:]
	}
	return dataURLPrefix + img
}

func maxTokensOrDefault(n int) int {
	if n <= 0 {
		return DefaultMaxTokens
	}
	return n
}

func temperatureOrDefault(t float64) float32 {
	if t <= 0 {
		return DefaultTemperature
	}
	return float32(t)
}
