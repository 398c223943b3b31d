package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient talks to OpenAI's chat completions API. Any
// OpenAI-compatible endpoint works through cfg.BaseURL; OpenRouter
// rides on this client.
type openaiClient struct {
	api      *openai.Client
	provider string
	model    string
}

func newOpenAIClient(cfg Config) (*openaiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &openaiClient{
		api:      openai.NewClientWithConfig(sdkCfg),
		provider: provider,
		model:    pickModel(cfg.Model, nil, defaultModels[provider]),
	}, nil
}

func (c *openaiClient) Model() string { return c.model }

func (c *openaiClient) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:               c.model,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}
	if p.System != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.System,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: p.User,
	})

	if p.Shape != nil {
		blob, err := json.Marshal(p.Shape.Schema)
		if err != nil {
			return nil, fmt.Errorf("marshal output shape: %w", err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   p.Shape.Name,
				Schema: json.RawMessage(blob),
				Strict: true,
			},
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		te := &TransportError{Provider: c.provider, Err: err}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			te.Status = apiErr.HTTPStatusCode
		}
		return nil, te
	}
	if len(resp.Choices) == 0 {
		return nil, &MalformedReplyError{Err: errors.New("reply had no choices")}
	}

	choice := resp.Choices[0]
	raw := json.RawMessage(choice.Message.Content)
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &MalformedReplyError{Raw: raw, Truncated: true}
	}
	if err := p.Shape.Check(raw); err != nil {
		return nil, err
	}

	return &Completion{
		JSON:  raw,
		Model: resp.Model,
		Tokens: TokenCount{
			Prompt: resp.Usage.PromptTokens,
			Reply:  resp.Usage.CompletionTokens,
		},
	}, nil
}
