package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Friendly aliases so bank authors don't have to track dated model IDs.
var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

type anthropicClient struct {
	api   *anthropic.Client
	model string
}

func newAnthropicClient(cfg Config, opts ...option.RequestOption) (*anthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	api := anthropic.NewClient(opts...)
	return &anthropicClient{
		api:   &api,
		model: pickModel(cfg.Model, anthropicAliases, defaultModels[ProviderAnthropic]),
	}, nil
}

func (c *anthropicClient) Model() string { return c.model }

func (c *anthropicClient) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(p.MaxTokens),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(p.User),
			},
		}},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Shape != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Shape.Schema},
		}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		te := &TransportError{Provider: ProviderAnthropic, Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			te.Status = apiErr.StatusCode
		}
		return nil, te
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, &MalformedReplyError{Err: fmt.Errorf("reply had no text block")}
	}

	raw := json.RawMessage(text)
	if msg.StopReason == "max_tokens" {
		return nil, &MalformedReplyError{Raw: raw, Truncated: true}
	}
	if err := p.Shape.Check(raw); err != nil {
		return nil, err
	}

	return &Completion{
		JSON:  raw,
		Model: string(msg.Model),
		Tokens: TokenCount{
			Prompt: int(msg.Usage.InputTokens),
			Reply:  int(msg.Usage.OutputTokens),
		},
	}, nil
}
