package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/llm"
)

// LLMGenerator implements Generator on top of an llm.Client.
type LLMGenerator struct {
	client llm.Client
	config Config
}

// New creates a new LLMGenerator with the given client and config.
func New(client llm.Client, cfg Config) *LLMGenerator {
	return &LLMGenerator{client: client, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Generate produces a single validated question for the given input.
// Questions failing a retryable validation are regenerated up to the
// configured retry budget.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*bank.Question, error) {
	var lastErr error
	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		q, err := g.generateOnce(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", g.config.MaxRetries+1, lastErr)
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*bank.Question, error) {
	prompt := llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(input, g.config),
		Shape:       QuestionShape,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.JSON, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &bank.Question{
		ID:          uuid.New().String(),
		Prompt:      raw.Prompt,
		Options:     raw.Options,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// GenerateBank produces input.Count questions, feeding prompts of
// earlier questions back into each request for deduplication. Question
// IDs are stable per bank: "<bankID>-q1", "<bankID>-q2", and so on.
func (g *LLMGenerator) GenerateBank(ctx context.Context, input BankInput) (*bank.Bank, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("bank question count must be positive, got %d", input.Count)
	}

	b := &bank.Bank{ID: input.ID, Name: input.Name}
	prior := make([]string, 0, input.Count)

	for i := 0; i < input.Count; i++ {
		q, err := g.Generate(ctx, GenerateInput{
			Topic:        input.Topic,
			Audience:     input.Audience,
			Difficulty:   input.Difficulty,
			PriorPrompts: prior,
		})
		if err != nil {
			return nil, fmt.Errorf("question %d of %d: %w", i+1, input.Count, err)
		}
		q.ID = fmt.Sprintf("%s-q%d", input.ID, i+1)
		b.Questions = append(b.Questions, *q)
		prior = append(prior, q.Prompt)
	}

	return b, nil
}
