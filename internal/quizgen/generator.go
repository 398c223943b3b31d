package quizgen

import (
	"context"

	"github.com/rdesai/drill/internal/bank"
)

// Generator produces study questions using a language model.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated question or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*bank.Question, error)

	// GenerateBank produces a whole bank of input.Count questions,
	// feeding earlier prompts back for deduplication.
	GenerateBank(ctx context.Context, input BankInput) (*bank.Bank, error)
}
