package quizgen

import (
	"strings"

	"github.com/rdesai/drill/internal/bank"
)

// OptionsValidator checks that the answer letter maps to an option and
// that the options are pairwise distinct.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *bank.Question, _ GenerateInput) *ValidationError {
	if q.CorrectIndex() < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer letter does not map to an option",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option is empty",
				Retryable: true,
			}
		}
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain duplicates",
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
