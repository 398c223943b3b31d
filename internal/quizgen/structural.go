package quizgen

import "github.com/rdesai/drill/internal/bank"

// StructuralValidator checks that required fields are present and
// within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *bank.Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "options must number between 2 and 4",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	return nil
}
