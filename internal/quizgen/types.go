package quizgen

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// Topic is the subject the bank covers, e.g. "Go concurrency basics".
	Topic string

	// Audience describes the target learner, e.g. "working developers
	// new to Go". Optional.
	Audience string

	// Difficulty is a freeform difficulty cue passed to the model,
	// e.g. "beginner", "intermediate". Optional.
	Difficulty string

	// PriorPrompts contains the prompts of questions already generated
	// for this bank. Used for deduplication in the prompt.
	PriorPrompts []string
}

// BankInput describes a whole bank to generate.
type BankInput struct {
	// ID becomes the bank identifier, e.g. "go-concurrency".
	ID string

	// Name is the human-facing bank title.
	Name string

	// Topic, Audience and Difficulty seed every question's GenerateInput.
	Topic      string
	Audience   string
	Difficulty string

	// Count is how many questions to generate.
	Count int
}
