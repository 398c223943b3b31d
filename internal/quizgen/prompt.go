package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating multiple-choice study questions.

Rules:
- Generate a single question on the given topic, self-contained and unambiguous.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Provide between 2 and 4 options where exactly one is correct.
- Distractors should reflect plausible misconceptions, not random values.
- The answer field is the letter (A, B, C, D) of the correct option, counting from A.
- The explanation should briefly state why the correct option is right.
- Do not repeat any question from the "already in this bank" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	if input.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", input.Audience)
	}
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	}

	b.WriteString("\nAlready in this bank:\n")
	b.WriteString(buildDedup(input.PriorPrompts, cfg.MaxPriorPrompts))

	return b.String()
}
