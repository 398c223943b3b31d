package quizgen

import "github.com/rdesai/drill/internal/llm"

// QuestionShape constrains model replies to a single multiple-choice
// question with a lettered answer and an explanation.
var QuestionShape = &llm.OutputShape{
	Name: "quiz-question",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, in plain ASCII text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    2,
				"maxItems":    4,
				"description": "The answer options, between 2 and 4, exactly one correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The letter of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of why the answer is correct",
			},
		},
		"required":             []any{"prompt", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
