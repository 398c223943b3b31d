// Package llm drives structured question authoring against a hosted
// language model. Bank generation is a single-turn task: one prompt in,
// one JSON document out, checked against a declared shape. The package
// deliberately has no notion of conversation history.
package llm

import (
	"context"
	"encoding/json"
)

// Client is a single-turn completion backend. Implementations wrap one
// hosted provider; ScriptedClient stands in during tests.
type Client interface {
	// Complete sends the prompt and returns the model's reply. When
	// the prompt declares an output shape, the reply is guaranteed to
	// satisfy it; off-shape replies surface as *MalformedReplyError.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model identifies the resolved model, for logs and bank metadata.
	Model() string
}

// Prompt is one authoring request.
type Prompt struct {
	// System frames the task; User carries the topic, difficulty and
	// any questions already written.
	System string
	User   string

	// Shape constrains the reply to a JSON document. Nil means free
	// text, which nothing in drill currently asks for.
	Shape *OutputShape

	MaxTokens   int
	Temperature float64
}

// OutputShape names a JSON Schema the reply must satisfy. Declare one
// per document kind and reuse it; compiled schemas are cached by name.
type OutputShape struct {
	Name   string
	Schema map[string]any
}

// Completion is a reply that arrived intact and passed its shape check.
type Completion struct {
	JSON   json.RawMessage
	Model  string
	Tokens TokenCount
}

// TokenCount tallies billed usage for one call.
type TokenCount struct {
	Prompt int
	Reply  int
}

func (t TokenCount) Total() int { return t.Prompt + t.Reply }
