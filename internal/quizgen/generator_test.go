package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rdesai/drill/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "Which keyword starts a goroutine?",
		"options": ["go", "chan", "defer", "spawn"],
		"answer": "A",
		"explanation": "The go statement runs the function call in a new goroutine."
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	script := llm.NewScripted(llm.ScriptedReply{JSON: validQuestionJSON()})
	gen := New(script, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "Go concurrency",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "Which keyword starts a goroutine?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Answer != "A" {
		t.Errorf("expected answer A, got %q", q.Answer)
	}
	if q.ID == "" {
		t.Error("expected a generated question ID")
	}
	if q.CorrectIndex() != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex())
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	script := llm.NewScripted(llm.ScriptedReply{JSON: validQuestionJSON()})
	gen := New(script, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:        "Go concurrency",
		Audience:     "new gophers",
		Difficulty:   "beginner",
		PriorPrompts: []string{"What does make(chan int) return?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompts := script.Prompts()
	if len(prompts) != 1 {
		t.Fatalf("expected 1 call, got %d", len(prompts))
	}
	for _, want := range []string{"Go concurrency", "new gophers", "beginner", "What does make(chan int) return?"} {
		if !strings.Contains(prompts[0].User, want) {
			t.Errorf("user prompt missing %q:\n%s", want, prompts[0].User)
		}
	}
	if prompts[0].Shape != QuestionShape {
		t.Error("request did not carry the question shape")
	}
}

func TestGenerate_RetriesOnValidationFailure(t *testing.T) {
	bad := json.RawMessage(`{
		"prompt": "Which keyword starts a goroutine?",
		"options": ["go", "chan", "defer", "spawn"],
		"answer": "E",
		"explanation": "The go statement runs the function call in a new goroutine."
	}`)
	script := llm.NewScripted(
		llm.ScriptedReply{JSON: bad},
		llm.ScriptedReply{JSON: validQuestionJSON()},
	)
	gen := New(script, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Topic: "Go concurrency"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "A" {
		t.Errorf("expected the retried question, got answer %q", q.Answer)
	}
	if script.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", script.Calls())
	}
}

func TestGenerate_GivesUpAfterRetryBudget(t *testing.T) {
	bad := llm.ScriptedReply{JSON: json.RawMessage(`{
		"prompt": "",
		"options": ["a", "b"],
		"answer": "A",
		"explanation": "x"
	}`)}
	script := llm.NewScripted(bad, bad, bad, bad)
	gen := New(script, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "t"})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError in the chain, got %v", err)
	}
	if got, want := script.Calls(), DefaultConfig().MaxRetries+1; got != want {
		t.Errorf("call count = %d, want %d", got, want)
	}
}

func TestGenerate_ClientErrorNotRetried(t *testing.T) {
	script := llm.NewScripted(llm.ScriptedReply{
		Err: &llm.TransportError{Provider: "scripted", Status: 503, Err: errors.New("down")},
	})
	gen := New(script, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "t"})
	if err == nil {
		t.Fatal("expected error")
	}
	if script.Calls() != 1 {
		t.Errorf("client errors should not be retried here, got %d calls", script.Calls())
	}
}

func TestGenerateBank(t *testing.T) {
	replies := make([]llm.ScriptedReply, 3)
	for i := range replies {
		replies[i] = llm.ScriptedReply{JSON: json.RawMessage(fmt.Sprintf(`{
			"prompt": "Question number %d?",
			"options": ["yes", "no"],
			"answer": "A",
			"explanation": "Because."
		}`, i+1))}
	}
	script := llm.NewScripted(replies...)
	gen := New(script, DefaultConfig())

	b, err := gen.GenerateBank(context.Background(), BankInput{
		ID:    "go-basics",
		Name:  "Go Basics",
		Topic: "Go",
		Count: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(b.Questions))
	}
	for i, q := range b.Questions {
		want := fmt.Sprintf("go-basics-q%d", i+1)
		if q.ID != want {
			t.Errorf("question %d ID = %q, want %q", i, q.ID, want)
		}
	}

	// Later requests must list earlier prompts for deduplication.
	last := script.Prompts()[2].User
	if !strings.Contains(last, "Question number 1?") || !strings.Contains(last, "Question number 2?") {
		t.Errorf("final request missing prior prompts:\n%s", last)
	}
}

func TestGenerateBank_RejectsNonPositiveCount(t *testing.T) {
	gen := New(llm.NewScripted(), DefaultConfig())
	if _, err := gen.GenerateBank(context.Background(), BankInput{ID: "x", Count: 0}); err == nil {
		t.Fatal("expected error for zero count")
	}
}
