package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

var errScriptDrained = errors.New("scripted replies exhausted")

// ScriptedReply is one queued reply for a ScriptedClient. Exactly one
// of JSON or Err should be set.
type ScriptedReply struct {
	JSON   json.RawMessage
	Err    error
	Tokens TokenCount
}

// ScriptedClient plays back queued replies in order and records every
// prompt it was asked, so tests can assert on what was sent. It is the
// stand-in for a real provider.
type ScriptedClient struct {
	mu      sync.Mutex
	queue   []ScriptedReply
	prompts []Prompt
}

func NewScripted(replies ...ScriptedReply) *ScriptedClient {
	return &ScriptedClient{queue: replies}
}

func (s *ScriptedClient) Model() string { return "scripted" }

func (s *ScriptedClient) Complete(_ context.Context, p Prompt) (*Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, p)

	if len(s.queue) == 0 {
		return nil, &TransportError{Provider: ProviderScript, Status: 503, Err: errScriptDrained}
	}
	reply := s.queue[0]
	s.queue = s.queue[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Completion{JSON: reply.JSON, Model: s.Model(), Tokens: reply.Tokens}, nil
}

// Queue appends another reply to the playback order.
func (s *ScriptedClient) Queue(reply ScriptedReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, reply)
}

// Prompts returns a copy of every prompt received so far.
func (s *ScriptedClient) Prompts() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Prompt, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Calls reports how many completions have been requested.
func (s *ScriptedClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
