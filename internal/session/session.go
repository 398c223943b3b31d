package session

import (
	"github.com/rdesai/drill/internal/bank"
)

// Session is one run-through of an ordered question list under a chosen
// mode. Sessions are transient: they live in memory for the duration of
// the run and are discarded on exit or completion. The ordered list may
// hold the same question twice after a missed question is reinserted.
type Session struct {
	// ID identifies the session for display and diagnostics.
	ID string

	Mode Mode

	// Questions is the ordered list being served. Treated as immutable;
	// reinsertion replaces the slice rather than splicing in place.
	Questions []bank.Question

	// Cursor indexes the current question. A cursor at or past
	// len(Questions) means the session is complete.
	Cursor int
}

// Current returns the question under the cursor, or ok=false when the
// cursor has run off the list — the completion signal, not an error.
func (s *Session) Current() (bank.Question, bool) {
	if s == nil || s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// Remaining returns how many questions are left including the current one.
func (s *Session) Remaining() int {
	if s == nil || s.Cursor >= len(s.Questions) {
		return 0
	}
	return len(s.Questions) - s.Cursor
}

// withQuestionAt returns a copy of the session whose list has q inserted
// at idx, clamped to an append. Copy-on-write keeps the previous list
// intact for anything still holding it.
func (s *Session) withQuestionAt(q bank.Question, idx int) *Session {
	if idx > len(s.Questions) {
		idx = len(s.Questions)
	}
	if idx < 0 {
		idx = 0
	}

	next := make([]bank.Question, 0, len(s.Questions)+1)
	next = append(next, s.Questions[:idx]...)
	next = append(next, q)
	next = append(next, s.Questions[idx:]...)

	out := *s
	out.Questions = next
	return &out
}
