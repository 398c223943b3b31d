package study

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/session"
)

// fakeRepo records saves without touching a database.
type fakeRepo struct {
	saves  int
	lastID string
	err    error
}

func (f *fakeRepo) Load(ctx context.Context, bankID string) (ledger.Ledger, error) {
	return ledger.New(), nil
}

func (f *fakeRepo) Save(ctx context.Context, bankID string, l ledger.Ledger) error {
	f.saves++
	f.lastID = bankID
	return f.err
}

func (f *fakeRepo) Delete(ctx context.Context, bankID string) error { return nil }

func (f *fakeRepo) Banks(ctx context.Context) ([]string, error) { return nil, nil }

func testBank(n int) *bank.Bank {
	b := &bank.Bank{ID: "test-bank", Name: "Test Bank"}
	for i := 0; i < n; i++ {
		b.Questions = append(b.Questions, bank.Question{
			ID:      string(rune('a' + i)),
			Prompt:  "prompt",
			Options: []string{"right", "wrong"},
			Answer:  "A",
		})
	}
	return b
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestFlashcardRevealThenGrade(t *testing.T) {
	repo := &fakeRepo{}
	ctrl := session.NewController()
	s := New(ctrl, session.ModeFlashcard, testBank(1), ledger.New(), repo)

	if s.errMsg != "" {
		t.Fatalf("unexpected start error: %q", s.errMsg)
	}
	if s.revealed {
		t.Fatal("card should start face down")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.revealed {
		t.Fatal("enter should reveal the answer")
	}

	_, cmd := s.Update(press('y'))
	if s.phase != phaseFeedback {
		t.Errorf("phase = %v, want feedback", s.phase)
	}
	if s.answered != 1 || s.correct != 1 {
		t.Errorf("answered/correct = %d/%d, want 1/1", s.answered, s.correct)
	}

	// The returned command performs the save.
	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	msg := cmd()
	if pmsg, ok := msg.(persistDoneMsg); !ok || pmsg.Err != nil {
		t.Fatalf("expected clean persistDoneMsg, got %#v", msg)
	}
	if repo.saves != 1 || repo.lastID != "test-bank" {
		t.Errorf("saves = %d for %q, want 1 for test-bank", repo.saves, repo.lastID)
	}
}

func TestQuizWrongAnswerExtendsSession(t *testing.T) {
	ctrl := session.NewController()
	l := ledger.New()
	s := New(ctrl, session.ModeQuiz, testBank(1), l, &fakeRepo{})

	s.Update(press('b'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.phase)
	}
	if s.wasRight {
		t.Error("choosing option b should be wrong")
	}
	if got := len(s.sess.Questions); got != 2 {
		t.Errorf("session length = %d, want 2 after reinsertion", got)
	}
	if rec := l.Get("a"); rec.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", rec.IncorrectCount)
	}
}

func TestSummaryPopsThenReportsFinished(t *testing.T) {
	ctrl := session.NewController()
	s := New(ctrl, session.ModeFlashcard, testBank(1), ledger.New(), &fakeRepo{})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(press('y'))
	s.Update(press(' ')) // feedback -> advance -> summary
	if s.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", s.phase)
	}

	_, cmd := s.Update(press(' '))
	if cmd == nil {
		t.Fatal("expected pop + finished sequence")
	}
	if ctrl.Active() != nil {
		t.Error("controller should be idle after the summary is dismissed")
	}
}

func TestReviewWithNothingDueShowsMessage(t *testing.T) {
	ctrl := session.NewController()
	s := New(ctrl, session.ModeReview, testBank(3), ledger.New(), &fakeRepo{})

	if s.errMsg == "" {
		t.Fatal("expected a nothing-to-review message")
	}
	if s.sess != nil {
		t.Error("no session should start")
	}

	_, cmd := s.Update(press(' '))
	if cmd == nil {
		t.Fatal("any key should pop back home")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Errorf("expected PopScreenMsg, got %#v", msg)
	}
}

func TestFillBlankChecksTypedAnswer(t *testing.T) {
	ctrl := session.NewController()
	l := ledger.New()
	s := New(ctrl, session.ModeFillBlank, testBank(1), l, &fakeRepo{})

	for _, r := range "right" {
		s.Update(press(r))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.phase)
	}
	if !s.wasRight {
		t.Error("typed answer matching the correct option should count")
	}
	if rec := l.Get("a"); rec.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", rec.CorrectCount)
	}
}

func TestPersistFailureShowsWarning(t *testing.T) {
	repo := &fakeRepo{err: context.DeadlineExceeded}
	ctrl := session.NewController()
	s := New(ctrl, session.ModeFlashcard, testBank(1), ledger.New(), repo)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := s.Update(press('y'))
	s.Update(cmd())

	if s.persistErr == "" {
		t.Error("expected a save warning")
	}
	if s.phase != phaseFeedback {
		t.Error("a failed save must not interrupt the session")
	}
}

func TestKeyHintsFollowPhase(t *testing.T) {
	ctrl := session.NewController()
	s := New(ctrl, session.ModeFlashcard, testBank(1), ledger.New(), &fakeRepo{})

	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("answering hints = %d, want 2", len(hints))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(press('y'))
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("feedback hints = %d, want 1", len(hints))
	}
}
