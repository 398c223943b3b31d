package ledger

import (
	"testing"
	"time"

	"github.com/rdesai/drill/internal/bank"
)

func questions(ids ...string) []bank.Question {
	qs := make([]bank.Question, len(ids))
	for i, id := range ids {
		qs[i] = bank.Question{ID: id, Prompt: "p", Options: []string{"a", "b"}, Answer: "A"}
	}
	return qs
}

func TestSync_AddsOnlyMissing(t *testing.T) {
	l := New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l["q-1"] = PerformanceRecord{
		QuestionID:   "q-1",
		CorrectCount: 3,
		Last:         ResultCorrect,
		LastAnswered: &now,
	}

	added := l.Sync(questions("q-1", "q-2", "q-3"))
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if len(l) != 3 {
		t.Fatalf("len(ledger) = %d, want 3", len(l))
	}
	if l["q-1"].CorrectCount != 3 {
		t.Error("existing record was overwritten")
	}
	if l["q-2"].Last != ResultUnknown || l["q-2"].Attempts() != 0 {
		t.Error("new record is not zeroed")
	}
}

func TestGet_MissingReturnsZeroed(t *testing.T) {
	l := New()
	r := l.Get("nope")
	if r.QuestionID != "nope" || r.Attempts() != 0 || r.Last != ResultUnknown {
		t.Errorf("Get on missing id = %+v, want zeroed record", r)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	l := New()
	l["q-1"] = PerformanceRecord{QuestionID: "q-1", CorrectCount: 2, Last: ResultCorrect, LastAnswered: &now}
	l["q-2"] = PerformanceRecord{QuestionID: "q-2", IncorrectCount: 1, Last: ResultIncorrect, LastAnswered: &now}
	l["q-3"] = PerformanceRecord{QuestionID: "q-3"}

	s := ComputeStats(l)
	if s.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", s.TotalQuestions)
	}
	if s.TotalAnswered != 2 {
		t.Errorf("TotalAnswered = %d, want 2", s.TotalAnswered)
	}
	if s.TotalCorrect != 2 || s.TotalIncorrect != 1 {
		t.Errorf("correct/incorrect = %d/%d, want 2/1", s.TotalCorrect, s.TotalIncorrect)
	}
	if s.AccuracyRounded() != 67 {
		t.Errorf("AccuracyRounded = %d, want 67", s.AccuracyRounded())
	}
	// q-2 (last incorrect) and q-3 (never attempted).
	if s.NeedsReview != 2 {
		t.Errorf("NeedsReview = %d, want 2", s.NeedsReview)
	}
}

func TestComputeStats_EmptyLedger(t *testing.T) {
	s := ComputeStats(New())
	if s.AccuracyPercent != 0 {
		t.Errorf("AccuracyPercent = %v, want 0 on zero attempts", s.AccuracyPercent)
	}
	if s.TotalAnswered != 0 || s.NeedsReview != 0 {
		t.Errorf("unexpected stats for empty ledger: %+v", s)
	}
}

func TestAccuracyBounds(t *testing.T) {
	cases := []struct{ correct, incorrect int }{
		{0, 0}, {1, 0}, {0, 1}, {7, 3}, {100, 1},
	}
	for _, c := range cases {
		l := New()
		l["q"] = PerformanceRecord{QuestionID: "q", CorrectCount: c.correct, IncorrectCount: c.incorrect}
		s := ComputeStats(l)
		if s.AccuracyPercent < 0 || s.AccuracyPercent > 100 {
			t.Errorf("accuracy %v out of [0,100] for %+v", s.AccuracyPercent, c)
		}
	}
}
