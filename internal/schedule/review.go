package schedule

import (
	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
)

// NeedingReview filters to the questions that were never answered, or
// whose most recent attempt was wrong. Input order is preserved; no
// shuffling happens here.
func NeedingReview(questions []bank.Question, l ledger.Ledger) []bank.Question {
	var out []bank.Question
	for _, q := range questions {
		rec, ok := l[q.ID]
		if !ok || rec.NeedsReview() {
			out = append(out, q)
		}
	}
	return out
}

// DueForReview narrows NeedingReview to questions the learner has
// actually attempted. A fresh bank has nothing due: review is for
// revisiting misses, not a second pass over unseen material.
func DueForReview(questions []bank.Question, l ledger.Ledger) []bank.Question {
	var out []bank.Question
	for _, q := range questions {
		rec, ok := l[q.ID]
		if ok && rec.LastAnswered != nil && rec.NeedsReview() {
			out = append(out, q)
		}
	}
	return out
}
