package schedule

import (
	"time"

	"github.com/rdesai/drill/internal/ledger"
)

// ApplyOutcome folds one answer into a performance record and returns the
// updated copy; the input is never mutated and the caller replaces its
// ledger entry with the result.
//
// A correct answer clears any pending reappearance. A wrong answer
// schedules the question to reappear between ReinsertMin and ReinsertMax
// positions past the current one, inclusive.
func ApplyOutcome(rec ledger.PerformanceRecord, correct bool, position int, now time.Time, src Source, p Params) ledger.PerformanceRecord {
	out := rec
	t := now
	out.LastAnswered = &t

	if correct {
		out.CorrectCount++
		out.Last = ledger.ResultCorrect
		out.ScheduledNext = nil
		return out
	}

	out.IncorrectCount++
	out.Last = ledger.ResultIncorrect

	offset := p.ReinsertMin
	if span := p.ReinsertMax - p.ReinsertMin; span > 0 {
		offset += src.IntN(span + 1)
	}
	next := position + offset
	out.ScheduledNext = &next
	return out
}
