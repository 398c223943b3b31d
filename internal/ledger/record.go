package ledger

import "time"

// Result is the outcome of a question's most recent attempt.
type Result int

const (
	// ResultUnknown means the question was never answered.
	ResultUnknown Result = iota
	ResultCorrect
	ResultIncorrect
)

// String returns the serialized form used by the storage codec.
func (r Result) String() string {
	switch r {
	case ResultCorrect:
		return "correct"
	case ResultIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// PerformanceRecord is the per-question attempt history. Records have
// value semantics: the scheduling engine returns a new record rather than
// mutating in place, and callers replace their ledger entry with it.
type PerformanceRecord struct {
	QuestionID     string
	CorrectCount   int
	IncorrectCount int

	// LastAnswered is the time of the most recent attempt, nil before the
	// first one.
	LastAnswered *time.Time

	// Last is the outcome of the most recent attempt.
	Last Result

	// ScheduledNext is the ordered-list position a missed question should
	// reappear at within the session that set it. Cleared on a correct
	// answer, never persisted.
	ScheduledNext *int
}

// NewRecord returns a zeroed record for a question that was never attempted.
func NewRecord(questionID string) PerformanceRecord {
	return PerformanceRecord{QuestionID: questionID}
}

// Attempts returns the total number of attempts recorded.
func (r PerformanceRecord) Attempts() int {
	return r.CorrectCount + r.IncorrectCount
}

// NeedsReview reports whether the question was never answered correctly
// on its most recent attempt (including never attempted at all).
func (r PerformanceRecord) NeedsReview() bool {
	return r.Last != ResultCorrect
}
