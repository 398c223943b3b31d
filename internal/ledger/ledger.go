package ledger

import (
	"math"

	"github.com/rdesai/drill/internal/bank"
)

// Ledger maps question ID to its performance record, one entry per known
// question in a bank. Iteration order carries no meaning.
type Ledger map[string]PerformanceRecord

// New returns an empty ledger.
func New() Ledger {
	return make(Ledger)
}

// Sync inserts a zeroed record for every question not already present.
// Existing records are untouched, so a bank update that adds questions
// keeps all prior history. Returns the number of records added.
func (l Ledger) Sync(questions []bank.Question) int {
	added := 0
	for _, q := range questions {
		if _, ok := l[q.ID]; !ok {
			l[q.ID] = NewRecord(q.ID)
			added++
		}
	}
	return added
}

// Get returns the record for a question, falling back to a zeroed record
// when none exists yet.
func (l Ledger) Get(questionID string) PerformanceRecord {
	if r, ok := l[questionID]; ok {
		return r
	}
	return NewRecord(questionID)
}

// Stats aggregates a ledger for display.
type Stats struct {
	TotalQuestions int
	TotalAnswered  int
	TotalCorrect   int
	TotalIncorrect int

	// AccuracyPercent is 100*correct/(correct+incorrect), 0 when there
	// are no attempts.
	AccuracyPercent float64

	// NeedsReview counts questions whose latest attempt was not correct,
	// including questions never attempted.
	NeedsReview int
}

// AccuracyRounded returns AccuracyPercent rounded to the nearest integer.
func (s Stats) AccuracyRounded() int {
	return int(math.Round(s.AccuracyPercent))
}

// ComputeStats aggregates all records in the ledger.
func ComputeStats(l Ledger) Stats {
	s := Stats{TotalQuestions: len(l)}
	for _, r := range l {
		if r.LastAnswered != nil {
			s.TotalAnswered++
		}
		s.TotalCorrect += r.CorrectCount
		s.TotalIncorrect += r.IncorrectCount
		if r.NeedsReview() {
			s.NeedsReview++
		}
	}
	if total := s.TotalCorrect + s.TotalIncorrect; total > 0 {
		s.AccuracyPercent = 100 * float64(s.TotalCorrect) / float64(total)
	}
	return s
}
