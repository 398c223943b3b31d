package schedule

// Params holds the tuning constants for the scheduling heuristics. The
// defaults are deliberate but not sacred; they balance spaced
// reappearance against not flooding the tail of a session.
type Params struct {
	// ReinsertMin and ReinsertMax bound how far ahead of the current
	// position a missed question is rescheduled, inclusive.
	ReinsertMin int
	ReinsertMax int

	// IncorrectWeight is the probability a front-region slot draws from
	// the incorrect bucket. UnseenWeight is the additional probability
	// mass for the unseen bucket; anything past their sum falls to the
	// correct bucket.
	IncorrectWeight float64
	UnseenWeight    float64
}

// DefaultParams returns the standard tuning: missed questions reappear
// 4-10 positions ahead, and the first third of a session draws incorrect
// at 0.5, unseen at 0.3, correct with the remainder.
func DefaultParams() Params {
	return Params{
		ReinsertMin:     4,
		ReinsertMax:     10,
		IncorrectWeight: 0.5,
		UnseenWeight:    0.3,
	}
}
