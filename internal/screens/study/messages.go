package study

// SessionFinishedMsg tells the home screen a session ended, so counts
// and review badges can be refreshed.
type SessionFinishedMsg struct {
	Answered int
	Correct  int
}

// persistDoneMsg reports the outcome of a background ledger save.
type persistDoneMsg struct {
	Err error
}
