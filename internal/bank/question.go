package bank

import "strings"

// optionLetters are the position labels for answer options, in order.
var optionLetters = []string{"A", "B", "C", "D"}

// Question is a single study question. Questions are created at bank load
// time and never mutated afterwards.
type Question struct {
	// ID uniquely identifies the question within its bank and is stable
	// across sessions. The performance ledger is keyed by it.
	ID string `json:"id"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Options holds 2-4 answer choices in display order.
	Options []string `json:"options"`

	// Answer is the letter (A-D) of the correct option by position.
	Answer string `json:"answer"`

	// Explanation is shown after the learner answers.
	Explanation string `json:"explanation"`
}

// CorrectIndex returns the option index the answer letter addresses,
// or -1 when the letter does not map to a real option. Comparisons
// against -1 are definitionally incorrect; callers never need to guard.
func (q Question) CorrectIndex() int {
	letter := strings.ToUpper(strings.TrimSpace(q.Answer))
	for i, l := range optionLetters {
		if letter == l && i < len(q.Options) {
			return i
		}
	}
	return -1
}

// CorrectOption returns the text of the correct option, or "" when the
// answer letter is unmappable.
func (q Question) CorrectOption() string {
	i := q.CorrectIndex()
	if i < 0 {
		return ""
	}
	return q.Options[i]
}

// MatchesAnswer reports whether a typed answer matches the correct option
// text, ignoring case and surrounding whitespace. Always false when the
// answer letter is unmappable.
func (q Question) MatchesAnswer(typed string) bool {
	correct := q.CorrectOption()
	if correct == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(correct))
}

// Letter returns the display label for an option index ("A"-"D"), or ""
// when out of range.
func Letter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return ""
	}
	return optionLetters[i]
}
