package bank

import "testing"

func TestCorrectIndex(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		options []string
		want    int
	}{
		{"first option", "A", []string{"x", "y"}, 0},
		{"last option", "D", []string{"a", "b", "c", "d"}, 3},
		{"lowercase letter", "b", []string{"x", "y"}, 1},
		{"whitespace around letter", " C ", []string{"x", "y", "z"}, 2},
		{"letter beyond options", "D", []string{"x", "y"}, -1},
		{"unknown letter", "E", []string{"x", "y"}, -1},
		{"empty answer", "", []string{"x", "y"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: "q", Options: tt.options, Answer: tt.answer}
			if got := q.CorrectIndex(); got != tt.want {
				t.Errorf("CorrectIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorrectOption_UnmappableIsEmpty(t *testing.T) {
	q := Question{Options: []string{"x", "y"}, Answer: "D"}
	if got := q.CorrectOption(); got != "" {
		t.Errorf("CorrectOption() = %q, want empty", got)
	}
}

func TestMatchesAnswer(t *testing.T) {
	q := Question{Options: []string{"Paris", "Rome"}, Answer: "A"}

	if !q.MatchesAnswer("paris") {
		t.Error("expected case-insensitive match")
	}
	if !q.MatchesAnswer("  Paris  ") {
		t.Error("expected whitespace-trimmed match")
	}
	if q.MatchesAnswer("Rome") {
		t.Error("wrong option must not match")
	}

	// Unmappable answer letter: every comparison is false.
	bad := Question{Options: []string{"Paris", "Rome"}, Answer: "C"}
	if bad.MatchesAnswer("Paris") || bad.MatchesAnswer("") {
		t.Error("unmappable answer must never match")
	}
}

func TestLetter(t *testing.T) {
	if got := Letter(0); got != "A" {
		t.Errorf("Letter(0) = %q, want A", got)
	}
	if got := Letter(3); got != "D" {
		t.Errorf("Letter(3) = %q, want D", got)
	}
	if got := Letter(4); got != "" {
		t.Errorf("Letter(4) = %q, want empty", got)
	}
	if got := Letter(-1); got != "" {
		t.Errorf("Letter(-1) = %q, want empty", got)
	}
}
