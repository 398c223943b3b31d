package ledger

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	t1 := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 15, 18, 45, 12, 500000000, time.UTC)
	pos := 7

	orig := New()
	orig["q-1"] = PerformanceRecord{QuestionID: "q-1", CorrectCount: 4, IncorrectCount: 1, Last: ResultCorrect, LastAnswered: &t1}
	orig["q-2"] = PerformanceRecord{QuestionID: "q-2", IncorrectCount: 2, Last: ResultIncorrect, LastAnswered: &t2, ScheduledNext: &pos}
	orig["q-3"] = PerformanceRecord{QuestionID: "q-3"}

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	r1 := got["q-1"]
	if r1.CorrectCount != 4 || r1.IncorrectCount != 1 || r1.Last != ResultCorrect {
		t.Errorf("q-1 = %+v", r1)
	}
	if r1.LastAnswered == nil || !r1.LastAnswered.Equal(t1) {
		t.Errorf("q-1 LastAnswered = %v, want %v", r1.LastAnswered, t1)
	}

	r2 := got["q-2"]
	if r2.LastAnswered == nil || !r2.LastAnswered.Equal(t2) {
		t.Errorf("q-2 LastAnswered = %v, want %v (sub-second precision)", r2.LastAnswered, t2)
	}
	// ScheduledNext is transient and must not survive serialization.
	if r2.ScheduledNext != nil {
		t.Error("ScheduledNext was persisted")
	}

	r3 := got["q-3"]
	if r3.LastAnswered != nil || r3.Last != ResultUnknown {
		t.Errorf("q-3 absent fields did not stay absent: %+v", r3)
	}
}

func TestMarshal_PairListShape(t *testing.T) {
	l := New()
	l["q-1"] = NewRecord("q-1")

	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var pairs [][]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		t.Fatalf("output is not an array of pairs: %v", err)
	}
	if len(pairs) != 1 || len(pairs[0]) != 2 {
		t.Fatalf("unexpected shape: %s", data)
	}

	var id string
	if err := json.Unmarshal(pairs[0][0], &id); err != nil || id != "q-1" {
		t.Errorf("first element = %s, want question id", pairs[0][0])
	}
	var rec map[string]any
	if err := json.Unmarshal(pairs[0][1], &rec); err != nil {
		t.Fatalf("second element is not a record object: %v", err)
	}
	if rec["last_answered"] != nil {
		t.Errorf("last_answered = %v, want null", rec["last_answered"])
	}
	if rec["last"] != "unknown" {
		t.Errorf("last = %v, want unknown", rec["last"])
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	cases := []string{
		`{"not": "a list"}`,
		`[["q-1"]]`,
		`[["q-1", {"last_answered": "not-a-time", "last": "correct"}]]`,
		`garbage`,
	}
	for _, c := range cases {
		if _, err := Unmarshal([]byte(c)); err == nil {
			t.Errorf("Unmarshal(%q): expected error", c)
		}
	}
}
