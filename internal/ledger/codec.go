package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Storage format: a JSON array of [questionID, record] pairs. Timestamps
// are RFC 3339 strings or null. ScheduledNext is transient session state
// and deliberately excluded.

// recordData is the serialized shape of a PerformanceRecord.
type recordData struct {
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	LastAnswered   *string `json:"last_answered"`
	Last           string  `json:"last"`
}

// Marshal encodes the ledger to the pair-list storage format. Pairs are
// emitted in key order so output is deterministic; readers must not rely
// on any ordering.
func Marshal(l Ledger) ([]byte, error) {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pairs := make([][2]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		r := l[id]

		rd := recordData{
			CorrectCount:   r.CorrectCount,
			IncorrectCount: r.IncorrectCount,
			Last:           r.Last.String(),
		}
		if r.LastAnswered != nil {
			ts := r.LastAnswered.UTC().Format(time.RFC3339Nano)
			rd.LastAnswered = &ts
		}

		idJSON, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("marshal question id: %w", err)
		}
		recJSON, err := json.Marshal(rd)
		if err != nil {
			return nil, fmt.Errorf("marshal record %s: %w", id, err)
		}
		pairs = append(pairs, [2]json.RawMessage{idJSON, recJSON})
	}

	return json.Marshal(pairs)
}

// Unmarshal decodes the pair-list storage format into a ledger. Any
// structural problem is an error; callers at the storage boundary degrade
// to an empty ledger rather than failing the application.
func Unmarshal(data []byte) (Ledger, error) {
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("decode ledger pairs: %w", err)
	}

	l := New()
	for i, pair := range pairs {
		var id string
		if err := json.Unmarshal(pair[0], &id); err != nil {
			return nil, fmt.Errorf("pair %d: decode question id: %w", i, err)
		}
		var rd recordData
		if err := json.Unmarshal(pair[1], &rd); err != nil {
			return nil, fmt.Errorf("pair %d (%s): decode record: %w", i, id, err)
		}

		r := PerformanceRecord{
			QuestionID:     id,
			CorrectCount:   rd.CorrectCount,
			IncorrectCount: rd.IncorrectCount,
		}
		switch rd.Last {
		case "correct":
			r.Last = ResultCorrect
		case "incorrect":
			r.Last = ResultIncorrect
		default:
			r.Last = ResultUnknown
		}
		if rd.LastAnswered != nil {
			ts, err := time.Parse(time.RFC3339Nano, *rd.LastAnswered)
			if err != nil {
				return nil, fmt.Errorf("pair %d (%s): parse last_answered: %w", i, id, err)
			}
			r.LastAnswered = &ts
		}
		l[id] = r
	}
	return l, nil
}
