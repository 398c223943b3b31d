package schedule

import (
	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
)

// PlainShuffle returns a uniform random permutation of questions
// (Fisher-Yates). The input slice is not modified.
func PlainShuffle(questions []bank.Question, src Source) []bank.Question {
	out := make([]bank.Question, len(questions))
	copy(out, questions)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// WeightedShuffle orders questions for a session start, probabilistically
// front-loading the ones the learner has missed or never seen.
//
// The input is split into three buckets by latest outcome — unseen,
// incorrect, correct — and each bucket is plain-shuffled. The first third
// of the output is then filled by weighted draws (incorrect at
// p.IncorrectWeight, unseen within the next p.UnseenWeight of mass,
// correct otherwise); a draw whose bucket is empty falls through in
// incorrect, unseen, correct order. Whatever remains is appended in that
// same bucket order. The result is a permutation of the input: nothing is
// dropped or duplicated.
func WeightedShuffle(questions []bank.Question, l ledger.Ledger, src Source, p Params) []bank.Question {
	var unseen, incorrect, correct []bank.Question
	for _, q := range questions {
		rec, ok := l[q.ID]
		switch {
		case !ok || rec.Last == ledger.ResultUnknown:
			unseen = append(unseen, q)
		case rec.Last == ledger.ResultIncorrect:
			incorrect = append(incorrect, q)
		default:
			correct = append(correct, q)
		}
	}

	unseen = PlainShuffle(unseen, src)
	incorrect = PlainShuffle(incorrect, src)
	correct = PlainShuffle(correct, src)

	total := len(questions)
	out := make([]bank.Question, 0, total)

	// Weighted draws fill the front region; each draw consumes the head
	// of its bucket. An exhausted bucket falls through down the
	// incorrect -> unseen -> correct cascade; a slot can come up empty,
	// the leftovers are appended below either way.
	front := total / 3
	for i := 0; i < front; i++ {
		roll := src.Float64()
		var pick *[]bank.Question
		switch {
		case roll < p.IncorrectWeight:
			pick = firstNonEmpty(&incorrect, &unseen, &correct)
		case roll < p.IncorrectWeight+p.UnseenWeight:
			pick = firstNonEmpty(&unseen, &correct)
		default:
			pick = firstNonEmpty(&correct)
		}
		if pick == nil {
			continue
		}
		out = append(out, (*pick)[0])
		*pick = (*pick)[1:]
	}

	out = append(out, incorrect...)
	out = append(out, unseen...)
	out = append(out, correct...)
	return out
}

// firstNonEmpty returns the first bucket with items remaining, nil when
// all are drained.
func firstNonEmpty(buckets ...*[]bank.Question) *[]bank.Question {
	for _, b := range buckets {
		if len(*b) > 0 {
			return b
		}
	}
	return nil
}
