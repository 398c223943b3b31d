package session

// Mode identifies a study mode. The value is the stable identifier used
// in session records and on the command line.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeQuiz      Mode = "quiz"
	ModeReview    Mode = "review"
	ModeMemorise  Mode = "memorise"
	ModeFillBlank Mode = "fill-in-blank"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeFlashcard, ModeQuiz, ModeReview, ModeMemorise, ModeFillBlank}

// ParseMode maps an identifier to a Mode, false when unrecognised.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Label returns the human-facing name shown in menus.
func (m Mode) Label() string {
	switch m {
	case ModeFlashcard:
		return "Flashcards"
	case ModeQuiz:
		return "Quiz"
	case ModeReview:
		return "Spaced Review"
	case ModeMemorise:
		return "Browse"
	case ModeFillBlank:
		return "Fill in the Blank"
	default:
		return string(m)
	}
}
