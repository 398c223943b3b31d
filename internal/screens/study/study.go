package study

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/session"
	"github.com/rdesai/drill/internal/store"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/layout"
)

// phase tracks where the learner is within the current question.
type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

// StudyScreen runs one session in flashcard, quiz, review or
// fill-in-the-blank mode. Review behaves like a quiz over the questions
// whose latest attempt was wrong.
type StudyScreen struct {
	ctrl *session.Controller
	mode session.Mode
	bank *bank.Bank
	ledg ledger.Ledger
	repo store.LedgerRepo

	sess  *session.Session
	phase phase

	choice   components.MultiChoice
	input    components.TextInput
	revealed bool
	wasRight bool

	answered int
	correct  int

	errMsg     string
	persistErr string
}

var _ router.Screen = (*StudyScreen)(nil)
var _ router.KeyHintProvider = (*StudyScreen)(nil)

// New starts a session for mode over the bank's questions. A review
// session with nothing due surfaces the condition instead of a list.
func New(ctrl *session.Controller, mode session.Mode, b *bank.Bank, l ledger.Ledger, repo store.LedgerRepo) *StudyScreen {
	s := &StudyScreen{
		ctrl: ctrl,
		mode: mode,
		bank: b,
		ledg: l,
		repo: repo,
	}

	sess, err := ctrl.Start(mode, b.Questions, l)
	if err != nil {
		if errors.Is(err, session.ErrNoQuestionsToReview) {
			s.errMsg = "Nothing to review right now. Answer some questions first!"
		} else {
			s.errMsg = err.Error()
		}
		return s
	}
	s.sess = sess
	s.setupQuestion()
	return s
}

// setupQuestion prepares the input widgets for the question under the
// cursor.
func (s *StudyScreen) setupQuestion() {
	q, ok := s.sess.Current()
	if !ok {
		s.phase = phaseSummary
		return
	}

	s.phase = phaseAnswering
	s.revealed = false

	switch s.mode {
	case session.ModeFillBlank:
		s.input = components.NewTextInput("Type your answer...", 60)
	case session.ModeFlashcard:
		// Reveal-then-grade, no input widget.
	default:
		s.choice = components.NewMultiChoice(q)
	}
}

// recordAnswer folds the outcome into the ledger and schedules the save.
func (s *StudyScreen) recordAnswer(correct bool) tea.Cmd {
	s.sess = s.ctrl.Answer(s.ledg, correct)
	s.answered++
	if correct {
		s.correct++
	}
	s.wasRight = correct
	s.phase = phaseFeedback

	// Persistence is fire-and-forget: a failed save warns, never blocks.
	bankID := s.bank.ID
	snapshot := s.ledg
	return func() tea.Msg {
		return persistDoneMsg{Err: s.repo.Save(context.Background(), bankID, snapshot)}
	}
}

// nextQuestion advances the cursor, flipping to the summary when the
// list is exhausted.
func (s *StudyScreen) nextQuestion() {
	if s.ctrl.Advance() == nil {
		s.phase = phaseSummary
		return
	}
	s.sess = s.ctrl.Active()
	s.setupQuestion()
}

func (s *StudyScreen) Init() tea.Cmd {
	if s.mode == session.ModeFillBlank && s.errMsg == "" {
		return s.input.Init()
	}
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if pmsg, ok := msg.(persistDoneMsg); ok {
		if pmsg.Err != nil {
			s.persistErr = "warning: progress not saved: " + pmsg.Err.Error()
		} else {
			s.persistErr = ""
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseSummary:
		s.ctrl.Exit()
		finished := SessionFinishedMsg{Answered: s.answered, Correct: s.correct}
		// Pop first so the finished message reaches the home screen.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return finished },
		)

	case phaseFeedback:
		s.nextQuestion()
		return s, nil

	case phaseAnswering:
		return s.updateAnswering(key, msg)
	}

	return s, nil
}

func (s *StudyScreen) updateAnswering(key string, msg tea.Msg) (router.Screen, tea.Cmd) {
	q, ok := s.sess.Current()
	if !ok {
		s.phase = phaseSummary
		return s, nil
	}

	switch s.mode {
	case session.ModeFlashcard:
		if !s.revealed {
			if key == "enter" || key == "space" {
				s.revealed = true
			}
			return s, nil
		}
		switch key {
		case "y":
			return s, s.recordAnswer(true)
		case "n":
			return s, s.recordAnswer(false)
		}
		return s, nil

	case session.ModeFillBlank:
		if key == "enter" {
			correct := q.MatchesAnswer(s.input.Value())
			s.input.Submit(correct)
			return s, s.recordAnswer(correct)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	default: // quiz, review
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, tea.Batch(cmd, s.recordAnswer(s.choice.IsCorrect()))
		}
		return s, cmd
	}
}

func (s *StudyScreen) Title() string {
	return s.mode.Label()
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.phase == phaseSummary:
		return []layout.KeyHint{{Key: "any key", Description: "Done"}}
	case s.phase == phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.mode == session.ModeFlashcard && !s.revealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Quit session"},
		}
	case s.mode == session.ModeFlashcard:
		return []layout.KeyHint{
			{Key: "Y", Description: "Knew it"},
			{Key: "N", Description: "Missed it"},
		}
	case s.mode == session.ModeFillBlank:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit session"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/a-d", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit session"},
		}
	}
}
