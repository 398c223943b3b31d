package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/schedule"
)

// ErrNoQuestionsToReview is returned by Start in review mode when every
// question's latest attempt was correct. The controller stays Idle and
// the caller surfaces the condition to the learner.
var ErrNoQuestionsToReview = errors.New("no questions need review")

// Controller orchestrates study sessions: it builds the ordered list for
// a mode, applies answer outcomes to the ledger, and reinserts missed
// questions into the live list. All methods run synchronously on the
// calling goroutine; the ledger has a single writer.
type Controller struct {
	params schedule.Params
	src    schedule.Source
	now    func() time.Time

	active *Session
}

// Option configures a Controller.
type Option func(*Controller)

// WithSource injects a random source, for deterministic tests.
func WithSource(src schedule.Source) Option {
	return func(c *Controller) { c.src = src }
}

// WithParams overrides the scheduling tuning constants.
func WithParams(p schedule.Params) Option {
	return func(c *Controller) { c.params = p }
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates an idle controller with default tuning.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		params: schedule.DefaultParams(),
		src:    schedule.DefaultSource(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Active returns the running session, nil when idle.
func (c *Controller) Active() *Session {
	return c.active
}

// Start selects and orders questions for the mode and transitions the
// controller to a running session. Review mode fails with
// ErrNoQuestionsToReview when nothing qualifies; every other mode
// accepts whatever the bank provides.
func (c *Controller) Start(mode Mode, questions []bank.Question, l ledger.Ledger) (*Session, error) {
	var ordered []bank.Question
	switch mode {
	case ModeReview:
		ordered = schedule.DueForReview(questions, l)
		if len(ordered) == 0 {
			return nil, ErrNoQuestionsToReview
		}
	case ModeMemorise:
		// Browse mode keeps bank order; filtering happens downstream.
		ordered = append([]bank.Question(nil), questions...)
	default:
		ordered = schedule.WeightedShuffle(questions, l, c.src, c.params)
	}

	c.active = &Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		Questions: ordered,
		Cursor:    0,
	}
	return c.active, nil
}

// Answer folds the outcome for the current question into the ledger and,
// on a wrong answer, reinserts the same question entry later in the live
// list. The updated session replaces the active one and is returned;
// persisting the ledger is the caller's side effect. Calling Answer with
// no current question is a no-op.
func (c *Controller) Answer(l ledger.Ledger, correct bool) *Session {
	s := c.active
	if s == nil {
		return nil
	}
	q, ok := s.Current()
	if !ok {
		return s
	}

	rec := l.Get(q.ID)
	updated := schedule.ApplyOutcome(rec, correct, s.Cursor, c.now(), c.src, c.params)
	l[q.ID] = updated

	if !correct && updated.ScheduledNext != nil {
		s = s.withQuestionAt(q, *updated.ScheduledNext)
		c.active = s
	}
	return s
}

// Advance moves to the next question. When the cursor is already on the
// last entry the session is complete: the controller returns to Idle and
// Advance returns nil.
func (c *Controller) Advance() *Session {
	s := c.active
	if s == nil {
		return nil
	}
	if s.Cursor < len(s.Questions)-1 {
		s.Cursor++
		return s
	}
	c.active = nil
	return nil
}

// Retreat moves one question back, a pure navigation step: no ledger
// writes, no rescheduling, no-op at the start of the list.
func (c *Controller) Retreat() *Session {
	s := c.active
	if s == nil {
		return nil
	}
	if s.Cursor > 0 {
		s.Cursor--
	}
	return s
}

// Exit abandons the session unconditionally. Ledger mutations already
// applied survive; the ordered list does not.
func (c *Controller) Exit() {
	c.active = nil
}
