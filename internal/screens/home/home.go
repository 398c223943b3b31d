package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/schedule"
	"github.com/rdesai/drill/internal/screens/banks"
	"github.com/rdesai/drill/internal/screens/browse"
	"github.com/rdesai/drill/internal/screens/stats"
	"github.com/rdesai/drill/internal/screens/study"
	"github.com/rdesai/drill/internal/session"
	"github.com/rdesai/drill/internal/store"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/theme"
)

// HomeScreen is the main menu: pick a study mode or manage banks.
type HomeScreen struct {
	menu   components.Menu
	banks  []*bank.Bank
	active int
	ledg   ledger.Ledger
	repo   store.LedgerRepo
	ctrl   *session.Controller
	errMsg string
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen. The active bank's ledger is loaded from
// the repo and synced against the bank's questions so new questions get
// zeroed records.
func New(allBanks []*bank.Bank, repo store.LedgerRepo, ctrl *session.Controller) *HomeScreen {
	h := &HomeScreen{
		banks: allBanks,
		repo:  repo,
		ctrl:  ctrl,
	}
	h.loadLedger(0)
	h.menu = components.NewMenu(h.menuItems())
	return h
}

// loadLedger switches the active bank and loads its ledger.
func (h *HomeScreen) loadLedger(idx int) {
	if idx < 0 || idx >= len(h.banks) {
		return
	}
	h.active = idx

	l, err := h.repo.Load(context.Background(), h.ActiveBank().ID)
	if err != nil {
		h.errMsg = err.Error()
		l = ledger.New()
	}
	l.Sync(h.ActiveBank().Questions)
	h.ledg = l
}

// ActiveBank returns the currently selected bank.
func (h *HomeScreen) ActiveBank() *bank.Bank {
	return h.banks[h.active]
}

// Ledger returns the active bank's ledger, shared with child screens.
func (h *HomeScreen) Ledger() ledger.Ledger {
	return h.ledg
}

// Stats computes aggregate stats for the active bank's ledger.
func (h *HomeScreen) Stats() ledger.Stats {
	return ledger.ComputeStats(h.ledg)
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	b := h.ActiveBank()
	due := len(schedule.DueForReview(b.Questions, h.ledg))

	startMode := func(mode session.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: study.New(h.ctrl, mode, b, h.ledg, h.repo),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: session.ModeFlashcard.Label(), Action: startMode(session.ModeFlashcard)},
		{Label: session.ModeQuiz.Label(), Action: startMode(session.ModeQuiz)},
		{
			Label:    session.ModeReview.Label(),
			Hint:     fmt.Sprintf("%d due", due),
			Disabled: due == 0,
			Action:   startMode(session.ModeReview),
		},
		{Label: session.ModeFillBlank.Label(), Action: startMode(session.ModeFillBlank)},
		{Label: session.ModeMemorise.Label(), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(b, h.ledg)}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(b, h.ledg)}
			}
		}},
	}

	if len(h.banks) > 1 {
		items = append(items, components.MenuItem{
			Label: "Switch Bank",
			Hint:  b.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: banks.New(h.banks, h.active),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case banks.SelectedMsg:
		h.loadLedger(msg.Index)
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case study.SessionFinishedMsg:
		// Counts or review-due figures may have changed.
		h.menu = components.NewMenu(h.menuItems())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	b := h.ActiveBank()
	st := ledger.ComputeStats(h.ledg)

	var sections []string

	title := theme.Title.Width(width).Render("D R I L L")
	subtitle := theme.Subtitle.Width(width).Render("terminal study sessions")
	sections = append(sections, title+"\n"+subtitle)

	statsLine := fmt.Sprintf("%s  ·  %d questions  ·  %d%% accuracy  ·  %d to review",
		b.Name, st.TotalQuestions, st.AccuracyRounded(), st.NeedsReview)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Width(width).Align(lipgloss.Center).Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
