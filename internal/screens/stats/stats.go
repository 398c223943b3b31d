package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/layout"
	"github.com/rdesai/drill/internal/ui/theme"
)

// StatsScreen shows aggregate performance for the active bank plus the
// questions most often missed.
type StatsScreen struct {
	bank  *bank.Bank
	stats ledger.Stats
	worst []ledger.PerformanceRecord
}

var _ router.Screen = (*StatsScreen)(nil)
var _ router.KeyHintProvider = (*StatsScreen)(nil)

const worstCount = 5

// New computes stats for the bank's ledger.
func New(b *bank.Bank, l ledger.Ledger) *StatsScreen {
	var missed []ledger.PerformanceRecord
	for _, rec := range l {
		if rec.IncorrectCount > 0 {
			missed = append(missed, rec)
		}
	}
	sort.Slice(missed, func(i, j int) bool {
		if missed[i].IncorrectCount != missed[j].IncorrectCount {
			return missed[i].IncorrectCount > missed[j].IncorrectCount
		}
		return missed[i].QuestionID < missed[j].QuestionID
	})
	if len(missed) > worstCount {
		missed = missed[:worstCount]
	}

	return &StatsScreen{
		bank:  b,
		stats: ledger.ComputeStats(l),
		worst: missed,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	st := s.stats

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.bank.Name))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Questions", fmt.Sprintf("%d", st.TotalQuestions)},
		{"Attempted", fmt.Sprintf("%d", st.TotalAnswered)},
		{"Correct", fmt.Sprintf("%d", st.TotalCorrect)},
		{"Incorrect", fmt.Sprintf("%d", st.TotalIncorrect)},
		{"Needs review", fmt.Sprintf("%d", st.NeedsReview)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-14s %s\n",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(row.label),
			lipgloss.NewStyle().Foreground(theme.Text).Render(row.value)))
	}

	b.WriteString("\n")
	accuracy := components.NewProgressBar("Accuracy", st.AccuracyPercent/100, true, 40)
	b.WriteString(accuracy.View())

	if len(s.worst) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Most missed"))
		b.WriteString("\n")
		byID := questionIndex(s.bank)
		for _, rec := range s.worst {
			prompt := rec.QuestionID
			if q, ok := byID[rec.QuestionID]; ok {
				prompt = truncate(q.Prompt, 50)
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				theme.Incorrect.Render(fmt.Sprintf("%d×", rec.IncorrectCount)),
				lipgloss.NewStyle().Foreground(theme.Text).Render(prompt)))
		}
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

func questionIndex(b *bank.Bank) map[string]bank.Question {
	byID := make(map[string]bank.Question, len(b.Questions))
	for _, q := range b.Questions {
		byID[q.ID] = q
	}
	return byID
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
