package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/ledger"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/schedule"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/layout"
	"github.com/rdesai/drill/internal/ui/theme"
)

// BrowseScreen pages through a bank's questions with their answers
// visible, in bank order. No answers are recorded. The needs-review
// filter narrows the list to questions not yet answered correctly.
type BrowseScreen struct {
	bank     *bank.Bank
	ledg     ledger.Ledger
	list     []bank.Question
	cursor   int
	filtered bool
}

var _ router.Screen = (*BrowseScreen)(nil)
var _ router.KeyHintProvider = (*BrowseScreen)(nil)

// New creates the browse screen over the full bank.
func New(b *bank.Bank, l ledger.Ledger) *BrowseScreen {
	return &BrowseScreen{
		bank: b,
		ledg: l,
		list: b.Questions,
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "right", "l", "down", "j", "space", "enter":
		if b.cursor < len(b.list)-1 {
			b.cursor++
		}
	case "left", "h", "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "g":
		b.cursor = 0
	case "G":
		if len(b.list) > 0 {
			b.cursor = len(b.list) - 1
		}
	case "r":
		b.toggleFilter()
	}

	return b, nil
}

// toggleFilter flips between all questions and those needing review.
func (b *BrowseScreen) toggleFilter() {
	b.filtered = !b.filtered
	b.cursor = 0
	if b.filtered {
		b.list = schedule.NeedingReview(b.bank.Questions, b.ledg)
	} else {
		b.list = b.bank.Questions
	}
}

func (b *BrowseScreen) View(width, height int) string {
	if len(b.list) == 0 {
		msg := "Nothing needs review. Well done!"
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(msg))
	}

	q := b.list[b.cursor]

	var s strings.Builder

	progress := components.NewSessionProgress(b.cursor+1, len(b.list), width-8)
	s.WriteString("  " + progress.View())
	if b.filtered {
		s.WriteString("  " + theme.Hint.Render("(needs review)"))
	}
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	s.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt))
	card.WriteString("\n\n")

	correct := q.CorrectIndex()
	for i, opt := range q.Options {
		line := fmt.Sprintf("%s)  %s", bank.Letter(i), opt)
		if i == correct {
			card.WriteString(theme.Correct.Render(line))
		} else {
			card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		card.WriteString("\n")
	}

	if q.Explanation != "" {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Render(q.Explanation))
	}

	rec := b.ledg.Get(q.ID)
	if rec.Attempts() > 0 {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("history: %d right, %d wrong, last %s",
				rec.CorrectCount, rec.IncorrectCount, rec.Last)))
	}

	box := theme.Card.Width(min(width-8, 74)).Render(card.String())
	s.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box))

	return s.String()
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Flip through"},
		{Key: "r", Description: "Toggle needs-review"},
		{Key: "Esc", Description: "Back"},
	}
}
