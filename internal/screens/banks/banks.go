package banks

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/router"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/layout"
	"github.com/rdesai/drill/internal/ui/theme"
)

// SelectedMsg reports the chosen bank back to the home screen.
type SelectedMsg struct {
	Index int
}

// BankPicker lets the user choose the active question bank.
type BankPicker struct {
	menu components.Menu
}

var _ router.Screen = (*BankPicker)(nil)

// New creates a picker over all loaded banks, with the active one
// preselected.
func New(all []*bank.Bank, active int) *BankPicker {
	items := make([]components.MenuItem, 0, len(all))
	for i, b := range all {
		idx := i
		items = append(items, components.MenuItem{
			Label: b.Name,
			Hint:  fmt.Sprintf("%d questions", len(b.Questions)),
			// Pop first so the selection reaches the home screen.
			Action: func() tea.Cmd {
				return tea.Sequence(
					func() tea.Msg { return router.PopScreenMsg{} },
					func() tea.Msg { return SelectedMsg{Index: idx} },
				)
			},
		})
	}

	menu := components.NewMenu(items)
	if active >= 0 && active < len(items) {
		menu.Selected = active
	}
	return &BankPicker{menu: menu}
}

func (p *BankPicker) Init() tea.Cmd {
	return nil
}

func (p *BankPicker) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *BankPicker) View(width, height int) string {
	title := theme.Title.Width(width).Render("Question Banks")
	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(p.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, title+"\n\n"+menu)
}

func (p *BankPicker) Title() string {
	return "Banks"
}

func (p *BankPicker) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
