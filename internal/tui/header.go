package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	FAMILY TREE  │  Hosea Leke  │  21 people
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("FAMILY TREE")
	sep := headerSepStyle.Render(" │ ")

	parts := []string{
		brand,
		sep,
		headerMetaStyle.Render(m.tree.Root.Name),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d people", m.tree.PeopleCount())),
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model, scrollable bool) string {
	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	hints := []hint{
		{"←→", "focus"},
		{"enter", "toggle"},
		{"r", "root"},
	}
	if m.expansion.RootExpanded() && len(m.tree.Root.Spouses) > 0 {
		hints = append(hints, hint{fmt.Sprintf("1-%d", minInt(len(m.tree.Root.Spouses), 9)), "spouse"})
	}
	if scrollable {
		hints = append(hints, hint{"↑↓", "scroll"})
	}
	hints = append(hints, hint{"q", "quit"})
	right := renderHints(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		// Status wins over hints on narrow terminals.
		right = ""
		gap = maxInt(m.width-lipgloss.Width(left), 0)
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
