package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/familytree/internal/family"
	"github.com/Mr-Dark-debug/familytree/pkg/textutil"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultRenderWidth = 100
	defaultCompact     = 60
	cardGap            = 2
	minCardWidth       = 22
)

// RenderOptions controls the headless layout.
type RenderOptions struct {
	// Width is the available width in cells. Zero means 100.
	Width int
	// CompactWidth is the width below which cards stack vertically.
	// Zero means 60.
	CompactWidth int
	// Focus is the id of the focused label, or empty.
	Focus string
}

// Target is a clickable label region, half-open in both axes.
type Target struct {
	ID     string
	Root   bool
	X0, Y0 int
	X1, Y1 int
}

// Contains reports whether the cell (x, y) falls inside the target.
func (t Target) Contains(x, y int) bool {
	return x >= t.X0 && x < t.X1 && y >= t.Y0 && y < t.Y1
}

// Layout is a rendered tree plus the click targets over it.
type Layout struct {
	Lines   []string
	Targets []Target
}

// String joins the layout lines.
func (l Layout) String() string {
	return strings.Join(l.Lines, "\n")
}

// Render draws the tree under the given expansion state. It is a pure
// function of its inputs; the interactive model and the render
// command share it.
func Render(tree *family.Tree, e family.Expansion, opts RenderOptions) Layout {
	if opts.Width <= 0 {
		opts.Width = defaultRenderWidth
	}
	if opts.CompactWidth <= 0 {
		opts.CompactWidth = defaultCompact
	}

	v := family.Project(tree, e)
	width := opts.Width

	var l Layout
	l.Lines = append(l.Lines, "")

	// ── Root ──

	style := rootButtonStyle
	if opts.Focus == v.Root.ID {
		style = rootButtonFocusStyle
	}
	label := textutil.Truncate(v.Root.Name, maxInt(width-10, 4)) + " " + v.Root.Indicator
	btn := style.Render(label)

	lines, x0 := centerBlock(btn, width)
	l.Targets = append(l.Targets, Target{
		ID:   v.Root.ID,
		Root: true,
		X0:   x0,
		Y0:   len(l.Lines),
		X1:   x0 + lipgloss.Width(btn),
		Y1:   len(l.Lines) + len(lines),
	})
	l.Lines = append(l.Lines, lines...)

	caption, _ := centerBlock(captionStyle.Render("Wives and Children"), width)
	l.Lines = append(l.Lines, caption...)

	if v.Spouses == nil {
		return l
	}

	// ── Spouse row ──

	if v.RootConnector {
		l.Lines = append(l.Lines, connectorAt((width-1)/2, width))
	}

	if len(v.Spouses) == 0 {
		empty, _ := centerBlock(emptyStateStyle.Render("No spouses recorded."), width)
		l.Lines = append(l.Lines, empty...)
		return l
	}

	n := len(v.Spouses)
	cw := (width - cardGap*(n-1)) / n
	if width < opts.CompactWidth || cw < minCardWidth {
		renderStacked(&l, v.Spouses, width, opts.Focus)
	} else {
		renderRow(&l, v.Spouses, width, cw, opts.Focus)
	}

	return l
}

// renderRow lays the cards side by side under a rail that joins them
// to the root connector.
func renderRow(l *Layout, cards []family.SpouseCard, width, cw int, focus string) {
	n := len(cards)
	rowWidth := n*cw + (n-1)*cardGap
	ox := (width - rowWidth) / 2

	centers := make([]int, n)
	for i := range cards {
		centers[i] = ox + i*(cw+cardGap) + cw/2
	}
	l.Lines = append(l.Lines, rail((width-1)/2, centers, width))

	blocks := make([]string, 0, 2*n-1)
	gap := strings.Repeat(" ", cardGap)
	y := len(l.Lines)
	for i, card := range cards {
		block, headHeight := renderCard(card, cw, focus == card.ID)
		x := ox + i*(cw+cardGap)
		l.Targets = append(l.Targets, Target{
			ID: card.ID,
			X0: x, Y0: y,
			X1: x + cw, Y1: y + headHeight,
		})
		if i > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, block)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	pad := strings.Repeat(" ", ox)
	for _, line := range strings.Split(row, "\n") {
		l.Lines = append(l.Lines, pad+line)
	}
}

// renderStacked is used on narrow terminals: one full-width card per
// spouse, top to bottom.
func renderStacked(l *Layout, cards []family.SpouseCard, width int, focus string) {
	for i, card := range cards {
		if i > 0 {
			l.Lines = append(l.Lines, connectorAt((width-1)/2, width))
		}
		block, headHeight := renderCard(card, width, focus == card.ID)
		y := len(l.Lines)
		l.Targets = append(l.Targets, Target{
			ID: card.ID,
			X0: 0, Y0: y,
			X1: width, Y1: y + headHeight,
		})
		l.Lines = append(l.Lines, strings.Split(block, "\n")...)
	}
}

// renderCard draws one spouse card of total width cw. It returns the
// block and the height of its clickable head (top border + label).
func renderCard(card family.SpouseCard, cw int, focused bool) (string, int) {
	inner := maxInt(cw-4, 4)

	style := spouseButtonStyle
	if focused {
		style = spouseButtonFocusStyle
	}

	labelWidth := maxInt(inner-6, 1)
	text := textutil.Truncate(card.Name, labelWidth) + " " + card.Indicator
	if card.SecondaryLabel != "" {
		text += "\n" + secondaryLabelStyle.Render(textutil.Truncate(card.SecondaryLabel, labelWidth))
	}
	btn := style.Render(text)

	parts := []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, btn)}

	if card.Expanded {
		if card.ChildConnector {
			parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Center, connectorStyle.Render("│")))
		}
		heading := fmt.Sprintf("Children of %s:", card.Name)
		parts = append(parts, childHeadingStyle.Render(textutil.Truncate(heading, inner)))
		for _, name := range card.Children {
			parts = append(parts, childBulletStyle.Render("•")+" "+renderChildName(name, inner-2))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	block := cardStyle.Width(cw - 2).Render(body)
	return block, 1 + lipgloss.Height(btn)
}

// renderChildName dims the trailing annotations of a child's name. Names
// too long for the card are truncated as plain text.
func renderChildName(name string, width int) string {
	if textutil.Width(name) > width {
		return childItemStyle.Render(textutil.Truncate(name, width))
	}
	base, notes := textutil.SplitAnnotations(name)
	out := childItemStyle.Render(base)
	if len(notes) > 0 {
		out += " " + childAnnotationStyle.Render(strings.Join(notes, " "))
	}
	return out
}
