package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Mr-Dark-debug/familytree/internal/family"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of lines above the tree body.
const headerHeight = 1

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the family tree widget.
// The tree content never changes; only the expansion state does, and
// only through family.ToggleRoot and family.ToggleSpouse.
type Model struct {
	tree   *family.Tree
	logger *slog.Logger

	// View state
	expansion    family.Expansion
	focus        int
	scroll       int
	width        int
	height       int
	compactWidth int

	// Status
	statusMsg string
}

// Options configures a Model.
type Options struct {
	// CompactWidth is the width below which cards stack vertically.
	CompactWidth int
	// Logger receives transition events. Nil discards them.
	Logger *slog.Logger
}

// NewModel creates a widget over tree with everything collapsed.
func NewModel(tree *family.Tree, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		tree:         tree,
		logger:       logger,
		expansion:    family.NewExpansion(),
		compactWidth: opts.CompactWidth,
		statusMsg:    fmt.Sprintf("%d spouses", len(tree.Root.Spouses)),
	}
}

// Expansion returns the current expansion snapshot.
func (m Model) Expansion() family.Expansion {
	return m.expansion
}

// FocusedID returns the id of the focused label.
func (m Model) FocusedID() string {
	ids := m.focusables()
	return ids[clamp(m.focus, 0, len(ids)-1)]
}

// focusables lists the interactive labels in visual order: the root,
// then each spouse while the spouse row is shown.
func (m Model) focusables() []string {
	ids := []string{m.tree.Root.ID}
	if m.expansion.RootExpanded() {
		ids = append(ids, m.tree.SpouseIDs()...)
	}
	return ids
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Family Tree — " + m.tree.Root.Name)
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll = clamp(m.scroll, 0, m.maxScroll())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	n := len(m.focusables())

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "l", "tab":
		m.focus = (m.focus + 1) % n

	case "left", "h", "shift+tab":
		m.focus = (m.focus + n - 1) % n

	case "enter", " ":
		m = m.toggle(m.FocusedID())

	case "r":
		m = m.toggle(m.tree.Root.ID)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if m.expansion.RootExpanded() && idx < len(m.tree.Root.Spouses) {
			m.focus = idx + 1
			m = m.toggle(m.tree.Root.Spouses[idx].ID)
		}

	case "down", "j":
		m.scroll = clamp(m.scroll+1, 0, m.maxScroll())

	case "up", "k":
		m.scroll = clamp(m.scroll-1, 0, m.maxScroll())

	case "home", "g":
		m.scroll = 0
	}

	return m, nil
}

// handleMouse toggles the label under a left click and scrolls on the
// wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.scroll = clamp(m.scroll+1, 0, m.maxScroll())
		return m, nil
	case tea.MouseButtonWheelUp:
		m.scroll = clamp(m.scroll-1, 0, m.maxScroll())
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	y := msg.Y - headerHeight + m.scroll
	for _, t := range m.layout().Targets {
		if !t.Contains(msg.X, y) {
			continue
		}
		for i, id := range m.focusables() {
			if id == t.ID {
				m.focus = i
			}
		}
		return m.toggle(t.ID), nil
	}

	return m, nil
}

// toggle applies the transition for the label with the given id.
func (m Model) toggle(id string) Model {
	if id == m.tree.Root.ID {
		m.expansion = family.ToggleRoot(m.expansion)
		m.statusMsg = stateMessage(m.tree.Root.Name, m.expansion.RootExpanded())
		if !m.expansion.RootExpanded() {
			m.focus = 0
		}
		m.logger.Debug("toggled root",
			slog.String("id", id),
			slog.Bool("expanded", m.expansion.RootExpanded()))
	} else {
		spouse, ok := m.tree.Spouse(id)
		if !ok {
			return m
		}
		m.expansion = family.ToggleSpouse(m.tree, m.expansion, id)
		m.statusMsg = stateMessage(spouse.Name, m.expansion.SpouseExpanded(id))
		m.logger.Debug("toggled spouse",
			slog.String("id", id),
			slog.Bool("expanded", m.expansion.SpouseExpanded(id)))
	}

	m.focus = clamp(m.focus, 0, len(m.focusables())-1)
	m.scroll = clamp(m.scroll, 0, m.maxScroll())
	return m
}

func stateMessage(name string, expanded bool) string {
	if expanded {
		return name + " expanded"
	}
	return name + " collapsed"
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

// layout renders the tree body at the current size and focus.
func (m Model) layout() Layout {
	return Render(m.tree, m.expansion, RenderOptions{
		Width:        m.width,
		CompactWidth: m.compactWidth,
		Focus:        m.FocusedID(),
	})
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-2, 1) // header + footer
}

func (m Model) maxScroll() int {
	if m.width == 0 {
		return 0
	}
	return maxInt(len(m.layout().Lines)-m.bodyHeight(), 0)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	lines := m.layout().Lines
	bodyHeight := m.bodyHeight()
	scrollable := len(lines) > bodyHeight

	start := clamp(m.scroll, 0, maxInt(len(lines)-bodyHeight, 0))
	end := minInt(start+bodyHeight, len(lines))
	visible := append([]string(nil), lines[start:end]...)

	if scrollable {
		indicator := scrollIndicatorStyle.Render(
			fmt.Sprintf(" %d-%d/%d ", start+1, end, len(lines)))
		last := len(visible) - 1
		visible[last] = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, indicator)
	}
	for len(visible) < bodyHeight {
		visible = append(visible, "")
	}

	header := renderHeader(&m)
	footer := renderFooter(&m, scrollable)
	body := strings.Join(visible, "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
