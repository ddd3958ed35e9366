package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Root button
var (
	rootButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Foreground(colorText).
			Bold(true).
			Padding(0, 3)

	rootButtonFocusStyle = rootButtonStyle.
				BorderForeground(colorText).
				Background(colorHighlight)

	captionStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Spouse cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	spouseButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPurple).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1).
				Align(lipgloss.Center)

	spouseButtonFocusStyle = spouseButtonStyle.
				BorderForeground(colorText).
				Background(colorHighlight)

	secondaryLabelStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Bold(false)

	childHeadingStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	childItemStyle = lipgloss.NewStyle().
			Foreground(colorText)

	childAnnotationStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	childBulletStyle = lipgloss.NewStyle().
				Foreground(colorPurple)
)

// Connectors
var (
	connectorStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 4)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Background(colorBg)
)
