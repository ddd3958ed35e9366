// Package tui implements the familytree terminal user interface.
//
// The widget is built with Charmbracelet's BubbleTea and Lipgloss.
// Content and expansion state come from package family; this package
// only routes input to the two transitions and draws the result.
//
// Component architecture:
//
//	model.go   — root model, message routing, Init/Update/View
//	theme.go   — centralized color + style definitions
//	header.go  — top bar and footer with status + keyboard hints
//	tree.go    — headless tree layout with click targets
//	helpers.go — centering, connectors, clamping
package tui
