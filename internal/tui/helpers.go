package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Layout helpers
// ────────────────────────────────────────────────────────────

// centerBlock splits a rendered block into lines indented so the block
// is centered in width. It returns the lines and the left offset.
func centerBlock(block string, width int) ([]string, int) {
	x0 := maxInt((width-lipgloss.Width(block))/2, 0)
	pad := strings.Repeat(" ", x0)

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return lines, x0
}

// connectorAt draws a single vertical connector at column x.
func connectorAt(x, width int) string {
	x = clamp(x, 0, maxInt(width-1, 0))
	return strings.Repeat(" ", x) + connectorStyle.Render("│")
}

// rail draws the horizontal line joining the root connector at column
// mid to the card centers below it.
//
//	   ┌──────┴──────┐
func rail(mid int, centers []int, width int) string {
	if len(centers) == 0 {
		return ""
	}

	lo, hi := minInt(mid, centers[0]), maxInt(mid, centers[len(centers)-1])
	lo, hi = clamp(lo, 0, width-1), clamp(hi, 0, width-1)

	cells := []rune(strings.Repeat(" ", hi+1))
	for x := lo; x <= hi; x++ {
		cells[x] = '─'
	}

	for _, c := range centers {
		if c < lo || c > hi {
			continue
		}
		switch c {
		case lo:
			cells[c] = '┌'
		case hi:
			cells[c] = '┐'
		default:
			cells[c] = '┬'
		}
	}

	if lo == hi {
		cells[mid] = '│'
	} else {
		switch {
		case mid == lo && cells[mid] == '┌':
			cells[mid] = '├'
		case mid == hi && cells[mid] == '┐':
			cells[mid] = '┤'
		case cells[mid] == '┬':
			cells[mid] = '┼'
		case mid == lo:
			cells[mid] = '└'
		case mid == hi:
			cells[mid] = '┘'
		default:
			cells[mid] = '┴'
		}
	}

	return connectorStyle.Render(string(cells))
}

// ────────────────────────────────────────────────────────────
// Numeric helpers
// ────────────────────────────────────────────────────────────

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
