// Package textutil provides display-text helpers for familytree.
//
// Names in a tree payload are free text. Widths here are terminal
// cell widths, not byte or rune counts.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth cells and appends "..." if truncated.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// SplitAnnotations separates trailing parenthesised annotations from a
// display name:
//
//	"Tunji Leke (M) (Late)" -> "Tunji Leke", ["(M)", "(Late)"]
//
// Unbalanced or embedded parentheses are left in the base. The split is
// for styling only; joining base and annotations with spaces gives back
// the input name.
func SplitAnnotations(name string) (string, []string) {
	base := strings.TrimSpace(name)
	var notes []string

	for strings.HasSuffix(base, ")") {
		open := matchingOpen(base)
		if open <= 0 || base[open-1] != ' ' {
			break
		}
		notes = append(notes, base[open:])
		base = strings.TrimRight(base[:open], " ")
	}

	// Collected back to front.
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
	return base, notes
}

// matchingOpen returns the index of the "(" that closes the final ")"
// of s, or -1.
func matchingOpen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
