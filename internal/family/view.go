package family

// Direction glyphs shown next to collapsible labels.
const (
	GlyphExpanded  = "▲"
	GlyphCollapsed = "▼"
)

// Indicator returns the direction glyph for an expansion flag.
func Indicator(expanded bool) string {
	if expanded {
		return GlyphExpanded
	}
	return GlyphCollapsed
}

// View is the renderable projection of a tree under an expansion state.
type View struct {
	Root RootRow

	// RootConnector is the line drawn from the root down to the
	// spouse row.
	RootConnector bool

	// Spouses is nil when the root is collapsed: the row is absent,
	// not hidden.
	Spouses []SpouseCard
}

// RootRow is the always-visible root label.
type RootRow struct {
	ID        string
	Name      string
	Expanded  bool
	Indicator string
}

// SpouseCard is one entry of the spouse row.
type SpouseCard struct {
	ID             string
	Name           string
	SecondaryLabel string
	Expanded       bool
	Indicator      string

	// ChildConnector is the line from the card down to its child list.
	ChildConnector bool

	// Children is nil unless the spouse is expanded.
	Children []string
}

// Project maps content and view state to a View. It has no side effects.
func Project(tree *Tree, e Expansion) View {
	v := View{
		Root: RootRow{
			ID:        tree.Root.ID,
			Name:      tree.Root.Name,
			Expanded:  e.RootExpanded(),
			Indicator: Indicator(e.RootExpanded()),
		},
		RootConnector: e.RootExpanded(),
	}

	if !e.RootExpanded() {
		return v
	}

	v.Spouses = make([]SpouseCard, 0, len(tree.Root.Spouses))
	for _, s := range tree.Root.Spouses {
		open := e.SpouseExpanded(s.ID)
		card := SpouseCard{
			ID:             s.ID,
			Name:           s.Name,
			SecondaryLabel: s.SecondaryLabel,
			Expanded:       open,
			Indicator:      Indicator(open),
			ChildConnector: open,
		}
		if open {
			card.Children = make([]string, 0, len(s.Children))
			for _, c := range s.Children {
				card.Children = append(card.Children, c.Name)
			}
		}
		v.Spouses = append(v.Spouses, card)
	}
	return v
}
