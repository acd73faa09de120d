package model

// SectionID identifies one of the fixed navigable sections.
type SectionID string

const (
	SectionHero         SectionID = "hero"
	SectionMetrics      SectionID = "metrics"
	SectionTimeline     SectionID = "timeline"
	SectionArchitecture SectionID = "architecture"
	SectionContact      SectionID = "contact"
)

// SectionOrder is the fixed document order of the sections.
var SectionOrder = []SectionID{
	SectionHero,
	SectionMetrics,
	SectionTimeline,
	SectionArchitecture,
	SectionContact,
}

// Selection is a tagged optional index: either nothing is selected or
// exactly one item is. Modelling the expand/collapse state this way makes
// "at most one expanded per section" an invariant of the type.
type Selection struct {
	index    int
	selected bool
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// Select returns a selection of item i.
func Select(i int) Selection {
	return Selection{index: i, selected: true}
}

// Toggle applies the click rule: activating the currently selected item
// deselects it; activating a different item moves the selection there.
func (s Selection) Toggle(i int) Selection {
	if s.selected && s.index == i {
		return NoSelection()
	}
	return Select(i)
}

// Index reports the selected index, if any.
func (s Selection) Index() (int, bool) {
	return s.index, s.selected
}

// Is reports whether item i is the selected one.
func (s Selection) Is(i int) bool {
	return s.selected && s.index == i
}

// InteractionState represents the current UI interaction state of the deck.
// The scroll coordinator is the sole writer of ActiveSection; the navigation
// bar only reads it.
type InteractionState struct {
	ActiveSection SectionID
	Cursor        int // highlighted card within the active section

	// Per-section expand/collapse state.
	SelectedMetric Selection
	ExpandedEvent  Selection
	SelectedCard   Selection

	ShowHelp bool
	IsPaused bool
}
