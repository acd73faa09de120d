package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NoSelection()
	_, ok := s.Index()
	assert.False(t, ok)

	// Activating an item selects it.
	s = s.Toggle(2)
	assert.True(t, s.Is(2))

	// Activating a different item moves the selection; the previous one is
	// implicitly deselected, so at most one item is ever expanded.
	s = s.Toggle(0)
	assert.True(t, s.Is(0))
	assert.False(t, s.Is(2))

	// Activating the selected item again collapses it.
	s = s.Toggle(0)
	_, ok = s.Index()
	assert.False(t, ok)
}

func TestSelectionIndex(t *testing.T) {
	i, ok := Select(3).Index()
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	assert.False(t, NoSelection().Is(0))
}

func TestSectionOrderIsFixed(t *testing.T) {
	assert.Equal(t, []SectionID{
		SectionHero,
		SectionMetrics,
		SectionTimeline,
		SectionArchitecture,
		SectionContact,
	}, SectionOrder)
}
