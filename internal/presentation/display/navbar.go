package display

import (
	"strings"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/presentation/section"
	"github.com/mwynn/careerdeck/internal/util"
)

// BuildNavBar renders the fixed navigation line: one entry per section in
// document order with the active one highlighted, and a clock on the right
// edge. The bar only reads the active-section state; the scroll
// coordinator is its sole writer.
func BuildNavBar(sections []section.Section, active model.SectionID, width int, clock string) string {
	var b strings.Builder
	used := 0

	for i, s := range sections {
		label := " " + s.Title() + " "
		used += util.GetDisplayWidth(label)
		if i < len(sections)-1 {
			used++ // separator
		}

		if s.ID() == active {
			b.WriteString(util.ColorInverse + util.ColorBold + label + util.ColorReset)
		} else {
			b.WriteString(util.FormatDimText(label))
		}
		if i < len(sections)-1 {
			b.WriteString("·")
		}
	}

	padding := width - used - util.GetDisplayWidth(clock) - 1
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(util.FormatDimText(clock))

	return b.String()
}
