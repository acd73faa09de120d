package section

import (
	"fmt"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// heroCounterLabels matches the order of CareerViewModel.HeroTargets.
var heroCounterLabels = []string{"Peak Clusters", "Peak Accounts", "Lines of Code"}

// Hero is the introduction section: headline facts plus the animated
// counters.
type Hero struct {
	vm  *model.CareerViewModel
	err error
}

func (h *Hero) ID() model.SectionID {
	return model.SectionHero
}

func (h *Hero) Title() string {
	return "Introduction"
}

func (h *Hero) Render(ctx Context) []string {
	if h.err != nil {
		return errorBody(h.Title(), h.err, ctx.Width)
	}

	s := h.vm.Summary
	lines := header(h.Title(), ctx.Width)
	lines = append(lines,
		util.FormatStatTitle(s.CurrentRole),
		fmt.Sprintf("%s · %s · %s", s.Company, s.Duration, s.Location),
		"",
	)
	lines = append(lines, wrapText(s.PitchText, ctx.Width-2)...)
	lines = append(lines, "")

	lines = append(lines, h.counterLines(ctx)...)
	lines = append(lines, "")
	return lines
}

// counterLines renders the animated statistics with their current values.
func (h *Hero) counterLines(ctx Context) []string {
	values := ctx.HeroValues
	lines := make([]string, 0, len(heroCounterLabels))
	for i, label := range heroCounterLabels {
		value := 0
		if i < len(values) {
			value = values[i]
		}
		lines = append(lines, fmt.Sprintf("  %s  %s",
			util.FormatStatTitle(util.PadRight(util.FormatStatValue(value), 8)),
			util.FormatDimText(label)))
	}
	return lines
}
