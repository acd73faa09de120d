package section

import (
	"fmt"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Metrics renders the derived metric categories as expandable cards. At
// most one category is expanded at a time.
type Metrics struct {
	vm  *model.CareerViewModel
	err error
}

func (m *Metrics) ID() model.SectionID {
	return model.SectionMetrics
}

func (m *Metrics) Title() string {
	return "Metrics"
}

func (m *Metrics) Items() int {
	if m.vm == nil {
		return 0
	}
	return len(m.vm.Metrics)
}

func (m *Metrics) Toggle(state *model.InteractionState, index int) {
	state.SelectedMetric = state.SelectedMetric.Toggle(index)
}

func (m *Metrics) Selection(state model.InteractionState) model.Selection {
	return state.SelectedMetric
}

func (m *Metrics) Render(ctx Context) []string {
	if m.err != nil {
		return errorBody(m.Title(), m.err, ctx.Width)
	}

	lines := header(m.Title(), ctx.Width)
	for i, category := range m.vm.Metrics {
		marker := cursorMarker(ctx, m.ID(), i)

		if !ctx.State.SelectedMetric.Is(i) {
			lines = append(lines, fmt.Sprintf("%s%s %s", marker,
				util.FormatStatTitle(category.Name),
				util.FormatDimText(fmt.Sprintf("(%d metrics)", len(category.Entries)))))
			continue
		}

		lines = append(lines, fmt.Sprintf("%s%s", marker, util.FormatStatTitle(category.Name)))
		for _, entry := range category.Entries {
			lines = append(lines, fmt.Sprintf("    %s %s",
				util.PadRight(entry.Label, 24), entry.Value))
		}
	}
	lines = append(lines, "")
	return lines
}
