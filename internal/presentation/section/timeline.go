package section

import (
	"fmt"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Timeline renders the normalized event log in source order with one
// expandable event at a time.
type Timeline struct {
	events []model.TimelineEvent
	err    error
}

func (t *Timeline) ID() model.SectionID {
	return model.SectionTimeline
}

func (t *Timeline) Title() string {
	return "Timeline"
}

func (t *Timeline) Items() int {
	return len(t.events)
}

func (t *Timeline) Toggle(state *model.InteractionState, index int) {
	state.ExpandedEvent = state.ExpandedEvent.Toggle(index)
}

func (t *Timeline) Selection(state model.InteractionState) model.Selection {
	return state.ExpandedEvent
}

func (t *Timeline) Render(ctx Context) []string {
	if t.err != nil {
		return errorBody(t.Title(), t.err, ctx.Width)
	}

	lines := header(t.Title(), ctx.Width)
	for i, event := range t.events {
		marker := cursorMarker(ctx, t.ID(), i)
		summary := fmt.Sprintf("%s%s  %s", marker,
			util.FormatStatTitle(event.Period), event.Event)
		lines = append(lines, summary)

		if !ctx.State.ExpandedEvent.Is(i) {
			continue
		}
		for _, achievement := range event.Achievements {
			for j, wrapped := range wrapText(achievement, ctx.Width-8) {
				bullet := "• "
				if j > 0 {
					bullet = "  "
				}
				lines = append(lines, "      "+bullet+wrapped)
			}
		}
	}
	lines = append(lines, "")
	return lines
}
