package section

import (
	"fmt"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Architecture card indexes.
const (
	cardB2BCLI = iota
	cardSelfHealing
	architectureCards
)

// Architecture renders the two engineering deep-dive cards. The B2B CLI
// card appends the staged case-study content when expanded.
type Architecture struct {
	vm        *model.CareerViewModel
	err       error
	caseStudy []string
}

func (a *Architecture) ID() model.SectionID {
	return model.SectionArchitecture
}

func (a *Architecture) Title() string {
	return "Architecture"
}

func (a *Architecture) Items() int {
	if a.vm == nil {
		return 0
	}
	return architectureCards
}

func (a *Architecture) Toggle(state *model.InteractionState, index int) {
	state.SelectedCard = state.SelectedCard.Toggle(index)
}

func (a *Architecture) Selection(state model.InteractionState) model.Selection {
	return state.SelectedCard
}

func (a *Architecture) Render(ctx Context) []string {
	if a.err != nil {
		return errorBody(a.Title(), a.err, ctx.Width)
	}

	lines := header(a.Title(), ctx.Width)
	lines = append(lines, a.renderCLICard(ctx)...)
	lines = append(lines, a.renderSelfHealingCard(ctx)...)
	lines = append(lines, "")
	return lines
}

func (a *Architecture) renderCLICard(ctx Context) []string {
	cli := a.vm.Achievements.B2BCLI
	marker := cursorMarker(ctx, a.ID(), cardB2BCLI)

	title := fmt.Sprintf("%s%s %s", marker,
		util.FormatStatTitle("B2B CLI"),
		util.FormatDimText(fmt.Sprintf("%s / %s · %s lines",
			cli.Language, cli.Framework, util.FormatStatValue(cli.LinesOfCode))))
	lines := []string{title}

	if !ctx.State.SelectedCard.Is(cardB2BCLI) {
		return lines
	}

	for _, wrapped := range wrapText(cli.Description, ctx.Width-6) {
		lines = append(lines, "    "+wrapped)
	}
	for _, feature := range cli.KeyFeatures {
		lines = append(lines, "    • "+feature)
	}
	if len(a.caseStudy) > 0 {
		lines = append(lines, "")
		for _, line := range a.caseStudy {
			lines = append(lines, "    "+util.FormatDimText(line))
		}
	}
	return lines
}

func (a *Architecture) renderSelfHealingCard(ctx Context) []string {
	healing := a.vm.Achievements.SelfHealing
	marker := cursorMarker(ctx, a.ID(), cardSelfHealing)

	title := fmt.Sprintf("%s%s %s", marker,
		util.FormatStatTitle(healing.Name),
		util.FormatDimText(fmt.Sprintf("%s fixers", util.FormatStatValue(healing.TotalFixers))))
	lines := []string{title}

	if !ctx.State.SelectedCard.Is(cardSelfHealing) {
		return lines
	}

	lines = append(lines,
		"    Self-healing remediation system",
		"    Configuration: "+healing.Configuration,
	)
	return lines
}
