package section

import (
	"strings"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Context carries everything a section needs to render one frame.
type Context struct {
	State      model.InteractionState
	HeroValues []int
	Width      int
}

// Section is a pure presentational unit: it renders its slice of the
// virtual document from the typed view-model and the current interaction
// state, and owns nothing else.
type Section interface {
	ID() model.SectionID
	Title() string
	Render(ctx Context) []string
}

// Interactive is implemented by sections with expandable cards. Toggle
// applies the single-selection click rule to the section's own selection
// field, keeping ownership of that state with the section.
type Interactive interface {
	Items() int
	Toggle(state *model.InteractionState, index int)
	Selection(state model.InteractionState) model.Selection
}

// Build assembles the five deck sections in fixed document order. A nil
// view-model or event list (with its load error) makes the dependent
// sections render an explicit error state instead of fabricated values;
// the rest of the deck is unaffected.
func Build(vm *model.CareerViewModel, vmErr error, events []model.TimelineEvent, tlErr error, caseStudy []string) []Section {
	return []Section{
		&Hero{vm: vm, err: vmErr},
		&Metrics{vm: vm, err: vmErr},
		&Timeline{events: events, err: tlErr},
		&Architecture{vm: vm, err: vmErr, caseStudy: caseStudy},
		&Contact{vm: vm, err: vmErr},
	}
}

// header renders a section heading with separator.
func header(title string, width int) []string {
	return []string{
		util.FormatSectionTitle(title),
		util.FormatDimText(util.SeparatorLine(min(width, 72))),
	}
}

// errorBody renders the explicit placeholder for a section whose input
// document failed validation.
func errorBody(title string, err error, width int) []string {
	lines := header(title, width)
	lines = append(lines,
		util.FormatErrorText("section unavailable: "+err.Error()),
		"",
	)
	return lines
}

// cursorMarker prefixes the highlighted card of the active section.
func cursorMarker(ctx Context, id model.SectionID, index int) string {
	if ctx.State.ActiveSection == id && ctx.State.Cursor == index {
		return "▸ "
	}
	return "  "
}

// wrapText wraps text into lines that fit within the given display width.
func wrapText(text string, width int) []string {
	if width < 8 {
		width = 8
	}
	if text == "" {
		return nil
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case util.GetDisplayWidth(currentLine)+1+util.GetDisplayWidth(word) <= width:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
