package section

import (
	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Contact is the closing section. It is fully derived from the summary and
// has no interaction state.
type Contact struct {
	vm  *model.CareerViewModel
	err error
}

func (c *Contact) ID() model.SectionID {
	return model.SectionContact
}

func (c *Contact) Title() string {
	return "Contact"
}

func (c *Contact) Render(ctx Context) []string {
	if c.err != nil {
		return errorBody(c.Title(), c.err, ctx.Width)
	}

	s := c.vm.Summary
	lines := header(c.Title(), ctx.Width)
	lines = append(lines,
		s.CurrentRole+" at "+s.Company,
		util.FormatDimText(s.Location),
		"",
		"Open to conversations about platform engineering and GitOps.",
		"",
	)
	return lines
}
