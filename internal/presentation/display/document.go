package display

import (
	"github.com/mwynn/careerdeck/internal/presentation/scroll"
	"github.com/mwynn/careerdeck/internal/presentation/section"
)

// Compose renders every section into the virtual document and records each
// section's top boundary for the scroll coordinator. Boundaries are
// recomputed on every frame, so expand/collapse changes keep the
// navigation accurate.
func Compose(sections []section.Section, ctx section.Context) ([]string, []scroll.Bounds) {
	doc := make([]string, 0, 128)
	bounds := make([]scroll.Bounds, 0, len(sections))

	for _, s := range sections {
		bounds = append(bounds, scroll.Bounds{ID: s.ID(), Top: len(doc)})
		doc = append(doc, s.Render(ctx)...)
	}

	return doc, bounds
}
