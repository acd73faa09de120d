package casestudy

import (
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mwynn/careerdeck/internal/util"
)

// LoadFile reads and renders the staged case-study markdown. The file is
// auxiliary content: when it is absent the architecture card simply omits
// the detail, so a read failure returns nil instead of an error.
func LoadFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		util.LogDebugf("case study not staged: %v", err)
		return nil
	}
	return RenderPlain(data)
}

// RenderPlain converts markdown into plain terminal text lines: headings
// upper-cased, list items bulleted, paragraphs kept as single lines.
// Wrapping to the card width is left to the section renderer.
func RenderPlain(source []byte) []string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var lines []string
	appendBlock := func(line string) {
		if line == "" {
			return
		}
		lines = append(lines, line)
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			appendBlock(strings.ToUpper(textOf(n, source)))
			return ast.WalkSkipChildren, nil

		case ast.KindListItem:
			appendBlock("• " + textOf(n, source))
			return ast.WalkSkipChildren, nil

		case ast.KindParagraph:
			// Paragraphs inside list items are covered by the list walk.
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			appendBlock(textOf(n, source))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return lines
}

// textOf collects the plain text of a node's subtree.
func textOf(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
