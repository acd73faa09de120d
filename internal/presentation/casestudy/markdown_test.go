package casestudy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlain(t *testing.T) {
	source := []byte(`# B2B CLI Case Study

The CLI provisions complete customer environments
from a single command.

## Highlights

- 100k lines of Go
- Declarative cluster bootstrap
`)

	lines := RenderPlain(source)
	require.NotEmpty(t, lines)

	assert.Equal(t, "B2B CLI CASE STUDY", lines[0])
	assert.Contains(t, lines, "The CLI provisions complete customer environments from a single command.")
	assert.Contains(t, lines, "HIGHLIGHTS")
	assert.Contains(t, lines, "• 100k lines of Go")
	assert.Contains(t, lines, "• Declarative cluster bootstrap")
}

func TestRenderPlainEmpty(t *testing.T) {
	assert.Empty(t, RenderPlain(nil))
}

func TestLoadFileMissingIsNil(t *testing.T) {
	assert.Nil(t, LoadFile(filepath.Join(t.TempDir(), "casestudy.md")))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casestudy.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nBody text.\n"), 0644))

	lines := LoadFile(path)
	assert.Equal(t, []string{"TITLE", "", "Body text."}, lines)
}
