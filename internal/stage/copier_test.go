package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestStageCopiesAllFiles(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "staging")

	writeSource(t, src, "career.json", `{"summary":{}}`)
	writeSource(t, src, "timeline.json", `{"events":[]}`)
	writeSource(t, src, "casestudy.md", "# Title")

	results, err := Stage(src, dst)
	require.NoError(t, err)
	require.Len(t, results, len(StagedFiles))

	for _, r := range results {
		assert.NoError(t, r.Err, r.Name)
		data, readErr := os.ReadFile(filepath.Join(dst, r.Name))
		require.NoError(t, readErr)
		assert.NotEmpty(t, data)
	}
}

func TestStageReportsMissingFiles(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "staging")

	// Only one of the three files exists.
	writeSource(t, src, "career.json", `{"summary":{}}`)

	results, err := Stage(src, dst)
	require.Error(t, err)
	assert.ErrorContains(t, err, "2 of 3")
	require.Len(t, results, 3)

	byName := make(map[string]error)
	for _, r := range results {
		byName[r.Name] = r.Err
	}
	assert.NoError(t, byName["career.json"])
	assert.Error(t, byName["timeline.json"])
	assert.Error(t, byName["casestudy.md"])

	// The present file was still copied.
	_, statErr := os.Stat(filepath.Join(dst, "career.json"))
	assert.NoError(t, statErr)
}

func TestStageCreatesStagingDir(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "a", "b", "staging")

	writeSource(t, src, "career.json", `{}`)
	writeSource(t, src, "timeline.json", `{}`)
	writeSource(t, src, "casestudy.md", "x")

	_, err := Stage(src, dst)
	require.NoError(t, err)

	info, statErr := os.Stat(dst)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestStageOverwritesExisting(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeSource(t, src, "career.json", "new")
	writeSource(t, src, "timeline.json", "new")
	writeSource(t, src, "casestudy.md", "new")
	writeSource(t, dst, "career.json", "old content that is longer")

	_, err := Stage(src, dst)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dst, "career.json"))
	require.NoError(t, readErr)
	assert.Equal(t, "new", string(data))
}
