package stage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwynn/careerdeck/internal/util"
)

// StagedFiles lists the documents the presentation reads from the data
// directory, in the order they are staged.
var StagedFiles = []string{
	"career.json",
	"timeline.json",
	"casestudy.md",
}

// Result records the outcome of staging a single file.
type Result struct {
	Name string
	Err  error
}

// Stage copies the known data files from sourceDir into stagingDir,
// creating stagingDir if needed. Every file is attempted; a missing or
// unreadable source is recorded per file rather than aborting the run.
// The returned error is non-nil when any file failed to stage.
func Stage(sourceDir, stagingDir string) ([]Result, error) {
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, fmt.Errorf("creating staging dir %s: %w", stagingDir, err)
	}

	results := make([]Result, 0, len(StagedFiles))
	failed := 0
	for _, name := range StagedFiles {
		err := copyFile(filepath.Join(sourceDir, name), filepath.Join(stagingDir, name))
		if err != nil {
			failed++
			util.LogWarnf("Failed to stage %s: %v", name, err)
		} else {
			util.LogDebugf("Staged %s", name)
		}
		results = append(results, Result{Name: name, Err: err})
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d files failed to stage", failed, len(StagedFiles))
	}
	return results, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
