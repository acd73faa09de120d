package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwynn/careerdeck/internal/data/loader"
	"github.com/mwynn/careerdeck/internal/data/timeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the staged documents without presenting",
	Long: `Loads career.json and timeline.json from the staging directory and
runs the same strict shape validation the presentation uses, printing a
summary of the parsed documents or the first shape error found.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	initLogging(cfg)

	dir := expandPath(cfg.DataDir)
	failed := false

	careerRaw, err := os.ReadFile(filepath.Join(dir, "career.json"))
	if err != nil {
		fmt.Printf("career.json:   %v\n", err)
		failed = true
	} else if vm, loadErr := loader.Load(careerRaw); loadErr != nil {
		fmt.Printf("career.json:   %v\n", loadErr)
		failed = true
	} else {
		fmt.Printf("career.json:   ok (%s at %s, %d metric categories)\n",
			vm.Summary.CurrentRole, vm.Summary.Company, len(vm.Metrics))
	}

	timelineRaw, err := os.ReadFile(filepath.Join(dir, "timeline.json"))
	if err != nil {
		fmt.Printf("timeline.json: %v\n", err)
		failed = true
	} else if events, tlErr := timeline.Transform(timelineRaw); tlErr != nil {
		fmt.Printf("timeline.json: %v\n", tlErr)
		failed = true
	} else {
		fmt.Printf("timeline.json: ok (%d events)\n", len(events))
	}

	if failed {
		return fmt.Errorf("staged documents failed validation")
	}
	return nil
}
