package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwynn/careerdeck/internal/stage"
)

var stageSource string

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Copy source documents into the staging directory",
	Long: `Copies the portfolio documents (career.json, timeline.json,
casestudy.md) from the source directory into the staging directory the
presentation reads from. Missing source files are reported as warnings;
the command exits non-zero if any file failed to stage.`,
	RunE: runStage,
}

func init() {
	rootCmd.AddCommand(stageCmd)

	stageCmd.Flags().StringVar(&stageSource, "source", "",
		"Source directory (defaults to source_dir from the config file)")
}

func runStage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	initLogging(cfg)

	source := cfg.SourceDir
	if stageSource != "" {
		source = stageSource
	}
	if source == "" {
		return fmt.Errorf("no source directory: set --source or source_dir in %s", configPath)
	}

	results, stageErr := stage.Stage(expandPath(source), expandPath(cfg.DataDir))
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("  warning: %-14s %v\n", r.Name, r.Err)
		} else {
			fmt.Printf("  staged:  %s\n", r.Name)
		}
	}

	return stageErr
}
