package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwynn/careerdeck/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Writes a .careerdeck.yml with the default settings to the path given
by --config, refusing to overwrite an existing file unless --force is set.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false,
		"Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := expandPath(configPath)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
