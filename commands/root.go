package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwynn/careerdeck/internal/application/deck"
	"github.com/mwynn/careerdeck/internal/config"
	"github.com/mwynn/careerdeck/internal/util"
)

var (
	// Configuration
	configPath string

	// Data paths
	dataDir   string
	sourceDir string

	// Display related
	timeFormat       string
	refreshPerSecond float64
	noWatch          bool

	// Logging related
	debug bool

	rootCmd = &cobra.Command{
		Use:   "careerdeck",
		Short: "Terminal career portfolio presentation",
		Long: `careerdeck renders a career portfolio as a full-screen terminal
presentation: a scrollable deck of sections (hero, metrics, timeline,
architecture, contact) driven from staged JSON and markdown documents.

Examples:
  careerdeck                              # Present from the default data directory
  careerdeck --data-dir /path/to/staging  # Present from a specific staging directory
  careerdeck --time-format 12h            # 12-hour clock in the navigation bar
  careerdeck stage --source portfolio/    # Copy source documents into staging
  careerdeck check                        # Validate the staged documents`,
		RunE: runDeck,
	}
)

const (
	defaultConfigFile = ".careerdeck.yml"
	defaultLogFile    = "~/.careerdeck/logs/app.log"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile,
		"Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Staging directory the presentation reads from")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().StringVar(&sourceDir, "source-dir", "",
		"Source directory for live staging")
	rootCmd.Flags().StringVar(&timeFormat, "time-format", "",
		"Time format (12h or 24h)")
	rootCmd.Flags().Float64Var(&refreshPerSecond, "refresh-per-second", 0,
		"Display refresh rate (0.1-60 Hz)")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"Disable live reload on data file changes")
}

// loadConfig merges the config file, environment overrides, and any flags
// the user set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(expandPath(configPath))
	if err != nil {
		return nil, err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if sourceDir != "" {
		cfg.SourceDir = sourceDir
	}
	if timeFormat != "" {
		cfg.TimeFormat = timeFormat
	}
	if refreshPerSecond != 0 {
		cfg.RefreshPerSecond = refreshPerSecond
	}
	if cmd.Flags().Changed("no-watch") {
		cfg.Watch = !noWatch
	}
	if debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initLogging(cfg *config.Config) {
	logLevel := "info"
	if cfg.Debug {
		logLevel = "debug"
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	logFile = expandPath(logFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, cfg.Debug)
}

func runDeck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	initLogging(cfg)

	deckConfig := &deck.DeckConfig{
		DataDir:          expandPath(cfg.DataDir),
		SourceDir:        cfg.SourceDir,
		TimeFormat:       cfg.TimeFormat,
		RefreshPerSecond: cfg.RefreshPerSecond,
		Watch:            cfg.Watch,
		Debug:            cfg.Debug,
	}

	orchestrator, err := deck.NewOrchestrator(deckConfig)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
