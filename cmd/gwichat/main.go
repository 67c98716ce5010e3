package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dani-rios-data/gwi-core-chatbot/internal/config"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/conversation"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/engine"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/logging"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/reference"
	"github.com/dani-rios-data/gwi-core-chatbot/internal/tui"
)

var version = "dev"

var (
	flagReferenceDir string
	flagLogFile      string
)

var rootCmd = &cobra.Command{
	Use:     "gwichat",
	Short:   "Translate audience descriptions into GWI Core boolean logic",
	Version: version,
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&flagReferenceDir, "reference-dir", "", "directory holding the GWI field-reference documents")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "debug log destination (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if flagReferenceDir != "" {
		cfg.ReferenceDir = flagReferenceDir
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// The reference documents are loaded once, before the engine is
	// exercised. Missing documents degrade the UI, not the engine.
	lib := reference.Load(cfg.ReferenceDir)
	if lib.Degraded() {
		logger.Warn("reference documents missing", zap.Strings("missing", lib.Missing))
	}

	eng := engine.New(conversation.New(cfg.HistoryLimit), logger)

	p := tea.NewProgram(
		tui.NewApp(cfg, eng, lib),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
