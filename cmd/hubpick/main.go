package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hubpick/internal/api"
	"hubpick/internal/config"
	"hubpick/internal/logging"
	"hubpick/internal/ui"
	"hubpick/internal/valuefile"
)

func main() {
	var (
		flagTypes          string
		flagLimit          int
		flagSubmitOnSelect bool
		flagBaseURL        string
		flagValueFile      string
		flagLogFile        string
		flagPlaceholder    string
		flagDebug          bool
	)

	root := &cobra.Command{
		Use:   "hubpick",
		Short: "hubpick - interactive Hugging Face Hub search picker",
		Long:  "hubpick: search the Hugging Face Hub as you type, filter by category, and commit a selection to the calling process.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("types") {
				cfg.SearchTypes = flagTypes
			}
			if cmd.Flags().Changed("limit") {
				cfg.ResultLimit = flagLimit
			}
			if cmd.Flags().Changed("submit-on-select") {
				cfg.SubmitOnSelect = flagSubmitOnSelect
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = flagBaseURL
			}
			if cmd.Flags().Changed("value-file") {
				cfg.ValueFile = flagValueFile
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = flagLogFile
			}
			if cmd.Flags().Changed("placeholder") {
				cfg.Placeholder = flagPlaceholder
			}
			return runTUI(cfg, flagDebug)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flagTypes, "types", "all", "search types: \"all\" or a comma-separated list of model,dataset,space,user,org")
	root.Flags().IntVar(&flagLimit, "limit", 5, "results per category (1-20)")
	root.Flags().BoolVar(&flagSubmitOnSelect, "submit-on-select", true, "commit immediately when a result is picked")
	root.Flags().StringVar(&flagBaseURL, "base-url", "", "Hub origin to query")
	root.Flags().StringVar(&flagValueFile, "value-file", "", "file used to exchange the selected value with the host process")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "debug log file (default: no logging)")
	root.Flags().StringVar(&flagPlaceholder, "placeholder", "", "input placeholder text")
	root.Flags().BoolVar(&flagDebug, "debug", false, "verbose logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(cfg *config.Config, debug bool) error {
	types, err := cfg.Validate()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(cfg.BaseURL)

	var host ui.Host
	var externalCh chan string
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ValueFile != "" {
		store := valuefile.NewStore(cfg.ValueFile, valuefile.WithLogger(logger))
		host = ui.StoreHost{Store: store}
		externalCh = make(chan string, 8)
		if err := store.Watch(ctx, func(raw string) {
			select {
			case externalCh <- raw:
			default:
				logger.Warn("external value dropped, channel full")
			}
		}); err != nil {
			return fmt.Errorf("watch value file: %w", err)
		}
		// Seed the input from whatever the host left in the file.
		if raw, err := store.Read(); err == nil && raw != "" {
			externalCh <- raw
		}
	}

	app := ui.NewApp(client, cfg, types, host, logger, externalCh)
	program := tea.NewProgram(app, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		logger.Error("program failed", zap.Error(err))
		return err
	}

	if app, ok := final.(ui.App); ok {
		if rec := app.Committed(); rec != nil {
			fmt.Println(rec.Encode())
		}
	}
	return nil
}
