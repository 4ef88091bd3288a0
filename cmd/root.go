// Package cmd provides CLI commands for curator.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/curator/config"
	"github.com/lehigh-university-libraries/curator/problem"
)

var (
	cfgFile string
	cfg     *config.Config
)

func setupLogger(logLevel string) {
	logLevel = strings.ToUpper(logLevel)
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Extract and reconcile research data metadata",
	Long: `Curator extracts structured metadata from uploaded DataCite XML records.

It tolerates envelopes, missing namespaces and legacy vocabulary names,
deduplicates contributors, folds contact persons into the author list and
enriches contacts from an ISO 19139 block travelling in the same file.

Examples:
  curator extract record.xml
  curator extract -i record.xml -o people.csv
  curator validate record.xml
  curator vocab show roles`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		setupLogger(cfg.LogLevel)
		if cfg.File != "" {
			slog.Debug("using config file", "path", cfg.File)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints categorised problems as JSON and anything else as
// plain text.
func reportError(w io.Writer, err error) {
	if pe, ok := problem.As(err); ok {
		enc := json.NewEncoder(w)
		if encErr := enc.Encode(pe); encErr == nil {
			return
		}
	}
	fmt.Fprintln(w, err)
}

func init() {
	setupLogger(os.Getenv("LOG_LEVEL"))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./curator.yaml or ~/.config/curator/curator.yaml)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(cacheCmd)
}
