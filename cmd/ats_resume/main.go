// Package main provides the ats_resume command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/pipeline"
)

var (
	verbose    bool
	configPath string

	// fileConfig is the validated --config file, or an empty Config.
	fileConfig = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "ats_resume",
	Short: "ATS resume generator",
	Long: `ats_resume turns section/subsection/content records (CSV, JSON, YAML or an HTML table)
into a single-column PDF resume that applicant tracking systems can parse.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and print summaries")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON, TOML or YAML config file")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fileConfig = cfg

	level := log.InfoLevel
	if isVerbose() {
		level = log.DebugLevel
	}
	cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
	return nil
}

func isVerbose() bool {
	return verbose || fileConfig.Verbose
}

// settings merges command flags over the config file.
func settings(flags config.Config) config.Config {
	return flags.MergeWithDefaults(*fileConfig)
}

// pipelineOptions builds render options from merged settings.
func pipelineOptions(cmd *cobra.Command, cfg config.Config) (pipeline.Options, error) {
	format, err := ingestion.ParseFormat(cfg.Format)
	if err != nil {
		return pipeline.Options{}, err
	}

	logger := loggerFromContext(cmd.Context())
	return pipeline.Options{
		Format: format,
		Layout: fileConfig.LayoutConfig(),
		Author: cfg.Author,
		Logger: logger,
		OnProgress: func(e pipeline.ProgressEvent) {
			logger.Debug(e.Message, "step", e.Step)
		},
	}, nil
}

// databaseURL resolves the flag, then the config file, then DATABASE_URL.
func databaseURL(flag string) (string, error) {
	for _, url := range []string{flag, fileConfig.DatabaseURL, os.Getenv("DATABASE_URL")} {
		if url != "" {
			return url, nil
		}
	}
	return "", fmt.Errorf("a database URL is required (--db-url, database_url in --config, or DATABASE_URL)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
