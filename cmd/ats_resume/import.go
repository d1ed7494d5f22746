package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/db"
	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/pipeline"
)

var importCmd = &cobra.Command{
	Use:   "import <input>",
	Short: "Store resume records in the database",
	Long:  "Import loads and validates records, then stores them so they can be rendered with render --resume-id or the API.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var (
	importLabel       string
	importFormat      string
	importDatabaseURL string
)

func init() {
	importCmd.Flags().StringVarP(&importLabel, "label", "l", "", "Label for the stored resume (default: the resume name)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: auto, csv, json, yaml or html")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (default: DATABASE_URL)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts, err := pipelineOptions(cmd, settings(config.Config{Format: importFormat}))
	if err != nil {
		return err
	}

	records, err := ingestion.Load(ctx, args[0], opts.Format)
	if err != nil {
		return err
	}
	resume, err := pipeline.Group(records, opts)
	if err != nil {
		return err
	}

	url, err := databaseURL(importDatabaseURL)
	if err != nil {
		return err
	}
	database, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	label := importLabel
	if label == "" {
		label = resume.PersonalInfo.Name
	}
	id, err := database.CreateResume(ctx, label, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records as resume %s\n", len(records), id)
	return nil
}
