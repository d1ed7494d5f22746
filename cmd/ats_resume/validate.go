package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/observability"
	"github.com/jonathan/ats-resume/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Check that records can be rendered without writing a PDF",
	Long:  "Validate loads and groups the records, then prints the resume outline and any warnings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateFormat string

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Input format: auto, csv, json, yaml or html")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := pipelineOptions(cmd, settings(config.Config{Format: validateFormat}))
	if err != nil {
		return err
	}

	records, err := ingestion.Load(cmd.Context(), args[0], opts.Format)
	if err != nil {
		return err
	}

	resume, err := pipeline.Group(records, opts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintResumeOutline(resume)
	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d records, %d sections, %d warnings\n",
		len(records), len(resume.Sections), len(resume.Warnings))
	return nil
}
