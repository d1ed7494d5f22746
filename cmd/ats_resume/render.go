package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/db"
	"github.com/jonathan/ats-resume/internal/observability"
	"github.com/jonathan/ats-resume/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render [input]",
	Short: "Render a resume PDF from a records file or URL",
	Long: `Render reads section/subsection/content records from a file path or http(s) URL
and writes the PDF. With --resume-id the records are read from the database instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderOutput      string
	renderFormat      string
	renderAuthor      string
	renderResumeID    string
	renderDatabaseURL string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output PDF path (default "+pipeline.DefaultOutput+")")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Input format: auto, csv, json, yaml or html")
	renderCmd.Flags().StringVar(&renderAuthor, "author", "", "PDF author metadata (default: the resume name)")
	renderCmd.Flags().StringVar(&renderResumeID, "resume-id", "", "Render a stored resume instead of an input file")
	renderCmd.Flags().StringVar(&renderDatabaseURL, "db-url", "", "Database URL (used with --resume-id)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderResumeID == "" && len(args) == 0 {
		return fmt.Errorf("an input file or URL is required (or --resume-id)")
	}
	if renderResumeID != "" && len(args) > 0 {
		return fmt.Errorf("cannot use an input file with --resume-id")
	}

	cfg := settings(config.Config{
		Output: renderOutput,
		Format: renderFormat,
		Author: renderAuthor,
	})
	opts, err := pipelineOptions(cmd, cfg)
	if err != nil {
		return err
	}

	var result *pipeline.Result
	if renderResumeID != "" {
		result, err = renderStored(cmd.Context(), renderResumeID, cfg.Output, opts)
	} else {
		result, err = pipeline.RenderSource(cmd.Context(), args[0], cfg.Output, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ATS resume saved to %s\n", result.Output)
	if isVerbose() {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRenderSummary(result)
	}
	return nil
}

func renderStored(ctx context.Context, id, output string, opts pipeline.Options) (*pipeline.Result, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid resume ID %q: %w", id, err)
	}

	url, err := databaseURL(renderDatabaseURL)
	if err != nil {
		return nil, err
	}
	database, err := db.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	resume, err := database.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, fmt.Errorf("%w: %s", db.ErrResumeNotFound, resumeID)
	}

	records, err := database.GetRecords(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("loaded stored records", "resume", resume.Label, "count", len(records))

	result, err := pipeline.RenderRecords(records, output, opts)
	if err != nil {
		return nil, err
	}
	result.Source = "resume " + resumeID.String()
	return result, nil
}
