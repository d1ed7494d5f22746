package main

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/fetch"
	"github.com/jonathan/ats-resume/internal/observability"
	"github.com/jonathan/ats-resume/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input>...",
	Short: "Render several resumes concurrently",
	Long: `Batch renders every input to <out-dir>/<input name>.pdf, at most --jobs at a time.
Every input is attempted; the command fails if any of them failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutDir string
	batchJobs   int
	batchFormat string
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "d", "", "Directory for the PDFs (default: current directory)")
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "Maximum concurrent renders (default: unlimited)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Input format for every input: auto, csv, json, yaml or html")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := settings(config.Config{
		OutDir: batchOutDir,
		Jobs:   batchJobs,
		Format: batchFormat,
	})
	opts, err := pipelineOptions(cmd, cfg)
	if err != nil {
		return err
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	seen := make(map[string]int)
	jobs := make([]pipeline.Job, len(args))
	for i, source := range args {
		jobs[i] = pipeline.Job{Source: source, Output: batchOutput(outDir, source, seen)}
	}

	results, batchErr := pipeline.RenderBatch(cmd.Context(), jobs, cfg.Jobs, opts)
	for _, result := range results {
		if result != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "ATS resume saved to %s\n", result.Output)
		}
	}
	if isVerbose() {
		observability.NewPrinter(cmd.OutOrStdout()).PrintBatchSummary(jobs, results)
	}
	return batchErr
}

// batchOutput names the PDF after the input's base name, numbering repeats.
func batchOutput(outDir, source string, seen map[string]int) string {
	p := filepath.ToSlash(source)
	if fetch.IsURL(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}

	base := path.Base(p)
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "" || name == "." || name == "/" {
		name = "resume"
	}

	seen[name]++
	if n := seen[name]; n > 1 {
		name = fmt.Sprintf("%s-%d", name, n)
	}
	return filepath.Join(outDir, name+".pdf")
}
