// Package pipeline orchestrates loading, grouping and rendering a resume.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-resume/internal/grouping"
	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/jonathan/ats-resume/internal/types"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "ATS_Resume.pdf"

// Creator is written to the PDF metadata.
const Creator = "ats-resume"

// Step names a pipeline stage in progress events.
type Step string

// Pipeline stages.
const (
	StepLoad   Step = "load"
	StepGroup  Step = "group"
	StepRender Step = "render"
)

// ProgressEvent represents a progress update during a render.
type ProgressEvent struct {
	Step    Step
	Source  string
	Message string
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// Options configures a render.
type Options struct {
	Format ingestion.Format
	// Layout is used as-is; the zero value means layout.DefaultConfig.
	Layout layout.Config
	// Author overrides the PDF author, which otherwise is the resume name.
	Author     string
	Logger     *log.Logger
	OnProgress ProgressCallback
}

// Result describes a finished render.
type Result struct {
	Source   string
	Output   string
	Records  int
	Resume   *types.Resume
	Stats    layout.Stats
	Duration time.Duration
}

// RenderSource loads records from source and renders them to output.
// On any error no file is left at output.
func RenderSource(ctx context.Context, source, output string, opts Options) (*Result, error) {
	start := time.Now()

	opts.emit(StepLoad, source, "loading records")
	records, err := ingestion.Load(ctx, source, opts.Format)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("loaded records", "source", source, "count", len(records))

	result, err := renderFile(source, records, output, opts)
	if err != nil {
		return nil, err
	}
	result.Duration = time.Since(start)
	return result, nil
}

// RenderRecords renders already loaded records to output.
func RenderRecords(records []types.Record, output string, opts Options) (*Result, error) {
	start := time.Now()
	result, err := renderFile("", records, output, opts)
	if err != nil {
		return nil, err
	}
	result.Duration = time.Since(start)
	return result, nil
}

// RenderBytes renders records in memory.
func RenderBytes(records []types.Record, opts Options) ([]byte, *Result, error) {
	start := time.Now()

	resume, err := Group(records, opts)
	if err != nil {
		return nil, nil, err
	}

	opts.emit(StepRender, "", "rendering PDF")
	pdf, stats, err := rendering.RenderBytes(resume, opts.layout(), opts.pdfOptions(resume)...)
	if err != nil {
		return nil, nil, err
	}

	return pdf, &Result{
		Records:  len(records),
		Resume:   resume,
		Stats:    stats,
		Duration: time.Since(start),
	}, nil
}

// Group groups records and logs every warning the grouper reports.
func Group(records []types.Record, opts Options) (*types.Resume, error) {
	opts.emit(StepGroup, "", "grouping records")
	resume, err := grouping.Group(records)
	if err != nil {
		return nil, err
	}
	for _, warning := range resume.Warnings {
		opts.logger().Warn(warning)
	}
	return resume, nil
}

func renderFile(source string, records []types.Record, output string, opts Options) (*Result, error) {
	if output == "" {
		output = DefaultOutput
	}

	resume, err := Group(records, opts)
	if err != nil {
		return nil, err
	}

	opts.emit(StepRender, source, "writing "+output)
	stats, err := rendering.RenderFile(resume, opts.layout(), output, opts.pdfOptions(resume)...)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("rendered", "output", output, "pages", stats.Pages, "lines", stats.Lines)

	return &Result{
		Source:  source,
		Output:  output,
		Records: len(records),
		Resume:  resume,
		Stats:   stats,
	}, nil
}

// Job is one input of a batch render.
type Job struct {
	Source string
	Output string
}

// RenderBatch renders jobs concurrently, at most limit at a time (no limit when limit <= 0).
// Every job runs; the returned error joins the failures, each prefixed with its source.
// results[i] is nil when jobs[i] failed.
func RenderBatch(ctx context.Context, jobs []Job, limit int, opts Options) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Source, err)
				return nil
			}
			result, err := RenderSource(gCtx, job.Source, job.Output, opts)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Source, err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func (o Options) layout() layout.Config {
	if o.Layout == (layout.Config{}) {
		return layout.DefaultConfig()
	}
	return o.Layout
}

func (o Options) pdfOptions(resume *types.Resume) []rendering.Option {
	author := o.Author
	if author == "" {
		author = resume.PersonalInfo.Name
	}
	return []rendering.Option{
		rendering.WithTitle(resume.PersonalInfo.Name + " - Resume"),
		rendering.WithAuthor(author),
		rendering.WithSubject(resume.PersonalInfo.TargetRoles),
		rendering.WithCreator(Creator),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

func (o Options) emit(step Step, source, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{Step: step, Source: source, Message: message})
	}
}
