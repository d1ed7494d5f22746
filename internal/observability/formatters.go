// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jonathan/ats-resume/internal/pipeline"
	"github.com/jonathan/ats-resume/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Widths are measured in
// terminal cells, so names with wide characters keep the border aligned.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", fit(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fit(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

// PrintRenderSummary outputs what a render produced.
func (p *Printer) PrintRenderSummary(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Source != "" {
		sb.WriteString(fmt.Sprintf("Source:    %s\n", result.Source))
	}
	sb.WriteString(fmt.Sprintf("Output:    %s\n", result.Output))
	if result.Resume != nil {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", result.Resume.PersonalInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("Records:   %d\n", result.Records))
	sb.WriteString(fmt.Sprintf("Pages:     %d\n", result.Stats.Pages))
	sb.WriteString(fmt.Sprintf("Lines:     %d\n", result.Stats.Lines))
	sb.WriteString(fmt.Sprintf("Sections:  %d\n", result.Stats.Sections))
	sb.WriteString(fmt.Sprintf("Blocks:    %d\n", result.Stats.Blocks))
	sb.WriteString(fmt.Sprintf("Duration:  %s\n", result.Duration.Round(time.Millisecond)))

	if result.Resume != nil && len(result.Resume.Warnings) > 0 {
		sb.WriteString("\n")
		writeWarnings(&sb, result.Resume.Warnings)
	}

	p.printBox("RENDER SUMMARY", sb.String())
}

// PrintResumeOutline outputs the grouped structure of a resume without rendering it.
func (p *Printer) PrintResumeOutline(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Roles:  %s\n", resume.PersonalInfo.TargetRoles))
	if resume.PersonalInfo.Line != "" {
		sb.WriteString(fmt.Sprintf("Info:   %s\n", resume.PersonalInfo.Line))
	}
	sb.WriteString("\n")

	if len(resume.Sections) == 0 {
		sb.WriteString("No sections\n")
	}
	for _, section := range resume.Sections {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", section.Section.Title(), len(section.Blocks)))
		count := min(len(section.Blocks), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", section.Blocks[i].Subsection))
		}
		if len(section.Blocks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Blocks)-maxItemsToShow))
		}
	}

	if len(resume.Warnings) > 0 {
		sb.WriteString("\n")
		writeWarnings(&sb, resume.Warnings)
	}

	p.printBox("RESUME OUTLINE", sb.String())
}

// PrintBatchSummary outputs one line per batch job. results[i] is nil for failed jobs.
func (p *Printer) PrintBatchSummary(jobs []pipeline.Job, results []*pipeline.Result) {
	var sb strings.Builder
	ok := 0
	for i, job := range jobs {
		var result *pipeline.Result
		if i < len(results) {
			result = results[i]
		}
		if result == nil {
			sb.WriteString(fmt.Sprintf("✗ %s\n", job.Source))
			continue
		}
		ok++
		sb.WriteString(fmt.Sprintf("✓ %s → %s (%d pages)\n", job.Source, result.Output, result.Stats.Pages))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d rendered\n", ok, len(jobs)))

	p.printBox("BATCH SUMMARY", sb.String())
}

func writeWarnings(sb *strings.Builder, warnings []string) {
	sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(warnings)))
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
	}
}
