package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/pipeline"
	"github.com/jonathan/ats-resume/internal/types"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", TargetRoles: "Engineer", Line: "j@x.com | 555-1234"},
		Sections: []types.SectionBlocks{
			{Section: types.SectionProfessionalExperience, Blocks: []types.ContentBlock{
				{Section: types.SectionProfessionalExperience, Subsection: "Acme", Content: "Built things"},
				{Section: types.SectionProfessionalExperience, Subsection: "Beta", Content: "Shipped"},
			}},
		},
		Warnings: []string{`ignoring unrecognized section "hobbies"`},
	}
}

func TestPrintRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRenderSummary(&pipeline.Result{
		Source:   "resume.csv",
		Output:   "ATS_Resume.pdf",
		Records:  6,
		Resume:   sampleResume(),
		Stats:    layout.Stats{Pages: 2, Lines: 70, Sections: 1, Blocks: 2},
		Duration: 15 * time.Millisecond,
	})
	output := buf.String()

	assert.Contains(t, output, "RENDER SUMMARY")
	assert.Contains(t, output, "resume.csv")
	assert.Contains(t, output, "ATS_Resume.pdf")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Pages:     2")
	assert.Contains(t, output, "Lines:     70")
	assert.Contains(t, output, "15ms")
	assert.Contains(t, output, "Warnings (1)")
}

func TestPrintRenderSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRenderSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResumeOutline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := sampleResume()
	for i := 0; i < 6; i++ {
		resume.Sections[0].Blocks = append(resume.Sections[0].Blocks, types.ContentBlock{Subsection: "Extra"})
	}
	p.PrintResumeOutline(resume)
	output := buf.String()

	assert.Contains(t, output, "RESUME OUTLINE")
	assert.Contains(t, output, "Professional Experience (8)")
	assert.Contains(t, output, "• Acme")
	assert.Contains(t, output, "... and 3 more")
	assert.Contains(t, output, "j@x.com | 555-1234")
	assert.Contains(t, output, "hobbies")
}

func TestPrintResumeOutline_NoSections(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeOutline(&types.Resume{PersonalInfo: types.PersonalInfo{Name: "A", TargetRoles: "B"}})

	assert.Contains(t, buf.String(), "No sections")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	jobs := []pipeline.Job{{Source: "a.csv"}, {Source: "b.csv"}}
	results := []*pipeline.Result{{Output: "a.pdf", Stats: layout.Stats{Pages: 1}}, nil}
	p.PrintBatchSummary(jobs, results)
	output := buf.String()

	assert.Contains(t, output, "✓ a.csv → a.pdf (1 pages)")
	assert.Contains(t, output, "✗ b.csv")
	assert.Contains(t, output, "1 of 2 rendered")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("x", 200)+"\nnaïve café")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}
