package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume/internal/grouping"
	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/types"
)

const validCSV = `section,subsection,content
professional_experience,Acme,Built **scalable** systems
personal_info,name,Jane Doe
personal_info,target_roles,Engineer
personal_info,email,j@x.com
hobbies,chess,Plays chess
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderSource_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "resume.csv", validCSV)
	output := filepath.Join(dir, "out.pdf")

	var steps []Step
	result, err := RenderSource(context.Background(), input, output, Options{
		OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) },
	})
	require.NoError(t, err)

	assert.Equal(t, input, result.Source)
	assert.Equal(t, output, result.Output)
	assert.Equal(t, 5, result.Records)
	assert.Equal(t, 1, result.Stats.Pages)
	assert.Equal(t, "j@x.com", result.Resume.PersonalInfo.Line)
	assert.Equal(t, []Step{StepLoad, StepGroup, StepRender}, steps)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderSource_MissingNameLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "resume.csv", "section,subsection,content\npersonal_info,target_roles,Engineer\n")
	output := filepath.Join(dir, "out.pdf")

	_, err := RenderSource(context.Background(), input, output, Options{})
	require.Error(t, err)

	var missing *grouping.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, types.SubsectionName, missing.Field)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the input file may exist")
	assert.Equal(t, "resume.csv", entries[0].Name())
}

func TestRenderSource_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.pdf")

	_, err := RenderSource(context.Background(), filepath.Join(dir, "missing.csv"), output, Options{})
	var readErr *ingestion.InputReadError
	require.ErrorAs(t, err, &readErr)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderSource_LogsWarnings(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "resume.csv", validCSV)

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	_, err := RenderSource(context.Background(), input, filepath.Join(dir, "out.pdf"), Options{Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "ignoring unrecognized section")
	assert.Contains(t, logs.String(), "hobbies")
	assert.Contains(t, logs.String(), "loaded records")
}

func TestRenderRecords_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	records := []types.Record{
		{Section: types.SectionPersonalInfo, Subsection: "name", Content: "Jane Doe"},
		{Section: types.SectionPersonalInfo, Subsection: "target_roles", Content: "Engineer"},
	}

	result, err := RenderRecords(records, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, result.Output)

	_, err = os.Stat(filepath.Join(dir, DefaultOutput))
	assert.NoError(t, err)
}

func TestRenderBytes(t *testing.T) {
	records := []types.Record{
		{Section: types.SectionPersonalInfo, Subsection: "name", Content: "Jane Doe"},
		{Section: types.SectionPersonalInfo, Subsection: "target_roles", Content: "Engineer"},
		{Section: types.SectionProjects, Subsection: "Demo", Content: strings.Repeat("word ", 2000)},
	}

	pdf, result, err := RenderBytes(records, Options{Author: "Someone Else"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Greater(t, result.Stats.Pages, 1)
	assert.Equal(t, 1, result.Stats.Sections)
}

func TestRenderBytes_CustomLayout(t *testing.T) {
	records := []types.Record{
		{Section: types.SectionPersonalInfo, Subsection: "name", Content: "Jane Doe"},
		{Section: types.SectionPersonalInfo, Subsection: "target_roles", Content: "Engineer"},
	}

	cfg := layout.DefaultConfig()
	cfg.LeftMargin = 1000
	_, _, err := RenderBytes(records, Options{Layout: cfg})

	var cfgErr *layout.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRenderBatch(t *testing.T) {
	dir := t.TempDir()
	good1 := writeInput(t, dir, "a.csv", validCSV)
	good2 := writeInput(t, dir, "b.csv", validCSV)
	bad := writeInput(t, dir, "c.csv", "section,subsection,content\n")

	jobs := []Job{
		{Source: good1, Output: filepath.Join(dir, "a.pdf")},
		{Source: bad, Output: filepath.Join(dir, "c.pdf")},
		{Source: good2, Output: filepath.Join(dir, "b.pdf")},
	}

	results, err := RenderBatch(context.Background(), jobs, 2, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	var missing *grouping.MissingRequiredFieldError
	assert.ErrorAs(t, err, &missing)

	require.Len(t, results, 3)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.NotNil(t, results[2])

	for _, name := range []string{"a.pdf", "b.pdf"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}
	_, statErr := os.Stat(filepath.Join(dir, "c.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderBatch_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a.csv", validCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RenderBatch(ctx, []Job{{Source: input, Output: filepath.Join(dir, "a.pdf")}}, 0, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results[0])
}
