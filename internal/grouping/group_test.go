package grouping

import (
	"errors"
	"testing"

	"github.com/jonathan/ats-resume/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personal(sub, content string) types.Record {
	return types.Record{Section: types.SectionPersonalInfo, Subsection: sub, Content: content}
}

func rec(section types.Section, sub, content string) types.Record {
	return types.Record{Section: section, Subsection: sub, Content: content}
}

func baseRecords() []types.Record {
	return []types.Record{
		personal("name", "Jane Doe"),
		personal("target_roles", "Engineer"),
	}
}

func sectionNames(r *types.Resume) []types.Section {
	names := make([]types.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		names = append(names, s.Section)
	}
	return names
}

func TestGroup_PersonalInfoJoin(t *testing.T) {
	records := []types.Record{
		personal("name", "Jane Doe"),
		personal("target_roles", "Engineer"),
		personal("email", "j@x.com"),
		personal("phone", "555-1234"),
	}

	resume, err := Group(records)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
	assert.Equal(t, "Engineer", resume.PersonalInfo.TargetRoles)
	assert.Equal(t, "j@x.com | 555-1234", resume.PersonalInfo.Line)
	assert.Empty(t, resume.Sections)
	assert.Empty(t, resume.Warnings)
}

func TestGroup_PersonalInfoOrderFollowsInput(t *testing.T) {
	records := []types.Record{
		personal("phone", "555-1234"),
		personal("target_roles", "Engineer"),
		personal("linkedin", "in/jane"),
		personal("name", "Jane Doe"),
		personal("email", "j@x.com"),
	}

	resume, err := Group(records)
	require.NoError(t, err)
	assert.Equal(t, "555-1234 | in/jane | j@x.com", resume.PersonalInfo.Line)
}

func TestGroup_SectionOrdering(t *testing.T) {
	records := append(baseRecords(),
		rec(types.SectionProjects, "p1", "Project one"),
		rec(types.SectionProfessionalSummary, "s", "Summary"),
		rec(types.SectionCertifications, "c1", "CKA"),
		rec(types.SectionTechnicalSkills, "k", "Go, SQL"),
		rec(types.SectionProfessionalExperience, "e1", "Acme"),
	)

	resume, err := Group(records)
	require.NoError(t, err)

	assert.Equal(t, []types.Section{
		types.SectionProfessionalSummary,
		types.SectionTechnicalSkills,
		types.SectionProfessionalExperience,
		types.SectionCertifications,
		types.SectionProjects,
	}, sectionNames(resume))
}

func TestGroup_AbsentSectionsOmitted(t *testing.T) {
	records := append(baseRecords(),
		rec(types.SectionProjects, "p1", "Project one"),
		rec(types.SectionProfessionalSummary, "s", "Summary"),
	)

	resume, err := Group(records)
	require.NoError(t, err)
	assert.Equal(t, []types.Section{types.SectionProfessionalSummary, types.SectionProjects}, sectionNames(resume))
}

func TestGroup_RowOrderPreserved(t *testing.T) {
	records := append(baseRecords(),
		rec(types.SectionProfessionalExperience, "e3", "third"),
		rec(types.SectionProjects, "p1", "project"),
		rec(types.SectionProfessionalExperience, "e1", "first"),
		rec(types.SectionProfessionalExperience, "e2", "second"),
	)

	resume, err := Group(records)
	require.NoError(t, err)
	require.Len(t, resume.Sections, 2)

	exp := resume.Sections[0]
	assert.Equal(t, types.SectionProfessionalExperience, exp.Section)
	require.Len(t, exp.Blocks, 3)
	assert.Equal(t, "third", exp.Blocks[0].Content)
	assert.Equal(t, "e3", exp.Blocks[0].Subsection)
	assert.Equal(t, types.SectionProfessionalExperience, exp.Blocks[0].Section)
	assert.Equal(t, "first", exp.Blocks[1].Content)
	assert.Equal(t, "second", exp.Blocks[2].Content)
}

func TestGroup_MissingName(t *testing.T) {
	records := []types.Record{
		personal("target_roles", "Engineer"),
		rec(types.SectionProjects, "p1", "x"),
	}

	resume, err := Group(records)
	assert.Nil(t, resume)

	var missing *MissingRequiredFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "name", missing.Field)
	assert.Contains(t, err.Error(), "personal_info/name")
}

func TestGroup_MissingTargetRoles(t *testing.T) {
	records := []types.Record{personal("name", "Jane Doe")}

	_, err := Group(records)

	var missing *MissingRequiredFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "target_roles", missing.Field)
}

func TestGroup_EmptyInput(t *testing.T) {
	_, err := Group(nil)

	var missing *MissingRequiredFieldError
	assert.True(t, errors.As(err, &missing))
}

func TestGroup_NameInOtherSectionDoesNotCount(t *testing.T) {
	records := []types.Record{
		rec(types.SectionProjects, "name", "Jane Doe"),
		personal("target_roles", "Engineer"),
	}

	_, err := Group(records)
	var missing *MissingRequiredFieldError
	assert.True(t, errors.As(err, &missing))
}

func TestGroup_DuplicateNameUsesFirst(t *testing.T) {
	records := []types.Record{
		personal("name", "Jane Doe"),
		personal("target_roles", "Engineer"),
		personal("name", "J. Doe"),
	}

	resume, err := Group(records)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
	assert.Empty(t, resume.PersonalInfo.Line)
	require.Len(t, resume.Warnings, 1)
	assert.Contains(t, resume.Warnings[0], "personal_info/name appears 2 times")
}

func TestGroup_UnknownSectionsDropped(t *testing.T) {
	records := append(baseRecords(),
		rec("education", "e1", "BSc"),
		rec(types.SectionProjects, "p1", "project"),
		rec("education", "e2", "MSc"),
		rec("hobbies", "h", "chess"),
	)

	resume, err := Group(records)
	require.NoError(t, err)

	assert.Equal(t, []types.Section{types.SectionProjects}, sectionNames(resume))
	assert.Equal(t, []string{
		`ignoring unrecognized section "education"`,
		`ignoring unrecognized section "hobbies"`,
	}, resume.Warnings)
}

func TestGroup_BlankSubsection(t *testing.T) {
	records := append(baseRecords(),
		personal("", "Remote"),
		personal("email", "j@x.com"),
		rec(types.SectionProjects, "", "Built X"),
	)

	resume, err := Group(records)
	require.NoError(t, err)

	assert.Equal(t, "Remote | j@x.com", resume.PersonalInfo.Line)
	require.Len(t, resume.Sections, 1)
	assert.Equal(t, []types.ContentBlock{
		{Section: types.SectionProjects, Content: "Built X"},
	}, resume.Sections[0].Blocks)
	assert.Empty(t, resume.Warnings)
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	records := append(baseRecords(), rec(types.SectionProjects, "p1", "project"))
	snapshot := append([]types.Record(nil), records...)

	_, err := Group(records)
	require.NoError(t, err)
	assert.Equal(t, snapshot, records)
}
