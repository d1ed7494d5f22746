package grouping

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

// Group partitions records into a Resume.
//
// name and target_roles must be present under personal_info. When either appears more
// than once the first occurrence wins and a warning is recorded. Sections outside
// types.SectionOrder are dropped with a warning.
func Group(records []types.Record) (*types.Resume, error) {
	resume := &types.Resume{}

	name, nameCount := firstPersonal(records, types.SubsectionName)
	if nameCount == 0 {
		return nil, &MissingRequiredFieldError{Field: types.SubsectionName}
	}
	roles, rolesCount := firstPersonal(records, types.SubsectionTargetRoles)
	if rolesCount == 0 {
		return nil, &MissingRequiredFieldError{Field: types.SubsectionTargetRoles}
	}
	if nameCount > 1 {
		resume.Warnings = append(resume.Warnings, duplicateWarning(types.SubsectionName, nameCount))
	}
	if rolesCount > 1 {
		resume.Warnings = append(resume.Warnings, duplicateWarning(types.SubsectionTargetRoles, rolesCount))
	}

	resume.PersonalInfo = types.PersonalInfo{
		Name:        name,
		TargetRoles: roles,
		Line:        personalLine(records),
	}

	bySection := make(map[types.Section][]types.ContentBlock)
	seenUnknown := make(map[types.Section]bool)
	for _, r := range records {
		if r.IsPersonalInfo() {
			continue
		}
		if !r.Section.Known() {
			if !seenUnknown[r.Section] {
				seenUnknown[r.Section] = true
				resume.Warnings = append(resume.Warnings, fmt.Sprintf("ignoring unrecognized section %q", r.Section))
			}
			continue
		}
		bySection[r.Section] = append(bySection[r.Section], types.ContentBlock{
			Section:    r.Section,
			Subsection: r.Subsection,
			Content:    r.Content,
		})
	}

	for _, section := range types.SectionOrder {
		if section == types.SectionPersonalInfo {
			continue
		}
		blocks := bySection[section]
		if len(blocks) == 0 {
			continue
		}
		resume.Sections = append(resume.Sections, types.SectionBlocks{
			Section: section,
			Blocks:  blocks,
		})
	}

	return resume, nil
}

// firstPersonal returns the content of the first personal_info record with the given
// subsection and the number of matches.
func firstPersonal(records []types.Record, subsection string) (string, int) {
	var content string
	count := 0
	for _, r := range records {
		if r.IsPersonalInfo() && r.Subsection == subsection {
			if count == 0 {
				content = r.Content
			}
			count++
		}
	}
	return content, count
}

// personalLine joins the non-distinguished personal_info contents in input order.
func personalLine(records []types.Record) string {
	var parts []string
	for _, r := range records {
		if !r.IsPersonalInfo() {
			continue
		}
		if r.Subsection == types.SubsectionName || r.Subsection == types.SubsectionTargetRoles {
			continue
		}
		parts = append(parts, r.Content)
	}
	return strings.Join(parts, types.PersonalInfoSeparator)
}

func duplicateWarning(field string, count int) string {
	return fmt.Sprintf("personal_info/%s appears %d times; using the first", field, count)
}
