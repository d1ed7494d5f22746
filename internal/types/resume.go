package types

// PersonalInfo holds the header fields of a resume.
type PersonalInfo struct {
	Name        string `json:"name"`
	TargetRoles string `json:"target_roles"`
	// Line is every other personal_info content joined with PersonalInfoSeparator.
	Line string `json:"line"`
}

// PersonalInfoSeparator joins the remaining personal_info contents.
const PersonalInfoSeparator = " | "

// ContentBlock is one unit of renderable section text.
type ContentBlock struct {
	Section    Section `json:"section"`
	Subsection string  `json:"subsection"`
	Content    string  `json:"content"`
}

// SectionBlocks is a section with its blocks in input order.
type SectionBlocks struct {
	Section Section        `json:"section"`
	Blocks  []ContentBlock `json:"blocks"`
}

// Resume is grouped resume data ready for layout.
type Resume struct {
	PersonalInfo PersonalInfo    `json:"personal_info"`
	Sections     []SectionBlocks `json:"sections"`
	// Warnings lists non-fatal input problems (duplicates, unknown sections).
	Warnings []string `json:"warnings,omitempty"`
}

// BlockCount returns the number of content blocks across all sections.
func (r *Resume) BlockCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Blocks)
	}
	return n
}

// EmphasisRun is a piece of a line drawn with a single emphasis.
type EmphasisRun struct {
	Text string
	Bold bool
}
