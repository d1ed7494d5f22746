package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrResumeNotFound is returned when a resume id does not exist.
var ErrResumeNotFound = errors.New("resume not found")

// DefaultListLimit and MaxListLimit bound ListResumes.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Resume is a stored set of records.
type Resume struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	// Name is the personal_info/name content at import time, if any.
	Name        *string   `json:"name,omitempty"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Render is a stored PDF with the layout statistics it was produced with.
type Render struct {
	ID        uuid.UUID `json:"id"`
	ResumeID  uuid.UUID `json:"resume_id"`
	PDF       []byte    `json:"-"`
	Pages     int       `json:"pages"`
	Lines     int       `json:"lines"`
	Sections  int       `json:"sections"`
	Blocks    int       `json:"blocks"`
	CreatedAt time.Time `json:"created_at"`
}
