//go:build integration

package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	return db
}

func cleanupResume(t *testing.T, db *DB, id uuid.UUID) {
	t.Helper()
	_, _ = db.pool.Exec(context.Background(), "DELETE FROM resumes WHERE id = $1", id)
}

func TestIntegration_Resume_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	records := []types.Record{
		{Section: types.SectionProfessionalExperience, Subsection: "Acme", Content: "Built **things**"},
		{Section: types.SectionPersonalInfo, Subsection: "name", Content: "Jane Doe"},
		{Section: types.SectionPersonalInfo, Subsection: "target_roles", Content: "Engineer"},
		{Section: types.SectionProfessionalExperience, Subsection: "Beta", Content: ""},
	}

	id, err := db.CreateResume(ctx, "integration", records)
	if err != nil {
		t.Fatalf("CreateResume failed: %v", err)
	}
	defer cleanupResume(t, db, id)

	t.Run("get resume", func(t *testing.T) {
		resume, err := db.GetResume(ctx, id)
		if err != nil {
			t.Fatalf("GetResume failed: %v", err)
		}
		if resume == nil {
			t.Fatal("GetResume returned nil")
		}
		if resume.Label != "integration" {
			t.Errorf("Label = %q, want 'integration'", resume.Label)
		}
		if resume.Name == nil || *resume.Name != "Jane Doe" {
			t.Errorf("Name = %v, want 'Jane Doe'", resume.Name)
		}
		if resume.RecordCount != len(records) {
			t.Errorf("RecordCount = %d, want %d", resume.RecordCount, len(records))
		}
	})

	t.Run("records keep input order", func(t *testing.T) {
		got, err := db.GetRecords(ctx, id)
		if err != nil {
			t.Fatalf("GetRecords failed: %v", err)
		}
		if len(got) != len(records) {
			t.Fatalf("len(records) = %d, want %d", len(got), len(records))
		}
		for i := range records {
			if got[i] != records[i] {
				t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
			}
		}
	})

	t.Run("list includes resume", func(t *testing.T) {
		resumes, err := db.ListResumes(ctx, MaxListLimit)
		if err != nil {
			t.Fatalf("ListResumes failed: %v", err)
		}
		found := false
		for _, r := range resumes {
			if r.ID == id {
				found = true
			}
		}
		if !found {
			t.Error("created resume missing from ListResumes")
		}
	})

	t.Run("renders", func(t *testing.T) {
		none, err := db.GetLatestRender(ctx, id)
		if err != nil {
			t.Fatalf("GetLatestRender failed: %v", err)
		}
		if none != nil {
			t.Fatal("expected no render yet")
		}

		stats := layout.Stats{Pages: 1, Lines: 7, Sections: 1, Blocks: 2}
		renderID, err := db.SaveRender(ctx, id, []byte("%PDF-1.3 test"), stats)
		if err != nil {
			t.Fatalf("SaveRender failed: %v", err)
		}

		render, err := db.GetLatestRender(ctx, id)
		if err != nil {
			t.Fatalf("GetLatestRender failed: %v", err)
		}
		if render == nil || render.ID != renderID {
			t.Fatalf("GetLatestRender = %+v, want id %s", render, renderID)
		}
		if render.Lines != 7 || string(render.PDF) != "%PDF-1.3 test" {
			t.Errorf("unexpected render %+v", render)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := db.DeleteResume(ctx, id); err != nil {
			t.Fatalf("DeleteResume failed: %v", err)
		}
		resume, err := db.GetResume(ctx, id)
		if err != nil {
			t.Fatalf("GetResume failed: %v", err)
		}
		if resume != nil {
			t.Error("resume should be gone after delete")
		}

		err = db.DeleteResume(ctx, id)
		if !errors.Is(err, ErrResumeNotFound) {
			t.Errorf("second delete error = %v, want ErrResumeNotFound", err)
		}
	})
}

func TestIntegration_GetResume_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	resume, err := db.GetResume(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetResume failed: %v", err)
	}
	if resume != nil {
		t.Error("expected nil for unknown id")
	}
}
