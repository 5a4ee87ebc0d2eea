package store

import (
	"context"
	"testing"
	"time"

	"github.com/teamcut/teamcut/pkg/partition"
)

// storeTest exercises the Store contract against any backend.
func storeTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	rec := NewRecord("small.in", partition.Candidate{
		Teams:     []int{1, 2, 1, 2},
		TeamCount: 2,
		Score:     291.8,
	}, partition.Parts{Conflict: 20, TeamPenalty: 271.8, Balance: 1}, 42)

	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Instance != rec.Instance || got.Score != rec.Score || got.Seed != rec.Seed {
		t.Errorf("Get = %+v, want %+v", got, rec)
	}
	if len(got.Teams) != len(rec.Teams) {
		t.Fatalf("Teams length = %d, want %d", len(got.Teams), len(rec.Teams))
	}
	for i := range rec.Teams {
		if got.Teams[i] != rec.Teams[i] {
			t.Errorf("Teams[%d] = %d, want %d", i, got.Teams[i], rec.Teams[i])
		}
	}

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}

	// A second record with a later timestamp lists first.
	later := NewRecord("large.in", partition.Candidate{Teams: []int{1}, TeamCount: 1, Score: 100}, partition.Parts{}, 7)
	later.CreatedAt = rec.CreatedAt.Add(time.Second)
	if err := s.Put(ctx, later); err != nil {
		t.Fatalf("Put: %v", err)
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}
	if records[0].ID != later.ID {
		t.Errorf("List[0].ID = %s, want newest %s", records[0].ID, later.ID)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); err != ErrNotFound {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	storeTest(t, s)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()
	storeTest(t, s)
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	rec := NewRecord("persist.in", partition.Candidate{Teams: []int{1, 1}, TeamCount: 1, Score: 50}, partition.Parts{}, 1)
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Close()

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Instance != rec.Instance {
		t.Errorf("Instance = %s, want %s", got.Instance, rec.Instance)
	}
}

func TestNewRecord(t *testing.T) {
	a := NewRecord("x.in", partition.Candidate{Score: 1}, partition.Parts{}, 0)
	b := NewRecord("x.in", partition.Candidate{Score: 1}, partition.Parts{}, 0)

	if a.ID == "" || b.ID == "" {
		t.Fatal("NewRecord must assign an ID")
	}
	if a.ID == b.ID {
		t.Error("records must receive distinct IDs")
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}
