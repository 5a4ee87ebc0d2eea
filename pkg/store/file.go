package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teamcut/teamcut/pkg/observability"
)

// FileStore persists records as JSON files for CLI usage.
// Records are sharded into subdirectories by ID prefix to avoid putting too
// many files in one directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Put stores a record.
func (s *FileStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	path := s.path(rec.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	observability.Store().OnPut(ctx, "file", len(rec.Teams))
	return nil
}

// Get retrieves a record by ID.
func (s *FileStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		observability.Store().OnGet(ctx, "file", false)
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt entry - treat as missing.
		_ = os.Remove(s.path(id))
		observability.Store().OnGet(ctx, "file", false)
		return Record{}, ErrNotFound
	}
	observability.Store().OnGet(ctx, "file", true)
	return rec, nil
}

// List returns all records, newest first.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	var out []Record
	err := filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil // Skip errors and non-record files, continue walking
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a record.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	observability.Store().OnDelete(ctx, "file")
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// path converts a record ID to a file path.
func (s *FileStore) path(id string) string {
	shard := "00"
	if len(id) >= 2 {
		shard = id[:2]
	}
	return filepath.Join(s.dir, shard, id+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
