// Package store persists solved results.
//
// A Record captures one solve of one instance: the assignment, its score
// components, and the seed that produced it. Stores are pluggable backends
// behind a single interface:
//   - memory: in-process map for tests and throwaway runs
//   - file: JSON files in a sharded directory for CLI usage
//   - redis: Redis-backed storage for shared deployments
//   - mongo: MongoDB-backed storage for long-term archives
//
// # Usage
//
//	st, err := store.NewFileStore("~/.local/share/teamcut/results")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	rec := store.NewRecord("large.in", best, parts, seed)
//	if err := st.Put(ctx, rec); err != nil {
//	    return err
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/teamcut/teamcut/pkg/partition"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Record is one persisted solve result.
type Record struct {
	ID          string    `json:"id" bson:"_id"`
	Instance    string    `json:"instance" bson:"instance"`
	Score       float64   `json:"score" bson:"score"`
	Conflict    float64   `json:"conflict" bson:"conflict"`
	TeamPenalty float64   `json:"team_penalty" bson:"team_penalty"`
	Balance     float64   `json:"balance" bson:"balance"`
	TeamCount   int       `json:"team_count" bson:"team_count"`
	Teams       []int     `json:"teams" bson:"teams"`
	Seed        int64     `json:"seed" bson:"seed"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord builds a Record for a solved candidate with a fresh UUID and the
// current time.
func NewRecord(instance string, c partition.Candidate, parts partition.Parts, seed int64) Record {
	return Record{
		ID:          uuid.NewString(),
		Instance:    instance,
		Score:       c.Score,
		Conflict:    parts.Conflict,
		TeamPenalty: parts.TeamPenalty,
		Balance:     parts.Balance,
		TeamCount:   c.TeamCount,
		Teams:       c.Teams,
		Seed:        seed,
		CreatedAt:   time.Now().UTC(),
	}
}

// Store persists solve results.
type Store interface {
	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
