package partition

import "sort"

// Candidate is a scored assignment under consideration by the search.
// Once placed in a Leaderboard it is never mutated, only superseded.
type Candidate struct {
	Teams     []int   // team label per vertex
	TeamCount int     // number of teams the candidate was generated with
	Score     float64 // cached score, lower is better
}

// Leaderboard is a bounded collection of the best-scoring candidates seen so
// far, kept sorted ascending by score. The worst entry is evicted when a
// better candidate arrives at capacity.
type Leaderboard struct {
	capacity int
	items    []Candidate
}

// NewLeaderboard creates a leaderboard holding at most capacity candidates.
func NewLeaderboard(capacity int) *Leaderboard {
	return &Leaderboard{capacity: capacity}
}

// Update inserts c if the leaderboard has free capacity or c beats the
// current worst entry. The sort is stable, so equal scores keep their
// insertion order.
func (l *Leaderboard) Update(c Candidate) {
	if len(l.items) >= l.capacity && l.items[len(l.items)-1].Score <= c.Score {
		return
	}

	l.items = append(l.items, c)
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].Score < l.items[j].Score
	})
	if len(l.items) > l.capacity {
		l.items = l.items[:l.capacity]
	}
}

// Len returns the number of retained candidates.
func (l *Leaderboard) Len() int { return len(l.items) }

// Candidates returns the retained candidates in ascending score order.
// Callers must not modify the returned slice.
func (l *Leaderboard) Candidates() []Candidate { return l.items }

// Best returns the best candidate and true, or a zero Candidate and false
// when the leaderboard is empty.
func (l *Leaderboard) Best() (Candidate, bool) {
	if len(l.items) == 0 {
		return Candidate{}, false
	}
	return l.items[0], true
}
