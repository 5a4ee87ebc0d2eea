package partition

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/teamcut/teamcut/pkg/errors"
	"github.com/teamcut/teamcut/pkg/graph"
)

// clusteredGraph builds two dense 5-vertex clusters joined by a light bridge,
// an instance where a two-team split is clearly favorable.
func clusteredGraph(t *testing.T) *graph.Graph {
	t.Helper()

	var edges []graph.Edge
	for _, base := range []int{0, 5} {
		for i := base; i < base+5; i++ {
			for j := i + 1; j < base+5; j++ {
				edges = append(edges, graph.Edge{U: i, V: j, Weight: 100})
			}
		}
	}
	edges = append(edges, graph.Edge{U: 4, V: 5, Weight: 1})

	g, err := graph.New(10, edges)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func newTestSolver(seed int64) *Solver {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)), log.New(io.Discard))
}

func TestSolveReturnsValidAssignment(t *testing.T) {
	g := clusteredGraph(t)

	best, err := newTestSolver(1).Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if err := graph.ValidateAssignment(g, best.Teams); err != nil {
		t.Errorf("ValidateAssignment: %v", err)
	}
	if got := Score(g, best.Teams); got != best.Score {
		t.Errorf("cached score %v does not match recomputed %v", best.Score, got)
	}
	if best.TeamCount != NumTeams(best.Teams) {
		t.Errorf("TeamCount = %d, want %d", best.TeamCount, NumTeams(best.Teams))
	}
}

// The sweep always samples the single-team assignment at team count 1, so the
// final result can never be worse than it.
func TestSolveNeverWorseThanSingleTeam(t *testing.T) {
	g := clusteredGraph(t)

	single := make([]int, g.NumVertices())
	for i := range single {
		single[i] = 1
	}
	bound := Score(g, single)

	best, err := newTestSolver(2).Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if best.Score > bound {
		t.Errorf("score %v worse than single-team bound %v", best.Score, bound)
	}
}

func TestSolveReproducible(t *testing.T) {
	g := clusteredGraph(t)

	a, err := newTestSolver(42).Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, err := newTestSolver(42).Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if a.Score != b.Score {
		t.Errorf("same seed produced scores %v and %v", a.Score, b.Score)
	}
	for i := range a.Teams {
		if a.Teams[i] != b.Teams[i] {
			t.Fatalf("same seed diverged at vertex %d", i)
		}
	}
}

func TestSolveDegenerateInstance(t *testing.T) {
	// Fewer than four edges: the sweep range is empty and the solver falls
	// back to a single team.
	g, err := graph.New(3, []graph.Edge{
		{U: 0, V: 1, Weight: 10},
		{U: 1, V: 2, Weight: 10},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	best, err := newTestSolver(1).Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if best.TeamCount != 1 {
		t.Errorf("TeamCount = %d, want 1", best.TeamCount)
	}
	for v, team := range best.Teams {
		if team != 1 {
			t.Errorf("vertex %d assigned team %d, want 1", v, team)
		}
	}
}

func TestSolveInvalidConfig(t *testing.T) {
	g := clusteredGraph(t)

	s := newTestSolver(1)
	s.Config.SamplesPerTeamCount = 0

	_, err := s.Solve(context.Background(), g)
	if err == nil {
		t.Fatal("expected error for zero sampling budget")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestSolveCancelled(t *testing.T) {
	g := clusteredGraph(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestSolver(1).Solve(ctx, g); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
