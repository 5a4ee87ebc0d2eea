package partition

import (
	"math"
	"testing"

	"github.com/teamcut/teamcut/pkg/graph"
)

// cycle4 builds the 4-vertex cycle with all edge weights 10.
func cycle4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4, []graph.Edge{
		{U: 0, V: 1, Weight: 10},
		{U: 1, V: 2, Weight: 10},
		{U: 2, V: 3, Weight: 10},
		{U: 3, V: 0, Weight: 10},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreParts(t *testing.T) {
	g := cycle4(t)

	tests := []struct {
		name         string
		teams        []int
		wantConflict float64
		wantPenalty  float64
		wantBalance  float64
	}{
		{
			name:         "SingleTeam",
			teams:        []int{1, 1, 1, 1},
			wantConflict: 40,
			wantPenalty:  100 * math.Exp(0.5),
			wantBalance:  1, // zero imbalance, exp(0)
		},
		{
			name:         "TwoBalancedTeams",
			teams:        []int{1, 1, 2, 2},
			wantConflict: 20,
			wantPenalty:  100 * math.Exp(1.0),
			wantBalance:  1,
		},
		{
			name:         "FourTeamsNoConflict",
			teams:        []int{1, 2, 3, 4},
			wantConflict: 0,
			wantPenalty:  100 * math.Exp(2.0),
			wantBalance:  1,
		},
		{
			// Labels {1,3}: the team count is the max identifier, so the
			// skipped label 2 still counts toward k and distorts the
			// balance target 1/k.
			name:         "GapInLabels",
			teams:        []int{1, 1, 3, 3},
			wantConflict: 20,
			wantPenalty:  100 * math.Exp(1.5),
			wantBalance:  math.Exp(70 * math.Sqrt(2*(0.5-1.0/3)*(0.5-1.0/3))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := ScoreParts(g, tt.teams)

			if !almostEqual(parts.Conflict, tt.wantConflict) {
				t.Errorf("Conflict = %v, want %v", parts.Conflict, tt.wantConflict)
			}
			if !almostEqual(parts.TeamPenalty, tt.wantPenalty) {
				t.Errorf("TeamPenalty = %v, want %v", parts.TeamPenalty, tt.wantPenalty)
			}
			if !almostEqual(parts.Balance, tt.wantBalance) {
				t.Errorf("Balance = %v, want %v", parts.Balance, tt.wantBalance)
			}
			if got, want := Score(g, tt.teams), parts.Total(); !almostEqual(got, want) {
				t.Errorf("Score = %v, want Total %v", got, want)
			}
		})
	}
}

// The single-team assignment beats the balanced two-team split on this
// instance: the team-count penalty dominates the saved conflict weight.
func TestScorePenaltyDominatesSmallK(t *testing.T) {
	g := cycle4(t)

	single := Score(g, []int{1, 1, 1, 1})
	split := Score(g, []int{1, 1, 2, 2})
	if single >= split {
		t.Errorf("single-team score %v should beat two-team score %v", single, split)
	}
}

func TestScoreDeterminism(t *testing.T) {
	g := cycle4(t)
	teams := []int{1, 2, 1, 2}

	first := Score(g, teams)
	for i := 0; i < 10; i++ {
		if got := Score(g, teams); got != first {
			t.Fatalf("Score changed between calls: %v != %v", got, first)
		}
	}
}

// For fixed conflict and zero imbalance, increasing k strictly increases the
// total score.
func TestScoreMonotonicTeamPenalty(t *testing.T) {
	g, err := graph.New(12, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prev := math.Inf(-1)
	for _, k := range []int{1, 2, 3, 4, 6, 12} {
		teams := make([]int, 12)
		for i := range teams {
			teams[i] = i%k + 1
		}
		score := Score(g, teams)
		if score <= prev {
			t.Errorf("k=%d: score %v not greater than %v", k, score, prev)
		}
		prev = score
	}
}

// With identical k and conflict, the more balanced assignment scores
// strictly lower.
func TestScoreBalanceSharpness(t *testing.T) {
	g, err := graph.New(6, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	balanced := Score(g, []int{1, 1, 1, 2, 2, 2})
	skewed := Score(g, []int{1, 1, 1, 1, 1, 2})
	if balanced >= skewed {
		t.Errorf("balanced score %v should beat skewed score %v", balanced, skewed)
	}
}

func TestNumTeams(t *testing.T) {
	tests := []struct {
		name  string
		teams []int
		want  int
	}{
		{"Empty", nil, 0},
		{"Single", []int{1, 1, 1}, 1},
		{"Contiguous", []int{1, 2, 3, 2}, 3},
		{"Gap", []int{1, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumTeams(tt.teams); got != tt.want {
				t.Errorf("NumTeams = %d, want %d", got, tt.want)
			}
		})
	}
}
