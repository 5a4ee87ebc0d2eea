package partition

import (
	"math/rand"
	"slices"

	"github.com/teamcut/teamcut/pkg/graph"
)

// worstTeam returns the team with the highest internal conflict weight.
// Slot 0 of the weight table is a placeholder so that an assignment with no
// intra-team edges at all selects 0, a label no vertex holds; ties go to the
// lowest-numbered team via first occurrence of the maximum.
func worstTeam(g *graph.Graph, teams []int) int {
	weights := make([]int, NumTeams(teams)+1)
	for _, e := range g.Edges() {
		if teams[e.U] == teams[e.V] {
			weights[teams[e.U]] += e.Weight
		}
	}

	worst := 0
	for t, w := range weights {
		if w > weights[worst] {
			worst = t
		}
	}
	return worst
}

// ImproveWorstTeam performs one stochastic perturbation step: every vertex on
// the team with the highest internal conflict weight swaps labels with a
// uniformly random vertex. Swaps are independent per vertex — a vertex may
// swap with itself, and two worst-team vertices may swap with each other,
// leaving them unchanged net of pairwise effects.
//
// The returned assignment is a new slice; the input is not modified. No
// improvement is guaranteed: callers must re-score and accept or reject.
func ImproveWorstTeam(g *graph.Graph, teams []int, rng *rand.Rand) []int {
	next := slices.Clone(teams)
	if len(teams) == 0 {
		return next
	}

	worst := worstTeam(g, teams)
	for i, t := range teams {
		if t == worst {
			j := rng.Intn(len(next))
			next[i], next[j] = next[j], next[i]
		}
	}
	return next
}
