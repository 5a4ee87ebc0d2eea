// Package partition implements the teamcut optimization engine.
//
// The engine partitions the vertices of a weighted undirected graph into
// teams, minimizing a cost with three terms: the total weight of edges whose
// endpoints share a team (conflict weight), an exponential penalty on the
// number of teams, and an exponential penalty on team-size imbalance.
//
// Assignments are compact label slices indexed by vertex: teams[v] is the
// positive team identifier of vertex v. The base graph is stored once and
// never copied; every candidate is just a label slice. All randomness flows
// through an explicit *rand.Rand so runs are reproducible from a single seed.
//
// The search itself (Solver) is a three-phase heuristic: a randomized sweep
// over team counts, resampling around the most promising counts, and a
// stochastic local-improvement step that perturbs the worst team.
package partition

import (
	"math"

	"github.com/teamcut/teamcut/pkg/graph"
)

// Cost model constants.
const (
	// KCoefficient scales the team-count penalty.
	KCoefficient = 100

	// KExp is the exponent rate of the team-count penalty.
	KExp = 0.5

	// BExp is the exponent rate of the balance penalty. It is deliberately
	// sharp: small relative imbalance already dominates the score.
	BExp = 70
)

// Parts holds the three cost components separately for diagnostics.
type Parts struct {
	Conflict    float64 // total weight of intra-team edges
	TeamPenalty float64 // KCoefficient * exp(KExp * k)
	Balance     float64 // exp(BExp * b)
}

// Total returns the sum of the three components.
func (p Parts) Total() float64 {
	return p.Conflict + p.TeamPenalty + p.Balance
}

// Score evaluates an assignment against g. Lower is better.
// It is a pure function: no randomness, no mutation of g or teams.
func Score(g *graph.Graph, teams []int) float64 {
	return ScoreParts(g, teams).Total()
}

// ScoreParts evaluates an assignment and returns the cost components.
//
// The team count k is the maximum team identifier in use, not the number of
// distinct identifiers: an assignment using labels {1,3} is charged for k=3.
// This matches the established cost model and is kept as-is; see NumTeams.
// The imbalance norm b ranges over populated teams only.
func ScoreParts(g *graph.Graph, teams []int) Parts {
	n := len(teams)
	if n == 0 {
		return Parts{}
	}

	k := NumTeams(teams)
	counts := make([]int, k+1)
	for _, t := range teams {
		counts[t]++
	}

	conflict := 0
	for _, e := range g.Edges() {
		if teams[e.U] == teams[e.V] {
			conflict += e.Weight
		}
	}

	var sq float64
	for t := 1; t <= k; t++ {
		if counts[t] == 0 {
			continue
		}
		d := float64(counts[t])/float64(n) - 1/float64(k)
		sq += d * d
	}
	b := math.Sqrt(sq)

	return Parts{
		Conflict:    float64(conflict),
		TeamPenalty: KCoefficient * math.Exp(KExp*float64(k)),
		Balance:     math.Exp(BExp * b),
	}
}

// NumTeams returns the team count of an assignment: the maximum team
// identifier in use, with gaps counting toward the total. Returns 0 for an
// empty assignment.
func NumTeams(teams []int) int {
	k := 0
	for _, t := range teams {
		if t > k {
			k = t
		}
	}
	return k
}
