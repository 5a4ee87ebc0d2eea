package partition

import (
	"math/rand"

	"github.com/teamcut/teamcut/pkg/graph"
)

// Random generates a balanced random assignment of g's vertices into
// numTeams teams. Labels 1..numTeams are laid out round-robin until every
// vertex has one, then shuffled uniformly, so team sizes differ by at most
// one and every identifier 1..numTeams appears at least once whenever
// numTeams <= n. The graph is not touched; the result is a fresh slice.
func Random(g *graph.Graph, numTeams int, rng *rand.Rand) []int {
	n := g.NumVertices()
	teams := make([]int, n)
	for i := 0; i < n; i++ {
		teams[i] = i%numTeams + 1
	}
	rng.Shuffle(n, func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})
	return teams
}
