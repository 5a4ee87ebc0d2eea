// Package graph defines the weighted undirected graph model used by the
// teamcut solver, together with loading, validation, and output persistence.
//
// Graphs are simple: vertices are numbered 0..n-1 with no gaps, edges are
// unordered pairs of distinct vertices with integer weights in [1, MaxWeight],
// and no parallel edges are allowed. A Graph is immutable once constructed;
// the solver never mutates it and attaches team assignments externally as
// compact label slices indexed by vertex.
//
// # Instance Format
//
// Instances are stored in node-link JSON, the interchange format the problem
// corpus uses:
//
//	{
//	  "directed": false,
//	  "multigraph": false,
//	  "nodes": [{"id": 0}, {"id": 1}, ...],
//	  "links": [{"source": 0, "target": 1, "weight": 10}, ...]
//	}
//
// Solutions are stored as a JSON array of team identifiers indexed by vertex.
package graph

import (
	"github.com/teamcut/teamcut/pkg/errors"
)

// Instance limits. These bound problem size and guarantee the solver's
// team-count sweep has meaningful work to do.
const (
	// MaxWeight is the maximum edge weight.
	MaxWeight = 1000

	// MaxEdges is the maximum number of edges in an instance.
	MaxEdges = 10000

	// MinTotalWeight is the minimum total edge weight an instance must carry
	// (0.05 * MaxWeight * MaxEdges).
	MinTotalWeight = MaxWeight * MaxEdges / 20

	// InputSizeLimit is the maximum instance file size in bytes.
	InputSizeLimit = 1000000

	// OutputSizeLimit is the maximum solution file size in bytes.
	OutputSizeLimit = 10000
)

// Edge is an undirected edge between two distinct vertices.
// U and V are vertex indices; Weight is in [1, MaxWeight].
type Edge struct {
	U      int
	V      int
	Weight int
}

// Graph is an immutable weighted undirected simple graph with vertices
// numbered 0..n-1. Construct with New; the zero value is an empty graph.
type Graph struct {
	n           int
	edges       []Edge
	totalWeight int
}

// New builds a graph with n vertices and the given edges.
// It rejects self-loops, parallel edges, out-of-range endpoints,
// and weights outside [1, MaxWeight].
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "vertex count cannot be negative")
	}

	seen := make(map[[2]int]struct{}, len(edges))
	total := 0

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge (%d,%d) references unknown vertex", e.U, e.V)
		}
		if e.U == e.V {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "self-loop on vertex %d", e.U)
		}
		if e.Weight < 1 || e.Weight > MaxWeight {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge (%d,%d) weight %d out of range [1,%d]", e.U, e.V, e.Weight, MaxWeight)
		}

		key := [2]int{e.U, e.V}
		if e.U > e.V {
			key = [2]int{e.V, e.U}
		}
		if _, dup := seen[key]; dup {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "parallel edge (%d,%d)", e.U, e.V)
		}
		seen[key] = struct{}{}
		total += e.Weight
	}

	g := &Graph{
		n:           n,
		edges:       make([]Edge, len(edges)),
		totalWeight: total,
	}
	copy(g.edges, edges)
	return g, nil
}

// NumVertices returns the vertex count n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int { return g.totalWeight }

// Edges returns the edge list. Callers must not modify the returned slice.
func (g *Graph) Edges() []Edge { return g.edges }

// ValidateInstance checks the instance-level invariants on top of the
// structural ones enforced by New: edge count within MaxEdges and total
// weight at least MinTotalWeight. Input loading runs this before handing
// a graph to the solver.
func ValidateInstance(g *Graph) error {
	if g.NumEdges() > MaxEdges {
		return errors.New(errors.ErrCodeInvalidGraph, "too many edges: %d > %d", g.NumEdges(), MaxEdges)
	}
	if g.TotalWeight() < MinTotalWeight {
		return errors.New(errors.ErrCodeInvalidGraph, "total edge weight %d below minimum %d", g.TotalWeight(), MinTotalWeight)
	}
	return nil
}

// ValidateAssignment checks that teams assigns every vertex of g a positive
// team identifier not exceeding the vertex count.
func ValidateAssignment(g *Graph, teams []int) error {
	if len(teams) != g.NumVertices() {
		return errors.New(errors.ErrCodeInvalidAssignment, "assignment covers %d vertices, graph has %d", len(teams), g.NumVertices())
	}
	for v, t := range teams {
		if t < 1 {
			return errors.New(errors.ErrCodeInvalidAssignment, "vertex %d has non-positive team %d", v, t)
		}
		if t > g.NumVertices() {
			return errors.New(errors.ErrCodeInvalidAssignment, "vertex %d team %d exceeds vertex count %d", v, t, g.NumVertices())
		}
	}
	return nil
}
