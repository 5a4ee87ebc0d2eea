// Package pkg provides the core libraries for teamcut graph partitioning.
//
// # Overview
//
// Teamcut splits the vertices of a weighted undirected graph into teams,
// minimizing the weight of intra-team conflict edges plus exponential
// penalties on the team count and on team-size imbalance. The pkg directory
// is organized into six areas:
//
//  1. [graph] - Instance model, validation, and node-link JSON I/O
//  2. [partition] - Cost model and the three-phase randomized solver
//  3. [store] - Pluggable persistence for solved results
//  4. [render] - Graphviz visualization of assignments
//  5. [archive] - Tar bundling of solution directories
//  6. [errors] / [observability] - Structured errors and instrumentation hooks
//
// # Architecture
//
// The typical data flow through teamcut:
//
//	node-link JSON instance
//	         ↓
//	    [graph] package (decode + validate)
//	         ↓
//	    [partition] package (sweep → resample → improve)
//	         ↓
//	    [store] / [render] / solution file output
//
// # Quick Start
//
// Load an instance and solve it:
//
//	import (
//	    "context"
//	    "math/rand"
//	    "github.com/teamcut/teamcut/pkg/graph"
//	    "github.com/teamcut/teamcut/pkg/partition"
//	)
//
//	// 1. Load the instance
//	g, _ := graph.ReadInstanceFile("large.in")
//
//	// 2. Solve with a fixed seed for reproducibility
//	solver := partition.New(partition.DefaultConfig(), rand.New(rand.NewSource(42)), nil)
//	best, _ := solver.Solve(context.Background(), g)
//
//	// 3. Write the assignment
//	_ = graph.WriteAssignmentFile(g, best.Teams, "large.out", false)
//
// # Main Packages
//
// [graph] - The immutable weighted graph model with instance limits, the
// node-link JSON interchange format, and solution file round-tripping.
//
// [partition] - The cost model (conflict weight, team-count penalty, balance
// penalty), balanced random assignment generation, bounded leaderboards,
// worst-team perturbation, and the three-phase Solver tying them together.
//
// [store] - Result persistence behind a single Store interface with memory,
// file, Redis, and MongoDB backends.
//
// [render] - DOT generation grouping vertices into one cluster per team,
// with SVG and PNG rendering via Graphviz.
//
// [archive] - Deterministic tar archives of solution directories.
//
// [errors] - Structured error codes shared by the CLI and the HTTP API.
//
// [observability] - Solver and store hooks with no-op defaults, registered
// at startup by the binary that wants instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/partition/...  # Specific package
//
// [graph]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/graph
// [partition]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/partition
// [store]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/store
// [render]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/render
// [archive]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/archive
// [errors]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/errors
// [observability]: https://pkg.go.dev/github.com/teamcut/teamcut/pkg/observability
package pkg
