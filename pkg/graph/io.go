package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/teamcut/teamcut/pkg/errors"
)

// nodeLink mirrors the node-link JSON interchange format.
type nodeLink struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Graph      map[string]any `json:"graph,omitempty"`
	Nodes      []nodeLinkNode `json:"nodes"`
	Links      []nodeLinkEdge `json:"links"`
}

type nodeLinkNode struct {
	ID int `json:"id"`
}

type nodeLinkEdge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight int `json:"weight"`
}

// ReadInstance decodes a node-link instance from r and validates it.
// Use ReadInstanceFile for files.
func ReadInstance(r io.Reader) (*Graph, error) {
	var nl nodeLink
	if err := json.NewDecoder(r).Decode(&nl); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed instance")
	}

	if nl.Directed {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "instance must be undirected")
	}
	if nl.Multigraph {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "instance must not be a multigraph")
	}

	// Vertices must be exactly 0..n-1, in any order.
	n := len(nl.Nodes)
	seen := make([]bool, n)
	for _, nd := range nl.Nodes {
		if nd.ID < 0 || nd.ID >= n || seen[nd.ID] {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "vertices must be numbered 0..%d without gaps", n-1)
		}
		seen[nd.ID] = true
	}

	edges := make([]Edge, len(nl.Links))
	for i, l := range nl.Links {
		edges[i] = Edge{U: l.Source, V: l.Target, Weight: l.Weight}
	}

	g, err := New(n, edges)
	if err != nil {
		return nil, err
	}
	if err := ValidateInstance(g); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadInstanceFile reads a node-link instance file and returns the graph.
// Files larger than InputSizeLimit are rejected before decoding.
func ReadInstanceFile(path string) (*Graph, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() >= InputSizeLimit {
		return nil, errors.New(errors.ErrCodeFileTooBig, "instance file %s exceeds %d bytes", path, InputSizeLimit)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadInstance(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

// WriteInstance encodes g in node-link format to w.
// Output is deterministic: vertices and edges keep their construction order.
func WriteInstance(g *Graph, w io.Writer) error {
	nl := nodeLink{
		Nodes: make([]nodeLinkNode, g.NumVertices()),
		Links: make([]nodeLinkEdge, g.NumEdges()),
	}
	for v := range nl.Nodes {
		nl.Nodes[v] = nodeLinkNode{ID: v}
	}
	for i, e := range g.Edges() {
		nl.Links[i] = nodeLinkEdge{Source: e.U, Target: e.V, Weight: e.Weight}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(nl); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteInstanceFile writes g to a node-link instance file.
// Refuses to replace an existing file unless overwrite is set.
func WriteInstanceFile(g *Graph, path string, overwrite bool) error {
	if err := checkOverwrite(path, overwrite); err != nil {
		return err
	}
	if err := ValidateInstance(g); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteInstance(g, f)
}

// WriteAssignment encodes teams as a JSON array indexed by vertex id.
func WriteAssignment(teams []int, w io.Writer) error {
	if err := json.NewEncoder(w).Encode(teams); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteAssignmentFile validates teams against g and writes it to a solution
// file. Refuses to replace an existing file unless overwrite is set.
func WriteAssignmentFile(g *Graph, teams []int, path string, overwrite bool) error {
	if err := checkOverwrite(path, overwrite); err != nil {
		return err
	}
	if err := ValidateAssignment(g, teams); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteAssignment(teams, f)
}

// ReadAssignment decodes a solution from r and validates it against g.
func ReadAssignment(g *Graph, r io.Reader) ([]int, error) {
	var teams []int
	if err := json.NewDecoder(r).Decode(&teams); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed solution")
	}
	if err := ValidateAssignment(g, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ReadAssignmentFile reads a solution file and validates it against g.
// Files larger than OutputSizeLimit are rejected before decoding.
func ReadAssignmentFile(g *Graph, path string) ([]int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() >= OutputSizeLimit {
		return nil, errors.New(errors.ErrCodeFileTooBig, "solution file %s exceeds %d bytes", path, OutputSizeLimit)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	teams, err := ReadAssignment(g, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return teams, nil
}

func checkOverwrite(path string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return errors.New(errors.ErrCodeFileExists, "%s already exists; move it or enable overwrite", path)
	}
	return nil
}
