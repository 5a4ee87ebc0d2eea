// Package render turns a graph and a team assignment into visualizations.
//
// The renderer emits Graphviz DOT with one cluster per team: intra-team
// edges (the conflict weight the solver minimizes) are drawn red, crossing
// edges grey. DOT output can be rendered to SVG or PNG via Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/teamcut/teamcut/pkg/graph"
)

// teamPalette cycles over team identifiers for node fill colors.
var teamPalette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
	"#ccebc5", "#ffed6f",
}

// Options configures DOT generation.
type Options struct {
	// ShowWeights labels every edge with its weight.
	ShowWeights bool
}

// ToDOT converts a graph and assignment to Graphviz DOT.
// Vertices are grouped into one cluster per populated team, so the rendered
// image shows the partition structure directly.
func ToDOT(g *graph.Graph, teams []int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=fdp;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, t := range usedTeams(teams) {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", t)
		fmt.Fprintf(&buf, "    label=\"team %d\";\n", t)
		buf.WriteString("    style=rounded;\n")
		for v, tv := range teams {
			if tv == t {
				fmt.Fprintf(&buf, "    %d [fillcolor=%q];\n", v, teamColor(t))
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{}
		if teams[e.U] == teams[e.V] {
			attrs = append(attrs, "color=\"#d73027\"", "penwidth=2")
		} else {
			attrs = append(attrs, "color=\"#bbbbbb\"")
		}
		if opts.ShowWeights {
			attrs = append(attrs, fmt.Sprintf("label=\"%d\"", e.Weight))
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// usedTeams returns the populated team identifiers in ascending order.
func usedTeams(teams []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, t := range teams {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Ints(out)
	return out
}

func teamColor(t int) string {
	return teamPalette[(t-1+len(teamPalette))%len(teamPalette)]
}
