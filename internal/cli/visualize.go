package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/errors"
	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/render"
)

// visualizeCommand creates the visualize command for rendering a solved
// instance.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		format  string
		weights bool
	)

	cmd := &cobra.Command{
		Use:   "visualize <instance.in> <solution.out>",
		Short: "Render a solved instance as SVG, PNG, or DOT",
		Long: `Render a solved instance as SVG, PNG, or DOT.

Vertices are grouped into one cluster per team; intra-team edges (the
conflict weight the solver minimizes) are drawn red, crossing edges grey.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), args[0], args[1], output, format, weights)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to solution path with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().BoolVar(&weights, "weights", false, "label edges with their weights")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, instance, solution, output, format string, weights bool) error {
	g, err := graph.ReadInstanceFile(instance)
	if err != nil {
		return fmt.Errorf("load instance: %w", err)
	}
	teams, err := graph.ReadAssignmentFile(g, solution)
	if err != nil {
		return fmt.Errorf("load solution: %w", err)
	}

	dot := render.ToDOT(g, teams, render.Options{ShowWeights: weights})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown format %q (svg, png, dot)", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if output == "" {
		output = strings.TrimSuffix(solution, outputExt) + "." + format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", format)
	printFile(output)
	return nil
}
