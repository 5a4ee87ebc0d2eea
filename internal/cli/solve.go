package cli

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/errors"
	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/partition"
	"github.com/teamcut/teamcut/pkg/store"
)

// solveOpts holds the command-line flags shared by solve and run.
type solveOpts struct {
	output    string // output file path (derived from input if empty)
	overwrite bool   // replace existing solution files
	seed      int64  // random seed (0 = time-based)
	persist   bool   // record the result in the configured store
}

// solveCommand creates the solve command for a single instance.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [instance.in]",
		Short: "Solve a single instance and write its team assignment",
		Long: `Solve a single instance and write its team assignment.

The instance is a node-link JSON file; the solution is a JSON array of team
identifiers indexed by vertex, written next to the instance with an .out
extension unless --output is given.

When no instance is named, an interactive picker lists the .in files in the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				picked, err := pickInstance(".")
				if err != nil {
					return err
				}
				if picked == "" {
					return nil // Picker dismissed
				}
				input = picked
			}
			return c.runSolve(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "solution file (defaults to instance path with .out)")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "replace an existing solution file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&opts.persist, "store", false, "record the result in the configured store")

	return cmd
}

// runSolve loads, solves, and persists one instance.
func (c *CLI) runSolve(ctx context.Context, input string, opts solveOpts) error {
	g, err := graph.ReadInstanceFile(input)
	if err != nil {
		return fmt.Errorf("load instance: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	solver := partition.New(c.Config.Solver, rand.New(rand.NewSource(seed)), loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %s...", filepath.Base(input)))
	spinner.Start()

	best, err := solver.Solve(ctx, g)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		output = deriveOutputPath(input)
	}
	if err := graph.WriteAssignmentFile(g, best.Teams, output, opts.overwrite); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}

	parts := partition.ScoreParts(g, best.Teams)
	printSuccess("Solved %s", filepath.Base(input))
	printScore(filepath.Base(input), best.Score, parts.Conflict, parts.TeamPenalty, parts.Balance, best.TeamCount)
	printFile(output)

	if opts.persist {
		if err := c.persistResult(ctx, filepath.Base(input), best, parts, seed); err != nil {
			printWarning("Result not stored: %v", err)
		}
	}
	return nil
}

// persistResult records a solved candidate in the configured store.
func (c *CLI) persistResult(ctx context.Context, instance string, best partition.Candidate, parts partition.Parts, seed int64) error {
	if err := errors.ValidateInstanceName(instance); err != nil {
		return err
	}
	st, err := c.requireStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	rec := store.NewRecord(instance, best, parts, seed)
	if err := st.Put(ctx, rec); err != nil {
		return err
	}
	printDetail("Stored as %s", rec.ID)
	return nil
}

// deriveOutputPath maps instance.in to instance.out, appending .out when the
// input has a different extension.
func deriveOutputPath(input string) string {
	if strings.HasSuffix(input, inputExt) {
		return strings.TrimSuffix(input, inputExt) + outputExt
	}
	return input + outputExt
}
