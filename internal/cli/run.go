package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/partition"
	"github.com/teamcut/teamcut/pkg/store"
)

// runCommand creates the run command: the batch driver over a directory of
// instances.
func (c *CLI) runCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "run <in-dir> <out-dir>",
		Short: "Solve every instance in a directory",
		Long: `Solve every instance in a directory.

Each <name>.in file in in-dir is solved and written to out-dir/<name>.out.
The output directory is created if it doesn't exist. A single random source
is shared across instances, so a fixed --seed reproduces the whole batch.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "replace existing solution files")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&opts.persist, "store", false, "record results in the configured store")

	return cmd
}

// runBatch solves every .in file under inDir.
func (c *CLI) runBatch(ctx context.Context, inDir, outDir string, opts solveOpts) error {
	instances, err := listInstances(inDir)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		printWarning("No %s files in %s", inputExt, inDir)
		return nil
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var st store.Store
	if opts.persist {
		if st, err = c.requireStore(ctx); err != nil {
			return err
		}
		defer st.Close()
	}

	prog := newProgress(c.Logger)
	solved := 0
	for _, input := range instances {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(input), inputExt)
		output := filepath.Join(outDir, name+outputExt)

		if err := c.solveOne(ctx, input, output, rng, st, seed, opts.overwrite); err != nil {
			printError("%s: %v", filepath.Base(input), err)
			continue
		}
		solved++
	}

	prog.done(fmt.Sprintf("Solved %d/%d instances", solved, len(instances)))
	return nil
}

// solveOne solves a single batch entry with the shared random source.
func (c *CLI) solveOne(ctx context.Context, input, output string, rng *rand.Rand, st store.Store, seed int64, overwrite bool) error {
	g, err := graph.ReadInstanceFile(input)
	if err != nil {
		return err
	}

	solver := partition.New(c.Config.Solver, rng, loggerFromContext(ctx))
	best, err := solver.Solve(ctx, g)
	if err != nil {
		return err
	}

	if err := graph.WriteAssignmentFile(g, best.Teams, output, overwrite); err != nil {
		return err
	}

	parts := partition.ScoreParts(g, best.Teams)
	printScore(filepath.Base(input), best.Score, parts.Conflict, parts.TeamPenalty, parts.Balance, best.TeamCount)

	if st != nil {
		rec := store.NewRecord(filepath.Base(input), best, parts, seed)
		if err := st.Put(ctx, rec); err != nil {
			printWarning("Result not stored: %v", err)
		}
	}
	return nil
}

// listInstances returns the sorted .in files directly under dir.
func listInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), inputExt) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
