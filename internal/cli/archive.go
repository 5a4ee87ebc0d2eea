package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/archive"
)

// archiveCommand creates the archive command for bundling solutions.
func (c *CLI) archiveCommand() *cobra.Command {
	var (
		output    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "archive <out-dir>",
		Short: "Bundle a solution directory into a tar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if output == "" {
				output = filepath.Base(filepath.Clean(dir)) + ".tar"
			}
			if err := archive.TarFile(dir, output, overwrite); err != nil {
				return fmt.Errorf("archive %s: %w", dir, err)
			}
			printSuccess("Archived %s", dir)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "archive path (defaults to <out-dir>.tar)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing archive")

	return cmd
}
