package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resultsCommand creates the results command group for the result store.
func (c *CLI) resultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Manage stored solve results",
	}

	cmd.AddCommand(c.resultsListCommand())
	cmd.AddCommand(c.resultsShowCommand())
	cmd.AddCommand(c.resultsDeleteCommand())

	return cmd
}

// resultsListCommand creates the "results list" subcommand.
func (c *CLI) resultsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.requireStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printInfo("No stored results")
				return nil
			}

			for _, rec := range records {
				fmt.Println(StyleDim.Render(rec.CreatedAt.Format("2006-01-02 15:04")) + "  " +
					StyleValue.Render(rec.ID) + "  " +
					rec.Instance + "  " +
					StyleNumber.Render(fmt.Sprintf("%.2f", rec.Score)))
			}
			return nil
		},
	}
}

// resultsShowCommand creates the "results show" subcommand.
func (c *CLI) resultsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored result in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.requireStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printKeyValue("id", rec.ID)
			printKeyValue("instance", rec.Instance)
			printKeyValue("score", fmt.Sprintf("%.4f", rec.Score))
			printKeyValue("conflict", fmt.Sprintf("%.0f", rec.Conflict))
			printKeyValue("team penalty", fmt.Sprintf("%.4f", rec.TeamPenalty))
			printKeyValue("balance", fmt.Sprintf("%.4f", rec.Balance))
			printKeyValue("teams", fmt.Sprintf("%d", rec.TeamCount))
			printKeyValue("seed", fmt.Sprintf("%d", rec.Seed))
			printKeyValue("created", rec.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

// resultsDeleteCommand creates the "results delete" subcommand.
func (c *CLI) resultsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.requireStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
