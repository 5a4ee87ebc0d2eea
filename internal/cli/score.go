package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/partition"
)

// scoreCommand creates the score command: evaluate an existing solution.
func (c *CLI) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <instance.in> <solution.out>",
		Short: "Score an existing solution against its instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadInstanceFile(args[0])
			if err != nil {
				return fmt.Errorf("load instance: %w", err)
			}
			teams, err := graph.ReadAssignmentFile(g, args[1])
			if err != nil {
				return fmt.Errorf("load solution: %w", err)
			}

			parts := partition.ScoreParts(g, teams)
			printKeyValue("total", fmt.Sprintf("%.4f", parts.Total()))
			printKeyValue("conflict", fmt.Sprintf("%.0f", parts.Conflict))
			printKeyValue("team penalty", fmt.Sprintf("%.4f", parts.TeamPenalty))
			printKeyValue("balance", fmt.Sprintf("%.4f", parts.Balance))
			printKeyValue("teams", fmt.Sprintf("%d", partition.NumTeams(teams)))
			return nil
		},
	}
}
