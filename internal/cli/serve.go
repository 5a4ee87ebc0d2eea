package cli

import (
	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/internal/server"
)

// serveCommand creates the serve command exposing the solver over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP.

POST a node-link instance to /api/v1/solve to solve it; solved results are
persisted in the configured store and listed under /api/v1/results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			st, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}

			srv := server.New(st, c.Config.Solver, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config, then :8080)")

	return cmd
}
