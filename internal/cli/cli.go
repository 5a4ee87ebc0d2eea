// Package cli implements the teamcut command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teamcut/teamcut/pkg/buildinfo"
	"github.com/teamcut/teamcut/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "teamcut"

	// inputExt and outputExt are the instance and solution file extensions
	// the batch runner matches.
	inputExt  = ".in"
	outputExt = ".out"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultFileConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "teamcut",
		Short:        "Teamcut partitions weighted graphs into balanced teams",
		Long:         `Teamcut is a heuristic solver that partitions the vertices of a weighted undirected graph into teams, trading off intra-team conflict weight, team count, and team-size balance.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to teamcut.toml (optional)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.archiveCommand())
	root.AddCommand(c.resultsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore creates the result store selected by configuration.
// Backend "none" (or empty) disables persistence and returns nil.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	switch c.Config.Store.Backend {
	case "", StoreBackendNone:
		return nil, nil
	case StoreBackendMemory:
		return store.NewMemoryStore(), nil
	case StoreBackendFile:
		dir := c.Config.Store.Dir
		if dir == "" {
			var err error
			if dir, err = dataDir(); err != nil {
				return nil, err
			}
		}
		return store.NewFileStore(dir)
	case StoreBackendRedis:
		return store.NewRedisStore(ctx, c.Config.Store.Redis)
	case StoreBackendMongo:
		return store.NewMongoStore(ctx, c.Config.Store.Mongo)
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Config.Store.Backend)
	}
}

// requireStore is like newStore but falls back to the file backend when
// persistence is disabled, for commands that only make sense with a store.
func (c *CLI) requireStore(ctx context.Context) (store.Store, error) {
	st, err := c.newStore(ctx)
	if err != nil || st != nil {
		return st, err
	}
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the result directory using XDG standard
// (~/.local/share/teamcut/results/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "results"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "results"), nil
}
