package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/teamcut/teamcut/pkg/errors"
	"github.com/teamcut/teamcut/pkg/partition"
	"github.com/teamcut/teamcut/pkg/store"
)

// Store backend names recognized in configuration.
const (
	StoreBackendNone   = "none"
	StoreBackendMemory = "memory"
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
	StoreBackendMongo  = "mongo"
)

// Config is the teamcut.toml file layout. All sections are optional; missing
// values fall back to defaults.
//
// Example:
//
//	[solver]
//	samples_per_team_count = 3
//	cutoff_ratio = 1000
//
//	[store]
//	backend = "redis"
//
//	[store.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Solver partition.Config `toml:"solver"`
	Store  StoreConfig      `toml:"store"`
	Server ServerConfig     `toml:"server"`
}

// StoreConfig selects and configures the result store backend.
type StoreConfig struct {
	Backend string            `toml:"backend"`
	Dir     string            `toml:"dir"` // file backend only
	Redis   store.RedisConfig `toml:"redis"`
	Mongo   store.MongoConfig `toml:"mongo"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultFileConfig returns the configuration used when no file is given:
// default solver budgets, no persistence, server on :8080.
func DefaultFileConfig() Config {
	return Config{
		Solver: partition.DefaultConfig(),
		Store:  StoreConfig{Backend: StoreBackendNone},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads a TOML configuration file, layering it over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Solver.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
