package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teamcut/teamcut/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamcut.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Solver.SamplesPerTeamCount != 3 {
		t.Errorf("SamplesPerTeamCount = %d, want 3", cfg.Solver.SamplesPerTeamCount)
	}
	if cfg.Store.Backend != StoreBackendNone {
		t.Errorf("Backend = %q, want %q", cfg.Store.Backend, StoreBackendNone)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[solver]
samples_per_team_count = 5

[store]
backend = "redis"

[store.redis]
addr = "redis.internal:6379"

[server]
addr = ":9090"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Solver.SamplesPerTeamCount != 5 {
		t.Errorf("SamplesPerTeamCount = %d, want 5", cfg.Solver.SamplesPerTeamCount)
	}
	// Untouched budgets keep their defaults.
	if cfg.Solver.CutoffRatio != 1000 {
		t.Errorf("CutoffRatio = %v, want 1000", cfg.Solver.CutoffRatio)
	}
	if cfg.Store.Backend != StoreBackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Store.Redis.Addr)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "MalformedTOML",
			content:  "[solver\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name: "NegativeBudget",
			content: `
[solver]
improvement_iterations = -1
`,
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
