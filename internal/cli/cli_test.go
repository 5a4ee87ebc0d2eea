package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"StandardExtension", "large.in", "large.out"},
		{"WithDirectory", "instances/large.in", "instances/large.out"},
		{"OtherExtension", "large.json", "large.json.out"},
		{"NoExtension", "large", "large.out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOutputPath(tt.input); got != tt.want {
				t.Errorf("deriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListInstances(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.in", "a.in", "c.out", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.in"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	got, err := listInstances(dir)
	if err != nil {
		t.Fatalf("listInstances: %v", err)
	}

	want := []string{filepath.Join(dir, "a.in"), filepath.Join(dir, "b.in")}
	if len(got) != len(want) {
		t.Fatalf("listInstances = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listInstances[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestListInstancesMissingDir(t *testing.T) {
	if _, err := listInstances(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
