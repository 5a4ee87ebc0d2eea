package archive

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/teamcut/teamcut/pkg/errors"
)

func TestTar(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "solutions")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	files := map[string]string{
		"b.out":        "[1,2]\n",
		"a.out":        "[1,1]\n",
		"nested/c.out": "[2,1]\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := Tar(dir, &buf); err != nil {
		t.Fatalf("Tar: %v", err)
	}

	tr := tar.NewReader(&buf)
	var names []string
	extracted := map[string]string{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		names = append(names, hdr.Name)
		extracted[hdr.Name] = string(data)
	}

	// Entries are sorted and prefixed with the directory base name.
	want := []string{"solutions/a.out", "solutions/b.out", "solutions/nested/c.out"}
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, names[i], want[i])
		}
	}
	if extracted["solutions/a.out"] != "[1,1]\n" {
		t.Errorf("a.out content = %q", extracted["solutions/a.out"])
	}
}

func TestTarRejectsNonDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.out")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	if err := Tar(path, &buf); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("expected INVALID_PATH, got %v", err)
	}
}

func TestTarFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "out")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "a.out"), []byte("[1]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	archivePath := filepath.Join(dir, "out.tar")
	if err := TarFile(src, archivePath, false); err != nil {
		t.Fatalf("TarFile: %v", err)
	}

	if err := TarFile(src, archivePath, false); !errors.Is(err, errors.ErrCodeFileExists) {
		t.Errorf("expected FILE_EXISTS, got %v", err)
	}
	if err := TarFile(src, archivePath, true); err != nil {
		t.Errorf("overwrite rejected: %v", err)
	}
}
