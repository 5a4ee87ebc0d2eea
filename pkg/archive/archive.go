// Package archive bundles solution directories into tar files for
// submission or transfer.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teamcut/teamcut/pkg/errors"
)

// Tar writes a tar archive of every regular file in dir to w. Entries are
// named relative to the archive root using the directory's base name, and
// are added in sorted order so archives are deterministic.
func Tar(dir string, w io.Writer) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	var files []string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)

	base := filepath.Base(filepath.Clean(dir))
	tw := tar.NewWriter(w)
	for _, path := range files {
		if err := addFile(tw, dir, base, path); err != nil {
			return err
		}
	}
	return tw.Close()
}

// TarFile archives dir into a tar file at outPath.
// Refuses to replace an existing file unless overwrite is set.
func TarFile(dir, outPath string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return errors.New(errors.ErrCodeFileExists, "%s already exists; move it or enable overwrite", outPath)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	return Tar(dir, f)
}

func addFile(tw *tar.Writer, dir, base, path string) error {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("header %s: %w", path, err)
	}
	hdr.Name = base + "/" + strings.ReplaceAll(rel, string(filepath.Separator), "/")

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}
