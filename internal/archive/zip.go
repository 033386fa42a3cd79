// Package archive packages a finished report directory into the final
// incident zip.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// MetadataName is the operator summary file added last to every archive.
const MetadataName = "metadata.txt"

// Create writes a deflate-compressed zip of every regular file under srcDir
// to outPath, with entry paths relative to srcDir. After the walk it writes
// metadata.txt into srcDir and appends it to the archive, so the zip always
// carries exactly one metadata entry even when packaging runs again over the
// same tree. An existing archive at outPath is overwritten.
func Create(srcDir, outPath, metadata string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", outPath, err)
	}
	zw := zip.NewWriter(f)

	walkErr := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		if rel == MetadataName {
			// Rewritten and appended after the walk.
			return nil
		}
		return addFile(zw, p, rel)
	})
	if walkErr == nil {
		walkErr = writeMetadata(zw, srcDir, metadata)
	}

	if err := zw.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if err := f.Close(); err != nil && walkErr == nil {
		walkErr = err
	}
	if walkErr != nil {
		return fmt.Errorf("failed to write archive %s: %w", outPath, walkErr)
	}
	return nil
}

func addFile(zw *zip.Writer, path, rel string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	w, err := zw.Create(filepath.ToSlash(rel))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}

func writeMetadata(zw *zip.Writer, srcDir, metadata string) error {
	path := filepath.Join(srcDir, MetadataName)
	if err := os.WriteFile(path, []byte(metadata), 0o644); err != nil {
		return err
	}
	return addFile(zw, path, MetadataName)
}
