package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ourgreenway/scrape2tex"
)

// Ensure Writer implements scrape2tex.OutputWriter at compile time.
var _ scrape2tex.OutputWriter = (*Writer)(nil)

// Writer writes rendered documents to disk atomically. Content is written
// to a temporary file next to the target and renamed into place, so a
// failed run never leaves a truncated output file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteOutput replaces the file at path with content.
func (w *Writer) WriteOutput(ctx context.Context, path string, content string) (err error) {
	if path == "" {
		return scrape2tex.Errorf(scrape2tex.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
