// Package fs provides file-based storage for downloaded images and the
// rendered LaTeX output.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ourgreenway/scrape2tex"
)

// DefaultImageName is used when an image URL has no usable basename.
const DefaultImageName = "image"

// URLToFilename converts an image URL to a sanitized local filename. The
// basename is taken from the escaped path, so percent escapes survive as
// text. Example: https://example.com/media/chart%20(1).png → chart_20_1_.png
func URLToFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	name := DefaultImageName
	if p := u.EscapedPath(); p != "" && !strings.HasSuffix(p, "/") {
		name = path.Base(p)
	}

	return scrape2tex.CleanFilename(name), nil
}

// Ensure ImageStore implements scrape2tex.ImageStore at compile time.
var _ scrape2tex.ImageStore = (*ImageStore)(nil)

// ImageStore writes images into a single directory.
// Images with the same basename overwrite each other.
type ImageStore struct {
	dir string
}

// NewImageStore creates a new ImageStore that writes to dir.
// The directory is created on first use.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// SaveImage writes data to the store and returns its path with forward
// slashes, suitable for \includegraphics.
func (s *ImageStore) SaveImage(ctx context.Context, sourceURL string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := URLToFilename(sourceURL)
	if err != nil {
		return "", scrape2tex.Errorf(scrape2tex.EINVALID, "invalid image URL %q: %v", sourceURL, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.dir, name)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", err
	}

	return filepath.ToSlash(fullPath), nil
}
