package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Canonicalize resolves symlinks and normalizes the path into the sole
// cache key form. Two textually different paths to the same file
// canonicalize identically. A file that does not exist yet keeps its
// cleaned absolute form.
func (r *Resolver) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to canonicalize path"), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Clean(abs), nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to canonicalize path"), "path", path)
	}

	return filepath.Clean(resolved), nil
}
