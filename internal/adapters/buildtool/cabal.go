package buildtool

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildBackend = (*CabalV2Backend)(nil)

// CabalV2Backend discovers cabal.project based projects.
type CabalV2Backend struct{}

// NewCabalV2Backend creates a new CabalV2Backend.
func NewCabalV2Backend() *CabalV2Backend {
	return &CabalV2Backend{}
}

// Kind implements ports.BuildBackend.
func (b *CabalV2Backend) Kind() domain.ProjectKind { return domain.KindCabalV2 }

// FindProjects reports a cabal v2 project when dir holds a cabal.project.
func (b *CabalV2Backend) FindProjects(dir string) []domain.ProjectReference {
	configPath := filepath.Join(dir, domain.CabalProjectName)
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}
	return []domain.ProjectReference{{
		Kind:       domain.KindCabalV2,
		Root:       dir,
		ConfigPath: configPath,
	}}
}

// ListPackages enumerates the packages of the cabal.project file. The
// packages field accepts directories, description files, and globs; all
// are normalized to package directories.
func (b *CabalV2Backend) ListPackages(_ context.Context, ref domain.ProjectReference) ([]*domain.Package, error) {
	data, err := os.ReadFile(ref.ConfigPath) //nolint:gosec // Path comes from project discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cabal.project"), "path", ref.ConfigPath)
	}

	// cabal.project uses the same field syntax as package descriptions.
	entries := topLevelPackages(string(data))
	if len(entries) == 0 {
		entries = []string{"."}
	}

	seen := make(map[string]bool)
	var pkgs []*domain.Package
	for _, entry := range entries {
		for _, dir := range expandPackageEntry(ref.Root, entry) {
			if seen[dir] {
				continue
			}
			seen[dir] = true

			pkg, err := packageAt(dir)
			if err != nil {
				continue
			}
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs, nil
}

// IntrospectUnit implements ports.BuildBackend.
func (b *CabalV2Backend) IntrospectUnit(ctx context.Context, pkg *domain.Package, unit domain.Unit) (*domain.UnitInfo, error) {
	return introspect(ctx, pkg, unit)
}

// topLevelPackages extracts the top-level packages field of a
// cabal.project, including indented continuation lines.
func topLevelPackages(src string) []string {
	var entries []string
	inPackages := false

	for line := range strings.Lines(src) {
		text, indent, ok := trimCabalLine(line)
		if !ok {
			continue
		}

		if indent == 0 {
			key, value, isField := splitFieldLine(text)
			inPackages = isField && key == "packages"
			if inPackages && value != "" {
				entries = append(entries, splitListValues(value)...)
			}
			continue
		}

		if inPackages {
			entries = append(entries, splitListValues(text)...)
		}
	}
	return entries
}

// expandPackageEntry resolves one packages entry to package directories.
func expandPackageEntry(root, entry string) []string {
	pattern := entry
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(root, pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		matches = []string{filepath.Clean(pattern)}
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasSuffix(m, domain.CabalFileExt) {
			m = filepath.Dir(m)
		}
		dirs = append(dirs, m)
	}
	return dirs
}

var _ ports.BuildBackend = (*CabalV1Backend)(nil)

// CabalV1Backend discovers legacy single-package cabal projects marked
// only by a .cabal file.
type CabalV1Backend struct{}

// NewCabalV1Backend creates a new CabalV1Backend.
func NewCabalV1Backend() *CabalV1Backend {
	return &CabalV1Backend{}
}

// Kind implements ports.BuildBackend.
func (b *CabalV1Backend) Kind() domain.ProjectKind { return domain.KindCabalV1 }

// FindProjects reports a legacy project when dir holds a .cabal file.
func (b *CabalV1Backend) FindProjects(dir string) []domain.ProjectReference {
	descPath := findDescription(dir)
	if descPath == "" {
		return nil
	}
	return []domain.ProjectReference{{
		Kind:       domain.KindCabalV1,
		Root:       dir,
		ConfigPath: descPath,
	}}
}

// ListPackages returns the single package at the project root.
func (b *CabalV1Backend) ListPackages(_ context.Context, ref domain.ProjectReference) ([]*domain.Package, error) {
	pkg, err := packageAt(ref.Root)
	if err != nil {
		return nil, err
	}
	return []*domain.Package{pkg}, nil
}

// IntrospectUnit implements ports.BuildBackend.
func (b *CabalV1Backend) IntrospectUnit(ctx context.Context, pkg *domain.Package, unit domain.Unit) (*domain.UnitInfo, error) {
	return introspect(ctx, pkg, unit)
}
