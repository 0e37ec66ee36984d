// Package resolver turns a source file path into a compile configuration.
package resolver

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cradle/internal/adapters/fs"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/cradle/internal/engine/locator"
	"go.trai.ch/zerr"
)

// Resolver selects the package, unit, and component that claim a file and
// derives the flag list needed to compile it.
type Resolver struct {
	locator  *locator.Locator
	backends map[domain.ProjectKind]ports.BuildBackend
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new Resolver.
func New(loc *locator.Locator, backends []ports.BuildBackend, tracer ports.Tracer, logger ports.Logger) *Resolver {
	byKind := make(map[domain.ProjectKind]ports.BuildBackend, len(backends))
	for _, b := range backends {
		byKind[b.Kind()] = b
	}
	return &Resolver{
		locator:  loc,
		backends: byKind,
		tracer:   tracer,
		logger:   logger,
	}
}

// Resolve returns the configuration for file. It never fails: discovery
// problems degrade to a none configuration whose Flags report the reason.
// Component matching is deferred into the configuration's flag capability
// and paid for on the first compile request.
func (r *Resolver) Resolve(ctx context.Context, file string) *domain.Configuration {
	_, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("file", file)

	ref := r.locator.FindEntryPoint(file)
	if ref == nil {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = filepath.Dir(file)
		}
		span.SetAttribute("project", "none")
		return domain.NoneConfiguration(cwd, "")
	}
	span.SetAttribute("project", ref.Discriminator())
	span.SetAttribute("root", ref.Root)

	backend, ok := r.backends[ref.Kind]
	if !ok {
		return domain.NoneConfiguration(ref.Root, ref.Discriminator())
	}

	pkgs, err := backend.ListPackages(ctx, *ref)
	if err != nil {
		r.logger.Warn("failed to list packages of " + ref.Root + ", treating project as empty")
		return domain.NoneConfiguration(ref.Root, ref.Discriminator())
	}

	pkg := matchPackage(pkgs, file)
	if pkg == nil {
		return domain.NoneConfiguration(ref.Root, ref.Discriminator())
	}

	return domain.NewConfiguration(ref.Root, ref.Discriminator(), r.flagsFunc(backend, pkg))
}

// matchPackage selects the package whose directory is the longest prefix
// of file. Prefix length is the only ranking signal; ties keep the
// earliest candidate.
func matchPackage(pkgs []*domain.Package, file string) *domain.Package {
	var best *domain.Package
	bestLen := -1
	for _, pkg := range pkgs {
		if l := fs.PrefixLen(pkg.Dir, file); l > bestLen {
			best = pkg
			bestLen = l
		}
	}
	return best
}

// flagsFunc builds the lazy flag capability for a matched package. Unit
// introspection results are memoized so the cost is paid at most once per
// unit across repeated flag requests.
func (r *Resolver) flagsFunc(backend ports.BuildBackend, pkg *domain.Package) domain.FlagsFunc {
	var mu sync.Mutex
	infos := make(map[domain.Unit]*domain.UnitInfo)

	introspect := func(ctx context.Context, unit domain.Unit) (*domain.UnitInfo, error) {
		mu.Lock()
		defer mu.Unlock()
		if info, ok := infos[unit]; ok {
			return info, nil
		}
		info, err := backend.IntrospectUnit(ctx, pkg, unit)
		if err != nil {
			return nil, err
		}
		infos[unit] = info
		return info, nil
	}

	return func(ctx context.Context, file string) (*domain.CompileFlags, error) {
		_, span := r.tracer.Start(ctx, "match-component")
		defer span.End()
		span.SetAttribute("file", file)
		span.SetAttribute("package", pkg.Name)

		rel, ok := fs.RelativeTo(pkg.Dir, file)
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrNoComponentMatch, "file", file), "package", pkg.Name)
		}

		for _, unit := range pkg.Units {
			info, err := introspect(ctx, unit)
			if err != nil {
				// Transient introspection failures skip the unit, not
				// the resolution.
				r.logger.Warn("skipping unit " + unit.Name + " of package " + pkg.Name + ": introspection failed")
				continue
			}

			for _, comp := range info.Components {
				entryDir, ok := componentMatch(comp, pkg.Dir, rel)
				if !ok {
					continue
				}
				span.SetAttribute("component", comp.Name)
				return &domain.CompileFlags{
					Dir:  pkg.Dir,
					Args: componentFlags(pkg, comp, entryDir),
				}, nil
			}
		}

		return nil, zerr.With(zerr.With(domain.ErrNoComponentMatch, "file", file), "package", pkg.Name)
	}
}

// componentMatch reports whether a component owns the package-relative
// path: either a source-dir-stripped dotted module name in its module
// list, or the raw relative path naming its entry-point file. On a match
// it also returns the source directory holding the entry-point file, so
// the entry target names a file that exists.
func componentMatch(comp domain.Component, pkgDir, rel string) (string, bool) {
	srcDirs := comp.SourceDirs
	if len(srcDirs) == 0 {
		srcDirs = []string{"."}
	}

	for _, srcDir := range srcDirs {
		stripped, ok := fs.StripSourceDir(srcDir, rel)
		if !ok {
			continue
		}
		if name, ok := fs.DottedModuleName(stripped); ok && slices.Contains(comp.Modules, name) {
			return entrySourceDir(pkgDir, comp, srcDirs), true
		}
		if comp.MainFile != "" && stripped == comp.MainFile {
			return srcDir, true
		}
	}
	return "", false
}

// entrySourceDir picks the source directory the entry-point file lives
// under: the first one containing it on disk, or the first declared one
// when none does.
func entrySourceDir(pkgDir string, comp domain.Component, srcDirs []string) string {
	if comp.MainFile == "" {
		return ""
	}
	for _, srcDir := range srcDirs {
		if _, err := os.Stat(filepath.Join(pkgDir, srcDir, comp.MainFile)); err == nil {
			return srcDir
		}
	}
	return srcDirs[0]
}

// componentFlags derives the final argument list: the component's flags
// followed by every module or entry-point target. Relative include flags
// are rebased onto the package directory because they are recorded
// relative to it but may be interpreted from any working directory.
func componentFlags(pkg *domain.Package, comp domain.Component, entryDir string) []string {
	args := make([]string, 0, len(comp.Flags)+len(comp.Modules)+1)
	for _, flag := range comp.Flags {
		args = append(args, rebaseIncludeFlag(pkg.Dir, flag))
	}
	return append(args, comp.Targets(entryDir)...)
}

func rebaseIncludeFlag(dir, flag string) string {
	if !strings.HasPrefix(flag, domain.IncludeFlagPrefix) {
		return flag
	}
	arg := flag[len(domain.IncludeFlagPrefix):]
	if arg == "" || filepath.IsAbs(arg) {
		return flag
	}
	return domain.IncludeFlagPrefix + filepath.Join(dir, arg)
}
