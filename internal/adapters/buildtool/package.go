package buildtool

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/zerr"
)

// findDescription returns the package description file of a directory,
// or "" when the directory holds none.
func findDescription(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), domain.CabalFileExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0])
}

// packageAt loads the shallow package model for a directory: its name and
// the unit headers of its description file. Components are not
// introspected here; that cost is paid lazily per needed unit.
func packageAt(dir string) (*domain.Package, error) {
	descPath := findDescription(dir)
	if descPath == "" {
		return nil, zerr.With(domain.ErrProjectParseFailed, "dir", dir)
	}

	df, err := parseDescriptionFile(descPath)
	if err != nil {
		return nil, err
	}

	name := df.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(descPath), domain.CabalFileExt)
	}

	pkg := &domain.Package{
		Name:            name,
		Dir:             dir,
		DescriptionPath: descPath,
	}

	for _, st := range df.stanzas {
		pkg.Units = append(pkg.Units, domain.Unit{Name: st.name, Type: unitType(st.kind)})
	}

	// A custom Setup script is a compilable target of its own.
	if _, err := os.Stat(filepath.Join(dir, domain.SetupFileName)); err == nil {
		pkg.Units = append(pkg.Units, domain.Unit{Name: "setup", Type: domain.UnitSetup})
	}

	return pkg, nil
}

func unitType(kind string) domain.UnitType {
	switch kind {
	case "executable":
		return domain.UnitExecutable
	case "test-suite":
		return domain.UnitTestSuite
	case "benchmark":
		return domain.UnitBenchmark
	default:
		return domain.UnitLibrary
	}
}

// introspect reads the unit's components from the package description.
// Each read hits the filesystem, so failures are transient and the caller
// skips the unit rather than aborting resolution.
func introspect(_ context.Context, pkg *domain.Package, unit domain.Unit) (*domain.UnitInfo, error) {
	if unit.Type == domain.UnitSetup {
		return &domain.UnitInfo{Components: []domain.Component{{
			Name:       "setup",
			SourceDirs: []string{"."},
			Entry:      domain.EntrySetup,
			MainFile:   domain.SetupFileName,
		}}}, nil
	}

	df, err := parseDescriptionFile(pkg.DescriptionPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to introspect unit"), "unit", unit.Name)
	}

	for _, st := range df.stanzas {
		if unitType(st.kind) != unit.Type || st.name != unit.Name {
			continue
		}
		return &domain.UnitInfo{Components: []domain.Component{componentOf(st)}}, nil
	}

	return nil, zerr.With(zerr.With(domain.ErrUnitIntrospection, "unit", unit.Name), "package", pkg.Name)
}

// componentOf builds the single component a stanza describes.
func componentOf(st stanza) domain.Component {
	comp := domain.Component{
		Name:       st.name,
		SourceDirs: st.field("hs-source-dirs"),
		Flags:      st.field("ghc-options"),
	}
	if len(comp.SourceDirs) == 0 {
		comp.SourceDirs = []string{"."}
	}

	switch st.kind {
	case "library":
		comp.Entry = domain.EntryLibrary
		comp.Modules = append(comp.Modules, st.field("exposed-modules")...)
		comp.Modules = append(comp.Modules, st.field("other-modules")...)
	default:
		comp.Entry = domain.EntryExecutable
		comp.MainFile = st.first("main-is")
		comp.Modules = append(comp.Modules, st.field("other-modules")...)
	}

	return comp
}
