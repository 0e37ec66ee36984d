package domain

// UnitType classifies a buildable target within a package.
type UnitType uint8

const (
	// UnitLibrary is a library target.
	UnitLibrary UnitType = iota
	// UnitExecutable is an executable target.
	UnitExecutable
	// UnitTestSuite is a test-suite target.
	UnitTestSuite
	// UnitBenchmark is a benchmark target.
	UnitBenchmark
	// UnitSetup is a synthesized target for a custom Setup script.
	UnitSetup
)

// String returns the cabal stanza name for the unit type.
func (t UnitType) String() string {
	switch t {
	case UnitLibrary:
		return "library"
	case UnitExecutable:
		return "executable"
	case UnitTestSuite:
		return "test-suite"
	case UnitBenchmark:
		return "benchmark"
	case UnitSetup:
		return "setup"
	default:
		return "unknown"
	}
}

// Package is a named build-tool package. Its identity within a project is
// its source directory. Read-only after construction; safe to share across
// concurrent resolutions.
type Package struct {
	// Name is the package name from its description file.
	Name string
	// Dir is the absolute source directory of the package.
	Dir string
	// DescriptionPath is the absolute path of the package description file.
	DescriptionPath string
	// Units are the buildable targets of the package. Units are discovered
	// shallowly; their components are introspected lazily because the
	// introspection may fail transiently and is paid for per actually
	// needed unit.
	Units []Unit
}

// Unit is a shallow handle on a compilable target. Component details are
// obtained through the build-tool backend's introspection.
type Unit struct {
	// Name is the target name (empty for an unnamed library stanza).
	Name string
	// Type is the target classification.
	Type UnitType
}

// UnitInfo is the introspected detail of a unit.
type UnitInfo struct {
	// Components are the compilable components of the unit, in declaration
	// order. Read-only after creation.
	Components []Component
}

// EntryKind classifies a component's entry-point descriptor.
type EntryKind uint8

const (
	// EntryLibrary exposes modules and has no main file.
	EntryLibrary EntryKind = iota
	// EntryExecutable has a main file plus other modules.
	EntryExecutable
	// EntrySetup has only a main file.
	EntrySetup
)

// Component is a single compilable component owned by its unit.
type Component struct {
	// Name is the component name, usually the owning unit's name.
	Name string
	// SourceDirs are source directories relative to the package directory.
	SourceDirs []string
	// Entry classifies the entry-point descriptor.
	Entry EntryKind
	// Modules are the dotted module names the component builds. For a
	// library these are the exposed modules followed by other-modules;
	// for an executable they are the other-modules.
	Modules []string
	// MainFile is the entry-point source file relative to a source
	// directory. Empty for libraries.
	MainFile string
	// Flags are the compiler flags required to build the component,
	// recorded relative to the package directory.
	Flags []string
}

// Targets returns every module or entry-point target of the component.
// Module targets are dotted names; the entry point is a path relative to
// the package directory, joined onto entryDir, the source directory that
// holds the entry-point file (bare when entryDir is empty or ".").
func (c Component) Targets(entryDir string) []string {
	targets := make([]string, 0, len(c.Modules)+1)
	targets = append(targets, c.Modules...)
	if c.MainFile != "" {
		targets = append(targets, joinSlash(entryDir, c.MainFile))
	}
	return targets
}

func joinSlash(dir, file string) string {
	if dir == "" || dir == "." {
		return file
	}
	return dir + "/" + file
}
