package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProject is returned when no supported build-tool markers exist
	// in any ancestor directory, or none of the found tools are installed.
	ErrNoProject = zerr.New("no build-tool project found")

	// ErrNoPackageMatch is returned when a project was found but no
	// package's source directory prefixes the file.
	ErrNoPackageMatch = zerr.New("file does not belong to any package of the project")

	// ErrNoComponentMatch is returned when a package was found but no unit
	// or component claims the file as a module or entry point.
	ErrNoComponentMatch = zerr.New("file does not belong to any component")

	// ErrUnitIntrospection is returned when a unit fails to report its
	// metadata. It is logged and skipped at the unit level; resolution
	// continues with the remaining units.
	ErrUnitIntrospection = zerr.New("failed to introspect unit")

	// ErrProjectParseFailed is returned when a project or package
	// description file cannot be read or parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project description")

	// ErrToolMissing is returned when a required build tool executable is
	// not installed.
	ErrToolMissing = zerr.New("build tool not installed")

	// ErrCompileFailed is returned when the compile collaborator fails.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrCanonicalizeFailed is returned when a path cannot be normalized
	// to its canonical form.
	ErrCanonicalizeFailed = zerr.New("failed to canonicalize path")

	// ErrHashFailed is returned when a file's content hash cannot be
	// computed.
	ErrHashFailed = zerr.New("failed to hash file content")

	// ErrNoEntry is returned when an operation requires a cached artifact
	// that is not present.
	ErrNoEntry = zerr.New("no cached artifact for path")
)

func withFile(err error, file string) error {
	return zerr.With(err, "file", file)
}
