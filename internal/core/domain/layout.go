package domain

const (
	// StackConfigName is the name of a stack project configuration file.
	StackConfigName = "stack.yaml"

	// CabalProjectName is the name of a cabal v2 project file.
	CabalProjectName = "cabal.project"

	// CabalFileExt is the extension of a cabal package description file.
	CabalFileExt = ".cabal"

	// SetupFileName is the name of a custom Setup script at a package root.
	SetupFileName = "Setup.hs"

	// SourceFileExt is the extension of a Haskell source file.
	SourceFileExt = ".hs"

	// StackToolName is the executable required for stack projects.
	StackToolName = "stack"

	// CabalToolName is the executable required for cabal projects.
	CabalToolName = "cabal"

	// CompilerToolName is the compiler executable.
	CompilerToolName = "ghc"

	// IncludeFlagPrefix is the flag prefix whose relative argument must be
	// rebased onto the package directory, because such flags are recorded
	// relative to the package but interpreted from arbitrary working
	// directories.
	IncludeFlagPrefix = "-i"
)
