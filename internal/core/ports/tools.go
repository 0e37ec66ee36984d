package ports

// ToolChecker reports whether a build tool executable is present on the
// system. Implementations must be cheap to call repeatedly; the lookup is
// performed once per tool name.
//
//go:generate mockgen -source=tools.go -destination=mocks/mock_tools.go -package=mocks
type ToolChecker interface {
	// Installed reports whether the named executable is on PATH.
	Installed(name string) bool
}
