package ports

// PathResolver normalizes filesystem paths into canonical cache keys.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Canonicalize resolves symlinks and normalizes the path so that two
	// textually different paths to the same file yield the same key.
	Canonicalize(path string) (string, error)
}
