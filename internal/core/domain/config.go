package domain

import "context"

// CompileFlags is the resolved flag set needed to compile a file.
type CompileFlags struct {
	// Dir is the directory the flags are valid from.
	Dir string
	// Args are the compiler arguments: component flags followed by every
	// module or entry-point target of the matched component. Relative
	// include flags have already been rebased onto the package directory.
	Args []string
}

// FlagsFunc lazily computes compile flags for a file. Discovering a
// configuration never computes flags; unit initialization is expensive and
// is paid for on the first call for a unit that is actually needed.
type FlagsFunc func(ctx context.Context, file string) (*CompileFlags, error)

// Configuration is a resolved cradle: the root directory and the lazy flag
// capability needed to compile files under it.
type Configuration struct {
	root  string
	kind  string
	flags FlagsFunc
}

// NewConfiguration creates a configuration with a flag capability.
func NewConfiguration(root, kind string, flags FlagsFunc) *Configuration {
	return &Configuration{root: root, kind: kind, flags: flags}
}

// NoneConfiguration creates a configuration that can never produce compile
// flags. It is still useful for coarse metadata queries (root directory,
// compiler version) and, when kind is non-empty, remains distinguishable
// from "no project at all".
func NoneConfiguration(root, kind string) *Configuration {
	return &Configuration{root: root, kind: kind}
}

// Root returns the configuration's root directory.
func (c *Configuration) Root() string { return c.root }

// Kind returns the project discriminator, or "" when no project was found.
func (c *Configuration) Kind() string { return c.kind }

// None reports whether the configuration can never produce compile flags.
func (c *Configuration) None() bool { return c.flags == nil }

// Flags computes the compile flags for the given file. For a none
// configuration it fails with ErrNoProject or ErrNoPackageMatch depending
// on whether a project was found at all.
func (c *Configuration) Flags(ctx context.Context, file string) (*CompileFlags, error) {
	if c.flags == nil {
		if c.kind == "" {
			return nil, withFile(ErrNoProject, file)
		}
		return nil, withFile(ErrNoPackageMatch, file)
	}
	return c.flags(ctx, file)
}
