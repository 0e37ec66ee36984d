// Package domain contains the core domain types for cradle.
package domain

// ProjectKind identifies the build-tool layout of a discovered project.
type ProjectKind uint8

const (
	// KindStack is a stack project marked by a stack.yaml file.
	KindStack ProjectKind = iota
	// KindCabalV2 is a cabal project marked by a cabal.project file.
	KindCabalV2
	// KindCabalV1 is a legacy cabal project marked only by a .cabal file.
	KindCabalV1
)

// Discriminator returns the stable string identifier for the kind.
func (k ProjectKind) Discriminator() string {
	switch k {
	case KindStack:
		return "Stack"
	case KindCabalV2:
		return "Cabal-V2"
	case KindCabalV1:
		return "Cabal-V1"
	default:
		return "Unknown"
	}
}

// Tool returns the executable name required to build projects of this kind.
func (k ProjectKind) Tool() string {
	switch k {
	case KindStack:
		return StackToolName
	default:
		return CabalToolName
	}
}

// Legacy reports whether the kind is a legacy layout that modern layouts
// take priority over during project selection.
func (k ProjectKind) Legacy() bool {
	return k == KindCabalV1
}

// ProjectReference identifies a discovered build-tool project.
// It is immutable once discovered and re-derived on every resolution;
// references are never cached across resolution calls.
type ProjectReference struct {
	// Kind is the build-tool layout of the project.
	Kind ProjectKind
	// Root is the directory the project is rooted at.
	Root string
	// ConfigPath is the marker file the project was discovered through
	// (stack.yaml, cabal.project, or a .cabal file).
	ConfigPath string
}

// Discriminator returns the stable string identifier for the reference.
func (r ProjectReference) Discriminator() string {
	return r.Kind.Discriminator()
}
