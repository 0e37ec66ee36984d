package domain

import "time"

// ContentHash is a digest of a file's current bytes. It is a freshness
// token, not an identity.
type ContentHash uint64

// Artifact is a compiled-module product returned by the compile
// collaborator. Read-only after creation.
type Artifact struct {
	// File is the canonical path of the compiled source file.
	File string
	// Flags are the compiler arguments the artifact was produced with.
	Flags []string
	// Warnings are compiler diagnostics emitted during a successful
	// compile.
	Warnings []string
	// CompiledAt is when the artifact was produced.
	CompiledAt time.Time
}
