package ports

import (
	"context"

	"go.trai.ch/cradle/internal/core/domain"
)

// Compiler is the compile collaborator. The core calls it after resolving
// a configuration; its result feeds the artifact store.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile produces an artifact for the file under the given
	// configuration. A failure is opaque to the core and is recorded
	// without evicting a previously successful artifact.
	Compile(ctx context.Context, cfg *domain.Configuration, file string) (*domain.Artifact, error)

	// Version reports the compiler version. It works against a none
	// configuration; no compile flags are needed.
	Version(ctx context.Context, cfg *domain.Configuration) (string, error)
}
