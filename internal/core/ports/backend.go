// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cradle/internal/core/domain"
)

// BuildBackend is a build-tool backend. It is treated as a black box; a
// failure from IntrospectUnit must not abort iteration over sibling units.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type BuildBackend interface {
	// Kind returns the project layout this backend discovers.
	Kind() domain.ProjectKind

	// FindProjects returns project candidates rooted at dir. It inspects
	// only dir itself; ancestor enumeration is the locator's concern.
	// Filesystem errors are absorbed into an empty result.
	FindProjects(dir string) []domain.ProjectReference

	// ListPackages enumerates the packages of the project.
	ListPackages(ctx context.Context, ref domain.ProjectReference) ([]*domain.Package, error)

	// IntrospectUnit reports the components of a unit. Errors are
	// transient I/O failures the caller should skip past.
	IntrospectUnit(ctx context.Context, pkg *domain.Package, unit domain.Unit) (*domain.UnitInfo, error)
}
