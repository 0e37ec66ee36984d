package buildtool

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.BuildBackend = (*StackBackend)(nil)

// StackBackend discovers and enumerates stack projects.
type StackBackend struct{}

// NewStackBackend creates a new StackBackend.
func NewStackBackend() *StackBackend {
	return &StackBackend{}
}

// Kind implements ports.BuildBackend.
func (b *StackBackend) Kind() domain.ProjectKind { return domain.KindStack }

// FindProjects reports a stack project when dir holds a stack.yaml.
func (b *StackBackend) FindProjects(dir string) []domain.ProjectReference {
	configPath := filepath.Join(dir, domain.StackConfigName)
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}
	return []domain.ProjectReference{{
		Kind:       domain.KindStack,
		Root:       dir,
		ConfigPath: configPath,
	}}
}

// stackConfig is the subset of stack.yaml the backend reads.
type stackConfig struct {
	Packages []string `yaml:"packages"`
}

// ListPackages enumerates the packages declared in stack.yaml. Package
// directories that no longer hold a description file are skipped.
func (b *StackBackend) ListPackages(_ context.Context, ref domain.ProjectReference) ([]*domain.Package, error) {
	data, err := os.ReadFile(ref.ConfigPath) //nolint:gosec // Path comes from project discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read stack config"), "path", ref.ConfigPath)
	}

	var cfg stackConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse stack config"), "path", ref.ConfigPath)
	}

	dirs := cfg.Packages
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	var pkgs []*domain.Package
	for _, dir := range dirs {
		pkg, err := packageAt(filepath.Join(ref.Root, dir))
		if err != nil {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// IntrospectUnit implements ports.BuildBackend.
func (b *StackBackend) IntrospectUnit(ctx context.Context, pkg *domain.Package, unit domain.Unit) (*domain.UnitInfo, error) {
	return introspect(ctx, pkg, unit)
}
