// Package locator finds the build project responsible for a source file.
package locator

import (
	"path/filepath"

	"go.trai.ch/cradle/internal/adapters/fs"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
)

// Locator walks the ancestor directories of a target file and selects one
// project among the candidates the build backends report.
type Locator struct {
	backends []ports.BuildBackend
	tools    ports.ToolChecker
	logger   ports.Logger
}

// New creates a new Locator.
func New(backends []ports.BuildBackend, tools ports.ToolChecker, logger ports.Logger) *Locator {
	return &Locator{
		backends: backends,
		tools:    tools,
		logger:   logger,
	}
}

// FindEntryPoint returns the project that should build file, or nil when
// no supported project exists in any ancestor directory.
//
// Candidates from every ancestor are pooled, candidates whose build tool
// is not installed are dropped, and modern layouts win over legacy ones.
// Among equally ranked candidates the first found is taken; the ancestor
// walk starts at the file's own directory, so nearer projects surface
// first. This is a best-effort heuristic, not a correctness guarantee.
func (l *Locator) FindEntryPoint(file string) *domain.ProjectReference {
	var candidates []domain.ProjectReference
	for _, dir := range fs.Ancestors(filepath.Dir(file)) {
		for _, backend := range l.backends {
			candidates = append(candidates, backend.FindProjects(dir)...)
		}
	}

	var modern, legacy *domain.ProjectReference
	for i := range candidates {
		candidate := candidates[i]

		if !l.tools.Installed(candidate.Kind.Tool()) {
			l.logger.Warn("skipping " + candidate.Discriminator() + " project at " + candidate.Root + ": " + candidate.Kind.Tool() + " is not installed")
			continue
		}

		if candidate.Kind.Legacy() {
			if legacy == nil {
				legacy = &candidate
			}
			continue
		}
		if modern == nil {
			modern = &candidate
		}
	}

	if modern != nil {
		return modern
	}
	return legacy
}
