// Package ghc shells out to the Haskell compiler.
package ghc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler runs ghc as a subprocess. Compile flags come from the resolved
// configuration; the adapter never invents flags of its own.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile implements ports.Compiler.
func (c *Compiler) Compile(ctx context.Context, cfg *domain.Configuration, file string) (*domain.Artifact, error) {
	flags, err := cfg.Flags(ctx, file)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(flags.Args)+1)
	args = append(args, flags.Args...)
	args = append(args, file)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, domain.CompilerToolName, args...) //nolint:gosec // flags come from project introspection
	cmd.Dir = flags.Dir
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		for _, diag := range diagnostics(stderr.String()) {
			c.logger.Error(zerr.New(diag))
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, zerr.With(zerr.With(domain.ErrCompileFailed, "file", file), "exit_code", exitCode)
	}

	warnings := diagnostics(stderr.String())
	for _, w := range warnings {
		c.logger.Warn(w)
	}

	return &domain.Artifact{
		File:       file,
		Flags:      flags.Args,
		Warnings:   warnings,
		CompiledAt: time.Now(),
	}, nil
}

// Version implements ports.Compiler. It works for none configurations as
// well; only the working directory is taken from cfg.
func (c *Compiler) Version(ctx context.Context, cfg *domain.Configuration) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, domain.CompilerToolName, "--numeric-version")
	cmd.Dir = cfg.Root()
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", zerr.Wrap(err, "failed to query compiler version")
	}
	return strings.TrimSpace(stdout.String()), nil
}

// diagnostics splits compiler stderr into one message per diagnostic
// block. ghc separates diagnostics with blank lines.
func diagnostics(stderr string) []string {
	var msgs []string
	for _, block := range strings.Split(stderr, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			msgs = append(msgs, block)
		}
	}
	return msgs
}
