// Package tools checks build tool availability on the local PATH.
package tools

import (
	"os/exec"
	"sync"

	"go.trai.ch/cradle/internal/core/ports"
)

var _ ports.ToolChecker = (*Checker)(nil)

// Checker reports whether a build tool executable is installed. Lookups
// hit the PATH once per tool name and are memoized for the process
// lifetime.
type Checker struct {
	mu    sync.Mutex
	found map[string]bool
}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{found: make(map[string]bool)}
}

// Installed implements ports.ToolChecker.
func (c *Checker) Installed(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if found, ok := c.found[name]; ok {
		return found
	}

	_, err := exec.LookPath(name)
	c.found[name] = err == nil
	return c.found[name]
}
