package tools

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/core/ports"
)

// CheckerNodeID is the graft node for the tool checker.
const CheckerNodeID graft.ID = "adapter.tools.checker"

func init() {
	graft.Register(graft.Node[ports.ToolChecker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ToolChecker, error) {
			return NewChecker(), nil
		},
	})
}
