package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/adapters/buildtool"
	"go.trai.ch/cradle/internal/adapters/logger"
	"go.trai.ch/cradle/internal/adapters/tools"
	"go.trai.ch/cradle/internal/core/ports"
)

// NodeID is the graft node for the project locator.
const NodeID graft.ID = "engine.locator"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{buildtool.BackendsNodeID, tools.CheckerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			backends, err := graft.Dep[[]ports.BuildBackend](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.ToolChecker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(backends, checker, log), nil
		},
	})
}
