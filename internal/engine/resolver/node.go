package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/adapters/buildtool"
	"go.trai.ch/cradle/internal/adapters/logger"
	"go.trai.ch/cradle/internal/adapters/telemetry"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/cradle/internal/engine/locator"
)

// NodeID is the graft node for the configuration resolver.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{locator.NodeID, buildtool.BackendsNodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			loc, err := graft.Dep[*locator.Locator](ctx)
			if err != nil {
				return nil, err
			}
			backends, err := graft.Dep[[]ports.BuildBackend](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loc, backends, tracer, log), nil
		},
	})
}
