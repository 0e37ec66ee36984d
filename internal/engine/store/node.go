package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/adapters/fs"
	"go.trai.ch/cradle/internal/adapters/logger"
	"go.trai.ch/cradle/internal/core/ports"
)

// NodeID is the unique identifier for the artifact store Graft node.
const NodeID graft.ID = "engine.store"

func init() {
	graft.Register(graft.Node[*ArtifactStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*ArtifactStore, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, hasher, log), nil
		},
	})
}
