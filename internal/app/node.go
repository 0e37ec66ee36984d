package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/adapters/ghc"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cradle/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/cradle/internal/adapters/telemetry"
	"go.trai.ch/cradle/internal/adapters/watcher"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/cradle/internal/engine/resolver"
	"go.trai.ch/cradle/internal/engine/store"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			ghc.CompilerNodeID,
			store.NodeID,
			watcher.WatcherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			artifacts, err := graft.Dep[*store.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Watcher](ctx)
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

			return New(res, compiler, artifacts, watch, tracer, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
