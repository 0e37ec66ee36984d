package ghc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/adapters/logger"
	"go.trai.ch/cradle/internal/core/ports"
)

// CompilerNodeID is the graft node for the ghc compiler adapter.
const CompilerNodeID graft.ID = "adapter.ghc.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log), nil
		},
	})
}
