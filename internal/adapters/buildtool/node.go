package buildtool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cradle/internal/core/ports"
)

// BackendsNodeID is the graft node for the build backends, ordered by
// discovery preference.
const BackendsNodeID graft.ID = "adapter.buildtool.backends"

func init() {
	graft.Register(graft.Node[[]ports.BuildBackend]{
		ID:        BackendsNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) ([]ports.BuildBackend, error) {
			return []ports.BuildBackend{
				NewStackBackend(),
				NewCabalV2Backend(),
				NewCabalV1Backend(),
			}, nil
		},
	})
}
