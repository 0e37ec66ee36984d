package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cradle/internal/adapters/logger"
	"go.trai.ch/cradle/internal/core/ports"
)

// TracerNodeID is the graft node for the tracer.
const TracerNodeID graft.ID = "adapter.telemetry.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// Every started span is reported to the logger through the
			// bridge span processor.
			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewBridge(log)),
			)
			otel.SetTracerProvider(tp)

			return NewOTelTracer("cradle"), nil
		},
	})
}
