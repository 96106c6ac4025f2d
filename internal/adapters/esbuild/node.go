package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devbuild/internal/adapters/telemetry"
	"go.trai.ch/devbuild/internal/core/ports"
)

// NodeID is the unique identifier for the esbuild bundler Graft node.
const NodeID graft.ID = "adapter.esbuild"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Bundler, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewBundler(tracer), nil
		},
	})
}
