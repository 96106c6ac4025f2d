package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devbuild/internal/core/ports"
)

// NodeID is the unique identifier for the layout loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.LayoutLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LayoutLoader, error) {
			return NewLoader(), nil
		},
	})
}
