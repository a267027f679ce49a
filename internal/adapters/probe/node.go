package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/formula/internal/core/ports"
)

// NodeID is the unique identifier for the dependency probe Graft node.
const NodeID graft.ID = "adapter.dependency_probe"

func init() {
	graft.Register(graft.Node[ports.DependencyProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyProbe, error) {
			return New(), nil
		},
	})
}
