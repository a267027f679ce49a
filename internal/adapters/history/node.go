package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/formula/internal/core/ports"
)

// NodeID is the unique identifier for the install history Graft node.
const NodeID graft.ID = "adapter.install_history"

func init() {
	graft.Register(graft.Node[ports.InstallHistory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallHistory, error) {
			return NewStore(DefaultPath()), nil
		},
	})
}
