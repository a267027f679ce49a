package receipt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/formula/internal/core/ports"
)

// NodeID is the unique identifier for the receipt writer Graft node.
const NodeID graft.ID = "adapter.receipt_writer"

func init() {
	graft.Register(graft.Node[ports.ReceiptWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReceiptWriter, error) {
			return NewWriter(), nil
		},
	})
}
