package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/formula/internal/adapters/telemetry"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Telemetry = (*telemetry.NoOp)(nil)
	var _ ports.Vertex = (*telemetry.NoOpVertex)(nil)
}

func TestNoOp_Record(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx := context.Background()
	newCtx, vertex := tel.Record(ctx, "install")
	require.NotNil(t, vertex)
	assert.Equal(t, ctx, newCtx)

	_, ok := ports.VertexFromContext(newCtx)
	assert.False(t, ok)

	n, err := vertex.Stdout().Write([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	vertex.Log(domain.LogLevelInfo, "message")
	vertex.Complete(errors.New("boom"))

	require.NoError(t, tel.Close())
}
