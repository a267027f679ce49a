package ports

import (
	"context"

	"go.trai.ch/formula/internal/core/domain"
)

// InstallHistory is an append-only log of install attempts.
// It is never consulted to skip an install.
//
//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type InstallHistory interface {
	// Append stores a record.
	Append(ctx context.Context, record domain.InstallRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.InstallRecord, error)
}
