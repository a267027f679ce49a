// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/formula/internal/core/domain"
)

// ProcessRunner spawns external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=process_runner.go -destination=mocks/mock_process_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes args[0] with the remaining arguments and blocks until it exits.
	//
	// A process that starts and exits non-zero is reported through the returned
	// status with a nil error. The error is reserved for processes that could
	// not be started.
	Run(ctx context.Context, args []string) (domain.ExitStatus, error)
}
