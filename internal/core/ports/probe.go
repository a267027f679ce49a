package ports

import (
	"context"

	"go.trai.ch/formula/internal/core/domain"
)

// DependencyStatus is the result of looking up a declared dependency.
type DependencyStatus struct {
	Dependency domain.Dependency
	// Path is the resolved executable, empty when not found.
	Path string
}

// Found reports whether the dependency was located.
func (s DependencyStatus) Found() bool {
	return s.Path != ""
}

// DependencyProbe reports which declared dependencies are present on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type DependencyProbe interface {
	// Probe returns one status per dependency, in declaration order.
	Probe(ctx context.Context, deps []domain.Dependency) ([]DependencyStatus, error)
}
