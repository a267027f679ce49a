package ports

import "go.trai.ch/formula/internal/core/domain"

// ConfigLoader defines the interface for loading formula definitions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the formula at path. An empty path falls back to the
	// formula file in the working directory, then to the built-in formula.
	Load(path string) (*domain.Formula, error)
}
