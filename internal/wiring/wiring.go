// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/formula/internal/adapters/config"
	_ "go.trai.ch/formula/internal/adapters/history"
	_ "go.trai.ch/formula/internal/adapters/logger"
	_ "go.trai.ch/formula/internal/adapters/probe"
	_ "go.trai.ch/formula/internal/adapters/receipt"
	_ "go.trai.ch/formula/internal/adapters/shell"
	_ "go.trai.ch/formula/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/formula/internal/app"
)
