package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/formula/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/history"             //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/probe"               //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/receipt"             //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/shell"               //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/formula/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			history.NodeID,
			receipt.NodeID,
			progrock.NodeID,
			probe.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	hist, err := graft.Dep[ports.InstallHistory](ctx)
	if err != nil {
		return nil, err
	}

	receipts, err := graft.Dep[ports.ReceiptWriter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.DependencyProbe](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, log, hist, receipts, telemetry, prober), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
