package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fswatch/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/adapters/process"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
			config.NodeID,
			process.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	processes, err := graft.Dep[*process.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, tracer, loader, processes), nil
}
