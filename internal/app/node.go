package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devbuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/adapters/esbuild"   //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/devbuild/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			esbuild.NodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Telemetry: provider}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	layouts, err := graft.Dep[ports.LayoutLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	bundler, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[*detector.Detector](ctx)
	if err != nil {
		return nil, err
	}

	return New(layouts, reader, bundler, log, provider).WithDetector(det), nil
}
