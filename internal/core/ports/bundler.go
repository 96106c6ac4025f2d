package ports

import (
	"context"

	"go.trai.ch/devbuild/internal/core/domain"
)

// Bundler hands build configurations to the bundling engine.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Context prepares an incremental build context for cfg.
	// It returns domain.ErrEngineContextFailed if the engine rejects the configuration.
	Context(ctx context.Context, cfg *domain.BuildConfiguration) (Session, error)
}

// Session is a long-lived incremental build context owned by the engine.
type Session interface {
	// Watch starts the initial build and rebuilds whenever a tracked input changes.
	// It returns without waiting for the initial build to finish.
	Watch() error

	// Dispose stops watching and releases the engine resources.
	Dispose()
}
