// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/devbuild/internal/adapters/config"
	_ "go.trai.ch/devbuild/internal/adapters/detector"
	_ "go.trai.ch/devbuild/internal/adapters/esbuild"
	_ "go.trai.ch/devbuild/internal/adapters/logger"
	_ "go.trai.ch/devbuild/internal/adapters/manifest"
	_ "go.trai.ch/devbuild/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/devbuild/internal/app"
)
