package app

import "go.trai.ch/devbuild/internal/adapters/detector"

// ApplyOutputMode exposes applyOutputMode for testing.
func (a *App) ApplyOutputMode(opts RunOptions) detector.OutputMode {
	return a.applyOutputMode(opts)
}
