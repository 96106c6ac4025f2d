// Package pipeline assembles the lifecycle plugins attached to every build.
package pipeline

import (
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
)

// Build returns the plugins for one target. The rebuild logger is always first.
// Node built-ins are shimmed for every non-CommonJS build unless the package
// keeps its non-browser branches.
func Build(target domain.Target, flags domain.BuildFlags, relativeOutput string, logger ports.Logger) []domain.Plugin {
	plugins := []domain.Plugin{
		NewLogRebuild(target.Name, relativeOutput, logger),
	}

	if !flags.Format.IsCJS() && !target.Manifest.BuildOptions.EnableNonBrowserBranches {
		plugins = append(plugins, NewPolyfillNode())
	}

	return plugins
}
