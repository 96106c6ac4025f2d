package pipeline

import (
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogRebuild reports every finished build of one target.
type LogRebuild struct {
	target   string
	relative string
	logger   ports.Logger
}

// NewLogRebuild creates the rebuild logger for target, printing relative as the output path.
func NewLogRebuild(target, relative string, logger ports.Logger) *LogRebuild {
	return &LogRebuild{target: target, relative: relative, logger: logger}
}

// Name implements domain.Plugin.
func (p *LogRebuild) Name() string { return "log-rebuild" }

// OnEnd logs "built: <output>" and surfaces engine errors. The session keeps
// watching after a failed build.
func (p *LogRebuild) OnEnd(result domain.BuildResult) {
	if result.Failed() {
		err := zerr.Wrap(domain.ErrEngineBuildFailure, result.Errors[0])
		err = zerr.With(err, "target", p.target)
		err = zerr.With(err, "errors", len(result.Errors))
		p.logger.Error(err)
	}
	p.logger.Info("built: " + p.relative)
}
