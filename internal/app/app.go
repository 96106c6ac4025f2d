// Package app implements the application layer for devbuild.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/devbuild/internal/adapters/detector"
	"go.trai.ch/devbuild/internal/adapters/telemetry"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/devbuild/internal/engine/pipeline"
	"go.trai.ch/devbuild/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App resolves build configurations and keeps one watch session per target alive.
type App struct {
	layouts   ports.LayoutLoader
	reader    ports.ManifestReader
	bundler   ports.Bundler
	logger    ports.Logger
	telemetry *telemetry.Provider
	detector  *detector.Detector
	workDir   string
}

// New creates a new App instance.
func New(
	layouts ports.LayoutLoader,
	reader ports.ManifestReader,
	bundler ports.Bundler,
	log ports.Logger,
	provider *telemetry.Provider,
) *App {
	return &App{
		layouts:   layouts,
		reader:    reader,
		bundler:   bundler,
		logger:    log,
		telemetry: provider,
	}
}

// WithWorkingDir pins the directory targets are resolved from.
// By default the process working directory is used.
func (a *App) WithWorkingDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDetector sets the environment detector used to pick the log output mode.
// Without one, output is pretty unless the user asks otherwise.
func (a *App) WithDetector(d *detector.Detector) *App {
	a.detector = d
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// JSON forces JSON log lines regardless of OutputMode.
	JSON bool
	// OutputMode is "auto", "pretty", "plain", "ci" or "json".
	OutputMode string
}

// modeSwitcher is implemented by loggers that can change their rendering.
type modeSwitcher interface {
	SetJSON(enable bool)
	SetPlain(enable bool)
}

// applyOutputMode resolves the log output mode and reconfigures the logger.
func (a *App) applyOutputMode(opts RunOptions) detector.OutputMode {
	autoMode := detector.ModePretty
	if a.detector != nil {
		autoMode = a.detector.DetectEnvironment()
	}

	mode := detector.ResolveMode(autoMode, opts.OutputMode)
	if opts.JSON {
		mode = detector.ModeJSON
	}

	if s, ok := a.logger.(modeSwitcher); ok {
		s.SetJSON(mode == detector.ModeJSON)
		s.SetPlain(mode == detector.ModePlain)
	}
	return mode
}

// Run resolves every requested target and starts watching them. Any resolution
// error aborts before a session is started. Once all sessions are watching, Run
// blocks until ctx is cancelled and then disposes them.
func (a *App) Run(ctx context.Context, flags domain.BuildFlags, opts RunOptions) error {
	a.applyOutputMode(opts)
	if a.telemetry != nil {
		a.telemetry.SetTimings(flags.Timings)
	}

	configs, err := a.Plan(flags)
	if err != nil {
		return err
	}

	sessions, err := a.start(ctx, configs)
	if err != nil {
		return err
	}

	<-ctx.Done()
	dispose(sessions)
	return nil
}

// Plan resolves targets and assembles their configurations without touching the bundler.
func (a *App) Plan(flags domain.BuildFlags) ([]*domain.BuildConfiguration, error) {
	cwd, err := a.workingDir()
	if err != nil {
		return nil, err
	}

	layout, err := a.layouts.Load(cwd)
	if err != nil {
		return nil, err
	}

	private, err := a.reader.PrivateTargets(layout.PrivatePath())
	if err != nil {
		return nil, err
	}

	res := resolver.New(a.reader, *layout, private, cwd)

	targets, err := res.Resolve(flags.Targets)
	if err != nil {
		return nil, err
	}

	configs := make([]*domain.BuildConfiguration, 0, len(targets))
	for _, target := range targets {
		cfg, err := res.Configure(target, flags)
		if err != nil {
			return nil, err
		}
		if !target.Manifest.BuildOptions.DeclaresFormat(flags.Format.String()) {
			a.logger.Warn(fmt.Sprintf("%s does not declare format %q (declared: %s)",
				target.Name, flags.Format.String(), strings.Join(target.Manifest.BuildOptions.Formats, ", ")))
		}
		cfg.Plugins = pipeline.Build(target, flags, cfg.RelativeOutput, a.logger)
		configs = append(configs, cfg)
	}
	return configs, nil
}

// start submits every configuration concurrently. Watch returns as soon as the
// initial build is scheduled, so no submission waits for another target's build.
func (a *App) start(ctx context.Context, configs []*domain.BuildConfiguration) ([]ports.Session, error) {
	sessions := make([]ports.Session, len(configs))

	var g errgroup.Group
	for i, cfg := range configs {
		g.Go(func() error {
			session, err := a.bundler.Context(ctx, cfg)
			if err != nil {
				return err
			}
			sessions[i] = session
			return session.Watch()
		})
	}

	if err := g.Wait(); err != nil {
		dispose(sessions)
		return nil, err
	}
	return sessions, nil
}

func dispose(sessions []ports.Session) {
	for _, s := range sessions {
		if s != nil {
			s.Dispose()
		}
	}
}

func (a *App) workingDir() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrWorkingDirFailed, "cannot start"), "reason", err.Error())
	}
	return cwd, nil
}
