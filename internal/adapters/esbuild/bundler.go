// Package esbuild implements ports.Bundler on top of the esbuild Go API.
package esbuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bundler creates incremental esbuild contexts.
type Bundler struct {
	tracer ports.Tracer
}

// NewBundler creates a Bundler that opens one span per build on tracer.
func NewBundler(tracer ports.Tracer) *Bundler {
	return &Bundler{tracer: tracer}
}

// Context translates cfg into esbuild options and creates a build context.
// Nothing is built until the session starts watching.
func (b *Bundler) Context(ctx context.Context, cfg *domain.BuildConfiguration) (ports.Session, error) {
	opts := Options(cfg)
	opts.Plugins = append(opts.Plugins, tracePlugin(ctx, b.tracer, cfg.Target))

	buildCtx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		err := zerr.Wrap(domain.ErrEngineContextFailed, formatMessages(ctxErr.Errors))
		return nil, zerr.With(err, "target", cfg.Target)
	}

	return &session{target: cfg.Target, ctx: buildCtx}, nil
}

// Options maps a build configuration onto esbuild build options.
func Options(cfg *domain.BuildConfiguration) api.BuildOptions {
	sourcemap := api.SourceMapNone
	if cfg.Sourcemap {
		sourcemap = api.SourceMapLinked
	}

	opts := api.BuildOptions{
		EntryPoints: []string{cfg.EntryPoint},
		Outfile:     cfg.OutputFile,
		Bundle:      true,
		Write:       true,
		External:    cfg.Externals,
		Sourcemap:   sourcemap,
		Format:      moduleFormat(cfg.Format),
		Platform:    platform(cfg.Platform),
		GlobalName:  cfg.GlobalName,
		Define:      cfg.Defines,
		LogLevel:    api.LogLevelWarning,
	}

	externals := make(map[string]struct{}, len(cfg.Externals))
	for _, name := range cfg.Externals {
		externals[name] = struct{}{}
	}
	for _, plugin := range cfg.Plugins {
		opts.Plugins = append(opts.Plugins, translate(plugin, externals))
	}

	return opts
}

func moduleFormat(f domain.ModuleFormat) api.Format {
	switch f {
	case domain.ModuleIIFE:
		return api.FormatIIFE
	case domain.ModuleCJS:
		return api.FormatCommonJS
	default:
		return api.FormatESModule
	}
}

func platform(p domain.Platform) api.Platform {
	if p == domain.PlatformNode {
		return api.PlatformNode
	}
	return api.PlatformBrowser
}

func formatMessages(msgs []api.Message) string {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{
		Kind: api.ErrorMessage,
	})
	return strings.TrimSpace(strings.Join(formatted, "\n"))
}

func messageTexts(msgs []api.Message) []string {
	if len(msgs) == 0 {
		return nil
	}
	texts := make([]string, len(msgs))
	for i, msg := range msgs {
		texts[i] = msg.Text
		if loc := msg.Location; loc != nil {
			texts[i] = fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, msg.Text)
		}
	}
	return texts
}
