package esbuild

import (
	"context"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
)

// shimNamespace holds modules generated by domain.ModuleShim plugins.
const shimNamespace = "devbuild-shim"

// translate registers the hooks matching every capability plugin implements.
// Shims never claim a path listed in externals.
func translate(plugin domain.Plugin, externals map[string]struct{}) api.Plugin {
	return api.Plugin{
		Name: plugin.Name(),
		Setup: func(build api.PluginBuild) {
			if observer, ok := plugin.(domain.EndObserver); ok {
				build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
					observer.OnEnd(domain.BuildResult{
						Errors:   messageTexts(result.Errors),
						Warnings: messageTexts(result.Warnings),
					})
					return api.OnEndResult{}, nil
				})
			}

			if shim, ok := plugin.(domain.ModuleShim); ok {
				setupShim(build, shim, externals)
			}
		},
	}
}

// setupShim routes matching imports into the shim namespace. OnResolve runs
// before esbuild applies its External list, so externals are marked here.
func setupShim(build api.PluginBuild, shim domain.ModuleShim, externals map[string]struct{}) {
	build.OnResolve(api.OnResolveOptions{Filter: shim.Filter()},
		func(args api.OnResolveArgs) (api.OnResolveResult, error) {
			if isExternal(args.Path, externals) {
				return api.OnResolveResult{Path: args.Path, External: true}, nil
			}
			if _, ok := shim.Shim(args.Path); !ok {
				return api.OnResolveResult{}, nil
			}
			return api.OnResolveResult{Path: args.Path, Namespace: shimNamespace}, nil
		})

	build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: shimNamespace},
		func(args api.OnLoadArgs) (api.OnLoadResult, error) {
			contents, ok := shim.Shim(args.Path)
			if !ok {
				return api.OnLoadResult{}, nil
			}
			return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJS}, nil
		})
}

func isExternal(path string, externals map[string]struct{}) bool {
	if _, ok := externals[path]; ok {
		return true
	}
	_, ok := externals[strings.TrimPrefix(path, "node:")]
	return ok
}

// tracePlugin opens a span when a build starts and ends it with the build outcome.
func tracePlugin(ctx context.Context, tracer ports.Tracer, target string) api.Plugin {
	var (
		mu   sync.Mutex
		span ports.Span
	)

	return api.Plugin{
		Name: "trace",
		Setup: func(build api.PluginBuild) {
			build.OnStart(func() (api.OnStartResult, error) {
				mu.Lock()
				defer mu.Unlock()

				_, span = tracer.Start(ctx, "build "+target)
				span.SetAttribute("devbuild.target", target)
				return api.OnStartResult{}, nil
			})

			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				mu.Lock()
				defer mu.Unlock()

				if span == nil {
					return api.OnEndResult{}, nil
				}
				span.SetAttribute("devbuild.errors", len(result.Errors))
				span.SetAttribute("devbuild.warnings", len(result.Warnings))
				if len(result.Errors) > 0 {
					span.RecordError(domain.ErrEngineBuildFailure)
				}
				span.End()
				span = nil
				return api.OnEndResult{}, nil
			})
		},
	}
}
