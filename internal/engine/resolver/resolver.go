// Package resolver turns requested target names and invocation flags into
// complete bundler configurations.
//
// The resolver never reads process state on its own. The workspace layout, the
// private package listing and the working directory are captured once at startup
// and passed to New, so every result is a function of its inputs.
package resolver

import (
	"path/filepath"
	"slices"

	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver resolves targets against a fixed workspace snapshot.
type Resolver struct {
	reader  ports.ManifestReader
	layout  domain.Layout
	private []string
	cwd     string
}

// New creates a Resolver. private is the snapshot of package names found under
// the layout's private package root.
func New(reader ports.ManifestReader, layout domain.Layout, private []string, cwd string) *Resolver {
	return &Resolver{
		reader:  reader,
		layout:  layout,
		private: slices.Clone(private),
		cwd:     cwd,
	}
}

// Resolve loads the manifest of every requested target, in request order.
// No names resolves the layout's default target. The first failure aborts
// resolution of the whole list.
func (r *Resolver) Resolve(names []string) ([]domain.Target, error) {
	if len(names) == 0 {
		names = []string{r.layout.DefaultTarget}
	}

	targets := make([]domain.Target, 0, len(names))
	for _, name := range names {
		target, err := r.resolveOne(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (r *Resolver) resolveOne(name string) (domain.Target, error) {
	private := slices.Contains(r.private, name)

	root := r.layout.PackagesPath()
	if private {
		root = r.layout.PrivatePath()
	}
	dir := filepath.Join(root, name)

	m, err := r.reader.Read(dir)
	if err != nil {
		return domain.Target{}, zerr.With(zerr.Wrap(err, "cannot resolve target"), "target", name)
	}

	return domain.Target{
		Name:     name,
		Dir:      dir,
		Private:  private,
		Manifest: m,
	}, nil
}

// Configure assembles the build configuration of one resolved target.
// The plugin pipeline is left empty for the caller to fill.
func (r *Resolver) Configure(target domain.Target, flags domain.BuildFlags) (*domain.BuildConfiguration, error) {
	externals, err := r.Externals(target, flags)
	if err != nil {
		return nil, err
	}

	out := ResolveOutput(r.layout.BaseName(target.Name), target.Dir, flags.Format, flags.Production, r.cwd)

	return &domain.BuildConfiguration{
		Target:         target.Name,
		EntryPoint:     filepath.Join(target.Dir, filepath.FromSlash(domain.EntryPointPath)),
		OutputFile:     out.File,
		RelativeOutput: out.Relative,
		Format:         flags.Format.Module(),
		Platform:       flags.Format.Platform(),
		Externals:      externals,
		GlobalName:     target.Manifest.BuildOptions.Name,
		Sourcemap:      true,
		Defines:        r.Defines(target, flags),
	}, nil
}
