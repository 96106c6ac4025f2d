package resolver

import (
	"slices"

	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// platformExternals are Node built-ins left to the runtime by CommonJS and
// bundler-targeted ES module builds.
var platformExternals = []string{"path", "url", "stream"}

// templateEngineExternals are modules the template compiler loads lazily and
// must never inline.
var templateEngineExternals = []string{
	"fs",
	"vm",
	"crypto",
	"react-dom/server",
	"teacup/lib/express",
	"arc-templates/dist/es5",
	"then-pug",
	"then-jade",
}

// Externals returns the sorted, de-duplicated module names the bundle must not
// embed. The list never contains the target itself.
func (r *Resolver) Externals(target domain.Target, flags domain.BuildFlags) ([]string, error) {
	if flags.Inline {
		return []string{}, nil
	}

	var externals []string

	if flags.Format.IsCJS() || flags.Format.IsESMBundler() {
		externals = append(externals, target.Manifest.DependencyNames()...)
		externals = append(externals, target.Manifest.PeerDependencyNames()...)
		externals = append(externals, platformExternals...)
	}

	if target.Name == r.layout.TemplateCompiler {
		adapter, err := r.reader.ReadDependency(target.Dir, r.layout.TemplateAdapter)
		if err != nil {
			err = zerr.Wrap(err, "cannot externalize template engines")
			return nil, zerr.With(err, "target", target.Name)
		}
		externals = append(externals, adapter.DevDependencyNames()...)
		externals = append(externals, templateEngineExternals...)
	}

	externals = slices.DeleteFunc(externals, func(name string) bool {
		return name == target.Name || name == target.Manifest.Name
	})
	slices.Sort(externals)
	return slices.Compact(externals), nil
}
