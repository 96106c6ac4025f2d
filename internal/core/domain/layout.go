package domain

import "path/filepath"

const (
	// LayoutFileName is the name of the optional workspace layout file.
	LayoutFileName = "devbuild.yaml"

	// ManifestFileName is the name of a package manifest.
	ManifestFileName = "package.json"

	// NodeModulesDirName is the directory searched for installed packages.
	NodeModulesDirName = "node_modules"

	// DistDirName is the per-package output directory.
	DistDirName = "dist"

	// EntryPointPath is the entry module of every package, relative to the package directory.
	EntryPointPath = "src/index.ts"

	// DefaultPackagesDir is the public package root.
	DefaultPackagesDir = "packages"

	// DefaultPrivateDir is the private package root.
	DefaultPrivateDir = "packages-private"

	// DefaultTarget is built when no target is requested.
	DefaultTarget = "vue"

	// DefaultCompatTarget is the compatibility build target.
	DefaultCompatTarget = "vue-compat"

	// DefaultCompatBase is the bundle base name of the compatibility build.
	DefaultCompatBase = "vue"

	// DefaultTemplateCompiler is the target that externalizes template engine adapters.
	DefaultTemplateCompiler = "compiler-sfc"

	// DefaultTemplateAdapter is the package whose dev dependencies the template compiler externalizes.
	DefaultTemplateAdapter = "@vue/consolidate"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout describes where packages live in the workspace and which targets get
// special treatment. It is captured once at startup and read-only afterwards.
type Layout struct {
	// Root is the absolute workspace root.
	Root string
	// PackagesDir is the public package root, relative to Root.
	PackagesDir string
	// PrivateDir is the private package root, relative to Root.
	PrivateDir string
	// DefaultTarget is built when no target is requested.
	DefaultTarget string
	// CompatTarget is the target that builds the compatibility bundle.
	CompatTarget string
	// CompatBase is the bundle base name used for CompatTarget.
	CompatBase string
	// TemplateCompiler is the target that externalizes TemplateAdapter's dev dependencies.
	TemplateCompiler string
	// TemplateAdapter is the package located from TemplateCompiler's directory.
	TemplateAdapter string
}

// DefaultLayout returns the standard layout rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:             root,
		PackagesDir:      DefaultPackagesDir,
		PrivateDir:       DefaultPrivateDir,
		DefaultTarget:    DefaultTarget,
		CompatTarget:     DefaultCompatTarget,
		CompatBase:       DefaultCompatBase,
		TemplateCompiler: DefaultTemplateCompiler,
		TemplateAdapter:  DefaultTemplateAdapter,
	}
}

// PackagesPath returns the absolute public package root.
func (l Layout) PackagesPath() string {
	return filepath.Join(l.Root, l.PackagesDir)
}

// PrivatePath returns the absolute private package root.
func (l Layout) PrivatePath() string {
	return filepath.Join(l.Root, l.PrivateDir)
}

// BaseName returns the bundle base name for a target.
func (l Layout) BaseName(target string) string {
	if target == l.CompatTarget {
		return l.CompatBase
	}
	return target
}
