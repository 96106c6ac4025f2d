// Package config discovers and loads the optional devbuild.yaml workspace layout.
package config

import (
	"path/filepath"

	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.LayoutLoader using a YAML file.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fs: NewOSFS()}
}

// NewLoaderWithFS creates a Loader reading from fsys.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load walks up from cwd looking for devbuild.yaml. The directory holding the
// file becomes the workspace root. Without a file, cwd is the root and the
// default layout applies.
func (l *Loader) Load(cwd string) (*domain.Layout, error) {
	path, ok := l.findLayoutFile(cwd)
	if !ok {
		layout := domain.DefaultLayout(cwd)
		return &layout, nil
	}

	data, readErr := l.fs.ReadFile(path)
	if readErr != nil {
		err := zerr.Wrap(domain.ErrLayoutReadFailed, "cannot load workspace layout")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "reason", readErr.Error())
	}

	var file Layoutfile
	if parseErr := yaml.Unmarshal(data, &file); parseErr != nil {
		err := zerr.Wrap(domain.ErrLayoutParseFailed, "cannot load workspace layout")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "reason", parseErr.Error())
	}

	layout := domain.DefaultLayout(filepath.Dir(path))
	apply(&layout, &file)
	return &layout, nil
}

func (l *Loader) findLayoutFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.LayoutFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// apply overlays the non-empty fields of file onto layout.
func apply(layout *domain.Layout, file *Layoutfile) {
	override(&layout.PackagesDir, file.Packages)
	override(&layout.PrivateDir, file.Private)
	override(&layout.DefaultTarget, file.DefaultTarget)
	override(&layout.CompatTarget, file.Compat.Target)
	override(&layout.CompatBase, file.Compat.Base)
	override(&layout.TemplateCompiler, file.TemplateCompiler.Target)
	override(&layout.TemplateAdapter, file.TemplateCompiler.Adapter)
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
