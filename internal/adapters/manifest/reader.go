// Package manifest reads package.json manifests and the private package listing.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reader implements ports.ManifestReader on the local filesystem.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a Reader that reports suspicious manifests through logger.
func NewReader(logger ports.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read loads <dir>/package.json.
func (r *Reader) Read(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	// #nosec G304 -- path is built from the workspace layout
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			err := zerr.Wrap(domain.ErrManifestNotFound, "no package manifest")
			return nil, zerr.With(err, "path", path)
		}
		err := zerr.Wrap(domain.ErrManifestReadFailed, "cannot read manifest")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "reason", readErr.Error())
	}

	var m domain.Manifest
	if parseErr := json.Unmarshal(data, &m); parseErr != nil {
		err := zerr.Wrap(domain.ErrManifestParseFailed, "cannot decode manifest")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "reason", parseErr.Error())
	}

	r.checkVersion(&m, path)
	return &m, nil
}

// ReadDependency resolves pkg the way Node does for a module located in fromDir:
// <dir>/node_modules/<pkg>/package.json for dir and each of its ancestors.
func (r *Reader) ReadDependency(fromDir, pkg string) (*domain.Manifest, error) {
	currentDir := fromDir
	for {
		pkgDir := filepath.Join(currentDir, domain.NodeModulesDirName, filepath.FromSlash(pkg))
		m, err := r.Read(pkgDir)
		switch {
		case err == nil:
			return m, nil
		case !errors.Is(err, domain.ErrManifestNotFound):
			return nil, unresolved(pkg, fromDir, err)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return nil, unresolved(pkg, fromDir, nil)
		}
		currentDir = parentDir
	}
}

func unresolved(pkg, fromDir string, cause error) error {
	err := zerr.Wrap(domain.ErrDependencyManifestUnresolved, fmt.Sprintf("cannot locate %s", pkg))
	err = zerr.With(err, "from", fromDir)
	if cause != nil {
		err = zerr.With(err, "reason", cause.Error())
	}
	return err
}

// PrivateTargets returns the sorted directory names under root.
// A missing root yields an empty list.
func (r *Reader) PrivateTargets(root string) ([]string, error) {
	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			return nil, nil
		}
		err := zerr.Wrap(domain.ErrPrivateTargetsReadFailed, "cannot list private packages")
		err = zerr.With(err, "path", root)
		return nil, zerr.With(err, "reason", readErr.Error())
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// checkVersion warns about versions that are not strict semver. The version is
// still substituted verbatim into the bundle.
func (r *Reader) checkVersion(m *domain.Manifest, path string) {
	if m.Version == "" || r.logger == nil {
		return
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		r.logger.Warn(fmt.Sprintf("%s: version %q is not valid semver", path, m.Version))
	}
}
