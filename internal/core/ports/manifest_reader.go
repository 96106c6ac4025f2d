package ports

import "go.trai.ch/devbuild/internal/core/domain"

// ManifestReader loads package manifests from the workspace.
//
//go:generate mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read loads the manifest of the package in dir.
	// It returns domain.ErrManifestNotFound if dir has no manifest.
	Read(dir string) (*domain.Manifest, error)

	// ReadDependency locates an installed package by walking up from fromDir through
	// node_modules directories and loads its manifest.
	// It returns domain.ErrDependencyManifestUnresolved if the package cannot be found or read.
	ReadDependency(fromDir, pkg string) (*domain.Manifest, error)

	// PrivateTargets lists the package directories under the private root.
	// A missing root yields an empty list.
	PrivateTargets(root string) ([]string, error)
}
