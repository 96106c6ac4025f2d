package domain

import (
	"maps"
	"slices"
)

// Manifest is the subset of a package.json file the build needs.
type Manifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	BuildOptions     BuildOptions      `json:"buildOptions"`
}

// BuildOptions holds the custom build settings a package declares in its manifest.
type BuildOptions struct {
	// Name is the global variable name assigned by IIFE builds.
	Name string `json:"name"`
	// EnableNonBrowserBranches keeps Node-only code paths in browser builds.
	EnableNonBrowserBranches bool `json:"enableNonBrowserBranches"`
	// Formats lists the formats the package is published in.
	Formats []string `json:"formats"`
}

// DeclaresFormat reports whether format is one of the declared formats.
// A package that declares none accepts every format.
func (o BuildOptions) DeclaresFormat(format string) bool {
	return len(o.Formats) == 0 || slices.Contains(o.Formats, format)
}

// DependencyNames returns the sorted names of the runtime dependencies.
func (m *Manifest) DependencyNames() []string {
	return slices.Sorted(maps.Keys(m.Dependencies))
}

// PeerDependencyNames returns the sorted names of the peer dependencies.
func (m *Manifest) PeerDependencyNames() []string {
	return slices.Sorted(maps.Keys(m.PeerDependencies))
}

// DevDependencyNames returns the sorted names of the development dependencies.
func (m *Manifest) DevDependencyNames() []string {
	return slices.Sorted(maps.Keys(m.DevDependencies))
}
