package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when a requested target has no package manifest.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestReadFailed is returned when a package manifest exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a package manifest exists but cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrDependencyManifestUnresolved is returned when a dependency manifest cannot be located
	// by walking up the node_modules hierarchy, or cannot be read once located.
	ErrDependencyManifestUnresolved = zerr.New("dependency manifest unresolved")

	// ErrPrivateTargetsReadFailed is returned when the private target directory cannot be listed.
	ErrPrivateTargetsReadFailed = zerr.New("failed to list private targets")

	// ErrLayoutReadFailed is returned when the layout file cannot be read.
	ErrLayoutReadFailed = zerr.New("failed to read layout file")

	// ErrLayoutParseFailed is returned when the layout file cannot be parsed.
	ErrLayoutParseFailed = zerr.New("failed to parse layout file")

	// ErrEngineContextFailed is returned when the bundling engine rejects a build configuration.
	ErrEngineContextFailed = zerr.New("failed to create build context")

	// ErrEngineWatchFailed is returned when a build context cannot enter watch mode.
	ErrEngineWatchFailed = zerr.New("failed to start watch session")

	// ErrEngineBuildFailure is reported when a build or rebuild finishes with errors.
	ErrEngineBuildFailure = zerr.New("build failed")

	// ErrWorkingDirFailed is returned when the working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine working directory")
)
