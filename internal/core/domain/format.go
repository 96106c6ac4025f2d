package domain

import "strings"

// DefaultFormat is the format used when the format flag is empty.
const DefaultFormat = "global"

// ModuleFormat is the module system of an emitted bundle.
type ModuleFormat uint8

const (
	// ModuleESM emits ECMAScript modules.
	ModuleESM ModuleFormat = iota
	// ModuleIIFE emits a single immediately-invoked function expression.
	ModuleIIFE
	// ModuleCJS emits CommonJS modules.
	ModuleCJS
)

// String returns the engine-facing name of the module format.
func (m ModuleFormat) String() string {
	switch m {
	case ModuleIIFE:
		return "iife"
	case ModuleCJS:
		return "cjs"
	default:
		return "esm"
	}
}

// Platform is the runtime environment a bundle is built for.
type Platform uint8

const (
	// PlatformBrowser targets browsers.
	PlatformBrowser Platform = iota
	// PlatformNode targets Node.js.
	PlatformNode
)

// String returns the engine-facing name of the platform.
func (p Platform) String() string {
	if p == PlatformNode {
		return "node"
	}
	return "browser"
}

// Format is a classified format flag.
//
// The raw text is matched against its known shapes exactly once, in ParseFormat.
// Callers ask the predicates instead of inspecting the text.
type Format struct {
	raw        string
	global     bool
	cjs        bool
	esmBundler bool
	esmBrowser bool
	runtime    bool
}

// ParseFormat classifies the raw format flag. Unrecognized values are accepted and
// behave as ECMAScript module builds.
func ParseFormat(raw string) Format {
	if raw == "" {
		raw = DefaultFormat
	}
	return Format{
		raw:        raw,
		global:     strings.HasPrefix(raw, "global"),
		cjs:        raw == "cjs",
		esmBundler: strings.Contains(raw, "esm-bundler"),
		esmBrowser: strings.Contains(raw, "esm-browser"),
		runtime:    strings.HasSuffix(raw, "-runtime"),
	}
}

// String returns the format flag as given.
func (f Format) String() string {
	return f.raw
}

// IsGlobal reports whether the format is one of the global (IIFE) builds.
func (f Format) IsGlobal() bool { return f.global }

// IsDefault reports whether the format is exactly the default global build.
func (f Format) IsDefault() bool { return f.raw == DefaultFormat }

// IsCJS reports whether the format is the CommonJS build.
func (f Format) IsCJS() bool { return f.cjs }

// IsESMBundler reports whether the format targets downstream bundlers.
func (f Format) IsESMBundler() bool { return f.esmBundler }

// IsESMBrowser reports whether the format targets native browser ES modules.
func (f Format) IsESMBrowser() bool { return f.esmBrowser }

// IsRuntime reports whether the format is a runtime-only variant.
func (f Format) IsRuntime() bool { return f.runtime }

// Module returns the module format emitted for this format flag.
func (f Format) Module() ModuleFormat {
	switch {
	case f.global:
		return ModuleIIFE
	case f.cjs:
		return ModuleCJS
	default:
		return ModuleESM
	}
}

// Platform returns the platform bundles of this format are built for.
func (f Format) Platform() Platform {
	if f.cjs {
		return PlatformNode
	}
	return PlatformBrowser
}

// Postfix returns the file name segment that identifies this format.
// Runtime-only variants are written as "runtime.<format>".
func (f Format) Postfix() string {
	if f.runtime {
		return "runtime." + strings.TrimSuffix(f.raw, "-runtime")
	}
	return f.raw
}
