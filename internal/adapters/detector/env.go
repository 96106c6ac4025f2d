// Package detector provides environment detection for log output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how log lines are rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty renders colored, human-readable lines.
	ModePretty
	// ModePlain renders the same lines without escape sequences, for CI and pipes.
	ModePlain
	// ModeJSON renders one JSON object per line.
	ModeJSON
)

// Detector inspects the process environment.
type Detector struct {
	isTerminal func() bool
	getenv     func(string) string
}

// New creates a Detector that checks whether stderr, where logs go, is a terminal.
func New() *Detector {
	return NewWithProbes(
		func() bool { return term.IsTerminal(int(os.Stderr.Fd())) },
		os.Getenv,
	)
}

// NewWithProbes creates a Detector with custom terminal and environment lookups.
func NewWithProbes(isTerminal func() bool, getenv func(string) string) *Detector {
	return &Detector{isTerminal: isTerminal, getenv: getenv}
}

// DetectEnvironment returns the recommended output mode.
// Plain output is chosen when stderr is not a TTY or a CI environment variable is set.
func (d *Detector) DetectEnvironment() OutputMode {
	ci := d.getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !d.isTerminal() || isCI {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the user's output flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "plain", "ci", "json", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "pretty":
		return ModePretty
	case "plain", "ci":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}
