package domain

// Plugin is a build lifecycle hook handed to the bundling engine.
//
// A plugin advertises what it does by also implementing one or more of the
// capability interfaces below. The engine adapter wires each capability it finds.
type Plugin interface {
	Name() string
}

// EndObserver is notified after every build and rebuild.
type EndObserver interface {
	Plugin
	OnEnd(result BuildResult)
}

// ModuleShim replaces imports matching Filter with generated module source.
type ModuleShim interface {
	Plugin
	// Filter is a Go regular expression matched against import paths.
	Filter() string
	// Shim returns the module source for the import path, or false to let
	// normal resolution continue.
	Shim(path string) (contents string, ok bool)
}

// BuildResult summarizes one finished build.
type BuildResult struct {
	Errors   []string
	Warnings []string
}

// Failed reports whether the build produced errors.
func (r BuildResult) Failed() bool {
	return len(r.Errors) > 0
}
