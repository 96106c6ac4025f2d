package domain

// Output is the resolved destination of a target's bundle.
type Output struct {
	// File is the absolute path of the bundle.
	File string
	// Relative is File relative to the working directory, used in log lines.
	Relative string
}

// BuildConfiguration is everything the bundling engine needs to build one target.
// It is assembled once per target per invocation and not modified afterwards.
type BuildConfiguration struct {
	Target         string
	EntryPoint     string
	OutputFile     string
	RelativeOutput string
	Format         ModuleFormat
	Platform       Platform
	Externals      []string
	GlobalName     string
	Sourcemap      bool
	Defines        map[string]string
	Plugins        []Plugin
}
