package domain

// Target is a buildable package resolved to its directory and manifest.
type Target struct {
	// Name is the directory name the target was requested by.
	Name string
	// Dir is the absolute package directory.
	Dir string
	// Private is true when the package lives under the private package root.
	Private bool
	// Manifest is the decoded package.json of the target.
	Manifest *Manifest
}

// BuildFlags are the invocation-wide options shared by every target.
type BuildFlags struct {
	Format     Format
	Production bool
	Inline     bool
	Targets    []string
	Timings    bool
}
