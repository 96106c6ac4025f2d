package config

// Layoutfile is the structure of devbuild.yaml. Every field is optional.
type Layoutfile struct {
	Packages         string      `yaml:"packages"`
	Private          string      `yaml:"private"`
	DefaultTarget    string      `yaml:"defaultTarget"`
	Compat           CompatDTO   `yaml:"compat"`
	TemplateCompiler CompilerDTO `yaml:"templateCompiler"`
}

// CompatDTO names the compatibility build target and its bundle base name.
type CompatDTO struct {
	Target string `yaml:"target"`
	Base   string `yaml:"base"`
}

// CompilerDTO names the template compiler target and the adapter package
// whose dev dependencies it externalizes.
type CompilerDTO struct {
	Target  string `yaml:"target"`
	Adapter string `yaml:"adapter"`
}
