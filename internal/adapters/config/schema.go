package config

// File represents the structure of the optional fanout.yaml file. Every
// field overrides the corresponding built-in default when non-empty.
type File struct {
	Version  string              `yaml:"version"`
	Compiler []string            `yaml:"compiler"`
	Phases   map[string][]string `yaml:"phases"`
	Locales  []string            `yaml:"locales"`
	Flavors  []FlavorDTO         `yaml:"flavors"`
	Targets  []TargetDTO         `yaml:"targets"`
	Styles   []StyleDTO          `yaml:"styles"`
}

// FlavorDTO represents a flavor declaration in the configuration.
type FlavorDTO struct {
	Name      string   `yaml:"name"`
	Selectors []string `yaml:"selectors"`
	UI        bool     `yaml:"ui"`
}

// TargetDTO represents a language target declaration.
type TargetDTO struct {
	LangOut string `yaml:"langout"`
	Suffix  string `yaml:"suffix"`
}

// StyleDTO represents one style-sheet bundle declaration.
type StyleDTO struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Main string `yaml:"main"`
}
