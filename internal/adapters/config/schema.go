package config

// FormulaFile is the on-disk representation of a formula.
type FormulaFile struct {
	Name         string          `yaml:"name" toml:"name"`
	Homepage     string          `yaml:"homepage" toml:"homepage"`
	URL          string          `yaml:"url" toml:"url"`
	Version      string          `yaml:"version" toml:"version"`
	Tag          string          `yaml:"tag" toml:"tag"`
	Head         HeadDTO         `yaml:"head" toml:"head"`
	Dependencies []DependencyDTO `yaml:"dependencies" toml:"dependencies"`
	Policy       PolicyDTO       `yaml:"policy" toml:"policy"`
	Build        BuildDTO        `yaml:"build" toml:"build"`
}

// HeadDTO is the head source section.
type HeadDTO struct {
	URL    string `yaml:"url" toml:"url"`
	Branch string `yaml:"branch" toml:"branch"`
}

// DependencyDTO is a single dependency entry.
type DependencyDTO struct {
	Name        string `yaml:"name" toml:"name"`
	Recommended bool   `yaml:"recommended" toml:"recommended"`
}

// PolicyDTO is the install policy section. A missing value keeps the default.
type PolicyDTO struct {
	AllowReleaseInstalls *bool `yaml:"allow_release_installs" toml:"allow_release_installs"`
}

// BuildDTO is the build system section.
type BuildDTO struct {
	Program string `yaml:"program" toml:"program"`
	Target  string `yaml:"target" toml:"target"`
	Dir     string `yaml:"dir" toml:"dir"`
}
