package domain

// Formula describes a package: where its sources live, what it needs at
// runtime and how the build system is driven.
type Formula struct {
	Name     string
	Homepage string
	// URL is the repository holding tagged releases.
	URL     string
	Version string
	// Tag is the release tag. It defaults to "v" + Version.
	Tag          string
	Head         HeadSource
	Dependencies []Dependency
	Policy       Policy
	Build        BuildSettings
}

// HeadSource is the branch that head installs build from.
type HeadSource struct {
	URL    string
	Branch string
}

// Dependency is an external tool the host package manager must provide.
// The installer only reports on dependencies, it never enforces them.
type Dependency struct {
	Name        string
	Recommended bool
}

// BuildSettings configure the build system invocation.
type BuildSettings struct {
	// Program is the build tool, "make" by default.
	Program string
	// Target is the build target, "install" by default.
	Target string
	// Dir is the source directory holding the Makefile. Empty means the current directory.
	Dir string
}

const (
	// DefaultBuildProgram is the build system used when none is configured.
	DefaultBuildProgram = "make"
	// DefaultBuildTarget is the target used when none is configured.
	DefaultBuildTarget = "install"
)

// ReleaseTag returns the tag of the pinned release.
func (f *Formula) ReleaseTag() string {
	if f.Tag != "" {
		return f.Tag
	}
	if f.Version == "" {
		return ""
	}
	return "v" + f.Version
}

// DefaultFormula returns the built-in json2sqlite3 formula.
func DefaultFormula() *Formula {
	return &Formula{
		Name:     "json2sqlite3",
		Homepage: "https://github.com/yyuu/json2sqlite3",
		URL:      "https://github.com/yyuu/json2sqlite3.git",
		Version:  "0.20240220.1",
		Head: HeadSource{
			URL:    "https://github.com/yyuu/json2sqlite3.git",
			Branch: "main",
		},
		Dependencies: []Dependency{
			{Name: "bash"},
			{Name: "coreutils", Recommended: true},
			{Name: "jq"},
			{Name: "sqlite", Recommended: true},
		},
		Policy: Policy{AllowReleaseInstalls: true},
		Build: BuildSettings{
			Program: DefaultBuildProgram,
			Target:  DefaultBuildTarget,
		},
	}
}
