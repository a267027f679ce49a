// Package config loads formula definitions from YAML or TOML files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilenames are searched, in order, when no formula path is given.
var DefaultFilenames = []string{"formula.yaml", "formula.yml", "formula.toml"}

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
	// Dir is searched for DefaultFilenames. Empty means the working directory.
	Dir string
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the formula at path. With an empty path the loader looks for a
// formula file in Dir and falls back to the built-in formula.
func (l *Loader) Load(path string) (*domain.Formula, error) {
	if path == "" {
		found, ok := l.discover()
		if !ok {
			l.logger.Info("no formula file found, using built-in json2sqlite3 formula")
			return domain.DefaultFormula(), nil
		}
		path = found
	}
	return Load(path)
}

func (l *Loader) discover() (string, bool) {
	for _, name := range DefaultFilenames {
		candidate := filepath.Join(l.Dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Load reads and validates the formula file at path.
func Load(path string) (*domain.Formula, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		readErr := errors.Join(domain.ErrConfigReadFailed, err)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(readErr, "formula file not found"), "path", path)
		}
		return nil, zerr.With(readErr, "path", path)
	}

	var file FormulaFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "invalid formula path"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	f, err := file.toDomain(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return f, nil
}

func (file *FormulaFile) toDomain(baseDir string) (*domain.Formula, error) {
	name := strings.TrimSpace(file.Name)
	if name == "" {
		return nil, zerr.Wrap(domain.ErrMissingFormulaName, "invalid formula")
	}

	deps, err := dependencies(file.Dependencies)
	if err != nil {
		return nil, err
	}

	f := &domain.Formula{
		Name:     name,
		Homepage: file.Homepage,
		URL:      file.URL,
		Version:  strings.TrimSpace(file.Version),
		Tag:      file.Tag,
		Head: domain.HeadSource{
			URL:    file.Head.URL,
			Branch: file.Head.Branch,
		},
		Dependencies: deps,
		Policy:       domain.Policy{AllowReleaseInstalls: true},
		Build: domain.BuildSettings{
			Program: file.Build.Program,
			Target:  file.Build.Target,
			Dir:     file.Build.Dir,
		},
	}

	if f.Head.URL == "" {
		f.Head.URL = f.URL
	}
	if f.Head.Branch == "" {
		f.Head.Branch = "main"
	}
	if file.Policy.AllowReleaseInstalls != nil {
		f.Policy.AllowReleaseInstalls = *file.Policy.AllowReleaseInstalls
	}
	if f.Build.Program == "" {
		f.Build.Program = domain.DefaultBuildProgram
	}
	if f.Build.Target == "" {
		f.Build.Target = domain.DefaultBuildTarget
	}
	if f.Build.Dir != "" && !filepath.IsAbs(f.Build.Dir) {
		f.Build.Dir = filepath.Join(baseDir, f.Build.Dir)
	}

	return f, nil
}

func dependencies(dtos []DependencyDTO) ([]domain.Dependency, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(dtos))
	deps := make([]domain.Dependency, 0, len(dtos))
	for i, dto := range dtos {
		name := strings.TrimSpace(dto.Name)
		if name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDependency, "invalid formula"), "index", i)
		}
		if seen[name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateDependency, "invalid formula"), "dependency", name)
		}
		seen[name] = true
		deps = append(deps, domain.Dependency{Name: name, Recommended: dto.Recommended})
	}
	return deps, nil
}
