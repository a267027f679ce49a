// Package probe looks up declared formula dependencies on the host PATH.
package probe

import (
	"context"
	"errors"
	"os/exec"
	"runtime"

	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// executables maps formula names whose package does not ship a binary of the same name.
var executables = map[string]string{
	"coreutils": "env",
	"sqlite":    "sqlite3",
}

// Executable returns the program looked up for the named dependency.
func Executable(name string) string {
	if exe, ok := executables[name]; ok {
		return exe
	}
	return name
}

// PathProbe implements ports.DependencyProbe using exec.LookPath.
type PathProbe struct {
	lookPath func(file string) (string, error)
}

// Option configures a PathProbe.
type Option func(*PathProbe)

// WithLookPath overrides the lookup function.
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(p *PathProbe) {
		if fn != nil {
			p.lookPath = fn
		}
	}
}

// New creates a new PathProbe.
func New(opts ...Option) *PathProbe {
	p := &PathProbe{lookPath: exec.LookPath}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe looks up every dependency concurrently. A missing executable yields an empty Path.
func (p *PathProbe) Probe(ctx context.Context, deps []domain.Dependency) ([]ports.DependencyStatus, error) {
	statuses := make([]ports.DependencyStatus, len(deps))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dep := range deps {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			statuses[i].Dependency = dep
			path, err := p.lookPath(Executable(dep.Name))
			switch {
			case err == nil:
				statuses[i].Path = path
			case errors.Is(err, exec.ErrNotFound):
			default:
				return zerr.With(zerr.Wrap(err, "failed to look up dependency"), "dependency", dep.Name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return statuses, nil
}
