// Package dispatcher decides how an install request is handed to the build system.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher validates install requests against its policy and runs the build
// system once per accepted request. It keeps no state between calls.
type Dispatcher struct {
	runner  ports.ProcessRunner
	policy  domain.Policy
	program string
	target  string
	dir     string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithProgram overrides the build tool, "make" by default.
func WithProgram(program string) Option {
	return func(d *Dispatcher) {
		if program != "" {
			d.program = program
		}
	}
}

// WithTarget overrides the build target, "install" by default.
func WithTarget(target string) Option {
	return func(d *Dispatcher) {
		if target != "" {
			d.target = target
		}
	}
}

// WithDirectory runs the build tool against the Makefile in dir.
func WithDirectory(dir string) Option {
	return func(d *Dispatcher) {
		d.dir = dir
	}
}

// WithBuildSettings applies the build section of a formula.
func WithBuildSettings(s domain.BuildSettings) Option {
	return func(d *Dispatcher) {
		WithProgram(s.Program)(d)
		WithTarget(s.Target)(d)
		WithDirectory(s.Dir)(d)
	}
}

// New creates a Dispatcher that spawns builds through runner.
func New(runner ports.ProcessRunner, policy domain.Policy, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner:  runner,
		policy:  policy,
		program: domain.DefaultBuildProgram,
		target:  domain.DefaultBuildTarget,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Policy returns the policy the dispatcher enforces.
func (d *Dispatcher) Policy() domain.Policy {
	return d.policy
}

// Plan validates req and returns the invocation Install would run.
// It never spawns a process.
func (d *Dispatcher) Plan(req domain.InstallRequest) (domain.Invocation, error) {
	version, err := d.versionFor(req)
	if err != nil {
		return domain.Invocation{}, err
	}
	if req.Prefix == "" {
		return domain.Invocation{}, zerr.With(zerr.Wrap(domain.ErrMissingPrefix, "invalid install request"), "mode", req.Mode.String())
	}

	args := []string{d.program}
	if d.dir != "" && d.dir != "." {
		args = append(args, "-C", d.dir)
	}
	args = append(args,
		"PREFIX="+req.Prefix,
		"VERSION="+version,
		d.target,
	)
	return domain.Invocation{Args: args}, nil
}

// Install runs the build system for req and blocks until it exits.
// Requests refused by the policy or missing required fields fail without
// spawning a process.
func (d *Dispatcher) Install(ctx context.Context, req domain.InstallRequest) error {
	inv, err := d.Plan(req)
	if err != nil {
		return err
	}

	status, err := d.runner.Run(ctx, inv.Args)
	if err != nil {
		failure := zerr.Wrap(errors.Join(domain.ErrBuildFailure, err), "failed to start "+inv.Program())
		return zerr.With(failure, domain.ExitCodeKey, int(domain.ExitTerminated))
	}
	if !status.Success() {
		failure := zerr.Wrap(domain.ErrBuildFailure, exitMessage(inv.Program(), status))
		failure = zerr.With(failure, "command", inv.String())
		return zerr.With(failure, domain.ExitCodeKey, int(status))
	}
	return nil
}

func (d *Dispatcher) versionFor(req domain.InstallRequest) (string, error) {
	switch req.Mode {
	case domain.ModeHead:
		return domain.HeadVersion, nil
	case domain.ModeRelease:
		if !d.policy.AllowReleaseInstalls {
			err := zerr.Wrap(domain.ErrUnsupportedMode, "release installation is disabled")
			return "", zerr.With(err, "version", req.Version)
		}
		if strings.TrimSpace(req.Version) == "" {
			return "", zerr.With(zerr.Wrap(domain.ErrMissingVersion, "invalid install request"), "mode", req.Mode.String())
		}
		return req.Version, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidMode, "invalid install request"), "mode", req.Mode.String())
	}
}

func exitMessage(program string, status domain.ExitStatus) string {
	if status == domain.ExitTerminated {
		return program + " was terminated"
	}
	return fmt.Sprintf("%s exited with status %d", program, int(status))
}

// ExitCode returns the exit status of the failed build carried by err.
func ExitCode(err error) (domain.ExitStatus, bool) {
	return domain.ExitCodeOf(err)
}
