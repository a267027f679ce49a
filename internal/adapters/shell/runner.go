// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/formula/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
// Commands inherit the environment of the current process.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner that streams process output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and waits for it to finish.
//
// Output goes to the vertex carried by ctx when there is one, otherwise it
// is forwarded line by line to the logger.
func (r *Runner) Run(ctx context.Context, args []string) (domain.ExitStatus, error) {
	if len(args) == 0 {
		return domain.ExitSuccess, nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // command comes from the formula

	var flush func()
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = vertex.Stdout()
		cmd.Stderr = vertex.Stderr()
		flush = func() {}
	} else {
		stdout := &logWriter{logger: r.logger, level: domain.LogLevelInfo}
		stderr := &logWriter{logger: r.logger, level: domain.LogLevelWarn}
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		flush = func() {
			_ = stdout.Close()
			_ = stderr.Close()
		}
	}

	err := cmd.Run()
	flush()
	if err == nil {
		return domain.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode reports -1 for processes killed by a signal.
		return domain.ExitStatus(exitErr.ExitCode()), nil
	}
	return domain.ExitTerminated, zerr.With(zerr.Wrap(err, "failed to start command"), "command", args[0])
}

type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line that did not end in a newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == domain.LogLevelInfo {
		w.logger.Info(msg)
		return
	}
	w.logger.Warn(msg)
}
