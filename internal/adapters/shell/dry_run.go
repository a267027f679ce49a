package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/formula/internal/core/domain"
)

// DryRunner implements ports.ProcessRunner by printing the command instead of running it.
type DryRunner struct {
	out io.Writer
}

// NewDryRunner creates a DryRunner that writes to out.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{out: out}
}

// Run prints args and reports success.
func (r *DryRunner) Run(_ context.Context, args []string) (domain.ExitStatus, error) {
	if _, err := fmt.Fprintf(r.out, "would run: %s\n", strings.Join(args, " ")); err != nil {
		return domain.ExitTerminated, err
	}
	return domain.ExitSuccess, nil
}
