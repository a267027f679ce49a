package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// Printer is a progrock.Writer that renders status updates as plain lines.
// Vertex starts and completions go to out; log data is forwarded to out or errOut by stream.
type Printer struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	started   map[string]bool
	completed map[string]bool
	closed    bool
}

// NewPrinter creates a new Printer.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		out:       out,
		errOut:    errOut,
		started:   make(map[string]bool),
		completed: make(map[string]bool),
	}
}

// WriteStatus renders a single status update.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return zerr.New("printer is closed")
	}

	for _, v := range update.Vertexes {
		if !p.started[v.Id] {
			p.started[v.Id] = true
			_, _ = fmt.Fprintf(p.out, "%s %s\n", color.CyanString("==>"), v.Name)
		}
		if v.Completed == nil || p.completed[v.Id] {
			continue
		}
		p.completed[v.Id] = true
		if v.Error != nil {
			_, _ = fmt.Fprintf(p.out, "%s %s: %s\n", color.RedString("✘"), v.Name, *v.Error)
		} else {
			_, _ = fmt.Fprintf(p.out, "%s %s\n", color.GreenString("✔"), v.Name)
		}
	}

	for _, l := range update.Logs {
		w := p.out
		if l.Stream == progrock.LogStream_STDERR {
			w = p.errOut
		}
		if _, err := w.Write(l.Data); err != nil {
			return zerr.Wrap(err, "failed to write vertex log")
		}
	}

	return nil
}

// Close stops accepting updates.
func (p *Printer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
