// Package console provides the synchronized sink for interleaved build output.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.fanout.dev/fanout/internal/ui/output"
	"go.fanout.dev/fanout/internal/ui/style"
)

// Sink is the single writer of the combined build stream. Every line is
// written under one mutex in one Fprintf call, so a prefix can never be
// separated from its content even when many tasks emit concurrently.
type Sink struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
}

// New creates a new Sink. Nil writers default to os.Stdout and os.Stderr.
func New(stdout, stderr io.Writer) *Sink {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Sink{
		stdout: stdout,
		stderr: stderr,
		out:    output.New(io.Discard),
	}
}

// Line emits one normal output line under the given prefix.
func (s *Sink) Line(prefix, line string) {
	styled := s.out.String(prefix).Faint().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.stdout, "%s %s\n", styled, line)
}

// ErrLine emits one error line with the [ERR] marker between the prefix
// and the content. Error lines go to the stderr side of the stream.
func (s *Sink) ErrLine(prefix, line string) {
	styled := s.out.String(prefix).Faint().String()
	marker := s.out.String("[ERR]").Foreground(termenv.RGBColor(style.Red)).String()

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.stderr, "%s %s %s\n", styled, marker, line)
}
