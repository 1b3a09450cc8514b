package observability

import (
	"fmt"
	"io"
)

// Messenger renders controller notifications as prefixed lines. It satisfies
// the session package's Notifier interface.
type Messenger struct {
	out io.Writer
}

// NewMessenger creates a Messenger that writes to the given writer.
func NewMessenger(out io.Writer) *Messenger {
	return &Messenger{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (m *Messenger) Success(msg string) {
	fmt.Fprintf(m.out, "✔ %s\n", msg)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (m *Messenger) Warning(msg string) {
	fmt.Fprintf(m.out, "⚠ %s\n", msg)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (m *Messenger) Error(msg string) {
	fmt.Fprintf(m.out, "✖ %s\n", msg)
}
