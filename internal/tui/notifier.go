package tui

import (
	"fmt"
	"io"
	"sync"
)

// Notifier prints backend outcomes to the terminal.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
}

// NewNotifier creates a Notifier writing to out.
func NewNotifier(out io.Writer, styles Styles) *Notifier {
	return &Notifier{out: out, styles: styles}
}

func (n *Notifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, n.styles.Success.Render("✓ "+msg))
}

func (n *Notifier) Failure(msg string, _ error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, n.styles.Error.Render("✗ "+msg))
}
