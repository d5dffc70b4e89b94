package desktop

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/logger"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard, falling back to an OSC52
// escape sequence when no clipboard utility is available (e.g. over SSH).
type Clipboard struct {
	// Terminal receives the OSC52 sequence. Defaults to os.Stderr.
	Terminal io.Writer

	writeAll    func(string) error
	unsupported bool
	getenv      func(string) string
}

// NewClipboard returns a clipboard backed by atotto/clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{
		Terminal:    os.Stderr,
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		getenv:      os.Getenv,
	}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if !c.unsupported {
		err := c.writeAll(text)
		if err == nil {
			return nil
		}
		logger.Debug("system clipboard failed, using OSC52: %v", err)
	}
	return c.copyOSC52(text)
}

func (c *Clipboard) copyOSC52(text string) error {
	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	w := c.Terminal
	if w == nil {
		w = os.Stderr
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("write OSC52 sequence: %w", err)
	}
	return nil
}
