package handoff

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard writes text to a clipboard. The copy is a convenience, never a
// precondition: handoff proceeds even when every clipboard fails.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard is the primary mechanism, backed by the platform clipboard
// (xclip/xsel, pbcopy, or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// OSC52Clipboard is the legacy fallback: it emits an OSC 52 escape sequence
// so the hosting terminal performs the copy. Works over SSH where no
// clipboard tool is installed.
type OSC52Clipboard struct {
	Out io.Writer
}

func (c OSC52Clipboard) Write(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	_, err := osc52.New(text).WriteTo(out)
	return err
}
