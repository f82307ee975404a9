package platform

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("no clipboard utility available")

// Clipboard is the host service the generator copies passwords into.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows API).
type SystemClipboard struct{}

func NewSystemClipboard() SystemClipboard {
	return SystemClipboard{}
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard write: %w", ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
