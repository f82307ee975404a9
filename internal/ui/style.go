package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colorUnfocusedBg = tcell.Color236
	colorFocusedBg   = tcell.Color24
)

func styleButton(b *tview.Button) *tview.Button {
	b.SetBackgroundColor(colorUnfocusedBg)
	b.SetLabelColor(tcell.ColorWhite)
	b.SetFocusFunc(func() {
		b.SetLabelColor(colorFocusedBg)
		b.SetBackgroundColor(tcell.ColorWhite)
	})
	b.SetBlurFunc(func() {
		b.SetBackgroundColor(colorUnfocusedBg)
		b.SetLabelColor(tcell.ColorWhite)
	})
	return b
}

func styleCheckbox(c *tview.Checkbox) *tview.Checkbox {
	c.SetLabelColor(tcell.ColorYellow)
	c.SetFieldBackgroundColor(colorUnfocusedBg)
	c.SetFocusFunc(func() { c.SetFieldBackgroundColor(colorFocusedBg) })
	c.SetBlurFunc(func() { c.SetFieldBackgroundColor(colorUnfocusedBg) })
	return c
}

func styleSlider(s *lengthSlider) *lengthSlider {
	s.SetBackgroundColor(tcell.ColorDefault)
	return s
}

// cycleFocus returns the index next to cur in a ring of n items.
func cycleFocus(cur, n int, backwards bool) int {
	if n == 0 {
		return 0
	}
	if backwards {
		return (cur - 1 + n) % n
	}
	return (cur + 1) % n
}
