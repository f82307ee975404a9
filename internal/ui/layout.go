package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// centeredPanel keeps its content in the middle of the screen, sized as a
// share of the terminal within [min, max] bounds. The padding is rebuilt only
// when the terminal size changes.
type centeredPanel struct {
	*tview.Flex
	content        tview.Primitive
	minW, minH     int
	maxW, maxH     int
	shareW, shareH float64
	lastW, lastH   int
}

func newCenteredPanel(p tview.Primitive, minW, minH, maxW, maxH int, shareW, shareH float64) *centeredPanel {
	c := &centeredPanel{
		Flex:    tview.NewFlex(),
		content: p,
		minW:    minW,
		minH:    minH,
		maxW:    maxW,
		maxH:    maxH,
		shareW:  shareW,
		shareH:  shareH,
	}
	c.Flex.AddItem(p, 0, 1, true)
	return c
}

// panelSize clamps total*share into [lo, hi] and never beyond total.
func panelSize(total int, share float64, lo, hi int) int {
	n := int(float64(total) * share)
	if n < lo {
		n = lo
	}
	if hi > 0 && n > hi {
		n = hi
	}
	if n > total {
		n = total
	}
	return n
}

func (c *centeredPanel) Draw(screen tcell.Screen) {
	_, _, w, h := c.GetRect()
	if w != c.lastW || h != c.lastH {
		pw := panelSize(w, c.shareW, c.minW, c.maxW)
		ph := panelSize(h, c.shareH, c.minH, c.maxH)
		left, top := (w-pw)/2, (h-ph)/2

		column := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, top, 0, false).
			AddItem(c.content, ph, 0, true).
			AddItem(nil, h-ph-top, 0, false)

		c.Flex.Clear().
			AddItem(nil, left, 0, false).
			AddItem(column, pw, 0, true).
			AddItem(nil, w-pw-left, 0, false)

		c.lastW, c.lastH = w, h
	}
	c.Flex.Draw(screen)
}
