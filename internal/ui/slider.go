package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// lengthSlider is a one-row range control. Left/Right (or -/+) step by one,
// PgDn/PgUp by ten, Home/End jump to the bounds; a click sets the value by
// position. changed fires only when the value moves.
type lengthSlider struct {
	*tview.Box
	min, max int
	value    int
	changed  func(value int)
}

func newLengthSlider(min, max, value int) *lengthSlider {
	s := &lengthSlider{Box: tview.NewBox(), min: min, max: max}
	s.value = s.clamp(value)
	return s
}

func (s *lengthSlider) SetChangedFunc(fn func(value int)) *lengthSlider {
	s.changed = fn
	return s
}

func (s *lengthSlider) Value() int { return s.value }

// SetValue moves the knob without calling the changed handler.
func (s *lengthSlider) SetValue(v int) *lengthSlider {
	s.value = s.clamp(v)
	return s
}

func (s *lengthSlider) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *lengthSlider) update(v int) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.changed != nil {
		s.changed(v)
	}
}

// knob returns the column of the knob inside a track of the given width.
func (s *lengthSlider) knob(width int) int {
	if width <= 1 || s.max == s.min {
		return 0
	}
	return (s.value - s.min) * (width - 1) / (s.max - s.min)
}

// valueAt maps a column inside the track back to a value, rounding to the
// nearest step.
func (s *lengthSlider) valueAt(col, width int) int {
	if width <= 1 {
		return s.min
	}
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return s.min + (col*(s.max-s.min)+(width-1)/2)/(width-1)
}

func (s *lengthSlider) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	fill := colorUnfocusedBg
	if s.HasFocus() {
		fill = colorFocusedBg
	}
	trackStyle := tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	fillStyle := tcell.StyleDefault.Foreground(tcell.ColorSkyblue)
	knobStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(fill)

	k := s.knob(width)
	for i := 0; i < width; i++ {
		switch {
		case i < k:
			screen.SetContent(x+i, y, '━', nil, fillStyle)
		case i == k:
			screen.SetContent(x+i, y, '●', nil, knobStyle)
		default:
			screen.SetContent(x+i, y, '─', nil, trackStyle)
		}
	}
}

func (s *lengthSlider) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft:
			s.update(s.value - 1)
		case tcell.KeyRight:
			s.update(s.value + 1)
		case tcell.KeyPgDn:
			s.update(s.value - 10)
		case tcell.KeyPgUp:
			s.update(s.value + 10)
		case tcell.KeyHome:
			s.update(s.min)
		case tcell.KeyEnd:
			s.update(s.max)
		case tcell.KeyRune:
			switch event.Rune() {
			case '-', 'h':
				s.update(s.value - 1)
			case '+', '=', 'l':
				s.update(s.value + 1)
			}
		}
	})
}

func (s *lengthSlider) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !s.InRect(mx, my) {
			return false, nil
		}
		switch action {
		case tview.MouseLeftDown:
			setFocus(s)
			x, _, width, _ := s.GetInnerRect()
			s.update(s.valueAt(mx-x, width))
			return true, nil
		case tview.MouseScrollUp:
			s.update(s.value + 1)
			return true, nil
		case tview.MouseScrollDown:
			s.update(s.value - 1)
			return true, nil
		}
		return false, nil
	})
}
