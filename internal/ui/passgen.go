package ui

import (
	"fmt"
	"log/slog"
	"time"

	"passwidget/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const passwordRegion = "pw"

// passGenView renders a PasswordWidget: password display with a Copy button,
// the length slider, the two option checkboxes and a status line.
type passGenView struct {
	app    *tview.Application
	widget *PasswordWidget
	quit   func()

	root        *tview.Flex
	display     *tview.TextView
	copyBtn     *tview.Button
	refreshBtn  *tview.Button
	slider      *lengthSlider
	lengthLabel *tview.TextView
	digits      *tview.Checkbox
	symbols     *tview.Checkbox
	status      *tview.TextView

	focusables []tview.Primitive
	focused    int

	statusFlash time.Duration
	statusTimer *time.Timer
}

// newPassGenView wires the controls to w. app may be nil in tests; UI updates
// from other goroutines then run inline.
func newPassGenView(app *tview.Application, w *PasswordWidget) *passGenView {
	v := &passGenView{app: app, widget: w, statusFlash: 2 * time.Second}
	cfg := w.Config()

	v.display = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false)
	v.display.SetBackgroundColor(colorUnfocusedBg)

	v.copyBtn = styleButton(tview.NewButton("Copy").SetSelectedFunc(v.copyPassword))
	v.refreshBtn = styleButton(tview.NewButton("Refresh").SetSelectedFunc(w.Regenerate))

	v.lengthLabel = tview.NewTextView().SetTextColor(tcell.ColorOrange)
	v.slider = styleSlider(newLengthSlider(utils.MinLength, utils.MaxLength, cfg.Length)).
		SetChangedFunc(w.SetLength)

	v.digits = styleCheckbox(tview.NewCheckbox().
		SetLabel("Number ").
		SetChecked(cfg.IncludeDigits).
		SetChangedFunc(w.SetIncludeDigits))
	v.symbols = styleCheckbox(tview.NewCheckbox().
		SetLabel("Character ").
		SetChecked(cfg.IncludeSymbols).
		SetChangedFunc(w.SetIncludeSymbols))

	v.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	passwordRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(v.display, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(v.copyBtn, 8, 0, false)
	lengthRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(v.slider, 0, 1, true).
		AddItem(nil, 2, 0, false).
		AddItem(v.lengthLabel, 10, 0, false)
	optionsRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(v.digits, 11, 0, false).
		AddItem(nil, 2, 0, false).
		AddItem(v.symbols, 14, 0, false).
		AddItem(nil, 0, 1, false).
		AddItem(v.refreshBtn, 11, 0, false)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(passwordRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(lengthRow, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(optionsRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(v.status, 1, 0, false)
	v.root.SetBorder(true).SetTitle(" Password Generator ")

	v.focusables = []tview.Primitive{v.slider, v.digits, v.symbols, v.refreshBtn, v.copyBtn}

	w.OnChange(v.render)
	w.OnSelect(func() { v.display.Highlight(passwordRegion) })
	v.render(w.Password())
	return v
}

// render shows a fresh password. Any previous selection is dropped.
func (v *passGenView) render(password string) {
	v.display.Highlight()
	v.display.SetText(fmt.Sprintf(`["%s"]%s[""]`, passwordRegion, tview.Escape(password)))
	v.lengthLabel.SetText(fmt.Sprintf("Length:%d", v.widget.Config().Length))
}

// copyPassword hands the write to the clipboard goroutine and does not wait.
// A failure is only logged.
func (v *passGenView) copyPassword() {
	v.widget.CopyCurrentPasswordAsync(func(err error) {
		if err != nil {
			slog.Warn("copy to clipboard failed", "err", err)
			return
		}
		v.queue(v.notifyCopied)
	})
}

func (v *passGenView) notifyCopied() {
	v.status.SetText("[green]✓ Copied![-]")
	if v.statusTimer != nil {
		v.statusTimer.Stop()
	}
	v.statusTimer = time.AfterFunc(v.statusFlash, func() {
		v.queue(func() { v.status.SetText("") })
	})
}

func (v *passGenView) queue(f func()) {
	if v.app == nil {
		f()
		return
	}
	v.app.QueueUpdateDraw(f)
}

// currentFocus resolves the focused control from the application, so focus
// moved by a mouse click is picked up before the next Tab.
func (v *passGenView) currentFocus() int {
	if v.app == nil {
		return v.focused
	}
	p := v.app.GetFocus()
	for i, f := range v.focusables {
		if f == p {
			return i
		}
	}
	return v.focused
}

func (v *passGenView) setFocus(i int) {
	v.focused = i
	if v.app != nil {
		v.app.SetFocus(v.focusables[i])
	}
}

// handleKey is installed as the application's input capture.
func (v *passGenView) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		v.setFocus(cycleFocus(v.currentFocus(), len(v.focusables), false))
		return nil
	case tcell.KeyBacktab:
		v.setFocus(cycleFocus(v.currentFocus(), len(v.focusables), true))
		return nil
	case tcell.KeyCtrlY:
		v.copyPassword()
		return nil
	case tcell.KeyCtrlR:
		v.widget.Regenerate()
		return nil
	case tcell.KeyEsc:
		if v.quit != nil {
			v.quit()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'c':
			v.copyPassword()
			return nil
		case 'q':
			if v.quit != nil {
				v.quit()
			}
			return nil
		}
	}
	return event
}
