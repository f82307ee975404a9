package ui

import (
	"strings"
	"testing"
	"time"

	"passwidget/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func newTestView(cfg utils.GeneratorConfig, clip *fakeClipboard) (*passGenView, *PasswordWidget) {
	w := NewPasswordWidget(cfg, clip)
	return newPassGenView(nil, w), w
}

func TestPassGenViewShowsInitialPassword(t *testing.T) {
	v, w := newTestView(utils.GeneratorConfig{Length: 8}, newFakeClipboard())

	if got := v.display.GetText(true); got != w.Password() {
		t.Fatalf("expected display %q, got %q", w.Password(), got)
	}
	if got := v.lengthLabel.GetText(true); got != "Length:8" {
		t.Fatalf("unexpected length label %q", got)
	}
	if v.slider.Value() != 8 {
		t.Fatalf("expected slider at 8, got %d", v.slider.Value())
	}
}

func TestPassGenViewSliderRegenerates(t *testing.T) {
	v, w := newTestView(utils.GeneratorConfig{Length: 8}, newFakeClipboard())

	pressKey(v.slider, tcell.KeyRight, 0)
	if w.Config().Length != 9 {
		t.Fatalf("expected length 9, got %d", w.Config().Length)
	}
	if len(w.Password()) != 10 {
		t.Fatalf("expected 10 characters, got %d", len(w.Password()))
	}
	if got := v.display.GetText(true); got != w.Password() {
		t.Fatalf("display out of date: %q vs %q", got, w.Password())
	}
	if got := v.lengthLabel.GetText(true); got != "Length:9" {
		t.Fatalf("unexpected length label %q", got)
	}
}

func TestPassGenViewCheckboxesToggleOptions(t *testing.T) {
	v, w := newTestView(utils.GeneratorConfig{Length: 8}, newFakeClipboard())

	pressKey(v.digits, tcell.KeyEnter, 0)
	if !w.Config().IncludeDigits {
		t.Fatalf("expected digits on")
	}
	pressKey(v.symbols, tcell.KeyRune, ' ')
	if !w.Config().IncludeSymbols {
		t.Fatalf("expected symbols on")
	}
	pressKey(v.digits, tcell.KeyEnter, 0)
	if w.Config().IncludeDigits {
		t.Fatalf("expected digits off")
	}
}

func TestPassGenViewCopyHighlightsAndWrites(t *testing.T) {
	clip := newFakeClipboard()
	v, w := newTestView(utils.GeneratorConfig{Length: 12}, clip)

	if ev := v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)); ev != nil {
		t.Fatalf("expected copy key to be consumed")
	}

	select {
	case got := <-clip.written:
		if got != w.Password() {
			t.Fatalf("expected clipboard %q, got %q", w.Password(), got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("clipboard was not written")
	}
	if hl := v.display.GetHighlights(); len(hl) != 1 || hl[0] != passwordRegion {
		t.Fatalf("expected password region highlighted, got %v", hl)
	}

	// a new password drops the selection
	w.Regenerate()
	if hl := v.display.GetHighlights(); len(hl) != 0 {
		t.Fatalf("expected no highlight after regeneration, got %v", hl)
	}
}

func TestPassGenViewCopyFailureLeavesStatusEmpty(t *testing.T) {
	clip := newFakeClipboard()
	clip.err = errClipboardDenied
	v, _ := newTestView(utils.DefaultGeneratorConfig(), clip)

	v.copyPassword()
	select {
	case <-clip.written:
	case <-time.After(2 * time.Second):
		t.Fatalf("clipboard was not called")
	}
	if got := v.status.GetText(true); strings.TrimSpace(got) != "" {
		t.Fatalf("expected no status on failure, got %q", got)
	}
}

func TestPassGenViewNotifyCopied(t *testing.T) {
	v, _ := newTestView(utils.DefaultGeneratorConfig(), newFakeClipboard())
	v.notifyCopied()
	if got := v.status.GetText(true); !strings.Contains(got, "Copied") {
		t.Fatalf("expected copied status, got %q", got)
	}
}

func TestPassGenViewKeys(t *testing.T) {
	v, w := newTestView(utils.DefaultGeneratorConfig(), newFakeClipboard())
	quit := 0
	v.quit = func() { quit++ }

	if ev := v.handleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); ev != nil || v.focused != 1 {
		t.Fatalf("expected tab to move focus to 1, got %d", v.focused)
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	if v.focused != len(v.focusables)-1 {
		t.Fatalf("expected focus to wrap to the last control, got %d", v.focused)
	}

	before := w.Password()
	regenerated := false
	w.OnChange(func(pw string) { regenerated = true; v.render(pw) })
	v.handleKey(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))
	if !regenerated {
		t.Fatalf("expected ctrl-r to regenerate (previous %q)", before)
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if quit != 2 {
		t.Fatalf("expected two quit calls, got %d", quit)
	}

	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	if v.handleKey(ev) != ev {
		t.Fatalf("expected unrelated keys to pass through")
	}
}

func TestPassGenViewRepeatedCopyKeepsStatus(t *testing.T) {
	v, _ := newTestView(utils.DefaultGeneratorConfig(), newFakeClipboard())
	v.statusFlash = 300 * time.Millisecond
	v.notifyCopied()
	time.Sleep(200 * time.Millisecond)
	v.notifyCopied()
	time.Sleep(200 * time.Millisecond)

	// 400ms after the first copy, 200ms after the second
	if got := v.status.GetText(true); !strings.Contains(got, "Copied") {
		t.Fatalf("expected status to survive the first timer, got %q", got)
	}

	time.Sleep(300 * time.Millisecond)
	if got := v.status.GetText(true); strings.TrimSpace(got) != "" {
		t.Fatalf("expected status cleared after the second timer, got %q", got)
	}
}

func TestPassGenViewTabFollowsMouseFocus(t *testing.T) {
	app := tview.NewApplication()
	w := NewPasswordWidget(utils.DefaultGeneratorConfig(), newFakeClipboard())
	v := newPassGenView(app, w)

	// a click on the symbols checkbox moves focus without going through Tab
	app.SetFocus(v.symbols)

	v.handleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if app.GetFocus() != v.refreshBtn {
		t.Fatalf("expected focus to move from symbols to refresh")
	}
	if v.focused != 3 {
		t.Fatalf("expected focus index 3, got %d", v.focused)
	}

	app.SetFocus(v.slider)
	v.handleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	if app.GetFocus() != v.copyBtn {
		t.Fatalf("expected backtab from the slider to wrap to copy")
	}
}
