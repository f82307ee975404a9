package ui

import (
	"passwidget/internal/platform"
	"passwidget/internal/utils"
)

// PasswordWidget owns the generator settings and the current password. Every
// mutator that changes a setting regenerates once; setting an unchanged
// value does nothing. Not safe for concurrent use: it lives on the UI loop.
type PasswordWidget struct {
	cfg      utils.GeneratorConfig
	password string

	generate func(utils.GeneratorConfig) string
	clip     platform.Clipboard

	onChange func(password string)
	onSelect func()
}

func NewPasswordWidget(cfg utils.GeneratorConfig, clip platform.Clipboard) *PasswordWidget {
	return newPasswordWidget(cfg, clip, utils.GeneratePassword)
}

func newPasswordWidget(cfg utils.GeneratorConfig, clip platform.Clipboard, gen func(utils.GeneratorConfig) string) *PasswordWidget {
	cfg.Length = utils.ClampLength(cfg.Length)
	w := &PasswordWidget{cfg: cfg, clip: clip, generate: gen}
	w.regenerate()
	return w
}

func (w *PasswordWidget) Password() string { return w.password }

func (w *PasswordWidget) Config() utils.GeneratorConfig { return w.cfg }

// OnChange registers fn to be called with every new password.
func (w *PasswordWidget) OnChange(fn func(password string)) {
	w.onChange = fn
}

// OnSelect registers fn to highlight the displayed password before a copy.
func (w *PasswordWidget) OnSelect(fn func()) {
	w.onSelect = fn
}

func (w *PasswordWidget) SetLength(n int) {
	n = utils.ClampLength(n)
	if n == w.cfg.Length {
		return
	}
	w.cfg.Length = n
	w.regenerate()
}

func (w *PasswordWidget) SetIncludeDigits(on bool) {
	if on == w.cfg.IncludeDigits {
		return
	}
	w.cfg.IncludeDigits = on
	w.regenerate()
}

func (w *PasswordWidget) SetIncludeSymbols(on bool) {
	if on == w.cfg.IncludeSymbols {
		return
	}
	w.cfg.IncludeSymbols = on
	w.regenerate()
}

func (w *PasswordWidget) ToggleDigits()  { w.SetIncludeDigits(!w.cfg.IncludeDigits) }
func (w *PasswordWidget) ToggleSymbols() { w.SetIncludeSymbols(!w.cfg.IncludeSymbols) }

// Regenerate draws a fresh password without changing the settings.
func (w *PasswordWidget) Regenerate() {
	w.regenerate()
}

// CopyCurrentPassword highlights the password and writes it to the clipboard.
// The clipboard error is returned unchanged; callers decide whether to act.
func (w *PasswordWidget) CopyCurrentPassword() error {
	if w.onSelect != nil {
		w.onSelect()
	}
	return w.clip.WriteAll(w.password)
}

// CopyCurrentPasswordAsync is CopyCurrentPassword with the clipboard write
// moved off the caller's goroutine. done, if set, runs on that goroutine.
func (w *PasswordWidget) CopyCurrentPasswordAsync(done func(error)) {
	if w.onSelect != nil {
		w.onSelect()
	}
	pw := w.password
	go func() {
		err := w.clip.WriteAll(pw)
		if done != nil {
			done(err)
		}
	}()
}

func (w *PasswordWidget) regenerate() {
	w.password = w.generate(w.cfg)
	if w.onChange != nil {
		w.onChange(w.password)
	}
}
