package ui

import (
	"errors"

	"passwidget/internal/config"
	"passwidget/internal/platform"
	"passwidget/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// AppHandle is the running generator application.
type AppHandle struct {
	app    *tview.Application
	pages  *tview.Pages
	widget *PasswordWidget
	view   *passGenView
}

func NewApp(c config.AppConfig, clip platform.Clipboard) (*AppHandle, error) {
	if clip == nil {
		return nil, errors.New("ui: clipboard service is required")
	}

	tview.Styles.ContrastBackgroundColor = colorUnfocusedBg
	tview.Styles.TitleColor = tcell.ColorLightSkyBlue

	a := &AppHandle{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		widget: NewPasswordWidget(c.Generator(), clip),
	}
	a.view = newPassGenView(a.app, a.widget)
	a.view.quit = a.app.Stop

	a.pages.AddPage("passgen", newCenteredPanel(a.view.root, 48, 9, 110, 9, 0.6, 0.3), true, true)
	a.app.SetInputCapture(a.view.handleKey)
	return a, nil
}

func (a *AppHandle) Run() error {
	return a.app.SetRoot(a.pages, true).SetFocus(a.view.slider).EnableMouse(true).Run()
}

// Settings reports the slider and toggle values at the time of the call.
func (a *AppHandle) Settings() utils.GeneratorConfig {
	return a.widget.Config()
}
