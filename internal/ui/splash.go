package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/Akaiko1/icon-browser/internal/config"
)

const msgSplashTitle = "Loading IconBrowser..."

// splashScreen is the borderless window shown while the catalog loads.
type splashScreen struct {
	window fyne.Window
	status *widget.Label
}

func newSplashScreen(window fyne.Window) *splashScreen {
	s := &splashScreen{
		window: window,
		status: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	title := widget.NewLabelWithStyle(msgSplashTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewVBox(title, widget.NewProgressBarInfinite(), s.status)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(360, content.MinSize().Height))
	window.CenterOnScreen()
	return s
}

// setStatus shows a loading stage. Safe to call from any goroutine.
func (s *splashScreen) setStatus(msg string) {
	fyne.Do(func() {
		s.status.SetText(msg)
	})
}

// Launch runs the browser. On desktop drivers a splash screen is shown while
// the catalog loads in the background; otherwise, and in unit-test mode, the
// browser is built directly. Launch blocks until the app quits.
func Launch(fyneApp fyne.App, cfg *config.Config, logger *log.Logger) error {
	drv, ok := fyneApp.Driver().(desktop.Driver)
	if !ok || cfg.UnitTest {
		browser, err := NewIconBrowserApp(fyneApp, cfg, logger)
		if err != nil {
			return err
		}
		browser.Run()
		return nil
	}

	splash := newSplashScreen(drv.CreateSplashWindow())
	splash.window.Show()

	// Written and read on the UI goroutine only.
	var launchErr error
	go func() {
		loaded, err := loadCatalog(logger, splash.setStatus)
		splash.setStatus(msgCreatingWindow)

		fyne.Do(func() {
			if err == nil {
				var browser *IconBrowserApp
				browser, err = newIconBrowserApp(fyneApp, cfg, logger, loaded)
				if err == nil {
					browser.window.SetMaster()
					browser.window.Show()
					splash.window.Close()
					return
				}
			}

			launchErr = err
			splash.window.Close()
			fyneApp.Quit()
		})
	}()

	fyneApp.Run()
	return launchErr
}
