package app

import (
	"fyne.io/fyne/v2"

	"krw-converter/internal/shutdown"
)

// setupLifecycle wires window close and OS signals to one shutdown sequence.
// Components stop in reverse order: pending fetch, GUI, then the event loop.
func (a *Application) setupLifecycle() {
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register(a.guiManager)
	a.shutdown.Register(a.handlers)

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen()
}
