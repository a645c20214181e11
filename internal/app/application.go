package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"krw-converter/internal/config"
	"krw-converter/internal/gui"
	"krw-converter/internal/logger"
	"krw-converter/internal/rates"
	"krw-converter/internal/shutdown"
)

const (
	AppName      = "Currency Converter"
	AppID        = "com.krwconverter.desktop"
	AppVersion   = "1.0.0"
	WindowWidth  = 550
	WindowHeight = 450
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication loads the flag assets first; a missing asset aborts startup
// before any window is created.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	flags, err := gui.LoadFlags(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
		"api_url":       cfg.APIURL,
		"fetch_timeout": cfg.FetchTimeout.String(),
	})

	guiManager := gui.NewManager(window, flags, log)
	fetcher := rates.NewClient(cfg.APIURL, cfg.FetchTimeout, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		handlers:   NewHandlers(fetcher, guiManager, log, cfg.FetchTimeout),
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}

	application.setupLifecycle()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window, starts the rate fetch and blocks in the fyne event
// loop until the window closes.
func (a *Application) Run() error {
	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.handlers.LoadRates(a.shutdown.Context())

	a.fyneApp.Run()
	a.shutdown.Shutdown()

	a.logger.Info("Application", "terminated", nil)
	return nil
}
