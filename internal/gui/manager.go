package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"krw-converter/internal/conversion"
	"krw-converter/internal/gui/components"
	"krw-converter/internal/logger"
	"krw-converter/internal/models"
)

var ErrScreensBuilt = errors.New("screens already built")

// Manager owns the window content: the navigation shell, the screens built
// from the fetched rates and the status bar. All methods must run on the UI
// thread.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	flags      map[models.Code]fyne.Resource
	navigator  *Navigator
	shell      *Shell
	statusBar  *components.StatusBar
	selection  *components.SelectionPanel
	converters map[models.Code]*components.ConverterPanel

	presentError func(error)
}

func NewManager(window fyne.Window, flags map[models.Code]fyne.Resource, log logger.Logger) *Manager {
	navigator := NewNavigator()
	placeholder := container.NewCenter(container.NewVBox(
		widget.NewLabel("Fetching exchange rates…"),
		widget.NewProgressBarInfinite(),
	))

	m := &Manager{
		window:     window,
		logger:     log,
		flags:      flags,
		navigator:  navigator,
		shell:      NewShell(navigator, placeholder),
		statusBar:  components.NewStatusBar(),
		converters: make(map[models.Code]*components.ConverterPanel),
	}
	m.presentError = func(err error) { dialog.ShowError(err, m.window) }

	navigator.OnTransition(func(from, to Screen) {
		m.logger.Debug("GUIManager", "screen changed", map[string]interface{}{
			"from": from.String(),
			"to":   to.String(),
		})
	})

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		m.shell.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Navigator() *Navigator {
	return m.navigator
}

func (m *Manager) Shell() *Shell {
	return m.shell
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) Selection() *components.SelectionPanel {
	return m.selection
}

func (m *Manager) Converter(code models.Code) *components.ConverterPanel {
	return m.converters[code]
}

// SetErrorPresenter replaces the modal error dialog
func (m *Manager) SetErrorPresenter(present func(error)) {
	m.presentError = present
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

// BuildScreens creates the selection screen and one converter per currency
// from table. It may run only once; the screens keep this snapshot for the
// lifetime of the window.
func (m *Manager) BuildScreens(table models.RateTable) error {
	if m.selection != nil {
		return ErrScreensBuilt
	}

	panels := make(map[Screen]fyne.CanvasObject, len(models.SupportedCodes())+1)

	m.selection = components.NewSelectionPanel(table, m.flags)
	m.selection.SetNavigateHandler(m.showConverter)
	panels[SelectionScreen()] = m.selection.GetContainer()

	for _, code := range models.SupportedCodes() {
		panel := components.NewConverterPanel(conversion.NewConverter(code, table), table)
		panel.SetErrorHandler(func(err error) {
			m.ShowError("Input error", err)
		})
		panel.SetBackHandler(m.navigator.Back)
		m.converters[code] = panel

		screen, err := ConverterScreen(code)
		if err != nil {
			return err
		}
		panels[screen] = panel.GetContainer()
	}

	m.shell.Mount(panels)
	m.statusBar.SetAsOf(table.AsOf(), !table.IsZero())

	m.logger.Info("GUIManager", "screens built", map[string]interface{}{
		"converters":      len(m.converters),
		"rates_available": !table.IsZero(),
	})
	return nil
}

func (m *Manager) showConverter(code models.Code) {
	screen, err := ConverterScreen(code)
	if err != nil {
		m.ShowError("Navigation error", err)
		return
	}
	m.navigator.Show(screen)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	if m.presentError != nil {
		m.presentError(err)
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
