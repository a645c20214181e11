package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Shell stacks every registered panel in one container and keeps exactly the
// navigator's current panel visible. Panels are built once and only hidden.
type Shell struct {
	container *fyne.Container
	panels    map[Screen]fyne.CanvasObject
	navigator *Navigator
}

func NewShell(navigator *Navigator, placeholder fyne.CanvasObject) *Shell {
	shell := &Shell{
		container: container.NewStack(),
		panels:    make(map[Screen]fyne.CanvasObject),
		navigator: navigator,
	}
	if placeholder != nil {
		shell.container.Add(placeholder)
	}
	navigator.OnTransition(shell.switchPanel)
	return shell
}

func (s *Shell) GetContainer() *fyne.Container {
	return s.container
}

// Mount replaces the placeholder with the given panels
func (s *Shell) Mount(panels map[Screen]fyne.CanvasObject) {
	s.container.RemoveAll()
	current := s.navigator.Current()
	for screen, panel := range panels {
		s.panels[screen] = panel
		if screen == current {
			panel.Show()
		} else {
			panel.Hide()
		}
		s.container.Add(panel)
	}
	s.container.Refresh()
}

func (s *Shell) Panel(screen Screen) (fyne.CanvasObject, bool) {
	panel, ok := s.panels[screen]
	return panel, ok
}

// Visible lists the screens whose panels are currently shown
func (s *Shell) Visible() []Screen {
	var visible []Screen
	for screen, panel := range s.panels {
		if panel.Visible() {
			visible = append(visible, screen)
		}
	}
	return visible
}

func (s *Shell) switchPanel(from, to Screen) {
	if panel, ok := s.panels[from]; ok {
		panel.Hide()
	}
	if panel, ok := s.panels[to]; ok {
		panel.Show()
	}
}
