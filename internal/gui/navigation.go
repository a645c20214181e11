package gui

import (
	"krw-converter/internal/models"
)

type ScreenKind int

const (
	KindSelection ScreenKind = iota
	KindConverter
)

// Screen is either the selection screen or the converter for one supported
// currency. The zero value is the selection screen.
type Screen struct {
	kind ScreenKind
	code models.Code
}

func SelectionScreen() Screen {
	return Screen{kind: KindSelection}
}

// ConverterScreen only admits supported currency codes
func ConverterScreen(code models.Code) (Screen, error) {
	parsed, err := models.ParseCode(string(code))
	if err != nil {
		return Screen{}, err
	}
	return Screen{kind: KindConverter, code: parsed}, nil
}

func (s Screen) Kind() ScreenKind { return s.kind }

// Code is the converter's currency; ok is false for the selection screen
func (s Screen) Code() (code models.Code, ok bool) {
	return s.code, s.kind == KindConverter
}

func (s Screen) String() string {
	if s.kind == KindConverter {
		return "converter:" + s.code.String()
	}
	return "selection"
}

// Navigator owns the current screen. Listeners run synchronously after the
// state changes, in registration order.
type Navigator struct {
	current   Screen
	listeners []func(from, to Screen)
}

func NewNavigator() *Navigator {
	return &Navigator{current: SelectionScreen()}
}

func (n *Navigator) Current() Screen {
	return n.current
}

func (n *Navigator) OnTransition(listener func(from, to Screen)) {
	n.listeners = append(n.listeners, listener)
}

// Show switches to screen; showing the current screen is a no-op
func (n *Navigator) Show(screen Screen) {
	if screen == n.current {
		return
	}
	from := n.current
	n.current = screen
	for _, listener := range n.listeners {
		listener(from, screen)
	}
}

// Back returns to the selection screen
func (n *Navigator) Back() {
	n.Show(SelectionScreen())
}
