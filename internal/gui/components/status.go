package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	asOfLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	asOfLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		statusLabel,
		asOfLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		asOfLabel:   asOfLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetAsOf shows the quote date, or a warning when no rates are available
func (sb *StatusBar) SetAsOf(asOf string, available bool) {
	switch {
	case !available:
		sb.asOfLabel.SetText("Rates unavailable")
	case asOf == "":
		sb.asOfLabel.SetText("Live rates")
	default:
		sb.asOfLabel.SetText("Rates as of " + asOf)
	}
}

func (sb *StatusBar) AsOf() string {
	return sb.asOfLabel.Text
}
