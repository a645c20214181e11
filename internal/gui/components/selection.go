package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"krw-converter/internal/conversion"
	"krw-converter/internal/models"
)

const (
	FlagWidth  = 100
	FlagHeight = 60
)

// SelectionPanel is the currency picker: one column per currency with its
// flag, a navigation button and the rate captured when the panel was built.
type SelectionPanel struct {
	container  *fyne.Container
	Buttons    map[models.Code]*widget.Button
	RateLabels map[models.Code]*widget.Label

	navigateHandler func(models.Code)
}

func NewSelectionPanel(table models.RateTable, flags map[models.Code]fyne.Resource) *SelectionPanel {
	codes := models.SupportedCodes()
	panel := &SelectionPanel{
		Buttons:    make(map[models.Code]*widget.Button, len(codes)),
		RateLabels: make(map[models.Code]*widget.Label, len(codes)),
	}

	flagRow := make([]fyne.CanvasObject, 0, len(codes))
	buttonRow := make([]fyne.CanvasObject, 0, len(codes))
	rateRow := make([]fyne.CanvasObject, 0, len(codes))

	for _, code := range codes {
		flag := canvas.NewImageFromResource(flags[code])
		flag.FillMode = canvas.ImageFillContain
		flag.SetMinSize(fyne.NewSize(FlagWidth, FlagHeight))
		flagRow = append(flagRow, flag)

		button := widget.NewButton("→ "+code.String(), func() { panel.onNavigate(code) })
		button.Importance = widget.HighImportance
		panel.Buttons[code] = button
		buttonRow = append(buttonRow, button)

		label := widget.NewLabel(conversion.RateLabel(code, table))
		label.Alignment = fyne.TextAlignCenter
		panel.RateLabels[code] = label
		rateRow = append(rateRow, label)
	}

	cells := append(append(flagRow, buttonRow...), rateRow...)
	panel.container = container.NewPadded(container.NewGridWithColumns(len(codes), cells...))

	return panel
}

func (p *SelectionPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *SelectionPanel) SetNavigateHandler(handler func(models.Code)) {
	p.navigateHandler = handler
}

func (p *SelectionPanel) onNavigate(code models.Code) {
	if p.navigateHandler != nil {
		p.navigateHandler(code)
	}
}
