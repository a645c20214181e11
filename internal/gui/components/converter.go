package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"krw-converter/internal/conversion"
	"krw-converter/internal/models"
)

// ConverterPanel converts in both directions for one currency. Outputs are
// only written after a successful conversion.
type ConverterPanel struct {
	container *fyne.Container
	converter *conversion.Converter

	RateLabel     *widget.Label
	KRWInput      *NumericEntry
	ForeignOutput *widget.Entry
	ForeignInput  *NumericEntry
	KRWOutput     *widget.Entry

	ToForeignButton *widget.Button
	ToKRWButton     *widget.Button
	BackButton      *widget.Button

	errorHandler func(error)
	backHandler  func()
}

func NewConverterPanel(converter *conversion.Converter, table models.RateTable) *ConverterPanel {
	code := converter.Code()
	p := &ConverterPanel{converter: converter}

	p.RateLabel = widget.NewLabel("Current rate: " + conversion.RateLabel(code, table))
	p.RateLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.KRWInput = NewNumericEntry()
	p.KRWInput.SetPlaceHolder("0")
	p.KRWInput.OnSubmitted = func(string) { p.ConvertToForeign() }
	p.ToForeignButton = widget.NewButton(fmt.Sprintf("%s → %s", models.KRW, code), p.ConvertToForeign)
	p.ForeignOutput = newOutputEntry()

	p.ForeignInput = NewNumericEntry()
	p.ForeignInput.SetPlaceHolder("0")
	p.ForeignInput.OnSubmitted = func(string) { p.ConvertToKRW() }
	p.ToKRWButton = widget.NewButton(fmt.Sprintf("%s → %s", code, models.KRW), p.ConvertToKRW)
	p.KRWOutput = newOutputEntry()

	p.BackButton = widget.NewButton("← Back", p.Back)

	p.container = container.NewVBox(
		p.RateLabel,
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("Amount in %s:", models.KRW)),
		p.KRWInput,
		p.ToForeignButton,
		widget.NewLabel(fmt.Sprintf("Converted %s:", code)),
		p.ForeignOutput,
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("Amount in %s:", code)),
		p.ForeignInput,
		p.ToKRWButton,
		widget.NewLabel(fmt.Sprintf("Converted %s:", models.KRW)),
		p.KRWOutput,
		widget.NewSeparator(),
		p.BackButton,
	)

	return p
}

func newOutputEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Disable()
	return entry
}

func (p *ConverterPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *ConverterPanel) Code() models.Code {
	return p.converter.Code()
}

func (p *ConverterPanel) SetErrorHandler(handler func(error)) {
	p.errorHandler = handler
}

func (p *ConverterPanel) SetBackHandler(handler func()) {
	p.backHandler = handler
}

func (p *ConverterPanel) ConvertToForeign() {
	out, err := p.converter.ToForeign(p.KRWInput.Text)
	if err != nil {
		p.reportError(err)
		return
	}
	p.ForeignOutput.SetText(out)
}

func (p *ConverterPanel) ConvertToKRW() {
	out, err := p.converter.ToKRW(p.ForeignInput.Text)
	if err != nil {
		p.reportError(err)
		return
	}
	p.KRWOutput.SetText(out)
}

// Back empties all four fields, then hands control to the back handler
func (p *ConverterPanel) Back() {
	p.Clear()
	if p.backHandler != nil {
		p.backHandler()
	}
}

func (p *ConverterPanel) Clear() {
	p.KRWInput.SetText("")
	p.ForeignOutput.SetText("")
	p.ForeignInput.SetText("")
	p.KRWOutput.SetText("")
}

func (p *ConverterPanel) reportError(err error) {
	if p.errorHandler != nil {
		p.errorHandler(err)
	}
}
