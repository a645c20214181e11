package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"krw-converter/internal/conversion"
)

// NumericEntry is a single-line entry that drops every keystroke or paste
// containing anything other than digits and '.'. It does not validate the
// resulting value.
type NumericEntry struct {
	widget.Entry
}

func NewNumericEntry() *NumericEntry {
	entry := &NumericEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

func (e *NumericEntry) TypedRune(r rune) {
	if !conversion.AllowedRune(r) {
		return
	}
	e.Entry.TypedRune(r)
}

func (e *NumericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if paste, ok := shortcut.(*fyne.ShortcutPaste); ok {
		if paste.Clipboard == nil || !conversion.AllowedText(paste.Clipboard.Content()) {
			return
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// Keyboard hints a numeric keypad on mobile drivers
func (e *NumericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
