package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"

	"krw-converter/internal/models"
)

// LoadFlags reads every currency's flag image from dir. Any missing or
// unreadable file fails the whole load.
func LoadFlags(dir string) (map[models.Code]fyne.Resource, error) {
	flags := make(map[models.Code]fyne.Resource, len(models.SupportedCodes()))
	for _, code := range models.SupportedCodes() {
		path := filepath.Join(dir, code.FlagFile())
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("load flag for %s: %w", code, err)
		}
		flags[code] = res
	}
	return flags, nil
}
