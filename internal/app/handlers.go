package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"krw-converter/internal/gui"
	"krw-converter/internal/logger"
	"krw-converter/internal/models"
	"krw-converter/internal/rates"
)

type Handlers struct {
	fetcher    rates.Fetcher
	guiManager *gui.Manager
	logger     logger.Logger
	timeout    time.Duration

	// do runs fn on the UI thread
	do func(fn func())
	wg sync.WaitGroup
}

func NewHandlers(fetcher rates.Fetcher, gm *gui.Manager, log logger.Logger, timeout time.Duration) *Handlers {
	return &Handlers{
		fetcher:    fetcher,
		guiManager: gm,
		logger:     log,
		timeout:    timeout,
		do:         fyne.Do,
	}
}

// LoadRates runs the one startup fetch in the background. Its outcome,
// either a full table or the zero table with an error, is handed to
// HandleRatesLoaded on the UI thread.
func (h *Handlers) LoadRates(ctx context.Context) {
	h.guiManager.UpdateStatus("Fetching exchange rates…")

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		fetchCtx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()

		table, err := h.fetcher.Fetch(fetchCtx)
		if err != nil {
			table = models.ZeroRates()
		}

		h.do(func() {
			h.HandleRatesLoaded(table, err)
		})
	}()
}

func (h *Handlers) HandleRatesLoaded(table models.RateTable, fetchErr error) {
	if err := h.guiManager.BuildScreens(table); err != nil {
		h.guiManager.ShowError("Startup error", err)
		return
	}

	switch {
	case fetchErr == nil:
		h.guiManager.UpdateStatus("Ready")
	case errors.Is(fetchErr, context.Canceled):
		h.logger.Info("Handlers", "rate fetch cancelled", nil)
		h.guiManager.UpdateStatus("Cancelled")
	default:
		h.guiManager.UpdateStatus("Live rates unavailable")
		h.guiManager.ShowError("Network error", fmt.Errorf("failed to fetch live exchange rates: %w", fetchErr))
	}
}

// Shutdown waits for an in-flight fetch to return
func (h *Handlers) Shutdown() {
	h.wg.Wait()
}
