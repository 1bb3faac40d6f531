package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tracescope/tracescope/app/logging"
	"github.com/tracescope/tracescope/app/settings"
	"github.com/tracescope/tracescope/app/theme"
	"github.com/tracescope/tracescope/app/ui"
)

// refreshInterval is how often buffered background log lines are
// surfaced to the UI. Flush itself is near-free when nothing is
// pending, so the tick can be generous.
const refreshInterval = 100 * time.Millisecond

// App orchestrates the TUI: it owns the log aggregator, the theme
// registry and the settings store, and drives the per-frame refresh
// that migrates background log lines into the visible console.
//
// The goroutine that calls New must be the one that calls Run; it is
// the aggregator's owner and the only goroutine the registry is
// touched from.
type App struct {
	*tview.Application

	log    *logging.Aggregator
	colors *theme.Registry
	store  *settings.Store

	pages     *tview.Pages
	logPage   *ui.LogPage
	themePage *ui.ThemePage

	stopRefresh chan struct{}
}

// New creates and wires the application. Theme overrides are loaded
// from the store before any page is built so the first frame already
// renders with the user's colors.
func New(log *logging.Aggregator, store *settings.Store) *App {
	a := &App{
		Application: tview.NewApplication(),
		log:         log,
		colors:      theme.NewRegistry(),
		store:       store,
		stopRefresh: make(chan struct{}),
	}
	a.colors.Load(store)

	a.logPage = ui.NewLogPage(log, a.colors)
	a.themePage = ui.NewThemePage(a.colors)

	a.pages = tview.NewPages().
		AddPage(ui.PageLogID, a.logPage, true, true).
		AddPage(ui.PageThemeID, a.themePage, true, false)

	a.SetRoot(a.pages, true)
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlT:
			a.themePage.Rebuild()
			a.pages.SwitchToPage(ui.PageThemeID)
			return nil
		case tcell.KeyCtrlL:
			a.pages.SwitchToPage(ui.PageLogID)
			return nil
		}
		return event
	})

	return a
}

// Theme returns the color registry. UI goroutine only.
func (a *App) Theme() *theme.Registry {
	return a.colors
}

// Log returns the log aggregator.
func (a *App) Log() *logging.Aggregator {
	return a.log
}

// Run starts the refresh ticker and the tview event loop, blocking
// until the application exits.
func (a *App) Run() error {
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-a.stopRefresh:
				return
			case <-ticker.C:
				// The callback runs on the event-loop goroutine,
				// which is the aggregator's owner.
				a.QueueUpdateDraw(a.logPage.Refresh)
			}
		}
	}()

	err := a.Application.Run()
	close(a.stopRefresh)
	return err
}

// Shutdown persists modified theme entries and closes the aggregator.
// Call after Run returns, on the same goroutine.
func (a *App) Shutdown() error {
	a.colors.Save(a.store)
	err := a.store.Save()
	a.log.Close()
	return err
}
