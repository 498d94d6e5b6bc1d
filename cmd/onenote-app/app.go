package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mavwarf/onenote/internal/config"
	"github.com/Mavwarf/onenote/internal/desktop"
	"github.com/Mavwarf/onenote/internal/prefs"
	"github.com/Mavwarf/onenote/internal/shell"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// minimisePoll is how often the window is checked for minimisation; Wails
// has no minimise event.
const minimisePoll = 300 * time.Millisecond

// App connects the Wails lifecycle to the shell. Every callback posts onto
// the shell loop.
type App struct {
	loop     *shell.Loop
	win      *desktop.Window
	tray     *desktop.Tray
	renderer *desktop.Renderer
	ctrl     *shell.Controller
	dispatch *shell.Dispatcher
	visible  bool // initial visibility, from preferences
	stop     context.CancelFunc
}

func newApp(cfg config.Config, store prefs.Store, profile string) *App {
	a := &App{
		loop:    shell.NewLoop(),
		win:     desktop.NewWindow(profile),
		visible: prefs.Visible(store),
	}
	trigger := func(act shell.Action) { a.dispatch.Trigger(act) }
	perform := func(r shell.Role) { a.loop.Post(func() { a.win.Perform(r) }) }

	a.tray = desktop.NewTray(trigger)
	a.renderer = desktop.NewRenderer(a.win, a.tray, trigger, perform)
	a.ctrl = shell.NewController(a.win, store, a.loop, shell.NewPresenter(a.renderer), shell.Options{
		HomeURL:           cfg.Options.HomeURL,
		CorporateURL:      cfg.Options.CorporateURL(),
		RestoreOnShowOnly: cfg.Options.RestoreOnShowOnly,
		Log:               cfg.Options.Log,
	})
	a.dispatch = shell.NewDispatcher(a.ctrl, a.win, a.loop)
	return a
}

// startup attaches the window and subscribes to content events. The launch
// sequence waits for the first OnDomReady.
func (a *App) startup(ctx context.Context) {
	a.loop.Post(func() { a.win.Attach(ctx, a.visible) })

	wailsRuntime.EventsOn(ctx, desktop.EventSave, a.onSave)
	wailsRuntime.EventsOn(ctx, desktop.EventTitleUpdated, a.onTitleUpdated)

	watchCtx, cancel := context.WithCancel(ctx)
	a.stop = cancel
	go a.watchMinimise(watchCtx)
}

// domReady runs after every finished navigation.
func (a *App) domReady(ctx context.Context) {
	a.loop.Post(func() {
		a.win.Attach(ctx, a.visible)
		a.ctrl.PageReady()
	})
}

func (a *App) onSave(data ...interface{}) {
	payload := desktop.Payload(data)
	a.loop.Post(func() { a.ctrl.Save(payload) })
}

func (a *App) onTitleUpdated(data ...interface{}) {
	a.RecordNavigation(desktop.History(data))
}

// beforeClose hides to tray unless a quit was requested.
func (a *App) beforeClose(ctx context.Context) bool {
	return a.ctrl.BeforeClose()
}

func (a *App) shutdown(ctx context.Context) {
	if a.stop != nil {
		a.stop()
	}
	a.loop.Call(a.win.Detach)
	a.tray.Stop()
}

func (a *App) watchMinimise(ctx context.Context) {
	t := time.NewTicker(minimisePoll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.loop.Post(func() {
				if a.win.Minimised() {
					a.ctrl.Minimized()
				}
			})
		}
	}
}

// PageLoaded is called by the content once a page has finished loading.
func (a *App) PageLoaded() {
	a.loop.Post(a.ctrl.PageLoaded)
}

// Save stores data for the content and remembers the window geometry.
// data is kept byte for byte.
func (a *App) Save(data json.RawMessage) {
	a.loop.Post(func() { a.ctrl.Save(data) })
}

// RecordNavigation remembers the newest entry of the page history.
func (a *App) RecordNavigation(history []string) {
	a.loop.Post(func() { a.ctrl.RecordNavigation(history) })
}
