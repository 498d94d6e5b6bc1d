// Package shell holds the window-visibility and session lifecycle logic of
// the desktop shell, independent of the windowing toolkit.
package shell

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/Mavwarf/onenote/internal/prefs"
)

// LoadUserEvent carries the saved toHost payload to the hosted content.
const LoadUserEvent = "onload-user"

// Window is the single native window hosting the web content.
type Window interface {
	// Exists reports whether the native window has been created.
	Exists() bool
	IsVisible() bool
	Show()
	Hide()
	Load(url string)
	Reload()
	Bounds() prefs.Rect
	SetBounds(r prefs.Rect)

	// ClearStorage wipes cookies, caches and web storage of the content.
	// The returned channel yields one value (nil on success) when done.
	ClearStorage() <-chan error

	// Send delivers an event with a JSON payload to the content.
	Send(event string, payload json.RawMessage)

	// WatchNavigation makes the current document report its URL whenever
	// it changes, which ends up in RecordNavigation.
	WatchNavigation()

	// Quit terminates the application.
	Quit()
}

// Options configures a Controller.
type Options struct {
	HomeURL      string
	CorporateURL string

	// RestoreOnShowOnly skips the lastUrl re-navigation when hiding.
	RestoreOnShowOnly bool

	// Log prints every state transition to stderr.
	Log bool
}

// Controller decides whether the window is visible and which page it
// shows, and keeps session preferences in step with the window. All methods
// except BeforeClose and Quitting must run on the Loop.
type Controller struct {
	win   Window
	store prefs.Store
	loop  *Loop
	menus *Presenter
	opts  Options

	started  bool
	quitting atomic.Bool
}

// NewController wires a controller to its collaborators.
func NewController(win Window, store prefs.Store, loop *Loop, menus *Presenter, opts Options) *Controller {
	return &Controller{win: win, store: store, loop: loop, menus: menus, opts: opts}
}

// Bool returns a pointer to v, for SetVisible.
func Bool(v bool) *bool { return &v }

// Visible reports the current window visibility. Without a window it is
// false.
func (c *Controller) Visible() bool {
	return c.win.Exists() && c.win.IsVisible()
}

// SetVisible shows or hides the window. A nil target means visible. The
// result is persisted, the menus are rebuilt, and the window re-navigates
// to the last external page it showed.
func (c *Controller) SetVisible(target *bool) {
	visible := target == nil || *target
	if c.win.Exists() {
		if visible {
			c.win.Show()
		} else {
			c.win.Hide()
		}
	}
	c.set(prefs.KeyVisible, visible)
	c.logf("visible=%v", visible)
	c.menus.Rebuild(c.Visible())

	if !visible && c.opts.RestoreOnShowOnly {
		return
	}
	if u, ok := c.lastExternalURL(); ok {
		c.load(u)
	}
}

// ToggleVisible flips the window visibility. No-op without a window.
func (c *Controller) ToggleVisible() {
	if !c.win.Exists() {
		return
	}
	c.SetVisible(Bool(!c.win.IsVisible()))
}

// GoHome resets the session and opens the notebook listing.
func (c *Controller) GoHome() <-chan struct{} {
	return c.resetTo(c.opts.HomeURL, true)
}

// GoCorporate resets the session and opens the corporate login.
func (c *Controller) GoCorporate() <-chan struct{} {
	return c.resetTo(c.opts.CorporateURL, true)
}

// RestartSession clears the session and shows the blank page without
// touching visibility.
func (c *Controller) RestartSession() <-chan struct{} {
	return c.resetTo(BlankURL, false)
}

// resetTo clears browsing storage and, once that has completed, every
// preference, then loads target. The returned channel is closed after the
// continuation has run on the loop.
func (c *Controller) resetTo(target string, show bool) <-chan struct{} {
	if show && c.win.Exists() {
		c.win.Show()
	}
	c.logf("reset session -> %s", target)
	return c.afterClear(func() {
		if err := c.store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		}
		c.load(target)
	})
}

func (c *Controller) afterClear(next func()) <-chan struct{} {
	done := make(chan struct{})
	if !c.win.Exists() {
		next()
		close(done)
		return done
	}
	cleared := c.win.ClearStorage()
	go func() {
		if err := <-cleared; err != nil {
			fmt.Fprintf(os.Stderr, "shell: clear storage: %v\n", err)
		}
		if !c.loop.Post(func() { next(); close(done) }) {
			close(done)
		}
	}()
	return done
}

// RestoreLastPage opens the last external page, or the blank page when
// there is none.
func (c *Controller) RestoreLastPage() {
	if u, ok := c.lastExternalURL(); ok {
		c.load(u)
		return
	}
	c.load(BlankURL)
}

// RecordNavigation persists the newest history entry as lastUrl.
func (c *Controller) RecordNavigation(history []string) {
	if len(history) == 0 {
		return
	}
	last := history[len(history)-1]
	c.set(prefs.KeyLastURL, last)
	c.logf("lastUrl=%s", last)
}

// CaptureWindowGeometry persists the current window bounds.
func (c *Controller) CaptureWindowGeometry() {
	if !c.win.Exists() {
		return
	}
	c.set(prefs.KeyWindowBounds, c.win.Bounds())
}

// PageLoaded hands the saved toHost payload back to the content.
func (c *Controller) PageLoaded() {
	data, ok := prefs.ToHost(c.store)
	if !ok || !c.win.Exists() {
		return
	}
	c.win.Send(LoadUserEvent, data)
}

// Save persists the content's payload together with the window bounds.
func (c *Controller) Save(payload json.RawMessage) {
	c.set(prefs.KeyToHost, payload)
	c.CaptureWindowGeometry()
}

// Start runs the launch sequence: restore bounds, apply the persisted
// visibility, then load the home page.
func (c *Controller) Start() {
	if r, ok := prefs.WindowBounds(c.store); ok && c.win.Exists() {
		c.win.SetBounds(r)
	}
	var visible *bool
	if _, err := c.store.Get(prefs.KeyVisible, &visible); err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		visible = nil
	}
	c.SetVisible(visible)
	c.load(c.opts.HomeURL)
}

// PageReady handles a finished page load. The first one after the window
// exists runs Start, whose navigation replaces that document; a navigation
// issued before the webview has committed its first document would be
// overridden by it. Later loads re-arm navigation tracking and hand toHost
// back to the content.
func (c *Controller) PageReady() {
	if !c.win.Exists() {
		return
	}
	if !c.started {
		c.started = true
		c.Start()
		return
	}
	c.win.WatchNavigation()
	c.PageLoaded()
}

// Minimized hides the window to the tray.
func (c *Controller) Minimized() {
	c.SetVisible(Bool(false))
}

// SecondInstance brings the window back and reloads the content after
// another launch attempt.
func (c *Controller) SecondInstance() {
	c.SetVisible(Bool(true))
	if c.win.Exists() {
		c.win.Reload()
	}
}

// Quit marks the application as quitting and terminates it.
func (c *Controller) Quit() {
	c.quitting.Store(true)
	c.logf("quit")
	if c.win.Exists() {
		c.win.Quit()
	}
}

// Quitting reports whether Quit has been requested. Safe from any goroutine.
func (c *Controller) Quitting() bool {
	return c.quitting.Load()
}

// BeforeClose handles a window close request and reports whether the close
// must be prevented. Unless quitting, the window is hidden instead. Safe
// from any goroutine.
func (c *Controller) BeforeClose() bool {
	if c.Quitting() {
		return false
	}
	c.loop.Post(func() { c.SetVisible(Bool(false)) })
	return true
}

func (c *Controller) lastExternalURL() (string, bool) {
	u, ok := prefs.LastURL(c.store)
	if !ok || IsLocal(u) {
		return "", false
	}
	return u, true
}

func (c *Controller) load(u string) {
	if !c.win.Exists() {
		return
	}
	c.win.Load(u)
}

func (c *Controller) set(key string, v any) {
	if err := c.store.Set(key, v); err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.opts.Log {
		fmt.Fprintf(os.Stderr, "shell: "+format+"\n", args...)
	}
}
