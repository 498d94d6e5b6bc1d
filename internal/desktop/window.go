// Package desktop adapts the shell to the Wails webview window and the
// system tray.
package desktop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	goruntime "runtime"
	"strings"
	"sync"
	"time"

	"github.com/Mavwarf/onenote/internal/prefs"
	"github.com/Mavwarf/onenote/internal/shell"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Events exchanged with the hosted content.
const (
	EventSave           = "save"
	EventTitleUpdated   = "page-title-updated"
	EventStorageCleared = "storage:cleared"
)

// AllowedOrigins lists the hosted origins whose messages the Wails bridge
// accepts, in the format of options.App.BindingsAllowedOrigins. Events
// posted from any other origin are dropped by Wails.
const AllowedOrigins = "https://onenote.com,https://*.onenote.com," +
	"https://*.live.com,https://*.microsoftonline.com," +
	"https://*.office.com,https://*.office365.com,https://*.sharepoint.com"

// ClearTimeout bounds how long ClearStorage waits for the page to report
// back. External pages without the Wails runtime never do.
const ClearTimeout = 5 * time.Second

// Window implements shell.Window and shell.Opener on top of the Wails
// runtime. Its methods run on the shell loop.
type Window struct {
	ctx     context.Context
	visible bool
	goos    string
	profile string
}

// NewWindow returns a window adapter that is inert until Attach. profile
// is the webview user data directory; ClearStorage schedules it for
// deletion. Empty disables that.
func NewWindow(profile string) *Window {
	return &Window{goos: goruntime.GOOS, profile: profile}
}

// Attach binds the adapter to the Wails runtime context. Both OnStartup and
// OnDomReady call it, whichever runs first wins.
func (w *Window) Attach(ctx context.Context, visible bool) {
	if w.ctx != nil {
		return
	}
	w.ctx = ctx
	w.visible = visible
}

// Detach forgets the runtime context; later calls become no-ops.
func (w *Window) Detach() {
	w.ctx = nil
}

func (w *Window) Exists() bool    { return w.ctx != nil }
func (w *Window) IsVisible() bool { return w.visible }

func (w *Window) Show() {
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
	w.visible = true
}

func (w *Window) Hide() {
	runtime.WindowHide(w.ctx)
	w.visible = false
}

// Minimised reports whether a visible window has been minimised.
func (w *Window) Minimised() bool {
	return w.Exists() && w.visible && runtime.WindowIsMinimised(w.ctx)
}

func (w *Window) Load(u string) {
	runtime.WindowExecJS(w.ctx, navigateJS(AssetURL(w.goos, u)))
}

func (w *Window) Reload() {
	runtime.WindowReload(w.ctx)
}

func (w *Window) Bounds() prefs.Rect {
	x, y := runtime.WindowGetPosition(w.ctx)
	width, height := runtime.WindowGetSize(w.ctx)
	return prefs.Rect{X: x, Y: y, Width: width, Height: height}
}

func (w *Window) SetBounds(r prefs.Rect) {
	runtime.WindowSetSize(w.ctx, r.Width, r.Height)
	runtime.WindowSetPosition(w.ctx, r.X, r.Y)
}

// ClearStorage wipes what page script can reach in the current document
// and schedules the whole webview profile for deletion on the next launch.
func (w *Window) ClearStorage() <-chan error {
	if w.profile != "" {
		if err := MarkProfileReset(w.profile); err != nil {
			fmt.Fprintf(os.Stderr, "desktop: %v\n", err)
		}
	}
	ch := make(chan error, 1)
	var once sync.Once
	finish := func(err error) { once.Do(func() { ch <- err }) }

	cancel := runtime.EventsOnce(w.ctx, EventStorageCleared, func(data ...interface{}) {
		finish(clearResult(data))
	})
	time.AfterFunc(ClearTimeout, func() {
		cancel()
		finish(fmt.Errorf("no %s event after %s", EventStorageCleared, ClearTimeout))
	})
	runtime.WindowExecJS(w.ctx, clearStorageJS)
	return ch
}

func (w *Window) Send(event string, payload json.RawMessage) {
	runtime.EventsEmit(w.ctx, event, payload)
}

func (w *Window) WatchNavigation() {
	runtime.WindowExecJS(w.ctx, watchNavigationJS)
}

func (w *Window) Quit() {
	runtime.Quit(w.ctx)
}

// OpenURL opens u in the system browser.
func (w *Window) OpenURL(u string) {
	if !w.Exists() {
		fmt.Fprintf(os.Stderr, "desktop: cannot open %s before startup\n", u)
		return
	}
	runtime.BrowserOpenURL(w.ctx, u)
}

// Perform runs a built-in menu role against the webview.
func (w *Window) Perform(r shell.Role) {
	if !w.Exists() {
		return
	}
	switch r {
	case shell.RoleReload:
		runtime.WindowReload(w.ctx)
	case shell.RoleForceReload:
		runtime.WindowReloadApp(w.ctx)
	case shell.RoleToggleFullscreen:
		if runtime.WindowIsFullscreen(w.ctx) {
			runtime.WindowUnfullscreen(w.ctx)
		} else {
			runtime.WindowFullscreen(w.ctx)
		}
	default:
		js, ok := roleJS(r)
		if !ok {
			fmt.Fprintf(os.Stderr, "desktop: unsupported menu role %q\n", r)
			return
		}
		runtime.WindowExecJS(w.ctx, js)
	}
}

// AssetURL turns a root-relative path into an absolute URL on the embedded
// asset server. Other URLs are returned unchanged.
func AssetURL(goos, u string) string {
	if !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u
	}
	if goos == "windows" {
		return "http://" + shell.AssetHost + u
	}
	return "wails://wails" + u
}

func navigateJS(u string) string {
	quoted, _ := json.Marshal(u)
	return fmt.Sprintf("window.location.href = %s;", quoted)
}

func clearResult(data []interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if msg, ok := data[0].(string); ok && msg != "" {
		return errors.New(msg)
	}
	return nil
}

var editCommands = map[shell.Role]string{
	shell.RoleUndo:      "undo",
	shell.RoleRedo:      "redo",
	shell.RoleCut:       "cut",
	shell.RoleCopy:      "copy",
	shell.RolePaste:     "paste",
	shell.RoleDelete:    "delete",
	shell.RoleSelectAll: "selectAll",
}

// roleJS returns the script implementing an editing or zoom role.
func roleJS(r shell.Role) (string, bool) {
	if cmd, ok := editCommands[r]; ok {
		return fmt.Sprintf("document.execCommand(%q);", cmd), true
	}
	switch r {
	case shell.RolePasteMatchStyle:
		return `navigator.clipboard.readText().then(t => document.execCommand("insertText", false, t));`, true
	case shell.RoleResetZoom:
		return `document.body.style.zoom = "";`, true
	case shell.RoleZoomIn:
		return zoomJS(0.1), true
	case shell.RoleZoomOut:
		return zoomJS(-0.1), true
	}
	return "", false
}

func zoomJS(step float64) string {
	return fmt.Sprintf(`document.body.style.zoom = String(Math.max(0.3, (parseFloat(document.body.style.zoom) || 1) + (%g)));`, step)
}

// emitJS defines emit(name, data) in a script. It posts a Wails event
// message straight to the native bridge, which exists on every page;
// hosted pages do not load the Wails runtime.
const emitJS = `const emit = (name, data) => {
    const msg = "EE" + JSON.stringify({name: name, data: data});
    if (window.chrome && window.chrome.webview) {
      window.chrome.webview.postMessage(msg);
    } else if (window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers.external) {
      window.webkit.messageHandlers.external.postMessage(msg);
    }
  };`

// watchNavigationJS reports location.href as a page-title-updated event
// now and whenever the title, the history state or the hash changes.
var watchNavigationJS = `(() => {
  if (window.__onenoteNav) return;
  ` + emitJS + `
  let last = "";
  const check = () => {
    if (location.href === last) return;
    last = location.href;
    emit("` + EventTitleUpdated + `", [location.href]);
  };
  window.__onenoteNav = check;
  new MutationObserver(check).observe(document.head || document.documentElement,
    {subtree: true, childList: true, characterData: true});
  window.addEventListener("popstate", check);
  window.addEventListener("hashchange", check);
  check();
})();`

var clearStorageJS = `(async () => {
  ` + emitJS + `
  let err = "";
  try {
    localStorage.clear();
    sessionStorage.clear();
    document.cookie.split(";").forEach(c => {
      const name = c.split("=")[0].trim();
      if (name) document.cookie = name + "=;expires=Thu, 01 Jan 1970 00:00:00 GMT;path=/";
    });
    if (window.indexedDB && indexedDB.databases) {
      for (const db of await indexedDB.databases()) {
        if (db.name) indexedDB.deleteDatabase(db.name);
      }
    }
    if (window.caches) {
      for (const key of await caches.keys()) await caches.delete(key);
    }
  } catch (e) {
    err = String(e);
  }
  emit("` + EventStorageCleared + `", [err]);
})();`
