package shell

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mavwarf/onenote/internal/prefs"
)

// Compile-time interface checks.
var (
	_ Window   = (*fakeWindow)(nil)
	_ Renderer = (*fakeRenderer)(nil)
	_ Opener   = (*fakeOpener)(nil)
)

const (
	testHome      = "https://www.onenote.com/notebooks"
	testCorporate = "https://www.onenote.com/notebooks?auth=2&auth_upn=me%40corp.example"
)

type sentEvent struct {
	name    string
	payload string
}

type fakeWindow struct {
	exists  bool
	visible bool
	bounds  prefs.Rect

	calls    []string // show, hide, load:<url>, clear, reload, quit, bounds, watch
	loads    []string
	setTo    []prefs.Rect
	sent     []sentEvent
	hold     bool // keep ClearStorage pending until release
	pending  chan error
	clearErr error
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{exists: true, visible: true}
}

func (w *fakeWindow) Exists() bool    { return w.exists }
func (w *fakeWindow) IsVisible() bool { return w.visible }

func (w *fakeWindow) Show() {
	w.visible = true
	w.calls = append(w.calls, "show")
}

func (w *fakeWindow) Hide() {
	w.visible = false
	w.calls = append(w.calls, "hide")
}

func (w *fakeWindow) Load(url string) {
	w.loads = append(w.loads, url)
	w.calls = append(w.calls, "load:"+url)
}

func (w *fakeWindow) Reload() { w.calls = append(w.calls, "reload") }

func (w *fakeWindow) Bounds() prefs.Rect { return w.bounds }

func (w *fakeWindow) SetBounds(r prefs.Rect) {
	w.bounds = r
	w.setTo = append(w.setTo, r)
	w.calls = append(w.calls, "bounds")
}

func (w *fakeWindow) ClearStorage() <-chan error {
	w.calls = append(w.calls, "clear")
	ch := make(chan error, 1)
	if w.hold {
		w.pending = ch
		return ch
	}
	ch <- w.clearErr
	return ch
}

func (w *fakeWindow) Send(event string, payload json.RawMessage) {
	w.sent = append(w.sent, sentEvent{name: event, payload: string(payload)})
}

func (w *fakeWindow) WatchNavigation() { w.calls = append(w.calls, "watch") }

func (w *fakeWindow) Quit() { w.calls = append(w.calls, "quit") }

func (w *fakeWindow) lastLoad() string {
	if len(w.loads) == 0 {
		return ""
	}
	return w.loads[len(w.loads)-1]
}

type fakeRenderer struct {
	app   []MenuItem
	tray  []MenuItem
	count int
}

func (r *fakeRenderer) SetApplicationMenu(items []MenuItem) {
	r.app = items
	r.count++
}

func (r *fakeRenderer) SetTrayMenu(items []MenuItem) { r.tray = items }

// toggleLabel returns the Show/Hide label of the last tray menu.
func (r *fakeRenderer) toggleLabel() string {
	for _, it := range r.tray {
		if it.Kind == ItemAction && it.Action == ToggleVisibility {
			return it.Label
		}
	}
	return ""
}

type fakeOpener struct {
	opened []string
}

func (o *fakeOpener) OpenURL(url string) { o.opened = append(o.opened, url) }

type harness struct {
	t      *testing.T
	win    *fakeWindow
	store  prefs.Store
	loop   *Loop
	menus  *fakeRenderer
	opener *fakeOpener
	ctrl   *Controller
	disp   *Dispatcher
}

func newHarness(t *testing.T, opts ...func(*Options)) *harness {
	t.Helper()
	o := Options{HomeURL: testHome, CorporateURL: testCorporate}
	for _, fn := range opts {
		fn(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop()
	go loop.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})

	h := &harness{
		t:      t,
		win:    newFakeWindow(),
		store:  prefs.NewFileStore(filepath.Join(t.TempDir(), "prefs.json")),
		loop:   loop,
		menus:  &fakeRenderer{},
		opener: &fakeOpener{},
	}
	h.ctrl = NewController(h.win, h.store, loop, NewPresenter(h.menus), o)
	h.disp = NewDispatcher(h.ctrl, h.opener, loop)
	return h
}

// do runs fn on the loop and waits for it.
func (h *harness) do(fn func()) {
	h.t.Helper()
	if !h.loop.Call(fn) {
		h.t.Fatal("loop stopped")
	}
}

// reset runs a session-reset operation and waits for its continuation.
func (h *harness) reset(op func() <-chan struct{}) {
	h.t.Helper()
	var done <-chan struct{}
	h.do(func() { done = op() })
	wait(h.t, done)
}

func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for continuation")
	}
}

func (h *harness) seed(key string, v any) {
	h.t.Helper()
	if err := h.store.Set(key, v); err != nil {
		h.t.Fatal(err)
	}
}

func (h *harness) has(key string) bool {
	var raw json.RawMessage
	ok, err := h.store.Get(key, &raw)
	if err != nil {
		h.t.Fatal(err)
	}
	return ok
}

// eventually polls cond on the loop until it holds.
func (h *harness) eventually(cond func() bool) {
	h.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var ok bool
		h.do(func() { ok = cond() })
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	h.t.Fatal("condition not reached")
}
