package desktop

import (
	"fmt"
	"os"
	goruntime "runtime"
	"sync"

	"github.com/Mavwarf/onenote/internal/icon"
	"github.com/Mavwarf/onenote/internal/shell"
	"github.com/energye/systray"
)

// Tray owns the single system tray icon. A left click toggles the window,
// a right click opens the session menu.
type Tray struct {
	onAction func(shell.Action)

	mu    sync.Mutex
	ready bool
	items []shell.MenuItem
}

// NewTray returns a tray whose clicks call onAction.
func NewTray(onAction func(shell.Action)) *Tray {
	return &Tray{onAction: onAction}
}

// Run starts the system tray icon. Must be called in a goroutine;
// systray.Run blocks until Stop is called.
func (t *Tray) Run() {
	// Lock this goroutine to an OS thread so that the hidden window created
	// by systray and the GetMessage loop share the same thread.
	goruntime.LockOSThread()
	systray.Run(t.onReady, func() {})
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	systray.Quit()
}

func (t *Tray) onReady() {
	if data, err := icon.Tray(goruntime.GOOS); err != nil {
		fmt.Fprintf(os.Stderr, "desktop: tray icon: %v\n", err)
	} else {
		systray.SetIcon(data)
	}
	systray.SetTitle(shell.Title)
	systray.SetTooltip(shell.Title)
	systray.SetOnClick(func(menu systray.IMenu) { t.onAction(shell.ToggleVisibility) })
	systray.SetOnRClick(func(menu systray.IMenu) {
		if menu == nil {
			return
		}
		if err := menu.ShowMenu(); err != nil {
			fmt.Fprintf(os.Stderr, "desktop: tray menu: %v\n", err)
		}
	})

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ready = true
	if t.items != nil {
		t.apply(t.items)
	}
}

// SetMenu replaces the tray menu. Before the tray is ready the items are
// kept and applied once it is.
func (t *Tray) SetMenu(items []shell.MenuItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = items
	if t.ready {
		t.apply(items)
	}
}

func (t *Tray) apply(items []shell.MenuItem) {
	systray.ResetMenu()
	for _, it := range items {
		switch it.Kind {
		case shell.ItemSeparator:
			systray.AddSeparator()
		case shell.ItemAction:
			t.bind(systray.AddMenuItem(it.Label, it.Tooltip), it.Action)
		case shell.ItemSubmenu:
			parent := systray.AddMenuItem(it.Label, it.Tooltip)
			for _, sub := range it.Submenu {
				if sub.Kind == shell.ItemAction {
					t.bind(parent.AddSubMenuItem(sub.Label, sub.Tooltip), sub.Action)
				}
			}
		}
	}
}

func (t *Tray) bind(mi *systray.MenuItem, a shell.Action) {
	mi.Click(func() { t.onAction(a) })
}
