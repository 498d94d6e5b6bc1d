package desktop

import (
	"github.com/Mavwarf/onenote/internal/shell"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var roleKeys = map[shell.Role]*keys.Accelerator{
	shell.RoleUndo:             keys.CmdOrCtrl("z"),
	shell.RoleRedo:             keys.Combo("z", keys.CmdOrCtrlKey, keys.ShiftKey),
	shell.RoleCut:              keys.CmdOrCtrl("x"),
	shell.RoleCopy:             keys.CmdOrCtrl("c"),
	shell.RolePaste:            keys.CmdOrCtrl("v"),
	shell.RolePasteMatchStyle:  keys.Combo("v", keys.CmdOrCtrlKey, keys.ShiftKey),
	shell.RoleSelectAll:        keys.CmdOrCtrl("a"),
	shell.RoleReload:           keys.CmdOrCtrl("r"),
	shell.RoleForceReload:      keys.Combo("r", keys.CmdOrCtrlKey, keys.ShiftKey),
	shell.RoleResetZoom:        keys.CmdOrCtrl("0"),
	shell.RoleZoomIn:           keys.CmdOrCtrl("="),
	shell.RoleZoomOut:          keys.CmdOrCtrl("-"),
	shell.RoleToggleFullscreen: keys.Key("f11"),
}

// BuildMenu converts a menu model into a Wails application menu. Clicks
// call onAction or onRole from the Wails UI thread.
func BuildMenu(items []shell.MenuItem, onAction func(shell.Action), onRole func(shell.Role)) *menu.Menu {
	m := menu.NewMenu()
	addItems(m, items, onAction, onRole)
	return m
}

func addItems(m *menu.Menu, items []shell.MenuItem, onAction func(shell.Action), onRole func(shell.Role)) {
	for _, it := range items {
		switch it.Kind {
		case shell.ItemSeparator:
			m.AddSeparator()
		case shell.ItemSubmenu:
			addItems(m.AddSubmenu(it.Label), it.Submenu, onAction, onRole)
		case shell.ItemRole:
			r := it.Role
			m.AddText(it.Label, roleKeys[r], func(*menu.CallbackData) { onRole(r) })
		case shell.ItemAction:
			a := it.Action
			m.AddText(it.Label, nil, func(*menu.CallbackData) { onAction(a) })
		}
	}
}

// Renderer implements shell.Renderer: the application menu goes through
// the Wails runtime, the tray menu through Tray.
type Renderer struct {
	win      *Window
	tray     *Tray
	onAction func(shell.Action)
	onRole   func(shell.Role)
}

// NewRenderer returns a renderer whose menu clicks call onAction and onRole.
func NewRenderer(win *Window, tray *Tray, onAction func(shell.Action), onRole func(shell.Role)) *Renderer {
	return &Renderer{win: win, tray: tray, onAction: onAction, onRole: onRole}
}

// Menu builds the Wails menu for items without installing it. main uses
// it for the menu passed to wails.Run.
func (r *Renderer) Menu(items []shell.MenuItem) *menu.Menu {
	return BuildMenu(items, r.onAction, r.onRole)
}

func (r *Renderer) SetApplicationMenu(items []shell.MenuItem) {
	if !r.win.Exists() {
		return
	}
	runtime.MenuSetApplicationMenu(r.win.ctx, r.Menu(items))
	runtime.MenuUpdateApplicationMenu(r.win.ctx)
}

func (r *Renderer) SetTrayMenu(items []shell.MenuItem) {
	r.tray.SetMenu(items)
}
