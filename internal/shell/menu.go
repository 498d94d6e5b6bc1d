package shell

// Title is the application and tray title.
const Title = "P3X OneNote"

// ItemKind tells a renderer how to build a MenuItem.
type ItemKind int

const (
	ItemAction ItemKind = iota
	ItemRole
	ItemSeparator
	ItemSubmenu
)

// Role is a built-in menu command handled by the toolkit or the webview.
type Role string

const (
	RoleUndo             Role = "undo"
	RoleRedo             Role = "redo"
	RoleCut              Role = "cut"
	RoleCopy             Role = "copy"
	RolePaste            Role = "paste"
	RolePasteMatchStyle  Role = "pasteandmatchstyle"
	RoleDelete           Role = "delete"
	RoleSelectAll        Role = "selectall"
	RoleReload           Role = "reload"
	RoleForceReload      Role = "forcereload"
	RoleResetZoom        Role = "resetzoom"
	RoleZoomIn           Role = "zoomin"
	RoleZoomOut          Role = "zoomout"
	RoleToggleFullscreen Role = "togglefullscreen"
)

// MenuItem is a toolkit-neutral menu entry.
type MenuItem struct {
	Kind    ItemKind
	Label   string
	Tooltip string
	Action  Action // ItemAction
	Role    Role   // ItemRole
	Submenu []MenuItem
}

func actionItem(label string, a Action) MenuItem {
	return MenuItem{Kind: ItemAction, Label: label, Action: a}
}

func roleItem(label string, r Role) MenuItem {
	return MenuItem{Kind: ItemRole, Label: label, Role: r}
}

var separator = MenuItem{Kind: ItemSeparator}

// TrayMenu returns the session menu shown in the tray and as the first
// application submenu. visible selects the Show/Hide label.
func TrayMenu(visible bool) []MenuItem {
	toggle := "Show"
	if visible {
		toggle = "Hide"
	}
	return []MenuItem{
		actionItem("Personal login", PersonalLogin),
		actionItem("Corporate login", CorporateLogin),
		actionItem("Your last page", LastPage),
		{Kind: ItemAction, Label: "Clear session and logout", Tooltip: "You logout and can login again", Action: ClearSession},
		actionItem(toggle, ToggleVisibility),
		actionItem("Download", OpenDownload),
		actionItem("Quit", Quit),
	}
}

// AppMenu returns the full application menu.
func AppMenu(visible bool) []MenuItem {
	return []MenuItem{
		{Kind: ItemSubmenu, Label: Title, Submenu: TrayMenu(visible)},
		{Kind: ItemSubmenu, Label: "Edit", Submenu: []MenuItem{
			roleItem("Undo", RoleUndo),
			roleItem("Redo", RoleRedo),
			separator,
			roleItem("Cut", RoleCut),
			roleItem("Copy", RoleCopy),
			roleItem("Paste", RolePaste),
			roleItem("Paste and Match Style", RolePasteMatchStyle),
			roleItem("Delete", RoleDelete),
			roleItem("Select All", RoleSelectAll),
		}},
		{Kind: ItemSubmenu, Label: "View", Submenu: []MenuItem{
			roleItem("Reload", RoleReload),
			roleItem("Force Reload", RoleForceReload),
			separator,
			roleItem("Actual Size", RoleResetZoom),
			roleItem("Zoom In", RoleZoomIn),
			roleItem("Zoom Out", RoleZoomOut),
			separator,
			roleItem("Toggle Full Screen", RoleToggleFullscreen),
		}},
		{Kind: ItemSubmenu, Label: "Help", Submenu: []MenuItem{
			actionItem("Download", OpenDownload),
			actionItem("GitHub", OpenGitHub),
			actionItem("Patrik Laszlo", OpenAuthor),
			actionItem("P3X", OpenOrganization),
			actionItem("Corifeus", OpenCorifeus),
			actionItem("Npm", OpenNpm),
		}},
	}
}

// Renderer installs menu models into the native toolkit.
type Renderer interface {
	SetApplicationMenu(items []MenuItem)
	SetTrayMenu(items []MenuItem)
}

// Presenter rebuilds the application and tray menus from the current
// visibility.
type Presenter struct {
	r Renderer
}

// NewPresenter returns a presenter rendering through r.
func NewPresenter(r Renderer) *Presenter {
	return &Presenter{r: r}
}

// Rebuild renders both menus for the given visibility.
func (p *Presenter) Rebuild(visible bool) {
	p.r.SetApplicationMenu(AppMenu(visible))
	p.r.SetTrayMenu(TrayMenu(visible))
}
