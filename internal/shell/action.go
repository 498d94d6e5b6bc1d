package shell

import (
	"fmt"
	"os"
)

// Action is a user command from the application menu or the tray.
type Action int

const (
	PersonalLogin Action = iota
	CorporateLogin
	LastPage
	ClearSession
	ToggleVisibility
	Quit
	OpenDownload
	OpenGitHub
	OpenAuthor
	OpenOrganization
	OpenCorifeus
	OpenNpm

	numActions
)

var actionNames = [numActions]string{
	PersonalLogin:    "personal-login",
	CorporateLogin:   "corporate-login",
	LastPage:         "last-page",
	ClearSession:     "clear-session",
	ToggleVisibility: "toggle-visibility",
	Quit:             "quit",
	OpenDownload:     "download",
	OpenGitHub:       "github",
	OpenAuthor:       "patrik",
	OpenOrganization: "p3x",
	OpenCorifeus:     "corifeus",
	OpenNpm:          "npm",
}

// External pages opened in the default browser.
var linkURLs = map[Action]string{
	OpenDownload:     "https://github.com/patrikx3/onenote/releases",
	OpenGitHub:       "https://github.com/patrikx3/onenote",
	OpenAuthor:       "https://patrikx3.com",
	OpenOrganization: "https://github.com/patrikx3",
	OpenCorifeus:     "https://corifeus.com",
	OpenNpm:          "https://www.npmjs.com/~patrikx3",
}

// Actions returns every action in declaration order.
func Actions() []Action {
	all := make([]Action, numActions)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps an identifier such as "last-page" back to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// URL returns the external page a link action opens, or "".
func (a Action) URL() string {
	return linkURLs[a]
}

// Opener opens a URL in the system's default handler.
type Opener interface {
	OpenURL(url string)
}

// Dispatcher maps actions to their effects.
type Dispatcher struct {
	ctrl *Controller
	open Opener
	loop *Loop
}

// NewDispatcher returns a dispatcher driving ctrl.
func NewDispatcher(ctrl *Controller, open Opener, loop *Loop) *Dispatcher {
	return &Dispatcher{ctrl: ctrl, open: open, loop: loop}
}

// Trigger queues a onto the loop. Menu and tray callbacks use this.
func (d *Dispatcher) Trigger(a Action) {
	d.loop.Post(func() { d.Dispatch(a) })
}

// Dispatch runs the effect of a. It must run on the loop.
func (d *Dispatcher) Dispatch(a Action) {
	switch a {
	case PersonalLogin:
		d.ctrl.GoHome()
	case CorporateLogin:
		d.ctrl.GoCorporate()
	case LastPage:
		d.ctrl.RestoreLastPage()
	case ClearSession:
		d.ctrl.RestartSession()
	case ToggleVisibility:
		d.ctrl.ToggleVisible()
	case Quit:
		d.ctrl.Quit()
	case OpenDownload, OpenGitHub, OpenAuthor, OpenOrganization, OpenCorifeus, OpenNpm:
		d.open.OpenURL(a.URL())
	default:
		fmt.Fprintf(os.Stderr, "shell: unhandled %v\n", a)
	}
}
