package shell

import (
	"strings"
	"testing"

	"github.com/Mavwarf/onenote/internal/prefs"
)

func TestActionNamesRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Actions() {
		name := a.String()
		if name == "" || strings.HasPrefix(name, "action(") {
			t.Errorf("action %d has no name", int(a))
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		got, err := ParseAction(name)
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", name, got, err, a)
		}
	}
}

func TestRequiredActionNames(t *testing.T) {
	for _, name := range []string{
		"personal-login", "corporate-login", "last-page",
		"clear-session", "toggle-visibility", "quit",
	} {
		if _, err := ParseAction(name); err != nil {
			t.Errorf("ParseAction(%q): %v", name, err)
		}
	}
	if _, err := ParseAction("restart"); err == nil {
		t.Error("expected error for unknown action")
	}
	if got := Action(99).String(); got != "action(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLinkActionsHaveURLs(t *testing.T) {
	links := []Action{OpenDownload, OpenGitHub, OpenAuthor, OpenOrganization, OpenCorifeus, OpenNpm}
	for _, a := range links {
		if !strings.HasPrefix(a.URL(), "https://") {
			t.Errorf("%v URL = %q", a, a.URL())
		}
	}
	if PersonalLogin.URL() != "" {
		t.Errorf("PersonalLogin has URL %q", PersonalLogin.URL())
	}
}

func TestDispatchLinksOpenExternally(t *testing.T) {
	h := newHarness(t)
	h.do(func() { h.disp.Dispatch(OpenGitHub) })

	if len(h.opener.opened) != 1 || h.opener.opened[0] != "https://github.com/patrikx3/onenote" {
		t.Errorf("opened = %v", h.opener.opened)
	}
	if len(h.win.calls) != 0 {
		t.Errorf("link touched the window: %v", h.win.calls)
	}
}

// Every action must have an observable effect; a missing case in Dispatch
// would fall through to the default branch and do nothing.
func TestDispatchHandlesEveryAction(t *testing.T) {
	for _, a := range Actions() {
		t.Run(a.String(), func(t *testing.T) {
			h := newHarness(t)
			h.win.hold = true // keep resets pending so nothing runs after Dispatch
			h.seed(prefs.KeyLastURL, "https://example.com/notebook")

			h.do(func() { h.disp.Dispatch(a) })

			if len(h.win.calls) == 0 && len(h.opener.opened) == 0 {
				t.Errorf("%v had no effect", a)
			}
			if h.win.pending != nil {
				h.win.pending <- nil
			}
		})
	}
}

func TestDispatchMapping(t *testing.T) {
	tests := []struct {
		action Action
		first  string
	}{
		{PersonalLogin, "show"},
		{CorporateLogin, "show"},
		{LastPage, "load:https://example.com/notebook"},
		{ClearSession, "clear"},
		{ToggleVisibility, "hide"},
		{Quit, "quit"},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			h := newHarness(t)
			h.win.hold = true
			h.seed(prefs.KeyLastURL, "https://example.com/notebook")

			h.do(func() { h.disp.Dispatch(tt.action) })

			if len(h.win.calls) == 0 || h.win.calls[0] != tt.first {
				t.Errorf("calls = %v, want first %q", h.win.calls, tt.first)
			}
			if h.win.pending != nil {
				h.win.pending <- nil
			}
		})
	}
}

func TestTriggerRunsOnLoop(t *testing.T) {
	h := newHarness(t)
	h.disp.Trigger(ToggleVisibility)
	h.eventually(func() bool { return !h.win.visible })
}
