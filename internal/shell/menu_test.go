package shell

import (
	"reflect"
	"testing"
)

func TestMenusAreIdempotent(t *testing.T) {
	for _, v := range []bool{true, false} {
		if !reflect.DeepEqual(AppMenu(v), AppMenu(v)) {
			t.Errorf("AppMenu(%v) not stable", v)
		}
		if !reflect.DeepEqual(TrayMenu(v), TrayMenu(v)) {
			t.Errorf("TrayMenu(%v) not stable", v)
		}
	}
}

func TestTrayMenuLabels(t *testing.T) {
	tests := []struct {
		visible bool
		want    []string
	}{
		{true, []string{"Personal login", "Corporate login", "Your last page", "Clear session and logout", "Hide", "Download", "Quit"}},
		{false, []string{"Personal login", "Corporate login", "Your last page", "Clear session and logout", "Show", "Download", "Quit"}},
	}
	for _, tt := range tests {
		var got []string
		for _, it := range TrayMenu(tt.visible) {
			got = append(got, it.Label)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TrayMenu(%v) labels = %v, want %v", tt.visible, got, tt.want)
		}
	}
}

func TestAppMenuLayout(t *testing.T) {
	menu := AppMenu(false)
	var tops []string
	for _, it := range menu {
		if it.Kind != ItemSubmenu {
			t.Errorf("top-level %q is not a submenu", it.Label)
		}
		tops = append(tops, it.Label)
	}
	if want := []string{Title, "Edit", "View", "Help"}; !reflect.DeepEqual(tops, want) {
		t.Errorf("top-level = %v, want %v", tops, want)
	}
	if !reflect.DeepEqual(menu[0].Submenu, TrayMenu(false)) {
		t.Error("title submenu differs from tray menu")
	}
	for _, it := range menu[1].Submenu {
		if it.Kind != ItemRole && it.Kind != ItemSeparator {
			t.Errorf("Edit item %q is not a role", it.Label)
		}
	}
	for _, it := range menu[3].Submenu {
		if it.Kind != ItemAction || it.Action.URL() == "" {
			t.Errorf("Help item %q is not a link", it.Label)
		}
	}
}

func TestPresenterRebuild(t *testing.T) {
	r := &fakeRenderer{}
	p := NewPresenter(r)
	p.Rebuild(false)

	if !reflect.DeepEqual(r.app, AppMenu(false)) || !reflect.DeepEqual(r.tray, TrayMenu(false)) {
		t.Error("Rebuild did not render the models for visible=false")
	}
	if r.toggleLabel() != "Show" {
		t.Errorf("label = %q, want Show", r.toggleLabel())
	}
}
