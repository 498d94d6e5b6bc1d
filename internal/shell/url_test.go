package shell

import "testing"

func TestIsLocal(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", true},
		{"   ", true},
		{BlankURL, true},
		{"file:///opt/app/blank.html", true},
		{"FILE:///opt/app/blank.html", true},
		{"about:blank", true},
		{"wails://wails/blank.html", true},
		{"http://wails.localhost/blank.html", true},
		{"data:text/html,hi", true},
		{"://bad", true},
		{"https://www.onenote.com/notebooks", false},
		{"https://example.com/notebook", false},
		{"http://localhost:8080/", false},
	}
	for _, tt := range tests {
		if got := IsLocal(tt.url); got != tt.want {
			t.Errorf("IsLocal(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
