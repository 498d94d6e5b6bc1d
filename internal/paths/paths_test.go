package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefsPath(t *testing.T) {
	tests := []struct {
		storage, want string
	}{
		{"json", PrefsFileName},
		{"", PrefsFileName},
		{"sqlite", PrefsDBFileName},
	}
	for _, tt := range tests {
		got := PrefsPath("/data", tt.storage)
		if want := filepath.Join("/data", tt.want); got != want {
			t.Errorf("PrefsPath(%q) = %q, want %q", tt.storage, got, want)
		}
	}
}

func TestAtomicWriteCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	if err := AtomicWrite(path, []byte(`{"visible":true}`)); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"visible":true}` {
		t.Errorf("content = %q", data)
	}
	left, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	if len(left) != 0 {
		t.Errorf("temporary files left behind: %v", left)
	}
}

func TestAtomicWriteReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	for _, content := range []string{`{"visible":true}`, `{}`} {
		if err := AtomicWrite(path, []byte(content)); err != nil {
			t.Fatal(err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != content {
			t.Errorf("content = %q, want %q", data, content)
		}
	}
}

func TestDataDirUsesAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Setenv("APPDATA", "/fake/appdata")
	got := DataDir()
	want := filepath.Join("/fake/appdata", AppDirName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestDataDirFallsBackWithoutAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Unsetenv("APPDATA")
	got := DataDir()

	// Either ~/.config/p3x-onenote or the temp dir; both end with the app dir.
	if filepath.Base(got) != AppDirName {
		t.Errorf("DataDir() = %q, expected base dir %q", got, AppDirName)
	}
}
