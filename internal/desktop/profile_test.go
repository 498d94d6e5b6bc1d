package desktop

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareProfileWithoutReset(t *testing.T) {
	profile := ProfileDir(t.TempDir())
	os.MkdirAll(filepath.Join(profile, "EBWebView"), 0755)

	if err := PrepareProfile(profile); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(profile); err != nil {
		t.Errorf("profile removed without a pending reset: %v", err)
	}
}

func TestPrepareProfileAfterReset(t *testing.T) {
	profile := ProfileDir(t.TempDir())
	cookies := filepath.Join(profile, "EBWebView", "Default", "Network", "Cookies")
	os.MkdirAll(filepath.Dir(cookies), 0755)
	os.WriteFile(cookies, []byte("session"), 0644)

	if err := MarkProfileReset(profile); err != nil {
		t.Fatal(err)
	}
	if err := PrepareProfile(profile); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{profile, profile + ".old", profile + resetSuffix} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s still present", p)
		}
	}

	// A reset with no profile on disk yet only clears the marker.
	if err := MarkProfileReset(profile); err != nil {
		t.Fatal(err)
	}
	if err := PrepareProfile(profile); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(profile + resetSuffix); !os.IsNotExist(err) {
		t.Error("marker left behind")
	}
}
