package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/onenote/internal/paths"
)

const resetSuffix = ".reset"

// ProfileDir is the webview user data directory inside dataDir. It holds
// every cookie, including HttpOnly and third-party login cookies.
func ProfileDir(dataDir string) string {
	return filepath.Join(dataDir, "webview")
}

// MarkProfileReset schedules profile for deletion by the next
// PrepareProfile.
func MarkProfileReset(profile string) error {
	stamp := time.Now().UTC().Format(time.RFC3339)
	if err := paths.AtomicWrite(profile+resetSuffix, []byte(stamp+"\n")); err != nil {
		return fmt.Errorf("desktop: mark profile reset: %w", err)
	}
	return nil
}

// PrepareProfile deletes profile if a reset was scheduled. It must run
// before the webview starts. A profile still held open by a running
// instance cannot be renamed; it is left alone and the reset stays pending.
func PrepareProfile(profile string) error {
	marker := profile + resetSuffix
	if _, err := os.Stat(marker); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("desktop: %w", err)
	}

	stale := profile + ".old"
	if err := os.RemoveAll(stale); err != nil {
		return fmt.Errorf("desktop: remove %s: %w", stale, err)
	}
	if err := os.Rename(profile, stale); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("desktop: profile busy, reset postponed: %w", err)
	}
	if err := os.RemoveAll(stale); err != nil {
		return fmt.Errorf("desktop: remove %s: %w", stale, err)
	}
	if err := os.Remove(marker); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
