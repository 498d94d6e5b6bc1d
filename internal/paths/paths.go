// Package paths names the files the shell keeps on disk.
package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName      = "p3x-onenote"
	ConfigFileName  = "onenote-config.json"
	PrefsFileName   = "prefs.json"
	PrefsDBFileName = "prefs.db"
	DirPerm         = 0755
	FilePerm        = 0644
)

// AtomicWrite replaces path with data. Readers see either the old or the
// new content, never a prefix of it.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, FilePerm)
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		os.Remove(tmp)
	}
	return werr
}

// DataDir holds preferences, the optional config and the webview profile.
// %APPDATA% wins when set, then ~/.config, then the temp dir.
func DataDir() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), AppDirName)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppDirName)
}

// PrefsPath returns the preference file for the given storage backend
// inside dir.
func PrefsPath(dir, storage string) string {
	if storage == "sqlite" {
		return filepath.Join(dir, PrefsDBFileName)
	}
	return filepath.Join(dir, PrefsFileName)
}
