package prefs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Session preference keys.
const (
	KeyVisible      = "visible"
	KeyLastURL      = "lastUrl"
	KeyWindowBounds = "windowBounds"
	KeyToHost       = "toHost"
)

// Keys lists every key the shell writes.
var Keys = []string{KeyVisible, KeyLastURL, KeyWindowBounds, KeyToHost}

// Rect is a window rectangle in screen pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Visible returns the persisted visibility. Missing, null or unreadable
// values read as true.
func Visible(s Store) bool {
	var v *bool
	if _, err := s.Get(KeyVisible, &v); err != nil {
		warn(err)
		return true
	}
	return v == nil || *v
}

// LastURL returns the persisted last visited URL, if any.
func LastURL(s Store) (string, bool) {
	var u string
	ok, err := s.Get(KeyLastURL, &u)
	if err != nil {
		warn(err)
		return "", false
	}
	return u, ok && u != ""
}

// WindowBounds returns the persisted window rectangle, if any. Rectangles
// without a positive size are ignored.
func WindowBounds(s Store) (Rect, bool) {
	var r *Rect
	ok, err := s.Get(KeyWindowBounds, &r)
	if err != nil {
		warn(err)
		return Rect{}, false
	}
	if !ok || r == nil || r.Width <= 0 || r.Height <= 0 {
		return Rect{}, false
	}
	return *r, true
}

// ToHost returns the persisted payload for the hosted content. A stored
// JSON null counts as absent.
func ToHost(s Store) (json.RawMessage, bool) {
	var raw json.RawMessage
	ok, err := s.Get(KeyToHost, &raw)
	if err != nil {
		warn(err)
		return nil, false
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

func warn(err error) {
	fmt.Fprintf(os.Stderr, "prefs: %v\n", err)
}
