package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Mavwarf/onenote/internal/paths"
)

// DefaultHomeURL is the notebook listing of the hosted web application.
const DefaultHomeURL = "https://www.onenote.com/notebooks"

// DefaultCorporateUPN is sent as auth_upn for corporate login when the
// config does not name an account.
const DefaultCorporateUPN = "my_corporate_email_address"

// Default window geometry in pixels.
const (
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultMinWidth  = 400
	DefaultMinHeight = 300
)

// Storage backends for session preferences.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Options holds global settings parsed from the "config" key.
type Options struct {
	Storage      string `json:"storage,omitempty"`
	HomeURL      string `json:"home_url,omitempty"`
	CorporateUPN string `json:"corporate_upn,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	MinWidth     int    `json:"min_width,omitempty"`
	MinHeight    int    `json:"min_height,omitempty"`
	Log          bool   `json:"log,omitempty"`

	// RestoreOnShowOnly limits the lastUrl re-navigation done on every
	// visibility change to the show path.
	RestoreOnShowOnly bool `json:"restore_on_show_only,omitempty"`
}

// Config is the top-level configuration file.
type Config struct {
	Options Options `json:"config"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.Options.Storage = StorageJSON
	c.Options.HomeURL = DefaultHomeURL
	c.Options.CorporateUPN = DefaultCorporateUPN
	c.Options.Width = DefaultWidth
	c.Options.Height = DefaultHeight
	c.Options.MinWidth = DefaultMinWidth
	c.Options.MinHeight = DefaultMinHeight
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.setDefaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// CorporateURL returns the home URL with the corporate-auth query
// parameters appended.
func (o Options) CorporateURL() string {
	u, err := url.Parse(o.HomeURL)
	if err != nil {
		return o.HomeURL
	}
	q := u.Query()
	q.Set("auth", "2")
	q.Set("auth_upn", o.CorporateUPN)
	u.RawQuery = q.Encode()
	return u.String()
}

// FindPath returns the config file that Load would read. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. onenote-config.json next to the running binary
//  3. onenote-config.json in the data directory
func FindPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}

	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	return "", os.ErrNotExist
}

// Load reads the config file located by FindPath. A missing file is not an
// error unless explicitPath was given; defaults are returned instead.
func Load(explicitPath string) (Config, error) {
	p, err := FindPath(explicitPath)
	if err != nil {
		return Default(), nil
	}
	return readConfig(p)
}

// Validate checks option values that would otherwise fail at runtime.
func Validate(cfg Config) error {
	o := cfg.Options
	switch o.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("config: unknown storage %q (want %q or %q)", o.Storage, StorageJSON, StorageSQLite)
	}
	u, err := url.Parse(o.HomeURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: home_url %q must be an absolute http(s) URL", o.HomeURL)
	}
	if o.Width < 0 || o.Height < 0 || o.MinWidth < 0 || o.MinHeight < 0 {
		return fmt.Errorf("config: window sizes must not be negative")
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
