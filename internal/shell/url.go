package shell

import (
	"net/url"
	"strings"
)

// BlankURL is the bundled placeholder page served by the embedded asset
// server. It is relative so it resolves against the asset origin of the
// running platform.
const BlankURL = "/blank.html"

// AssetHost is the host name the webview uses for embedded assets.
const AssetHost = "wails.localhost"

var localSchemes = map[string]bool{
	"file": true, "about": true, "data": true, "wails": true,
}

// IsLocal reports whether u refers to a bundled page rather than an
// external site. Empty, relative and unparsable URLs are local.
func IsLocal(u string) bool {
	if strings.TrimSpace(u) == "" {
		return true
	}
	p, err := url.Parse(u)
	if err != nil {
		return true
	}
	if p.Scheme == "" || localSchemes[strings.ToLower(p.Scheme)] {
		return true
	}
	return strings.EqualFold(p.Hostname(), AssetHost)
}
