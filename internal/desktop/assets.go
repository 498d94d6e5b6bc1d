package desktop

import (
	"net/http"

	"github.com/Mavwarf/onenote/internal/shell"
)

// blankPage is the local placeholder shown before login and after a
// session reset.
const blankPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>` + shell.Title + `</title>
<style>
  body { margin: 0; height: 100vh; display: flex; align-items: center; justify-content: center;
         font-family: system-ui, sans-serif; background: #f4f0f8; color: #7719aa; }
</style>
</head>
<body>
<p>Use the ` + shell.Title + ` menu to log in.</p>
</body>
</html>`

// AssetHandler serves the embedded pages. Every path returns the blank
// page, which also bootstraps the webview at startup.
func AssetHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != shell.BlankURL {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(blankPage))
	})
}
