// Package web serves the embedded single-page client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the client under /app/.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed contents are fixed at build time
		panic(err)
	}
	return http.StripPrefix("/app/", http.FileServer(http.FS(sub)))
}
