// Package web embeds the public site and the admin panel so the server
// ships as a single binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register mounts the embedded pages: the public site at /, the admin
// panel at /admin, and shared assets under /static.
func Register(router *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	// http.FileServer redirects paths ending in index.html to ./, so the
	// landing page is served from bytes rather than through FileFromFS.
	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	router.GET("/admin", func(c *gin.Context) {
		c.FileFromFS("admin.html", http.FS(sub))
	})
	router.StaticFS("/static", http.FS(sub))
}
