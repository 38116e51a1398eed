// Package view holds the server-rendered pages. Presentation only; every
// template consumes plain data handed over by the controllers.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var files embed.FS

// Templates parses every embedded page for the Gin HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.tmpl"))
}

// StaticFS exposes the embedded stylesheet directory for /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
