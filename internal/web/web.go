// Package web holds the HTML templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var files embed.FS

// Templates parses every page and partial into one set keyed by file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html", "templates/*/*.html")
}

// ErrorPage is the template rendered for every error status.
const ErrorPage = "error.html"

// InternalError is the ErrorPage data for an unexpected failure.
func InternalError() map[string]any {
	return map[string]any{
		"Title":   "Internal Server Error",
		"Message": "Something went wrong. Please try again later.",
	}
}
