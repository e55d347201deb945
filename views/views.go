package views

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

const WidgetTemplate = "widget.html"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
