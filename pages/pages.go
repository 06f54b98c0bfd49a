// Package pages holds the HTML served to browsers.
package pages

import (
	_ "embed"
	"html/template"
)

//go:embed index.html
var indexHTML string

// Index is the feed page. It expects IndexData.
var Index = template.Must(template.New("index").Parse(indexHTML))

type IndexData struct {
	Blocks []template.HTML
}
