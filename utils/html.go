package utils

import (
	"html"
	"regexp"
	"strings"
)

// escapes special characters in a string to prevent HTML injection
func EscapeString(s string) string {
	return html.EscapeString(s)
}

// PostBlock renders one post as the fragment shown in the posts container.
func PostBlock(title, body string) string {
	var b strings.Builder
	b.WriteString(`<div class="post">`)
	b.WriteString("<h3>" + EscapeString(title) + "</h3>")
	b.WriteString("<p>" + EscapeString(body) + "</p>")
	b.WriteString("<hr></div>")
	return b.String()
}

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// TextContent drops the markup from a fragment and unescapes what is left,
// roughly what a browser reports as textContent.
func TextContent(fragment string) string {
	return html.UnescapeString(tagRegex.ReplaceAllString(fragment, " "))
}
