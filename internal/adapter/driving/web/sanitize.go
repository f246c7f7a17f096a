package web

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// SanitizeHTML cleans Canvas-authored HTML (assignment descriptions) so it can
// be embedded in the page. Returns empty for empty input.
func SanitizeHTML(src string) template.HTML {
	if src == "" {
		return ""
	}
	// #nosec G203 -- output of the UGC sanitizer.
	return template.HTML(htmlSanitizer.Sanitize(src))
}
