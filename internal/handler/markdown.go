package handler

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var descriptionPolicy = bluemonday.UGCPolicy()

// renderDescription converts a product's free-text description from markdown
// to sanitized HTML for the detail surface. Descriptions are admin-entered
// free text, so the output is run through the UGC policy regardless.
func renderDescription(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return descriptionPolicy.Sanitize(md)
	}
	return descriptionPolicy.Sanitize(buf.String())
}
