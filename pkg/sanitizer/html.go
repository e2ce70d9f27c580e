package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy *bluemonday.Policy
	initOnce   sync.Once
)

// Elements whose text bluemonday drops by default. Tag stripping keeps it.
var contentElements = []string{
	"frame", "frameset", "iframe", "noembed", "noframes", "noscript",
	"nostyle", "object", "script", "style", "title",
}

func initPolicies() {
	initOnce.Do(func() {
		// No element is allowed, so AllowUnsafe only makes script and style
		// text reach the output. It is written verbatim, never as markup.
		textPolicy = bluemonday.StrictPolicy().
			AllowUnsafe(true).
			AllowElementsContent(contentElements...)
	})
}

// StripTags removes every HTML tag and comment from s and returns the text in
// between, including the text of script and style elements.
//
// Character references are not decoded: "caf&eacute;" stays "caf&eacute;".
// Every ampersand is escaped before sanitizing so bluemonday's own
// unescape/escape round trip gives the references back as written.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	initPolicies()
	return html.UnescapeString(textPolicy.Sanitize(strings.ReplaceAll(s, "&", "&amp;")))
}
