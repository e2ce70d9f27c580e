// Package alfred builds the JSON document launcher script filters expect
// (Alfred "Script Filter" format) for a single computed slug.
package alfred

import (
	"encoding/json"
	"io"
)

const (
	itemType  = "default"
	itemTitle = "Slugify"
)

// Response is the top level Script Filter document.
type Response struct {
	Items     []Item    `json:"items"`
	Variables Variables `json:"variables"`
}

// Item is one result row.
type Item struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Text     Text   `json:"text"`
}

// Text holds the values used for copy (⌘C) and large type (⌘L).
type Text struct {
	Copy      string `json:"copy"`
	LargeType string `json:"large_type"`
}

// Variables are exported to downstream workflow objects.
type Variables struct {
	Slug string `json:"slug"`
}

// New returns a response with a single item carrying slug in every field.
func New(slug string) Response {
	return Response{
		Items: []Item{{
			Type:     itemType,
			Title:    itemTitle,
			Subtitle: slug,
			Arg:      slug,
			Text: Text{
				Copy:      slug,
				LargeType: slug,
			},
		}},
		Variables: Variables{Slug: slug},
	}
}

// Write encodes r as JSON to w.
func (r Response) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
