package slug

import "strings"

// Sanitize is the full slug pipeline.
//
// In ModeSave the title is transliterated for locale before normalization.
// ModeDisplay skips transliteration so accented letters stay, percent-encoded.
// When nothing is left of the title, fallback is returned.
func Sanitize(title, fallback string, mode Mode, locale Locale) string {
	if mode == ModeSave {
		title = RemoveAccents(title, locale)
	}
	if s := Normalize(title, mode); s != "" {
		return s
	}
	return fallback
}

// Make generates a slug from s.
//
//	slug.Make("Café au lait")                               // "cafe-au-lait"
//	slug.Make("Größe", slug.WithLocale(slug.LocaleGerman))  // "groesse"
//	slug.Make("***", slug.WithFallback("untitled"))         // "untitled"
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return Sanitize(s, o.fallback, o.mode, o.locale)
}

// MakeFilename slugifies every dot separated part of name on its own and joins
// them back with dots, keeping file extensions and dot files recognizable:
//
//	slug.MakeFilename("Rapport Annuel.Final.PDF") // "rapport-annuel.final.pdf"
//
// The fallback applies only when every part comes out empty.
func MakeFilename(name string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	parts := strings.Split(name, ".")
	empty := true
	for i, part := range parts {
		parts[i] = Sanitize(part, "", o.mode, o.locale)
		if parts[i] != "" {
			empty = false
		}
	}
	if empty {
		return o.fallback
	}
	return strings.Join(parts, ".")
}
