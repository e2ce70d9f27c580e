// Package slug turns arbitrary strings into canonical, URL- and filesystem-safe
// slugs.
//
// A slug is lowercase ASCII built from [a-z0-9_-]. Characters that have no
// ASCII spelling survive as percent-encoded UTF-8 octets, so the result is
// still usable in a URL path.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugify/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Œuvre complète")
//	// Output: "oeuvre-complete"
//
//	s = slug.Make("日本")
//	// Output: "%e6%97%a5%e6%9c%ac"
//
// # Pipeline
//
// Make runs three stages:
//
//  1. RemoveAccents transliterates accented letters and ligatures using a
//     static table (ModeSave only). Input that is not UTF-8 is treated as
//     Latin-1 and mapped byte by byte.
//  2. Text that is UTF-8 is lowercased and percent-encoded by URIEncode,
//     capped at 200 output characters without splitting a character.
//  3. Normalize strips markup, removes punctuation and collapses whitespace
//     and hyphen runs into single hyphens.
//
// Each stage is exported and can be used on its own.
//
// # Options
//
// WithLocale enables language specific rules:
//
//	slug.Make("Fußgängerübergänge", slug.WithLocale(slug.LocaleGerman))
//	// Output: "fussgaengeruebergaenge"
//
//	slug.Make("Øresund", slug.WithLocale(slug.LocaleDanish))
//	// Output: "oeresund"
//
// Recognized locales are German (de_DE, de_DE_formal, de_CH,
// de_CH_informal), Danish (da_DK), Catalan (ca) and Serbian/Bosnian (sr_RS,
// bs_BA). ParseLocale accepts "de-DE" style names as well.
//
// WithMode(ModeDisplay) skips transliteration and punctuation folding:
//
//	slug.Make("Café", slug.WithMode(slug.ModeDisplay))
//	// Output: "caf%c3%a9"
//
// WithFallback sets the value returned for input that leaves nothing behind:
//
//	slug.Make("***", slug.WithFallback("untitled"))
//	// Output: "untitled"
//
// # File names
//
// MakeFilename treats dots as segment separators so extensions survive:
//
//	slug.MakeFilename("Été 2024.Photos.JPG")
//	// Output: "ete-2024.photos.jpg"
//
// All functions are pure and safe for concurrent use. Transliteration tables
// are built once per locale and shared.
package slug
