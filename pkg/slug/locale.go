package slug

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// Locale selects a set of language specific transliteration rules.
type Locale string

// Locales with dedicated transliteration rules.
const (
	LocaleNone          Locale = ""
	LocaleGerman        Locale = "de_DE"
	LocaleGermanFormal  Locale = "de_DE_formal"
	LocaleSwissGerman   Locale = "de_CH"
	LocaleSwissInformal Locale = "de_CH_informal"
	LocaleDanish        Locale = "da_DK"
	LocaleCatalan       Locale = "ca"
	LocaleSerbian       Locale = "sr_RS"
	LocaleBosnian       Locale = "bs_BA"
)

// Locales lists every locale that changes the transliteration table.
var Locales = []Locale{
	LocaleGerman,
	LocaleGermanFormal,
	LocaleSwissGerman,
	LocaleSwissInformal,
	LocaleDanish,
	LocaleCatalan,
	LocaleSerbian,
	LocaleBosnian,
}

var (
	germanOverlay = []Entry{
		{"Ä", "Ae"}, {"ä", "ae"},
		{"Ö", "Oe"}, {"ö", "oe"},
		{"Ü", "Ue"}, {"ü", "ue"},
		{"ß", "ss"},
	}
	danishOverlay = []Entry{
		{"Æ", "Ae"}, {"æ", "ae"},
		{"Ø", "Oe"}, {"ø", "oe"},
		{"Å", "Aa"}, {"å", "aa"},
	}
	catalanOverlay = []Entry{
		{"l·l", "ll"},
	}
	serbianOverlay = []Entry{
		{"Đ", "DJ"}, {"đ", "dj"},
	}
)

// ParseLocale converts a user supplied locale name into a Locale.
// Both "de-DE" and "de_de" resolve to LocaleGerman. Names without
// dedicated rules resolve to LocaleNone.
func ParseLocale(s string) Locale {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "_")
	for _, l := range Locales {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return LocaleNone
}

// Known reports whether l has dedicated transliteration rules.
func (l Locale) Known() bool {
	return slices.Contains(Locales, l)
}

// overlay returns the entries that replace base entries for l.
func (l Locale) overlay() []Entry {
	switch l {
	case LocaleGerman, LocaleGermanFormal, LocaleSwissGerman, LocaleSwissInformal:
		return germanOverlay
	case LocaleDanish:
		return danishOverlay
	case LocaleCatalan:
		return catalanOverlay
	case LocaleSerbian, LocaleBosnian:
		return serbianOverlay
	default:
		return nil
	}
}

// Table is an immutable transliteration table for one locale.
// It is safe for concurrent use.
type Table struct {
	chars    map[string]string
	replacer *strings.Replacer
	locale   Locale
}

var tables sync.Map // Locale -> *Table

// TableFor returns the transliteration table for l. Tables are built on first
// use and cached for the lifetime of the process.
func TableFor(l Locale) *Table {
	if !l.Known() {
		l = LocaleNone
	}
	if t, ok := tables.Load(l); ok {
		return t.(*Table)
	}
	t, _ := tables.LoadOrStore(l, newTable(l, baseEntries, l.overlay()))
	return t.(*Table)
}

func newTable(l Locale, base, overlay []Entry) *Table {
	chars := make(map[string]string, len(base)+len(overlay))
	keys := make([]string, 0, len(base)+len(overlay))
	for _, set := range [][]Entry{base, overlay} {
		for _, e := range set {
			if _, ok := chars[e.From]; !ok {
				keys = append(keys, e.From)
			}
			chars[e.From] = e.To
		}
	}

	// strings.Replacer tries keys in argument order; longer keys go first.
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, chars[k])
	}

	return &Table{
		chars:    chars,
		replacer: strings.NewReplacer(oldnew...),
		locale:   l,
	}
}

// Locale returns the locale the table was built for.
func (t *Table) Locale() Locale {
	return t.locale
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.chars)
}

// Lookup returns the replacement for a single character or sequence.
func (t *Table) Lookup(grapheme string) (string, bool) {
	to, ok := t.chars[grapheme]
	return to, ok
}

// Apply replaces every table key found in s in a single left to right pass.
// Replacement output is never rescanned.
func (t *Table) Apply(s string) string {
	return t.replacer.Replace(s)
}
