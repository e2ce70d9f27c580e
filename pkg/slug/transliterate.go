package slug

import "strings"

// RemoveAccents replaces accented letters, ligatures and a few currency signs
// with ASCII equivalents.
//
// Pure ASCII input is returned unchanged. UTF-8 input goes through the
// transliteration table for locale; anything else is treated as a
// single-byte Latin-1 string and mapped byte by byte. Characters without a
// mapping are left in place.
func RemoveAccents(s string, locale Locale) string {
	if !hasHighBytes(s) {
		return s
	}
	if IsUTF8(s) {
		return TableFor(locale).Apply(s)
	}
	return removeLegacyAccents(s)
}

func removeLegacyAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if r := legacySingle[c]; r != 0 {
			b.WriteByte(r)
			continue
		}
		if r, ok := legacyDouble[c]; ok {
			b.WriteString(r)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
