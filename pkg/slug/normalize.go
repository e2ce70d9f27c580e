package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/slugify/pkg/sanitizer"
)

// Mode tells the pipeline what the slug is for.
type Mode string

const (
	// ModeSave produces a slug meant to be stored: accents are transliterated
	// and typographic punctuation is dropped or folded into hyphens.
	ModeSave Mode = "save"
	// ModeDisplay keeps accented characters (percent-encoded) and skips the
	// punctuation folding.
	ModeDisplay Mode = "display"
)

// ParseMode converts s into a Mode. Anything other than "display" is ModeSave.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeDisplay)) {
		return ModeDisplay
	}
	return ModeSave
}

var (
	entityRe   = regexp.MustCompile(`&.+?;`)
	disallowRe = regexp.MustCompile(`[^%a-z0-9 _-]`)
	spaceRe    = regexp.MustCompile(`\s+`)
	dashRunRe  = regexp.MustCompile(`-+`)
)

// Folded into a single hyphen in ModeSave: no-break space, en dash and em
// dash, percent-encoded and as HTML entities.
var dashReplacer = strings.NewReplacer(
	"%c2%a0", "-", "%e2%80%93", "-", "%e2%80%94", "-",
	"&nbsp;", "-", "&#160;", "-",
	"&ndash;", "-", "&#8211;", "-",
	"&mdash;", "-", "&#8212;", "-",
)

// Removed in ModeSave.
var punctuationReplacer = strings.NewReplacer(
	// inverted exclamation and question marks
	"%c2%a1", "", "%c2%bf", "",
	// guillemets
	"%c2%ab", "", "%c2%bb", "", "%e2%80%b9", "", "%e2%80%ba", "",
	// typographic quotes
	"%e2%80%98", "", "%e2%80%99", "", "%e2%80%9c", "", "%e2%80%9d", "",
	"%e2%80%9a", "", "%e2%80%9b", "", "%e2%80%9e", "", "%e2%80%9f", "",
	// copyright, registered, degree, ellipsis, trade mark
	"%c2%a9", "", "%c2%ae", "", "%c2%b0", "", "%e2%80%a6", "", "%e2%84%a2", "",
	// acute accents
	"%c2%b4", "", "%cb%8a", "", "%cc%81", "", "%cd%81", "",
	// grave accent, macron, caron
	"%cc%80", "", "%cc%84", "", "%cc%8c", "",
)

// Normalize turns already transliterated text into a slug.
//
// Markup is stripped, existing %xx escapes are kept while stray percent signs
// go away, UTF-8 text is lowercased and percent-encoded, and everything
// outside [%a-z0-9_-] is removed. Runs of spaces and hyphens collapse into one
// hyphen and hyphens at either end are trimmed. The result is at most 200
// bytes long and may be empty. In ModeSave, Normalize(Normalize(s)) equals
// Normalize(s).
func Normalize(s string, mode Mode) string {
	s = sanitizer.StripTags(s)
	s = protectOctets(s)

	if IsUTF8(s) {
		// Casers keep state between calls and must not be shared.
		s = cases.Lower(language.Und).String(s)
		s = URIEncode(s, maxEncodedLength)
	}
	s = asciiLower(s)

	if mode == ModeSave {
		s = foldPunctuation(s)
	}

	s = entityRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ".", "-")
	s = disallowRe.ReplaceAllString(s, "")

	// Removing characters can bring two halves of an escape together.
	if mode == ModeSave {
		s = foldPunctuation(s)
	}

	s = spaceRe.ReplaceAllString(s, "-")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return truncateEscaped(s, maxEncodedLength)
}

// foldPunctuation applies the ModeSave replacements until nothing changes.
// Deleting "%c2%a9" from "%c2%c2%a9%a9" leaves another "%c2%a9".
func foldPunctuation(s string) string {
	for {
		next := dashReplacer.Replace(s)
		next = punctuationReplacer.Replace(next)
		next = strings.ReplaceAll(next, "%c3%97", "x")
		if next == s {
			return s
		}
		s = next
	}
}

// truncateEscaped cuts s to at most n bytes without splitting a %xx escape.
// Only text that skipped the percent encoder can be longer than n.
func truncateEscaped(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	switch {
	case s[cut-1] == '%':
		cut--
	case s[cut-2] == '%':
		cut -= 2
	}
	return strings.TrimRight(s[:cut], "-")
}

// protectOctets removes percent signs that do not start a %xx escape.
// Escapes are copied through as they are, so no placeholder can collide
// with the input text.
func protectOctets(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteString(s[i : i+3])
			i += 2
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// asciiLower lowercases A-Z only and leaves every other byte alone, so
// non-UTF-8 input is not mangled.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
