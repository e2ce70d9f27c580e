package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		mode     slug.Mode
		expected string
	}{
		{"simple", "Hello World", slug.ModeSave, "hello-world"},
		{"dash runs", "a   --  b", slug.ModeSave, "a-b"},
		{"trim hyphens", "--edge--", slug.ModeSave, "edge"},
		{"markup", "<b>Bold</b> move", slug.ModeSave, "bold-move"},
		{"stray percent removed", "100% pure", slug.ModeSave, "100-pure"},
		{"escape preserved and lowercased", "caf%C3%A9", slug.ModeSave, "caf%c3%a9"},
		{"double percent", "%%41", slug.ModeSave, "%41"},
		{"literal sentinel text", "a---41---b", slug.ModeSave, "a-41-b"},
		{"dots", "version 1.2.3", slug.ModeSave, "version-1-2-3"},
		{"entity removed", "Tom &amp; Jerry", slug.ModeSave, "tom-jerry"},
		{"accent entity removed", "caf&eacute;", slug.ModeSave, "caf"},
		{"currency entity removed", "price &euro;5", slug.ModeSave, "price-5"},
		{"nbsp entity saved", "a&nbsp;b", slug.ModeSave, "a-b"},
		{"nbsp entity displayed", "a&nbsp;b", slug.ModeDisplay, "ab"},
		{"dash entity displayed", "a &ndash; b", slug.ModeDisplay, "a-b"},
		{"entity inside markup", "<em>caf&eacute;</em>", slug.ModeSave, "caf"},
		{"script text kept", "<script>alert</script>Title", slug.ModeSave, "alerttitle"},
		{"numeric dash entity", "Rock &#8212; Roll", slug.ModeSave, "rock-roll"},
		{"en dash saved", "a – b", slug.ModeSave, "a-b"},
		{"en dash displayed", "a – b", slug.ModeDisplay, "a-%e2%80%93-b"},
		{"curly quotes saved", "“Quoted”", slug.ModeSave, "quoted"},
		{"curly quotes displayed", "“Quoted”", slug.ModeDisplay, "%e2%80%9cquoted%e2%80%9d"},
		{"guillemets", "«Salut»", slug.ModeSave, "salut"},
		{"trade mark", "Brand™", slug.ModeSave, "brand"},
		{"ellipsis", "Wait…", slug.ModeSave, "wait"},
		{"multiplication sign", "2×3", slug.ModeSave, "2x3"},
		{"no-break space", "a\u00a0b", slug.ModeSave, "a-b"},
		{"nested punctuation escapes", "%c2%c2%a9%a9", slug.ModeSave, ""},
		{"escape joined by the filter", "%c2!%a9x", slug.ModeSave, "x"},
		{"underscore kept", "snake_case name", slug.ModeSave, "snake_case-name"},
		{"control whitespace removed by the filter", "a\tb\nc", slug.ModeSave, "abc"},
		{"only symbols", "***", slug.ModeSave, ""},
		{"only dots", "...", slug.ModeSave, ""},
		{"unicode lowercased before encoding", "ÉTÉ", slug.ModeDisplay, "%c3%a9t%c3%a9"},
		{"latin-1 input keeps ascii only", "CAF\xc9", slug.ModeSave, "caf"},
		{"empty", "", slug.ModeSave, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Normalize(tt.input, tt.mode))
		})
	}
}

func TestNormalizeLengthLimit(t *testing.T) {
	t.Parallel()

	t.Run("ascii", func(t *testing.T) {
		t.Parallel()
		got := slug.Normalize(strings.Repeat("a", 250), slug.ModeSave)
		assert.Equal(t, strings.Repeat("a", 200), got)
	})

	t.Run("multi-byte characters are not split", func(t *testing.T) {
		t.Parallel()
		got := slug.Normalize(strings.Repeat("é", 40), slug.ModeDisplay)
		assert.Equal(t, strings.Repeat("%c3%a9", 33), got)
	})

	t.Run("non utf-8 input", func(t *testing.T) {
		t.Parallel()
		got := slug.Normalize(strings.Repeat("a", 250)+"\xff", slug.ModeSave)
		assert.Equal(t, strings.Repeat("a", 200), got)
	})

	t.Run("escapes are not split", func(t *testing.T) {
		t.Parallel()
		got := slug.Normalize(strings.Repeat("a", 199)+"%41"+"\xff", slug.ModeSave)
		assert.Equal(t, strings.Repeat("a", 199), got)
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"a   --  b",
		"<p>Crème brûlée</p>",
		"100% pure %C3%A9",
		"“Quoted” — text…",
		"日本語のテキスト",
		"Tom &amp; Jerry &nbsp; friends",
		strings.Repeat("Ünïcödé ", 30),
		"-._-_.-",
		strings.Repeat("a", 250) + "\xff",
		strings.Repeat("b-", 150) + "\xfe",
		"%c2%c2%a9%a9",
		"%c2%c2%a0%a0",
		"%c3%c2%a9%97",
		"%c2!%a9 and %c2?%a0",
		"caf&eacute; &ndash; cr&egrave;me",
		"<script>x</script>&mdash;y",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			once := slug.Normalize(in, slug.ModeSave)
			assert.Equal(t, once, slug.Normalize(once, slug.ModeSave))
		})
	}
}

func TestNormalizeOutputAlphabet(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World!",
		"!@#$%^&*()_+{}|:\"<>?[]\\;',./",
		"Ünïcödé — “test” © 2024",
		"\xff\xfe broken \x80 bytes",
	}

	for _, in := range inputs {
		got := slug.Normalize(in, slug.ModeSave)
		assert.NotContains(t, got, "--", "input %q", in)
		assert.False(t, strings.HasPrefix(got, "-"), "input %q", in)
		assert.False(t, strings.HasSuffix(got, "-"), "input %q", in)
		for _, r := range got {
			assert.True(t,
				r == '%' || r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'),
				"unexpected %q in %q", r, got)
		}
	}
}
