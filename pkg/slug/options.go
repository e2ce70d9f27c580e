package slug

// Option configures Make and MakeFilename.
type Option func(*options)

type options struct {
	fallback string
	mode     Mode
	locale   Locale
}

func defaultOptions() *options {
	return &options{
		mode: ModeSave,
	}
}

// WithMode selects save (default) or display processing.
func WithMode(m Mode) Option {
	return func(o *options) {
		if m == ModeSave || m == ModeDisplay {
			o.mode = m
		}
	}
}

// WithLocale applies the transliteration rules of a locale.
// Unknown locales fall back to the base table.
func WithLocale(l Locale) Option {
	return func(o *options) {
		o.locale = l
	}
}

// WithFallback sets the value returned when the input produces an empty slug.
// Default: "" (empty).
func WithFallback(s string) Option {
	return func(o *options) {
		o.fallback = s
	}
}
