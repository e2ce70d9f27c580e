package slug

// IsUTF8 reports whether s looks like UTF-8 encoded text.
//
// The check is structural only: a lead byte announces how many continuation
// bytes (10xxxxxx) follow and each of them must be present. Historical 5- and
// 6-byte lead patterns are accepted, so this is more permissive than
// utf8.ValidString. Overlong forms and surrogates are not rejected either.
func IsUTF8(s string) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		var follow int
		switch c := s[i]; {
		case c < 0x80:
			continue
		case c&0xE0 == 0xC0:
			follow = 1
		case c&0xF0 == 0xE0:
			follow = 2
		case c&0xF8 == 0xF0:
			follow = 3
		case c&0xFC == 0xF8:
			follow = 4
		case c&0xFE == 0xFC:
			follow = 5
		default:
			return false
		}

		for j := 0; j < follow; j++ {
			i++
			if i == n || s[i]&0xC0 != 0x80 {
				return false
			}
		}
	}
	return true
}

// hasHighBytes reports whether s contains any byte outside the ASCII range.
func hasHighBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}
