package slug

import "strings"

// maxEncodedLength is the encoding budget used by Normalize for UTF-8 input.
const maxEncodedLength = 200

const hexDigits = "0123456789abcdef"

// URIEncode percent-encodes every non-ASCII byte of s as %xx (lowercase hex)
// and copies ASCII bytes through unchanged.
//
// maxUnits bounds the output length; zero means unbounded. An ASCII byte
// costs one unit and an encoded octet costs three. Multi-byte sequences are
// emitted whole or not at all: when the next complete sequence would not fit,
// encoding stops and the output accumulated so far is returned. An incomplete
// sequence at the end of the input is dropped.
func URIEncode(s string, maxUnits int) string {
	var (
		b       strings.Builder
		pending []byte
		octets  = 1
		used    int
	)
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c < 0x80 {
			if maxUnits > 0 && used >= maxUnits {
				break
			}
			b.WriteByte(c)
			used++
			continue
		}

		if len(pending) == 0 {
			octets = sequenceLength(c)
		}
		pending = append(pending, c)

		if maxUnits > 0 && used+octets*3 > maxUnits {
			break
		}

		if len(pending) == octets {
			for _, o := range pending {
				b.WriteByte('%')
				b.WriteByte(hexDigits[o>>4])
				b.WriteByte(hexDigits[o&0x0F])
			}
			used += octets * 3
			pending = pending[:0]
			octets = 1
		}
	}

	return b.String()
}

// sequenceLength guesses the byte length of a multi-byte sequence from its
// first byte.
func sequenceLength(lead byte) int {
	switch {
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	default:
		return 4
	}
}
