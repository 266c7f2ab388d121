package panel

import "unicode/utf8"

// Sanitize returns a copy of s that is safe to draw: control characters,
// C1 controls, DEL and invalid UTF-8 are dropped and tabs become a single
// space. An empty result is replaced by a single space so the line keeps its
// slot.
func Sanitize(s string) string {
	out := clean(s)
	if out == "" {
		return " "
	}
	return out
}

func clean(s string) string {
	if isClean(s) {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '\t':
			buf = append(buf, ' ')
		case r == utf8.RuneError && size <= 1:
		case !drawable(r):
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(buf)
}

func isClean(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '\t' || (r == utf8.RuneError && size <= 1) || !drawable(r) {
			return false
		}
		i += size
	}
	return true
}

func drawable(r rune) bool {
	if r < 0x20 || r == 0x7f {
		return false
	}
	if r >= 0x80 && r < 0xa0 {
		return false
	}
	return r < 0x10ffff
}
