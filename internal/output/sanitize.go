package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// SanitizeTerminal replaces control characters and invalid UTF-8 bytes with
// visible escapes, so a process that renamed itself to "\x1b[2J" cannot clear
// the screen:
//   - "hi\x1b[31m" -> `hi\x1b[31m`
//   - "bad:\xff"   -> `bad:\xff`
//   - "a\tb\nc"    -> unchanged, tabs and newlines are kept
func SanitizeTerminal(s string) string {
	return sanitize(s, true)
}

// SanitizeName is SanitizeTerminal for single-line labels: newlines and tabs
// are escaped too, since a label must occupy exactly one row of the tree.
func SanitizeName(s string) string {
	return sanitize(s, false)
}

func sanitize(s string, keepLayout bool) string {
	clean := func(r rune, size int) bool {
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if keepLayout && (r == '\n' || r == '\t') {
			return true
		}
		return !unicode.IsControl(r) && r != '\u2028' && r != '\u2029'
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !clean(r, size) {
			break
		}
		i += size
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			writeEscape(&b, 'x', uint32(s[i]), 2)
		case clean(r, size):
			b.WriteString(s[i : i+size])
		case r <= 0xff:
			writeEscape(&b, 'x', uint32(r), 2)
		case r <= 0xffff:
			writeEscape(&b, 'u', uint32(r), 4)
		default:
			writeEscape(&b, 'U', uint32(r), 8)
		}
		i += size
	}
	return b.String()
}

// writeEscape appends `\` + kind + width lowercase hex digits of v
func writeEscape(b *strings.Builder, kind byte, v uint32, width int) {
	b.WriteByte('\\')
	b.WriteByte(kind)
	for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(v>>uint(shift))&0x0f])
	}
}
