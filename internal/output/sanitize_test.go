package output

import (
	"fmt"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in       string
		terminal string
		name     string
	}{
		{"bash", "bash", "bash"},
		{"kworker/0:1", "kworker/0:1", "kworker/0:1"},
		{"日本語", "日本語", "日本語"},
		{"hi\x1b[31mred", `hi\x1b[31mred`, `hi\x1b[31mred`},
		{"nul:\x00", `nul:\x00`, `nul:\x00`},
		{"bad:\xff", `bad:\xff`, `bad:\xff`},
		{"a\tb\nc", "a\tb\nc", `a\x09b\x0ac`},
		{"sep\u2028x", `sep\u2028x`, `sep\u2028x`},
		{"del\x7f", `del\x7f`, `del\x7f`},
	}

	for _, tt := range tests {
		if got := SanitizeTerminal(tt.in); got != tt.terminal {
			t.Errorf("SanitizeTerminal(%q) = %q, want %q", tt.in, got, tt.terminal)
		}
		if got := SanitizeName(tt.in); got != tt.name {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.name)
		}
	}
}

func FuzzWriteEscape(f *testing.F) {
	f.Add(uint32(0x00))
	f.Add(uint32(0x1b))
	f.Add(uint32(0xff))
	f.Add(uint32(0x2028))
	f.Add(uint32(0xffff))
	f.Add(uint32(0x10ffff))

	f.Fuzz(func(t *testing.T, raw uint32) {
		r := rune(raw % (unicode.MaxRune + 1))

		var b strings.Builder
		var want string
		switch {
		case r <= 0xff:
			writeEscape(&b, 'x', uint32(r), 2)
			want = fmt.Sprintf(`\x%02x`, r)
		case r <= 0xffff:
			writeEscape(&b, 'u', uint32(r), 4)
			want = fmt.Sprintf(`\u%04x`, r)
		default:
			writeEscape(&b, 'U', uint32(r), 8)
			want = fmt.Sprintf(`\U%08x`, r)
		}
		if got := b.String(); got != want {
			t.Fatalf("writeEscape(%#x) = %q, want %q", r, got, want)
		}
	})
}

func FuzzSanitizeName(f *testing.F) {
	f.Add("systemd")
	f.Add("evil\x1b]0;title\x07")
	f.Add("multi\nline")

	f.Fuzz(func(t *testing.T, in string) {
		got := SanitizeName(in)
		if !utf8.ValidString(got) {
			t.Fatalf("SanitizeName(%q) = %q is not valid UTF-8", in, got)
		}
		for _, r := range got {
			if unicode.IsControl(r) {
				t.Fatalf("SanitizeName(%q) = %q still contains %U", in, got, r)
			}
		}
	})
}
