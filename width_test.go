package clikit

import (
	"strings"
	"testing"
)

func TestWidthASCII(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "hello world", "~!@#$%^&*()"} {
		if got := Width(s); got != len(s) {
			t.Errorf("Width(%q) = %d, want %d", s, got, len(s))
		}
	}
}

func TestWidthWide(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s := strings.Repeat("世", n)
		if got := Width(s); got != 2*n {
			t.Errorf("Width(%q) = %d, want %d", s, got, 2*n)
		}
	}
	if got := Width("안녕"); got != 4 {
		t.Errorf("Width(안녕) = %d, want 4", got)
	}
}

func TestWidthCombining(t *testing.T) {
	// e + combining acute is one column, same as the precomposed form.
	if got := Width("e\u0301"); got != 1 {
		t.Errorf("Width(e + U+0301) = %d, want 1", got)
	}
}

func TestWidthStripsANSI(t *testing.T) {
	styled := "\x1b[1m\x1b[31mhello\x1b[0m"
	if got := Width(styled); got != 5 {
		t.Errorf("Width(styled hello) = %d, want 5", got)
	}
}

func TestWidthEmojiPresentation(t *testing.T) {
	// A narrow base char forced wide by VS16.
	if got := Width("\u2764\ufe0f"); got != 2 {
		t.Errorf("Width(red heart + VS16) = %d, want 2", got)
	}
}

func TestTruncateBounded(t *testing.T) {
	inputs := []string{"", "a", "hello world", "世界世界", "h\u00e9llo", "\x1b[32mgreen text\x1b[0m"}
	for _, s := range inputs {
		for w := 0; w <= 12; w++ {
			got := Truncate(s, w, "…")
			if gw := Width(got); gw > w {
				t.Errorf("Width(Truncate(%q, %d)) = %d, exceeds limit", s, w, gw)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		w    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"世界世界", 5, "世界…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.w, "…"); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.w, got, tt.want)
		}
	}
}

func TestTruncateTailWiderThanLimit(t *testing.T) {
	got := Truncate("hello world", 2, "...")
	if Width(got) > 2 {
		t.Errorf("Truncate with oversized tail = %q, wider than 2", got)
	}
	if got != ".." {
		t.Errorf("Truncate with oversized tail = %q, want %q", got, "..")
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		s     string
		w     int
		align Align
		want  string
	}{
		{"ab", 5, AlignStart, "ab   "},
		{"ab", 5, AlignEnd, "   ab"},
		{"ab", 5, AlignCenter, " ab  "}, // larger half after content
		{"ab", 2, AlignCenter, "ab"},
		{"abc", 2, AlignStart, "abc"}, // never truncates
		{"世", 4, AlignCenter, " 世 "},
	}
	for _, tt := range tests {
		if got := Pad(tt.s, tt.w, tt.align); got != tt.want {
			t.Errorf("Pad(%q, %d, %v) = %q, want %q", tt.s, tt.w, tt.align, got, tt.want)
		}
	}
}

func TestPadExactWidth(t *testing.T) {
	for _, s := range []string{"", "a", "世", "abc"} {
		for w := 0; w <= 6; w++ {
			got := Pad(s, w, AlignCenter)
			want := max(w, Width(s))
			if Width(got) != want {
				t.Errorf("Width(Pad(%q, %d)) = %d, want %d", s, w, Width(got), want)
			}
		}
	}
}
