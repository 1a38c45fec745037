package clikit

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Align positions content within a larger span. It is shared by Pad (the
// horizontal axis of a single line) and the flexbox cross axis.
type Align int

const (
	// AlignStart places content at the left (or top) edge.
	AlignStart Align = iota
	// AlignCenter centers content, with the larger half of any odd
	// remainder placed after the content.
	AlignCenter
	// AlignEnd places content at the right (or bottom) edge.
	AlignEnd
	// AlignStretch expands content to fill the cross axis. Only meaningful
	// to the flexbox solver; Pad treats it like AlignStart.
	AlignStretch
)

// vs16 is the emoji presentation selector. A grapheme carrying it renders
// wide even when its base codepoint is classified narrow, so the width
// tables are overridden for these sequences.
const vs16 = '\ufe0f'

// Width returns the number of terminal columns the string occupies.
// ANSI escape sequences are stripped before measuring. Wide codepoints
// (CJK, Hangul, most emoji) count as 2 columns, combining marks and
// control characters as 0, everything else as 1.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if strings.ContainsRune(s, '\x1b') {
		s = ansi.Strip(s)
	}
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += graphemeWidth(g.Str())
	}
	return w
}

// graphemeWidth measures a single grapheme cluster.
func graphemeWidth(g string) int {
	if strings.ContainsRune(g, vs16) {
		return 2
	}
	// The cluster renders as one glyph; its width is that of the widest
	// base rune, not the sum (skin tones, ZWJ sequences).
	w := 0
	for _, r := range g {
		if rw := runewidth.RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}

// Truncate shortens s to at most maxWidth columns, appending tail when
// anything was cut. Grapheme clusters are consumed whole so multi-unit
// glyphs are never split, and ANSI escapes pass through unmeasured.
// If tail alone exceeds maxWidth the result is a prefix of tail.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	tailWidth := Width(tail)
	if tailWidth > maxWidth {
		return ansi.Truncate(tail, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// Pad returns s padded with spaces to exactly width columns. Content wider
// than width is returned unchanged; callers wanting a hard bound should
// Truncate first. AlignCenter splits the padding, placing the larger half
// after the content.
func Pad(s string, width int, align Align) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignEnd:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		before := gap / 2
		return strings.Repeat(" ", before) + s + strings.Repeat(" ", gap-before)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
