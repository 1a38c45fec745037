package clikit

import (
	"context"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Scrollbar glyphs.
const (
	scrollThumb = '█'
	scrollTrack = '░'
)

// Viewport is a fixed-size window scrolled over larger content. All
// scroll mutations funnel through one clamp, so scroll positions are
// always within [0, content − viewport] on both axes.
type Viewport struct {
	width  int
	height int

	scrollX int
	scrollY int

	content       []string
	contentWidth  int
	contentHeight int

	// ShowScrollbars renders a vertical and/or horizontal scrollbar
	// inside the viewport when the content overflows that axis.
	ShowScrollbars bool
}

// NewViewport creates a viewport of the given size with no content.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: max(0, width), height: max(0, height)}
}

// SetSize resizes the viewport and re-clamps the scroll position.
func (v *Viewport) SetSize(width, height int) {
	v.width = max(0, width)
	v.height = max(0, height)
	v.clampScroll()
}

// SetContent replaces the content lines, recomputes the content
// dimensions and re-clamps the scroll position.
func (v *Viewport) SetContent(lines []string) {
	v.content = lines
	v.contentWidth = 0
	for _, line := range lines {
		if w := Width(line); w > v.contentWidth {
			v.contentWidth = w
		}
	}
	v.contentHeight = len(lines)
	v.clampScroll()
}

// Width implements View.
func (v *Viewport) Width() int { return v.width }

// Height implements View.
func (v *Viewport) Height() int { return v.height }

// ScrollX returns the horizontal scroll offset.
func (v *Viewport) ScrollX() int { return v.scrollX }

// ScrollY returns the vertical scroll offset.
func (v *Viewport) ScrollY() int { return v.scrollY }

// ContentWidth returns the widest content line in columns.
func (v *Viewport) ContentWidth() int { return v.contentWidth }

// ContentHeight returns the content line count.
func (v *Viewport) ContentHeight() int { return v.contentHeight }

// AtTop reports whether the viewport shows the first content line.
func (v *Viewport) AtTop() bool { return v.scrollY == 0 }

// AtBottom reports whether the viewport shows the last content line.
func (v *Viewport) AtBottom() bool {
	_, h := v.contentArea()
	return v.scrollY >= max(0, v.contentHeight-h)
}

// ScrollBy scrolls by a relative delta on both axes.
func (v *Viewport) ScrollBy(dx, dy int) {
	v.scrollX += dx
	v.scrollY += dy
	v.clampScroll()
}

// ScrollToPosition scrolls to an absolute position on both axes.
func (v *Viewport) ScrollToPosition(x, y int) {
	v.scrollX = x
	v.scrollY = y
	v.clampScroll()
}

// ScrollToTop scrolls to the first content line.
func (v *Viewport) ScrollToTop() {
	v.scrollY = 0
	v.clampScroll()
}

// ScrollToBottom scrolls so the last content line is visible.
func (v *Viewport) ScrollToBottom() {
	v.scrollY = v.contentHeight
	v.clampScroll()
}

// PageUp scrolls up by one page (80% of the visible height, at least 1).
func (v *Viewport) PageUp() {
	v.ScrollBy(0, -v.pageSize())
}

// PageDown scrolls down by one page.
func (v *Viewport) PageDown() {
	v.ScrollBy(0, v.pageSize())
}

// pageSize is 80% of the visible content height, never less than one row.
func (v *Viewport) pageSize() int {
	_, h := v.contentArea()
	return max(1, h*8/10)
}

// contentArea returns the visible content size after scrollbars reserve
// their column and row. Each bar appears only when its axis overflows;
// one bar appearing can shrink the area enough to need the other, so the
// check runs twice.
func (v *Viewport) contentArea() (w, h int) {
	w, h = v.width, v.height
	if !v.ShowScrollbars || w == 0 || h == 0 {
		return w, h
	}
	vbar := v.contentHeight > h
	hbar := v.contentWidth > w
	if vbar {
		w--
	}
	if hbar {
		h--
	}
	if !vbar && v.contentHeight > h {
		w--
	}
	if !hbar && v.contentWidth > w {
		h--
	}
	return max(0, w), max(0, h)
}

// clampScroll enforces 0 <= scroll <= max(0, content − viewport) on both
// axes. Every mutation funnels through here.
func (v *Viewport) clampScroll() {
	w, h := v.contentArea()
	v.scrollX = min(max(0, v.scrollX), max(0, v.contentWidth-w))
	v.scrollY = min(max(0, v.scrollY), max(0, v.contentHeight-h))
}

// Render implements View. Visible rows are sliced to the visible columns
// grapheme-awarely (a wide glyph straddling the edge becomes a space) and
// right-padded so the block is exactly width×height.
func (v *Viewport) Render(ctx context.Context) string {
	if v.width == 0 || v.height == 0 {
		return blankBlock(v.width, v.height)
	}
	w, h := v.contentArea()
	vbar := w < v.width
	hbar := h < v.height

	lines := make([]string, 0, v.height)
	for row := 0; row < h; row++ {
		line := ""
		if i := v.scrollY + row; i < len(v.content) {
			line = v.content[i]
		}
		if v.scrollX > 0 || Width(line) > w {
			line = ansi.Cut(line, v.scrollX, v.scrollX+w)
		}
		line = Pad(line, w, AlignStart)
		if vbar {
			line += string(v.vbarRune(row, h))
		}
		lines = append(lines, line)
	}
	if hbar {
		bottom := v.hbarLine(w)
		if vbar {
			bottom += " "
		}
		lines = append(lines, bottom)
	}
	return strings.Join(lines, "\n")
}

// vbarRune picks the thumb or track glyph for one scrollbar row.
func (v *Viewport) vbarRune(row, h int) rune {
	thumb := max(1, h*h/max(1, v.contentHeight))
	maxScroll := max(1, v.contentHeight-h)
	pos := v.scrollY * (h - thumb) / maxScroll
	if row >= pos && row < pos+thumb {
		return scrollThumb
	}
	return scrollTrack
}

// hbarLine builds the horizontal scrollbar row.
func (v *Viewport) hbarLine(w int) string {
	thumb := max(1, w*w/max(1, v.contentWidth))
	maxScroll := max(1, v.contentWidth-w)
	pos := v.scrollX * (w - thumb) / maxScroll
	var sb strings.Builder
	for col := 0; col < w; col++ {
		if col >= pos && col < pos+thumb {
			sb.WriteRune(scrollThumb)
		} else {
			sb.WriteRune(scrollTrack)
		}
	}
	return sb.String()
}
