package clikit

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cell is a single terminal cell: one grapheme cluster plus whatever SGR
// sequence was active when it was written. The style travels with the
// cell so compositing can interleave content from different layers
// without understanding color semantics.
//
// A wide grapheme occupies its primary cell plus a continuation cell with
// empty content to its right.
type Cell struct {
	Content string // grapheme cluster; "" marks a wide-glyph continuation
	Style   string // raw SGR escape sequence(s), "" for unstyled
	width   int
}

// EmptyCell returns an unstyled space.
func EmptyCell() Cell {
	return Cell{Content: " ", width: 1}
}

// Buffer is a 2D grid of cells, the substrate for compositing. Rows are
// stored flat, row-major, like the screen itself.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with blank cells.
// Non-positive dimensions are clamped to zero.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether the coordinates fall inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts coordinates to a slice offset.
func (b *Buffer) index(x, y int) int { return y*b.width + x }

// Get returns the cell at the coordinates, or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// setCell writes one cell, maintaining the wide-glyph invariant: writing
// over either half of a wide glyph blanks the other half, and a wide
// glyph that would hang past the right edge degrades to a space.
func (b *Buffer) setCell(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)

	old := b.cells[idx]
	if old.Content == "" && x > 0 {
		b.cells[idx-1] = EmptyCell()
	} else if old.width > 1 && x+1 < b.width {
		b.cells[idx+1] = EmptyCell()
	}

	if c.width > 1 {
		if x+1 >= b.width {
			b.cells[idx] = Cell{Content: " ", Style: c.Style, width: 1}
			return
		}
		next := b.cells[idx+1]
		if next.width > 1 && x+2 < b.width {
			b.cells[idx+2] = EmptyCell()
		}
		b.cells[idx+1] = Cell{}
	}
	b.cells[idx] = c
}

// DrawOptions controls how a block is painted into a buffer.
type DrawOptions struct {
	// ClipWidth and ClipHeight bound the painted area in cells.
	// Zero means "the block's natural size".
	ClipWidth  int
	ClipHeight int
	// Transparent makes space characters leave the existing cell
	// untouched instead of overwriting it.
	Transparent bool
}

// DrawBlock paints a rendered text block with its top-left corner at
// (x, y). ANSI SGR sequences in the block are captured into the cells
// they style; other escape sequences are dropped. Content outside the
// buffer or the clip area is discarded.
func (b *Buffer) DrawBlock(x, y int, block string, opts DrawOptions) {
	lines := splitLines(block)
	rows := len(lines)
	if opts.ClipHeight > 0 && opts.ClipHeight < rows {
		rows = opts.ClipHeight
	}
	for row := 0; row < rows; row++ {
		b.drawLine(x, y+row, lines[row], opts)
	}
}

// drawLine paints a single line starting at (x, y).
func (b *Buffer) drawLine(x, y int, line string, opts DrawOptions) {
	col := 0
	style := ""
	s := line
	for len(s) > 0 {
		if s[0] == 0x1b {
			seq, rest, isSGR := consumeEscape(s)
			if isSGR {
				style = applySGR(style, seq)
			}
			s = rest
			continue
		}
		g, rest, _, _ := uniseg.StepString(s, -1)
		s = rest
		w := graphemeWidth(g)
		if w == 0 {
			continue
		}
		if opts.ClipWidth > 0 && col+w > opts.ClipWidth {
			break
		}
		if !(opts.Transparent && g == " ") {
			b.setCell(x+col, y, Cell{Content: g, Style: style, width: w})
		}
		col += w
	}
}

// consumeEscape splits a leading ANSI escape sequence off s. It reports
// whether the sequence was an SGR (style) sequence.
func consumeEscape(s string) (seq, rest string, isSGR bool) {
	if len(s) < 2 {
		return s, "", false
	}
	switch s[1] {
	case '[': // CSI
		i := 2
		for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
			i++
		}
		for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
			i++
		}
		if i < len(s) {
			final := s[i]
			i++
			return s[:i], s[i:], final == 'm'
		}
		return s, "", false
	case ']': // OSC, terminated by BEL or ST
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return s[:i+1], s[i+1:], false
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return s[:i+2], s[i+2:], false
			}
		}
		return s, "", false
	default:
		return s[:2], s[2:], false
	}
}

// applySGR folds an SGR sequence into the running style. A reset clears
// it; a sequence beginning with a reset replaces it; anything else stacks.
func applySGR(style, seq string) string {
	params := seq[2 : len(seq)-1]
	switch {
	case params == "" || params == "0":
		return ""
	case strings.HasPrefix(params, "0;"):
		return seq
	default:
		return style + seq
	}
}

// String flattens the buffer to terminal-ready lines. Styles are emitted
// on change and reset at each boundary, so every line is a self-contained
// rectangle of exactly Width columns.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) * 2)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := ""
		for x := 0; x < b.width; x++ {
			c := b.cells[b.index(x, y)]
			if c.Content == "" {
				continue // continuation of a wide glyph
			}
			if c.Style != current {
				if current != "" {
					sb.WriteString("\x1b[0m")
				}
				sb.WriteString(c.Style)
				current = c.Style
			}
			sb.WriteString(c.Content)
		}
		if current != "" {
			sb.WriteString("\x1b[0m")
		}
	}
	return sb.String()
}
