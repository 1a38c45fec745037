package clikit

import (
	"context"
	"strings"
)

// Padding is per-side spacing in cells. Negative values are clamped to
// zero when applied.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// PadAll creates equal padding on all four sides.
func PadAll(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PadHV creates padding with separate horizontal and vertical values.
func PadHV(horizontal, vertical int) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// clamp replaces negative sides with zero.
func (p Padding) clamp() Padding {
	return Padding{
		Top:    max(0, p.Top),
		Right:  max(0, p.Right),
		Bottom: max(0, p.Bottom),
		Left:   max(0, p.Left),
	}
}

// Horizontal returns left + right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns top + bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// BoxProps configures a Box. The zero value is a bare pass-through:
// no border, no padding, no minimum size.
type BoxProps struct {
	Border    Border
	Sides     BorderSides // zero value draws all sides when Border is set
	Padding   Padding
	MinWidth  int
	MinHeight int
}

// BoxView wraps one or more child views with padding, an optional border
// and a minimum size. Multiple children are stacked vertically,
// center-aligned, before the box decoration is applied.
type BoxView struct {
	props    BoxProps
	children []View
}

// Box creates a box around the given children.
func Box(props BoxProps, children ...View) *BoxView {
	props.Padding = props.Padding.clamp()
	props.MinWidth = max(0, props.MinWidth)
	props.MinHeight = max(0, props.MinHeight)
	return &BoxView{props: props, children: children}
}

// borderAllowance returns the extra columns and rows the border adds.
func (b *BoxView) borderAllowance() (w, h int) {
	if b.props.Border == BorderNone {
		return 0, 0
	}
	sides := b.props.Sides.resolve()
	if sides.Left {
		w++
	}
	if sides.Right {
		w++
	}
	if sides.Top {
		h++
	}
	if sides.Bottom {
		h++
	}
	return w, h
}

// Width implements View. The declared size is advisory; a box with
// dynamic children reports only its own chrome plus minimums.
func (b *BoxView) Width() int {
	inner := 0
	for _, c := range b.children {
		if w := c.Width(); w > inner {
			inner = w
		}
	}
	bw, _ := b.borderAllowance()
	return max(inner+b.props.Padding.Horizontal(), b.props.MinWidth) + bw
}

// Height implements View.
func (b *BoxView) Height() int {
	inner := 0
	for _, c := range b.children {
		inner += c.Height()
	}
	_, bh := b.borderAllowance()
	return max(inner+b.props.Padding.Vertical(), b.props.MinHeight) + bh
}

// Render implements View.
func (b *BoxView) Render(ctx context.Context) string {
	// Stack multiple children vertically, centered on the widest.
	var content string
	switch len(b.children) {
	case 0:
		content = ""
	case 1:
		content = b.children[0].Render(ctx)
	default:
		blocks := make([]string, len(b.children))
		for i, c := range b.children {
			blocks[i] = c.Render(ctx)
		}
		content = joinBlocksVertical(Center, 0, blocks)
	}

	lines := splitLines(content)
	innerWidth := 0
	for _, line := range lines {
		if w := Width(line); w > innerWidth {
			innerWidth = w
		}
	}

	p := b.props.Padding
	_, bh := b.borderAllowance()

	// Minimum size applies to the padded content area, before the border.
	paddedWidth := max(innerWidth+p.Horizontal(), b.props.MinWidth)
	innerWidth = paddedWidth - p.Horizontal()

	out := make([]string, 0, len(lines)+p.Vertical()+bh)
	blank := strings.Repeat(" ", paddedWidth)
	left := strings.Repeat(" ", p.Left)
	right := strings.Repeat(" ", p.Right)

	for i := 0; i < p.Top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, left+Pad(line, innerWidth, AlignStart)+right)
	}
	for i := 0; i < p.Bottom; i++ {
		out = append(out, blank)
	}
	for len(out) < b.props.MinHeight {
		out = append(out, blank)
	}

	if b.props.Border != BorderNone {
		out = applyBorder(out, paddedWidth, b.props.Border, b.props.Sides.resolve())
	}
	return strings.Join(out, "\n")
}

// applyBorder wraps padded content lines with the requested border sides.
func applyBorder(lines []string, width int, border Border, sides BorderSides) []string {
	chars := border.Chars()
	out := make([]string, 0, len(lines)+2)

	if sides.Top {
		top := strings.Repeat(string(chars.Horizontal), width)
		l, r := "", ""
		if sides.Left {
			l = string(chars.TopLeft)
		}
		if sides.Right {
			r = string(chars.TopRight)
		}
		out = append(out, l+top+r)
	}
	for _, line := range lines {
		l, r := "", ""
		if sides.Left {
			l = string(chars.Vertical)
		}
		if sides.Right {
			r = string(chars.Vertical)
		}
		out = append(out, l+line+r)
	}
	if sides.Bottom {
		bottom := strings.Repeat(string(chars.Horizontal), width)
		l, r := "", ""
		if sides.Left {
			l = string(chars.BottomLeft)
		}
		if sides.Right {
			r = string(chars.BottomRight)
		}
		out = append(out, l+bottom+r)
	}
	return out
}
