package clikit

import (
	"context"
	"strings"
)

// Direction is the flexbox main axis.
type Direction int

const (
	// Row lays children out left to right.
	Row Direction = iota
	// RowReverse lays children out right to left.
	RowReverse
	// Column lays children out top to bottom.
	Column
	// ColumnReverse lays children out bottom to top.
	ColumnReverse
)

// isRow reports whether the main axis is horizontal.
func (d Direction) isRow() bool { return d == Row || d == RowReverse }

// isReverse reports whether children run against the axis direction.
func (d Direction) isReverse() bool { return d == RowReverse || d == ColumnReverse }

// Justify distributes children along the main axis.
type Justify int

const (
	// JustifyStart packs children at the main-axis start.
	JustifyStart Justify = iota
	// JustifyCenter centers the packed children.
	JustifyCenter
	// JustifyEnd packs children at the main-axis end.
	JustifyEnd
	// JustifySpaceBetween puts equal gaps between children, none outside.
	JustifySpaceBetween
	// JustifySpaceAround puts half-gaps outside, full gaps between.
	JustifySpaceAround
	// JustifySpaceEvenly puts equal gaps between and outside children.
	JustifySpaceEvenly
)

// Basis is a flex item's initial main-axis size. The zero value is
// BasisAuto: measure the item's own output.
type Basis struct {
	fixed int
	set   bool
}

// BasisAuto measures the item to determine its starting size.
var BasisAuto = Basis{}

// BasisFixed starts the item at exactly n cells before grow/shrink.
func BasisFixed(n int) Basis {
	return Basis{fixed: max(0, n), set: true}
}

// FlexItem annotates a View for the flexbox solver. Build with Item so
// Shrink defaults to 1, matching CSS flexbox.
type FlexItem struct {
	View      View
	Grow      float64
	Shrink    float64
	Basis     Basis
	AlignSelf *Align // overrides the container's AlignItems
}

// Item wraps a view as a flex item with Grow 0 and Shrink 1.
func Item(v View) FlexItem {
	return FlexItem{View: v, Shrink: 1}
}

// WithGrow returns a copy with the grow weight set.
func (f FlexItem) WithGrow(grow float64) FlexItem {
	f.Grow = max(0, grow)
	return f
}

// WithShrink returns a copy with the shrink weight set.
func (f FlexItem) WithShrink(shrink float64) FlexItem {
	f.Shrink = max(0, shrink)
	return f
}

// WithBasis returns a copy with a fixed basis.
func (f FlexItem) WithBasis(n int) FlexItem {
	f.Basis = BasisFixed(n)
	return f
}

// WithAlignSelf returns a copy overriding the container alignment.
func (f FlexItem) WithAlignSelf(a Align) FlexItem {
	f.AlignSelf = &a
	return f
}

// FlexboxProps configures a flex container. Zero value: row direction,
// start-justified, start-aligned, no wrap, no gaps.
type FlexboxProps struct {
	Direction  Direction
	Justify    Justify
	AlignItems Align
	Wrap       bool
	Gap        int // both axes unless overridden below
	RowGap     int // vertical gap (between rows)
	ColumnGap  int // horizontal gap (between columns)
	Padding    Padding
	Width      int // container width; 0 = size to content
	Height     int // container height; 0 = size to content
}

// mainGap returns the effective gap along the main axis.
func (p FlexboxProps) mainGap() int {
	if p.Direction.isRow() {
		if p.ColumnGap > 0 {
			return p.ColumnGap
		}
	} else if p.RowGap > 0 {
		return p.RowGap
	}
	return max(0, p.Gap)
}

// crossGap returns the effective gap between wrapped lines.
func (p FlexboxProps) crossGap() int {
	if p.Direction.isRow() {
		if p.RowGap > 0 {
			return p.RowGap
		}
	} else if p.ColumnGap > 0 {
		return p.ColumnGap
	}
	return max(0, p.Gap)
}

// LayoutRect is a rectangle in container-local coordinates.
type LayoutRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r LayoutRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// LayoutItem pairs a child view with its solved rectangle.
type LayoutItem struct {
	View View
	Rect LayoutRect
}

// LayoutResult is the solver output: one rectangle per child, in declared
// child order, plus the container size actually used.
type LayoutResult struct {
	Items  []LayoutItem
	Width  int
	Height int

	// blocks holds each child's rendered output from the measuring pass,
	// index-aligned with Items, so painting does not render twice.
	blocks []string
}

// flexChild is per-item solver state, stack-local to one Layout call.
type flexChild struct {
	item      FlexItem
	block     string // rendered output, reused by the painter
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// Layout solves a flex container: it measures each item's basis, grows or
// shrinks along the main axis, wraps when requested, and positions every
// child. All arithmetic is in whole cells. The returned rectangles are in
// container-local coordinates including the container padding.
func Layout(ctx context.Context, props FlexboxProps, items ...FlexItem) LayoutResult {
	props.Padding = props.Padding.clamp()
	isRow := props.Direction.isRow()

	children := make([]flexChild, len(items))
	for i, it := range items {
		children[i].item = it
		children[i].block = it.View.Render(ctx)
		w, h := measureBlock(children[i].block)
		if isRow {
			children[i].baseSize, children[i].crossSize = w, h
		} else {
			children[i].baseSize, children[i].crossSize = h, w
		}
		if it.Basis.set {
			children[i].baseSize = it.Basis.fixed
		}
	}

	// Resolve the container content box. A declared size smaller than the
	// padding clamps the content box to zero; the container never grows
	// past what was asked for.
	mainDeclared, crossDeclared := props.Width > 0, props.Height > 0
	contentW := max(0, props.Width-props.Padding.Horizontal())
	contentH := max(0, props.Height-props.Padding.Vertical())
	mainSize := contentW
	crossSize := contentH
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
		mainDeclared, crossDeclared = crossDeclared, mainDeclared
	}
	gap := props.mainGap()
	if !mainDeclared {
		// Size to content: sum of bases plus gaps.
		mainSize = 0
		for i := range children {
			mainSize += children[i].baseSize
		}
		mainSize += gap * max(0, len(children)-1)
	}

	lines := breakLines(children, mainSize, gap, props.Wrap)

	crossGap := props.crossGap()
	if !crossDeclared {
		crossSize = 0
		for i, line := range lines {
			crossSize += lineCross(line)
			if i > 0 {
				crossSize += crossGap
			}
		}
	}

	// Solve each line independently, stacking lines on the cross axis.
	crossOffset := 0
	for li, line := range lines {
		lineCrossSize := lineCross(line)
		if len(lines) == 1 {
			// A single line owns the whole cross axis so stretch and
			// end/center alignment have room to work with.
			lineCrossSize = crossSize
		}
		solveLine(line, props, mainSize, lineCrossSize, gap)
		for i := range line {
			line[i].crossPos += crossOffset
		}
		crossOffset += lineCrossSize
		if li < len(lines)-1 {
			crossOffset += crossGap
		}
	}

	// Emit rects, mapping main/cross back to x/y.
	result := LayoutResult{
		Items:  make([]LayoutItem, 0, len(children)),
		Width:  mainSize + props.Padding.Horizontal(),
		Height: crossSize + props.Padding.Vertical(),
	}
	if !isRow {
		result.Width = crossSize + props.Padding.Horizontal()
		result.Height = mainSize + props.Padding.Vertical()
	}
	for _, line := range lines {
		for i := range line {
			c := &line[i]
			mainPos := c.mainPos
			if props.Direction.isReverse() {
				mainPos = mainSize - c.mainPos - c.mainSize
			}
			var rect LayoutRect
			if isRow {
				rect = LayoutRect{
					X:      props.Padding.Left + mainPos,
					Y:      props.Padding.Top + c.crossPos,
					Width:  c.mainSize,
					Height: c.crossSize,
				}
			} else {
				rect = LayoutRect{
					X:      props.Padding.Left + c.crossPos,
					Y:      props.Padding.Top + mainPos,
					Width:  c.crossSize,
					Height: c.mainSize,
				}
			}
			result.Items = append(result.Items, LayoutItem{View: c.item.View, Rect: rect})
			result.blocks = append(result.blocks, c.block)
		}
	}
	return result
}

// breakLines splits children into flex lines. Without wrap there is one
// line. With wrap, a child that would overflow the main axis starts a new
// line; a child wider than the axis gets a line of its own.
func breakLines(children []flexChild, mainSize, gap int, wrap bool) [][]flexChild {
	if !wrap || len(children) == 0 {
		if len(children) == 0 {
			return nil
		}
		return [][]flexChild{children}
	}
	var lines [][]flexChild
	start, used := 0, 0
	for i := range children {
		need := children[i].baseSize
		if i > start {
			need += gap
		}
		if i > start && used+need > mainSize {
			lines = append(lines, children[start:i])
			start = i
			used = children[i].baseSize
			continue
		}
		used += need
	}
	lines = append(lines, children[start:])
	return lines
}

// lineCross returns the largest cross size in a line.
func lineCross(line []flexChild) int {
	cross := 0
	for i := range line {
		if line[i].crossSize > cross {
			cross = line[i].crossSize
		}
	}
	return cross
}

// solveLine distributes main-axis space and aligns the cross axis for one
// flex line.
func solveLine(line []flexChild, props FlexboxProps, mainSize, crossSize, gap int) {
	totalGap := gap * max(0, len(line)-1)
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0
	for i := range line {
		totalBase += line[i].baseSize
		totalGrow += line[i].item.Grow
		totalShrink += line[i].item.Shrink
	}
	remaining := mainSize - totalBase - totalGap

	switch {
	case remaining > 0 && totalGrow > 0:
		for i := range line {
			extra := int(float64(remaining) * line[i].item.Grow / totalGrow)
			line[i].mainSize = line[i].baseSize + extra
		}
	case remaining < 0 && totalShrink > 0:
		deficit := -remaining
		for i := range line {
			cut := int(float64(deficit) * line[i].item.Shrink / totalShrink)
			line[i].mainSize = max(0, line[i].baseSize-cut)
		}
	default:
		for i := range line {
			line[i].mainSize = line[i].baseSize
		}
	}

	// Free space left after distribution feeds justification.
	used := totalGap
	for i := range line {
		used += line[i].mainSize
	}
	free := max(0, mainSize-used)

	offset, spacing := justify(props.Justify, free, len(line))
	for i := range line {
		line[i].mainPos = offset
		offset += line[i].mainSize + gap + spacing
	}

	for i := range line {
		align := props.AlignItems
		if line[i].item.AlignSelf != nil {
			align = *line[i].item.AlignSelf
		}
		switch align {
		case AlignStretch:
			line[i].crossSize = crossSize
			line[i].crossPos = 0
		case AlignCenter:
			line[i].crossPos = (crossSize - line[i].crossSize) / 2
		case AlignEnd:
			line[i].crossPos = crossSize - line[i].crossSize
		default:
			line[i].crossPos = 0
		}
	}
}

// justify converts a Justify mode into an initial offset plus extra
// spacing inserted after each child.
func justify(mode Justify, free, n int) (offset, spacing int) {
	if n == 0 {
		return 0, 0
	}
	switch mode {
	case JustifyCenter:
		return free / 2, 0
	case JustifyEnd:
		return free, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / (n - 1)
		}
		return 0, 0
	case JustifySpaceAround:
		spacing = free / n
		return spacing / 2, spacing
	case JustifySpaceEvenly:
		spacing = free / (n + 1)
		return spacing, spacing
	default:
		return 0, 0
	}
}

// FlexboxView renders a flex container to a character block.
type FlexboxView struct {
	props FlexboxProps
	items []FlexItem
}

// Flexbox creates a flex container view over the given items.
func Flexbox(props FlexboxProps, items ...FlexItem) *FlexboxView {
	return &FlexboxView{props: props, items: items}
}

// Width implements View.
func (f *FlexboxView) Width() int { return f.props.Width }

// Height implements View.
func (f *FlexboxView) Height() int { return f.props.Height }

// Render implements View. It solves the layout, then paints every child
// into its rectangle. Child output is clipped to its rect and padded to
// fill it, so the result is always a true rectangle.
func (f *FlexboxView) Render(ctx context.Context) string {
	result := Layout(ctx, f.props, f.items...)
	buf := NewBuffer(result.Width, result.Height)
	for i, item := range result.Items {
		buf.DrawBlock(item.Rect.X, item.Rect.Y, result.blocks[i], DrawOptions{
			ClipWidth:  item.Rect.Width,
			ClipHeight: item.Rect.Height,
		})
	}
	return buf.String()
}

// blankBlock builds a rectangle of spaces.
func blankBlock(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
