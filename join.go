package clikit

import (
	"context"
	"strings"
)

// Position is a fractional placement along one axis: 0 is the start edge,
// 1 the end edge. Values outside [0, 1] are clamped.
type Position float64

// Named positions. Top/Bottom and Left/Right are the same fractions on
// different axes; use whichever reads better at the call site.
const (
	Top    Position = 0.0
	Left   Position = 0.0
	Middle Position = 0.5
	Center Position = 0.5
	Bottom Position = 1.0
	Right  Position = 1.0
)

// clampPosition bounds p to [0, 1].
func clampPosition(p Position) Position {
	return Position(min(1, max(0, float64(p))))
}

// split divides extra space by the fraction, start side first.
func (p Position) split(extra int) (before, after int) {
	p = clampPosition(p)
	before = int(float64(extra) * float64(p))
	return before, extra - before
}

// JoinOptions configures the 1-D join composers.
type JoinOptions struct {
	// Spacing is the number of blank cells between adjacent views.
	Spacing int
	// Align positions shorter views along the cross dimension.
	Align Position
}

// JoinHorizontal places views side by side. Each view keeps its measured
// width; shorter views are padded with blank rows to the tallest sibling,
// positioned by opts.Align (Top/Middle/Bottom).
func JoinHorizontal(ctx context.Context, opts JoinOptions, views ...View) string {
	blocks := make([]string, len(views))
	for i, v := range views {
		blocks[i] = v.Render(ctx)
	}
	return joinBlocksHorizontal(opts.Align, opts.Spacing, blocks)
}

// JoinVertical stacks views. Each view keeps its measured height;
// narrower views are padded with blank columns to the widest sibling,
// positioned by opts.Align (Left/Center/Right).
func JoinVertical(ctx context.Context, opts JoinOptions, views ...View) string {
	blocks := make([]string, len(views))
	for i, v := range views {
		blocks[i] = v.Render(ctx)
	}
	return joinBlocksVertical(opts.Align, opts.Spacing, blocks)
}

// JoinGrid composes a 2-D grid: JoinHorizontal per row, then JoinVertical
// across the resulting row blocks.
func JoinGrid(ctx context.Context, opts JoinOptions, rows ...[]View) string {
	rowBlocks := make([]string, len(rows))
	for i, row := range rows {
		rowBlocks[i] = JoinHorizontal(ctx, opts, row...)
	}
	return joinBlocksVertical(opts.Align, opts.Spacing, rowBlocks)
}

// Place embeds a view in an exact width×height canvas. Overflow is
// clipped, shortfall padded, and the content positioned by the
// horizontal and vertical fractions.
func Place(ctx context.Context, width, height int, hPos, vPos Position, v View) string {
	width, height = max(0, width), max(0, height)
	if width == 0 || height == 0 {
		return blankBlock(width, height)
	}
	block := v.Render(ctx)
	w, h := measureBlock(block)

	x, _ := hPos.split(width - min(w, width))
	y, _ := vPos.split(height - min(h, height))

	buf := NewBuffer(width, height)
	buf.DrawBlock(x, y, block, DrawOptions{ClipWidth: width - x, ClipHeight: height - y})
	return buf.String()
}

// joinBlocksHorizontal is the string-level horizontal join. Empty blocks
// are dropped before spacing is applied, so an empty sibling contributes
// no columns, matching the vertical join.
func joinBlocksHorizontal(align Position, spacing int, blocks []string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	blocks = kept
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) == 1 {
		return normalizeBlock(blocks[0])
	}
	spacing = max(0, spacing)

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	maxHeight := 0
	for i, b := range blocks {
		split[i] = splitLines(b)
		for _, line := range split[i] {
			if w := Width(line); w > widths[i] {
				widths[i] = w
			}
		}
		if len(split[i]) > maxHeight {
			maxHeight = len(split[i])
		}
	}

	gap := strings.Repeat(" ", spacing)
	var sb strings.Builder
	for row := 0; row < maxHeight; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for i := range split {
			if i > 0 {
				sb.WriteString(gap)
			}
			before, _ := align.split(maxHeight - len(split[i]))
			line := ""
			if r := row - before; r >= 0 && r < len(split[i]) {
				line = split[i][r]
			}
			sb.WriteString(Pad(line, widths[i], AlignStart))
		}
	}
	return sb.String()
}

// joinBlocksVertical is the string-level vertical join. Narrow lines are
// positioned within the widest by the fractional align.
func joinBlocksVertical(align Position, spacing int, blocks []string) string {
	var lines []string
	spacing = max(0, spacing)
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if len(lines) > 0 {
			for i := 0; i < spacing; i++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, splitLines(b)...)
	}
	if len(lines) == 0 {
		return ""
	}
	width := 0
	for _, line := range lines {
		if w := Width(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		before, after := align.split(width - Width(line))
		lines[i] = strings.Repeat(" ", before) + line + strings.Repeat(" ", after)
	}
	return strings.Join(lines, "\n")
}
