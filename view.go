package clikit

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// View is a renderable node. Views are cheap immutable values built fresh
// each frame; nothing retains them between renders.
//
// Render may block (a leaf's owning widget may read the filesystem, for
// example) and must eventually return a text block. Width and Height are
// advisory reservations for layout: 0 means "dynamic, measure the actual
// output". The compositor always trusts measured output over declared
// sizes, so a lying View produces a glitch, never corruption.
type View interface {
	Render(ctx context.Context) string
	Width() int
	Height() int
}

// TextView is the leaf view: a static, possibly styled string.
type TextView struct {
	content string
	width   int
	height  int
}

// Text creates a view from a string. Size is measured eagerly: width is
// the widest line in columns, height the line count.
func Text(s string) *TextView {
	t := &TextView{content: s}
	t.width, t.height = measureBlock(s)
	return t
}

// Render implements View.
func (t *TextView) Render(ctx context.Context) string { return t.content }

// Width implements View.
func (t *TextView) Width() int { return t.width }

// Height implements View.
func (t *TextView) Height() int { return t.height }

// SpacerView is invisible flexible space.
type SpacerView struct {
	width  int
	height int
}

// Spacer creates blank space of the given size. A zero dimension is
// dynamic and collapses unless a flex container stretches it.
func Spacer(width, height int) *SpacerView {
	return &SpacerView{width: max(0, width), height: max(0, height)}
}

// Render implements View.
func (s *SpacerView) Render(ctx context.Context) string {
	if s.width == 0 && s.height == 0 {
		return ""
	}
	line := strings.Repeat(" ", s.width)
	lines := make([]string, max(1, s.height))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Width implements View.
func (s *SpacerView) Width() int { return s.width }

// Height implements View.
func (s *SpacerView) Height() int { return s.height }

// RenderFunc adapts a plain function into a dynamic View.
type RenderFunc func(ctx context.Context) string

// Render implements View.
func (f RenderFunc) Render(ctx context.Context) string { return f(ctx) }

// Width implements View.
func (f RenderFunc) Width() int { return 0 }

// Height implements View.
func (f RenderFunc) Height() int { return 0 }

// RenderAll renders sibling views concurrently and returns their blocks in
// declared order. Sibling renders have no ordering guarantees relative to
// each other; only the result slice is ordered. The error is non-nil only
// when ctx was cancelled mid-render.
func RenderAll(ctx context.Context, views ...View) ([]string, error) {
	blocks := make([]string, len(views))
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range views {
		g.Go(func() error {
			blocks[i] = v.Render(ctx)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// splitLines splits a rendered block into lines. An empty block has no
// lines, not one empty line.
func splitLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

// measureBlock returns the column width of the widest line and the line
// count of a rendered block.
func measureBlock(block string) (width, height int) {
	if block == "" {
		return 0, 0
	}
	lines := strings.Split(block, "\n")
	for _, line := range lines {
		if w := Width(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// normalizeBlock right-pads every line of a block to the widest line so
// the result is a true rectangle. Callers downstream rely on this.
func normalizeBlock(block string) string {
	lines := splitLines(block)
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
		lines[i] = Pad(line, width, AlignStart)
	}
	return strings.Join(lines, "\n")
}

// renderLines renders a single view and splits it into lines.
func renderLines(ctx context.Context, v View) []string {
	return splitLines(v.Render(ctx))
}
