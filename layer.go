package clikit

import (
	"context"
	"sort"
)

// Layer positions a view inside a layered canvas. Build with NewLayer and
// the fluent setters, in the declared paint order.
type Layer struct {
	view View
	x, y int
	z    int
}

// NewLayer wraps a view as a layer at the canvas origin with z-index 0.
func NewLayer(v View) Layer {
	return Layer{view: v}
}

// At returns a copy of the layer offset to (x, y) on the canvas.
func (l Layer) At(x, y int) Layer {
	l.x, l.y = x, y
	return l
}

// Z returns a copy of the layer with the given z-index. Higher z paints
// later, occluding lower layers.
func (l Layer) Z(z int) Layer {
	l.z = z
	return l
}

// Layered paints views back-to-front into a width×height canvas. Any
// non-space character overwrites the cell beneath it; spaces are
// transparent and leave lower layers visible. Views larger than the
// canvas are clipped.
func Layered(ctx context.Context, width, height int, views ...View) string {
	layers := make([]Layer, len(views))
	for i, v := range views {
		layers[i] = NewLayer(v)
	}
	return Composite(ctx, width, height, layers...)
}

// Composite is Layered with per-layer offsets and z-indexes. Layers are
// painted in ascending z; equal z preserves declared order.
func Composite(ctx context.Context, width, height int, layers ...Layer) string {
	width, height = max(0, width), max(0, height)
	if width == 0 || height == 0 {
		return blankBlock(width, height)
	}

	ordered := make([]Layer, len(layers))
	copy(ordered, layers)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].z < ordered[j].z })

	buf := NewBuffer(width, height)
	for _, l := range ordered {
		if l.view == nil {
			continue
		}
		buf.DrawBlock(l.x, l.y, l.view.Render(ctx), DrawOptions{
			ClipWidth:   width - l.x,
			ClipHeight:  height - l.y,
			Transparent: true,
		})
	}
	return buf.String()
}
