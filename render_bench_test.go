package clikit

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// The engine re-runs every frame, so these benchmarks cover the paths a
// full-screen redraw takes: measuring, solving, painting, compositing.

func benchDashboard(width, height int) View {
	sidebar := Box(BoxProps{Border: BorderSingle, Padding: PadHV(1, 0)},
		Text("nav\nfiles\nsearch\nhelp"))
	content := Box(BoxProps{Border: BorderSingle},
		Text(strings.Repeat("the quick brown fox\n", 10)))
	return Flexbox(
		FlexboxProps{Direction: Row, Width: width, Height: height, Gap: 1},
		Item(sidebar).WithBasis(20).WithShrink(0),
		Item(content).WithGrow(1),
	)
}

func BenchmarkFlexboxRender(b *testing.B) {
	ctx := context.Background()
	view := benchDashboard(120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = view.Render(ctx)
	}
}

func BenchmarkComposite(b *testing.B) {
	ctx := context.Background()
	base := Text(strings.Repeat(strings.Repeat("#", 120)+"\n", 39) + strings.Repeat("#", 120))
	modal := Box(BoxProps{Border: BorderDouble, Padding: PadAll(1)}, Text("modal body"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Composite(ctx, 120, 40,
			NewLayer(base),
			NewLayer(modal).At(50, 15).Z(1),
		)
	}
}

func BenchmarkViewportRender(b *testing.B) {
	ctx := context.Background()
	vp := NewViewport(100, 40)
	vp.ShowScrollbars = true
	lines := make([]string, 5000)
	for i := range lines {
		lines[i] = fmt.Sprintf("log line %d: something happened in the system", i)
	}
	vp.SetContent(lines)
	vp.ScrollToPosition(0, 2500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vp.Render(ctx)
	}
}

func BenchmarkWidthASCII(b *testing.B) {
	s := strings.Repeat("benchmark line content ", 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Width(s)
	}
}

func BenchmarkWidthMixed(b *testing.B) {
	s := strings.Repeat("mixed 世界 content ❤️ ", 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Width(s)
	}
}
