package clikit

import (
	"context"
	"strings"
	"testing"
)

func renderStr(t *testing.T, v View) string {
	t.Helper()
	return v.Render(context.Background())
}

func TestBoxPaddingOnly(t *testing.T) {
	box := Box(BoxProps{Padding: PadAll(2)}, Text("hi"))
	got := renderStr(t, box)
	lines := strings.Split(got, "\n")

	// width = content + 2p, height = content + 2p
	if len(lines) != 5 {
		t.Fatalf("height = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if w := Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
	if lines[2] != "  hi  " {
		t.Errorf("content line = %q, want %q", lines[2], "  hi  ")
	}
}

func TestBoxDeclaredSize(t *testing.T) {
	box := Box(BoxProps{Padding: PadAll(1)}, Text("abc"))
	if box.Width() != 5 {
		t.Errorf("Width = %d, want 5", box.Width())
	}
	if box.Height() != 3 {
		t.Errorf("Height = %d, want 3", box.Height())
	}
}

func TestBoxBorder(t *testing.T) {
	box := Box(BoxProps{Border: BorderSingle}, Text("hi"))
	want := strings.Join([]string{
		"┌──┐",
		"│hi│",
		"└──┘",
	}, "\n")
	if got := renderStr(t, box); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoxRoundedBorderWithPadding(t *testing.T) {
	box := Box(BoxProps{Border: BorderRounded, Padding: PadHV(1, 0)}, Text("ok"))
	want := strings.Join([]string{
		"╭────╮",
		"│ ok │",
		"╰────╯",
	}, "\n")
	if got := renderStr(t, box); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoxPartialSides(t *testing.T) {
	box := Box(BoxProps{
		Border: BorderSingle,
		Sides:  BorderSides{Top: true, Bottom: true},
	}, Text("ab"))
	want := strings.Join([]string{
		"──",
		"ab",
		"──",
	}, "\n")
	if got := renderStr(t, box); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	// Only the two horizontal sides add to the declared height.
	if box.Width() != 2 {
		t.Errorf("Width = %d, want 2", box.Width())
	}
	if box.Height() != 3 {
		t.Errorf("Height = %d, want 3", box.Height())
	}
}

func TestBoxMinSize(t *testing.T) {
	box := Box(BoxProps{MinWidth: 6, MinHeight: 3}, Text("ab"))
	got := renderStr(t, box)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("height = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
}

func TestBoxStacksChildrenCentered(t *testing.T) {
	box := Box(BoxProps{}, Text("wide line"), Text("x"))
	lines := strings.Split(renderStr(t, box), "\n")
	if len(lines) != 2 {
		t.Fatalf("height = %d, want 2", len(lines))
	}
	if lines[1] != "    x    " {
		t.Errorf("second line = %q, want centered x", lines[1])
	}
}

func TestBoxNegativePaddingClamped(t *testing.T) {
	box := Box(BoxProps{Padding: Padding{Top: -3, Left: -1}}, Text("ok"))
	if got := renderStr(t, box); got != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
}

func TestBoxRaggedContentIsRectangular(t *testing.T) {
	box := Box(BoxProps{Border: BorderSingle}, Text("a\nbbb\ncc"))
	lines := strings.Split(renderStr(t, box), "\n")
	for i, line := range lines {
		if w := Width(line); w != 5 {
			t.Errorf("line %d width = %d, want 5", i, w)
		}
	}
}
