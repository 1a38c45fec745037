// Command snapshot composes a single static frame sized to the current
// terminal and prints it: boxes, joins, a flexbox row and a centered
// overlay, all from one render pass.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	clikit "github.com/cinderlink/cli-kit-sub006"
)

func main() {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h-1
	}

	ctx := context.Background()
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	title := clikit.Box(clikit.BoxProps{Border: clikit.BorderRounded, Padding: clikit.PadHV(2, 0)},
		clikit.Text(accent.Render("cli-kit layout snapshot")))

	cells := clikit.JoinGrid(ctx, clikit.JoinOptions{Spacing: 1},
		[]clikit.View{panel("grow", "items share\nfree space"), panel("shrink", "overflow is\nabsorbed")},
		[]clikit.View{panel("wrap", "lines break\nwhen full"), panel("justify", "start center\nend between")},
	)

	row := clikit.Flexbox(
		clikit.FlexboxProps{Direction: clikit.Row, Width: width, Gap: 2, AlignItems: clikit.AlignCenter},
		clikit.Item(title).WithShrink(0),
		clikit.Item(clikit.Text(cells)).WithGrow(1),
	)

	badge := clikit.Box(clikit.BoxProps{Border: clikit.BorderDouble, Padding: clikit.PadHV(1, 0)},
		clikit.Text("layered"))

	frame := clikit.Composite(ctx, width, height,
		clikit.NewLayer(clikit.Text(clikit.Place(ctx, width, height, clikit.Center, clikit.Middle, row))),
		clikit.NewLayer(badge).At(width-12, height-4).Z(1),
	)
	fmt.Println(frame)
}

// panel is a small bordered box used to fill the demo grid.
func panel(name, body string) clikit.View {
	return clikit.Box(clikit.BoxProps{
		Border:  clikit.BorderSingle,
		Padding: clikit.PadHV(1, 0),
	}, clikit.Text(name), clikit.Text(body))
}
