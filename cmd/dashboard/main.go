// Command dashboard is an interactive demo of the layout engine: a
// flexbox chrome, a scrollable viewport, a toggleable modal overlay and
// mouse routing through the hit-test registry.
//
// Keys: q quits, m toggles the modal, arrows/PgUp/PgDn scroll. Clicking
// a panel selects it; the mouse wheel scrolls the log.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clikit "github.com/cinderlink/cli-kit-sub006"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const (
	sidebarWidth = 22
	modalWidth   = 34
	modalHeight  = 7
)

type model struct {
	width    int
	height   int
	registry *clikit.HitTestRegistry
	log      *clikit.Viewport
	selected string
	modal    bool
}

func newModel() model {
	vp := clikit.NewViewport(0, 0)
	vp.ShowScrollbars = true

	lines := make([]string, 200)
	for i := range lines {
		level := dimStyle.Render("info ")
		if i%7 == 0 {
			level = warnStyle.Render("warn ")
		}
		lines[i] = fmt.Sprintf("%s event %03d: frame rendered", level, i)
	}
	vp.SetContent(lines)

	return model{
		registry: clikit.NewHitTestRegistry(),
		log:      vp,
		selected: "log",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.modal = !m.modal
			m.relayout()
		case "up":
			m.log.ScrollBy(0, -1)
		case "down":
			m.log.ScrollBy(0, 1)
		case "pgup":
			m.log.PageUp()
		case "pgdown":
			m.log.PageDown()
		case "home":
			m.log.ScrollToTop()
		case "end":
			m.log.ScrollToBottom()
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.log.ScrollBy(0, -3)
		case tea.MouseButtonWheelDown:
			m.log.ScrollBy(0, 3)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				if hit, ok := m.registry.HitTest(msg.X, msg.Y); ok {
					m.selected = hit.ComponentID
				}
			}
		}
	}
	return m, nil
}

// relayout recomputes panel rectangles and re-registers them for mouse
// routing. The same rectangles drive rendering and hit-testing.
func (m *model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	bodyTop := 1
	bodyHeight := max(0, m.height-2)

	result := clikit.Layout(context.Background(),
		clikit.FlexboxProps{Direction: clikit.Row, Width: m.width, Height: bodyHeight},
		clikit.Item(clikit.Spacer(sidebarWidth, bodyHeight)).WithBasis(sidebarWidth).WithShrink(0),
		clikit.Item(clikit.Spacer(0, bodyHeight)).WithGrow(1),
	)
	sidebar := result.Items[0].Rect
	content := result.Items[1].Rect

	m.registry.Register(clikit.ComponentBounds{
		ComponentID: "sidebar",
		X:           sidebar.X,
		Y:           bodyTop + sidebar.Y,
		Width:       sidebar.Width,
		Height:      sidebar.Height,
	})
	m.registry.Register(clikit.ComponentBounds{
		ComponentID: "log",
		X:           content.X,
		Y:           bodyTop + content.Y,
		Width:       content.Width,
		Height:      content.Height,
	})

	// Inside the log panel's border.
	m.log.SetSize(max(0, content.Width-2), max(0, content.Height-2))

	if m.modal {
		m.registry.Register(clikit.ComponentBounds{
			ComponentID: "modal",
			X:           (m.width - modalWidth) / 2,
			Y:           (m.height - modalHeight) / 2,
			Width:       modalWidth,
			Height:      modalHeight,
			ZIndex:      10,
		})
	} else {
		m.registry.Unregister("modal")
	}
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	ctx := context.Background()

	header := clikit.Text(titleStyle.Render(" cli-kit dashboard ") +
		dimStyle.Render("· q quit · m modal · click panels"))
	footer := clikit.Text(dimStyle.Render(fmt.Sprintf(
		" selected: %s · scroll %d/%d", m.selected, m.log.ScrollY(), m.log.ContentHeight())))

	sidebar := clikit.Box(clikit.BoxProps{
		Border:  border("sidebar", m.selected),
		Padding: clikit.PadHV(1, 0),
	}, clikit.Text(sidebarItems(m.selected)))

	logPanel := clikit.Box(clikit.BoxProps{
		Border: border("log", m.selected),
	}, m.log)

	body := clikit.Flexbox(
		clikit.FlexboxProps{Direction: clikit.Row, Width: m.width, Height: max(0, m.height-2)},
		clikit.Item(sidebar).WithBasis(sidebarWidth).WithShrink(0),
		clikit.Item(logPanel).WithGrow(1),
	)

	frame := clikit.JoinVertical(ctx, clikit.JoinOptions{Align: clikit.Left},
		header, body, footer)

	if !m.modal {
		return frame
	}

	modal := clikit.Box(clikit.BoxProps{
		Border:   clikit.BorderDouble,
		Padding:  clikit.PadHV(2, 1),
		MinWidth: modalWidth - 2,
	},
		clikit.Text(titleStyle.Render("About")),
		clikit.Text("Composed by the layout engine."),
		clikit.Text(dimStyle.Render("press m to close")),
	)
	return clikit.Composite(ctx, m.width, m.height,
		clikit.NewLayer(clikit.Text(frame)),
		clikit.NewLayer(modal).At((m.width-modalWidth)/2, (m.height-modalHeight)/2).Z(10),
	)
}

// border highlights the selected panel.
func border(id, selected string) clikit.Border {
	if id == selected {
		return clikit.BorderThick
	}
	return clikit.BorderSingle
}

// sidebarItems renders the static navigation list.
func sidebarItems(selected string) string {
	items := []string{"log", "sidebar", "modal"}
	out := ""
	for i, it := range items {
		if i > 0 {
			out += "\n"
		}
		if it == selected {
			out += selectedStyle.Render("> " + it)
		} else {
			out += "  " + it
		}
	}
	return out
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
}
