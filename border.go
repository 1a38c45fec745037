package clikit

// Border is one of the fixed box-drawing glyph sets. The zero value is
// BorderNone.
type Border int

const (
	// BorderNone draws no border.
	BorderNone Border = iota
	// BorderSingle uses single-line box-drawing characters (─ │ ┌).
	BorderSingle
	// BorderRounded uses single lines with rounded corners (╭ ╮ ╰ ╯).
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (═ ║ ╔).
	BorderDouble
	// BorderThick uses heavy box-drawing characters (━ ┃ ┏).
	BorderThick
)

// BorderChars holds the glyphs for one border set.
type BorderChars struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Chars returns the glyph set for the border. BorderNone returns spaces;
// callers check for BorderNone before drawing.
func (b Border) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'═', '║', '╔', '╗', '╚', '╝'}
	case BorderRounded:
		return BorderChars{'─', '│', '╭', '╮', '╰', '╯'}
	case BorderThick:
		return BorderChars{'━', '┃', '┏', '┓', '┗', '┛'}
	case BorderSingle:
		return BorderChars{'─', '│', '┌', '┐', '└', '┘'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// BorderSides selects which edges of a box are drawn. The zero value
// means "all sides" so that plain BoxProps{Border: BorderSingle} behaves
// as expected.
type BorderSides struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// all reports whether no explicit side selection was made.
func (s BorderSides) all() bool {
	return !s.Top && !s.Right && !s.Bottom && !s.Left
}

// resolve expands the zero value into all four sides.
func (s BorderSides) resolve() BorderSides {
	if s.all() {
		return BorderSides{Top: true, Right: true, Bottom: true, Left: true}
	}
	return s
}
