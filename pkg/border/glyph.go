package border

// Placeholder is the glyph used for masks a table has no entry for.
const Placeholder = '?'

// Block is drawn for any mask with a Full side.
const Block = '█'

// Entry maps one mask to a glyph.
type Entry struct {
	Mask  Mask
	Glyph rune
}

// Table maps masks to glyphs. A Table is immutable; With returns an extended
// copy.
type Table struct {
	glyphs      map[Mask]rune
	placeholder rune
}

// Default holds every built-in shape: double, thin, thick, the thin/double
// duplex junctions and the thin/thick half-line stubs.
var Default = newTable(defaultEntries())

func newTable(entries []Entry) Table {
	t := Table{
		glyphs:      make(map[Mask]rune, len(entries)),
		placeholder: Placeholder,
	}
	for _, e := range entries {
		t.glyphs[e.Mask] = e.Glyph
	}
	return t
}

// With returns a copy of t with additional entries. Entries override
// existing ones for the same mask.
func (t Table) With(entries ...Entry) Table {
	n := Table{
		glyphs:      make(map[Mask]rune, len(t.glyphs)+len(entries)),
		placeholder: t.placeholder,
	}
	for m, r := range t.glyphs {
		n.glyphs[m] = r
	}
	for _, e := range entries {
		n.glyphs[e.Mask] = e.Glyph
	}
	return n
}

// WithPlaceholder returns a copy of t that uses r for unmapped masks.
func (t Table) WithPlaceholder(r rune) Table {
	n := t.With()
	n.placeholder = r
	return n
}

// Rune returns the glyph for m and whether the table knows it. Unknown masks
// resolve to the placeholder.
func (t Table) Rune(m Mask) (rune, bool) {
	if r, ok := t.glyphs[m]; ok {
		return r, true
	}
	if m < MaxMask {
		for _, side := range Sides {
			if m.Style(side) == Full {
				return Block, true
			}
		}
	}
	if t.placeholder == 0 {
		return Placeholder, false
	}
	return t.placeholder, false
}

// Glyph returns the text displayed for m. Unknown masks yield the placeholder,
// or the decoded mask when debug is set. Glyph never fails.
func (t Table) Glyph(m Mask, debug bool) string {
	r, ok := t.Rune(m)
	if !ok && debug {
		return m.String()
	}
	return string(r)
}

// Glyph looks m up in the Default table.
func Glyph(m Mask, debug bool) string {
	return Default.Glyph(m, debug)
}

// shape lists the eleven line shapes of a single style, in the order
// horizontal, vertical, the four corners, the four tees and the cross.
type shape [11]rune

func (s shape) entries(st Style) []Entry {
	e := Empty
	return []Entry{
		{Of(e, st, e, st), s[0]},
		{Of(st, e, st, e), s[1]},
		{Of(e, st, st, e), s[2]},
		{Of(e, e, st, st), s[3]},
		{Of(st, st, e, e), s[4]},
		{Of(st, e, e, st), s[5]},
		{Of(st, st, st, e), s[6]},
		{Of(st, e, st, st), s[7]},
		{Of(e, st, st, st), s[8]},
		{Of(st, st, e, st), s[9]},
		{Of(st, st, st, st), s[10]},
	}
}

func stubs(st Style, up, right, down, left rune) []Entry {
	return []Entry{
		{Of(st, Empty, Empty, Empty), up},
		{Of(Empty, st, Empty, Empty), right},
		{Of(Empty, Empty, st, Empty), down},
		{Of(Empty, Empty, Empty, st), left},
	}
}

func defaultEntries() []Entry {
	const (
		e = Empty
		D = Double
		t = Thin
	)

	entries := []Entry{{0, ' '}}
	entries = append(entries, shape{'═', '║', '╔', '╗', '╚', '╝', '╠', '╣', '╦', '╩', '╬'}.entries(Double)...)
	entries = append(entries, shape{'─', '│', '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼'}.entries(Thin)...)
	entries = append(entries, shape{'━', '┃', '┏', '┓', '┗', '┛', '┣', '┫', '┳', '┻', '╋'}.entries(Thick)...)
	entries = append(entries, stubs(Thin, '╵', '╶', '╷', '╴')...)
	entries = append(entries, stubs(Thick, '╹', '╺', '╻', '╸')...)

	// Thin and double meeting in one cell.
	entries = append(entries, []Entry{
		{Of(e, D, t, e), '╒'},
		{Of(e, t, D, e), '╓'},
		{Of(e, e, t, D), '╕'},
		{Of(e, e, D, t), '╖'},
		{Of(t, D, e, e), '╘'},
		{Of(D, t, e, e), '╙'},
		{Of(t, e, e, D), '╛'},
		{Of(D, e, e, t), '╜'},
		{Of(t, D, t, e), '╞'},
		{Of(D, t, D, e), '╟'},
		{Of(t, e, t, D), '╡'},
		{Of(D, e, D, t), '╢'},
		{Of(e, D, t, D), '╤'},
		{Of(e, t, D, t), '╥'},
		{Of(t, D, e, D), '╧'},
		{Of(D, t, e, t), '╨'},
		{Of(t, D, t, D), '╪'},
		{Of(D, t, D, t), '╫'},
	}...)
	return entries
}
