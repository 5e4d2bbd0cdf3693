package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph rune
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph rune, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		b.Set(x+offset, y, ch, fg, bg)
		offset++
	}
}

// WriteCentered writes s horizontally centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	n := len([]rune(s))
	b.WriteString((b.Cols-n)/2, y, s, fg, bg)
}

// Row returns row y as a string, for tests and logging.
func (b *CellBuffer) Row(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	out := make([]rune, b.Cols)
	for x := range out {
		out[x] = b.Cells[y*b.Cols+x].Glyph
	}
	return string(out)
}
