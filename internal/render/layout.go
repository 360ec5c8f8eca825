package render

// DefaultCellSize is the edge length of a cell in pixels, not counting grid lines.
const DefaultCellSize = 5

// Layout maps a Cols x Rows cell grid onto pixels. Every cell is CellSize
// pixels wide and separated from its neighbors by a 1px grid line, with a
// line around the outside as well.
type Layout struct {
	Cols, Rows int
	CellSize   int
}

// NewLayout returns a layout for a cols x rows grid. Non-positive cell sizes
// fall back to DefaultCellSize.
func NewLayout(cols, rows, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Layout{Cols: cols, Rows: rows, CellSize: cellSize}
}

// Bounds returns the pixel width and height of the whole grid.
func (l Layout) Bounds() (int, int) {
	pitch := l.CellSize + 1
	return pitch*l.Cols + 1, pitch*l.Rows + 1
}

// CellAt converts a pixel position into the cell under it. Positions past the
// right or bottom edge clamp to the last column or row; positions left of or
// above the grid are rejected.
func (l Layout) CellAt(px, py int) (row, col uint32, ok bool) {
	if px < 0 || py < 0 || l.Cols <= 0 || l.Rows <= 0 {
		return 0, 0, false
	}
	pitch := l.CellSize + 1
	r := min(py/pitch, l.Rows-1)
	c := min(px/pitch, l.Cols-1)
	return uint32(r), uint32(c), true
}

// origin returns the top-left pixel of the cell at (row, col).
func (l Layout) origin(row, col int) (int, int) {
	pitch := l.CellSize + 1
	return col*pitch + 1, row*pitch + 1
}
