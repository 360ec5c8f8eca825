package render

import (
	"image/color"
	"testing"
)

func TestLayoutBounds(t *testing.T) {
	l := NewLayout(64, 32, 0)
	if l.CellSize != DefaultCellSize {
		t.Fatalf("cell size %d, expected default %d", l.CellSize, DefaultCellSize)
	}
	w, h := l.Bounds()
	if w != 6*64+1 || h != 6*32+1 {
		t.Fatalf("bounds %dx%d, expected %dx%d", w, h, 6*64+1, 6*32+1)
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(10, 8, 5)
	cases := []struct {
		px, py   int
		row, col uint32
		ok       bool
	}{
		{px: 0, py: 0, row: 0, col: 0, ok: true},
		{px: 7, py: 13, row: 2, col: 1, ok: true},
		{px: 59, py: 47, row: 7, col: 9, ok: true},
		{px: 500, py: 500, row: 7, col: 9, ok: true},
		{px: -1, py: 3, ok: false},
		{px: 3, py: -4, ok: false},
	}
	for _, tc := range cases {
		row, col, ok := l.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%d, %d) = (%d, %d, %v), expected (%d, %d, %v)",
				tc.px, tc.py, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func pixelAt(buf []byte, l Layout, x, y int) [4]uint8 {
	w, _ := l.Bounds()
	base := (y*w + x) * 4
	return [4]uint8{buf[base], buf[base+1], buf[base+2], buf[base+3]}
}

func TestFillGridRGBA(t *testing.T) {
	l := NewLayout(2, 1, 2)
	w, h := l.Bounds()
	buf := make([]byte, 4*w*h)
	p := Palette{
		Alive: color.RGBA{R: 255, A: 255},
		Dead:  color.RGBA{G: 255, A: 255},
		Grid:  color.RGBA{B: 255, A: 255},
	}
	fillGridRGBA(buf, []uint8{1, 0}, l, p)

	red := [4]uint8{255, 0, 0, 255}
	green := [4]uint8{0, 255, 0, 255}
	blue := [4]uint8{0, 0, 255, 255}

	checks := []struct {
		x, y int
		want [4]uint8
	}{
		{0, 0, blue},
		{1, 1, red},
		{2, 2, red},
		{3, 1, blue},
		{4, 1, green},
		{5, 2, green},
		{6, 2, blue},
		{4, 3, blue},
	}
	for _, c := range checks {
		if got := pixelAt(buf, l, c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}
