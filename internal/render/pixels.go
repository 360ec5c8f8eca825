package render

import "image/color"

// Palette holds the colors used to rasterise a binary grid.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Grid  color.Color
}

// DefaultPalette draws black live cells on white with light grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.Black,
		Dead:  color.White,
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	}
}

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillGridRGBA rasterises binary cell data (0/1, row-major) into buf using
// layout l. buf must hold 4 bytes per pixel of l.Bounds().
func fillGridRGBA(buf []byte, cells []uint8, l Layout, p Palette) {
	pw, ph := l.Bounds()
	grid := toRGBA(p.Grid)
	for i := 0; i < pw*ph; i++ {
		copy(buf[i*4:i*4+4], grid[:])
	}

	alive, dead := toRGBA(p.Alive), toRGBA(p.Dead)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			fill := dead
			if cells[row*l.Cols+col] != 0 {
				fill = alive
			}
			x0, y0 := l.origin(row, col)
			for y := y0; y < y0+l.CellSize; y++ {
				base := (y*pw + x0) * 4
				for x := 0; x < l.CellSize; x++ {
					copy(buf[base+x*4:base+x*4+4], fill[:])
				}
			}
		}
	}
}
