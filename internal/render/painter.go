//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	layout  Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout, p Palette) *GridPainter {
	w, h := l.Bounds()
	return &GridPainter{
		layout:  l,
		palette: p,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Blit uploads the provided cells into the painter image and draws it at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.layout.Cols*gp.layout.Rows {
		return
	}
	fillGridRGBA(gp.buf, cells, gp.layout, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Layout returns the layout the painter draws with.
func (gp *GridPainter) Layout() Layout { return gp.layout }
