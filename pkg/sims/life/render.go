package life

import "strings"

const (
	glyphAlive = '◼'
	glyphDead  = '◻'
)

// Render draws the displayed generation one glyph per cell, each row
// terminated by a newline.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.h * (g.w*3 + 1))
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.cur.Test(uint(row*g.w + col)) {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) String() string { return g.Render() }
