// Public domain.

package mpprog

import (
	"math"
	"strings"
)

// Runes for the rendered disk.  Cells are doubled horizontally so the
// disk comes out round in a terminal's 1:2 character cells.
const (
	litRune  = '█'
	darkRune = '·'
)

// disk renders the Moon's disk as text, one string per row, 2r+1 rows
// high.  The terminator is the ellipse x = ±(1-2k)√(1-y²); for a
// waxing moon the lit side is drawn on the right, matching the
// naked-eye view from northern latitudes.
func disk(k float64, waxing bool, r int) []string {
	lines := make([]string, 0, 2*r+1)
	for iy := -r; iy <= r; iy++ {
		y := float64(iy) / float64(r)
		var b strings.Builder
		for ix := -r; ix <= r; ix++ {
			x := float64(ix) / float64(r)
			// strict interior only, so the terminator ±√(1-y²)
			// brackets every drawn cell at k = 0 and k = 1
			if x*x+y*y >= 1 {
				b.WriteString("  ")
				continue
			}
			xt := (1 - 2*k) * math.Sqrt(1-y*y)
			lit := x > xt
			if !waxing {
				lit = x < -xt
			}
			c := darkRune
			if lit {
				c = litRune
			}
			b.WriteRune(c)
			b.WriteRune(c)
		}
		lines = append(lines, b.String())
	}
	return lines
}
