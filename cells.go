package bitgrid

import (
	"iter"
	"math/bits"
)

// Point is a cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.height
}

// locate returns the word index and bit mask of cell (x, y).
// The caller must ensure the cell is in bounds.
//
//go:nosplit
func (g *Grid) locate(x, y int) (int, uint32) {
	return y*g.wordWidth + x>>5, uint32(1) << (31 - uint(x)&31)
}

func (g *Grid) outOfRange(op string, x, y int) error {
	return &OutOfRangeError{Op: op, X: x, Y: y, Width: g.Width(), Height: g.height}
}

// Get reports whether cell (x, y) is set.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, g.outOfRange("Get", x, y)
	}
	return g.get(x, y), nil
}

// get is Get without the bounds check error; cells outside the grid read as 0.
func (g *Grid) get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	idx, mask := g.locate(x, y)
	return g.words[idx]&mask != 0
}

// Set sets cell (x, y) to 1.
func (g *Grid) Set(x, y int) error {
	if !g.inBounds(x, y) {
		return g.outOfRange("Set", x, y)
	}
	idx, mask := g.locate(x, y)
	g.words[idx] |= mask
	return nil
}

// Unset sets cell (x, y) to 0.
func (g *Grid) Unset(x, y int) error {
	if !g.inBounds(x, y) {
		return g.outOfRange("Unset", x, y)
	}
	idx, mask := g.locate(x, y)
	g.words[idx] &^= mask
	return nil
}

// SetAll sets every listed cell to 1. All points are validated before any
// cell changes, so an out-of-range point leaves the grid untouched.
func (g *Grid) SetAll(points []Point) error {
	for _, p := range points {
		if !g.inBounds(p.X, p.Y) {
			return g.outOfRange("SetAll", p.X, p.Y)
		}
	}
	for _, p := range points {
		idx, mask := g.locate(p.X, p.Y)
		g.words[idx] |= mask
	}
	return nil
}

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, bool] {
	return func(yield func(Point, bool) bool) {
		for y := 0; y < g.height; y++ {
			row := g.words[y*g.wordWidth : (y+1)*g.wordWidth]
			for j, w := range row {
				base := j * WordBits
				for u := 0; u < WordBits; u++ {
					if !yield(Point{X: base + u, Y: y}, w&(1<<(31-u)) != 0) {
						return
					}
				}
			}
		}
	}
}

// Alive iterates over set cells in row-major order. Empty words are skipped,
// so this is much cheaper than All on sparse grids.
func (g *Grid) Alive() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.height; y++ {
			row := g.words[y*g.wordWidth : (y+1)*g.wordWidth]
			for j, w := range row {
				base := j * WordBits
				for w != 0 {
					u := bits.LeadingZeros32(w)
					if !yield(Point{X: base + u, Y: y}) {
						return
					}
					w &^= 1 << (31 - u)
				}
			}
		}
	}
}

// Cells returns the grid as a Height()×Width() array of 0s and 1s.
func (g *Grid) Cells() [][]uint8 {
	width := g.Width()
	flat := make([]uint8, width*g.height)
	out := make([][]uint8, g.height)
	for y := range out {
		out[y] = flat[y*width : (y+1)*width : (y+1)*width]
	}
	for p := range g.Alive() {
		out[p.Y][p.X] = 1
	}
	return out
}
