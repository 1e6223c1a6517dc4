package bitgrid

import (
	"context"
	"fmt"
	"math/bits"
)

// Border reports which edges of a grid hold at least one set cell.
type Border struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether any edge holds a set cell.
func (b Border) Any() bool {
	return b.Left || b.Right || b.Top || b.Bottom
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// BorderAlive reports which edges of the grid hold set cells.
func (g *Grid) BorderAlive() Border {
	var b Border
	if len(g.words) == 0 {
		return b
	}

	last := g.wordWidth - 1
	for y := 0; y < g.height; y++ {
		row := y * g.wordWidth
		if g.words[row]>>31 == 1 {
			b.Left = true
		}
		if g.words[row+last]&1 == 1 {
			b.Right = true
		}
	}

	bottom := (g.height - 1) * g.wordWidth
	for j := 0; j < g.wordWidth; j++ {
		if g.words[j] != 0 {
			b.Top = true
		}
		if g.words[bottom+j] != 0 {
			b.Bottom = true
		}
	}
	return b
}

// HasAliveCellAtBorder reports whether any edge cell is set. It stops at the
// first hit.
func (g *Grid) HasAliveCellAtBorder() bool {
	if len(g.words) == 0 {
		return false
	}

	last := g.wordWidth - 1
	for y := 0; y < g.height; y++ {
		row := y * g.wordWidth
		if g.words[row]>>31 == 1 || g.words[row+last]&1 == 1 {
			return true
		}
	}

	bottom := (g.height - 1) * g.wordWidth
	for j := 0; j < g.wordWidth; j++ {
		if g.words[j] != 0 || g.words[bottom+j] != 0 {
			return true
		}
	}
	return false
}

// BoundingBox returns the smallest rectangle containing every set cell.
// ok is false when the grid is empty.
func (g *Grid) BoundingBox() (r Rect, ok bool) {
	for y := 0; y < g.height; y++ {
		row := g.words[y*g.wordWidth : (y+1)*g.wordWidth]
		for j, w := range row {
			if w == 0 {
				continue
			}
			minX := j*WordBits + bits.LeadingZeros32(w)
			maxX := j*WordBits + 31 - bits.TrailingZeros32(w)
			if !ok {
				r = Rect{MinX: minX, MinY: y, MaxX: maxX, MaxY: y}
				ok = true
				continue
			}
			r.MinX = min(r.MinX, minX)
			r.MaxX = max(r.MaxX, maxX)
			r.MaxY = y
		}
	}
	return r, ok
}

// TopRowLeftCell returns the leftmost set cell of the topmost non-empty row.
func (g *Grid) TopRowLeftCell() (Point, bool) {
	for i, w := range g.words {
		if w != 0 {
			y, j := i/g.wordWidth, i%g.wordWidth
			return Point{X: j*WordBits + bits.LeadingZeros32(w), Y: y}, true
		}
	}
	return Point{}, false
}

// Expanded returns a new grid grown by expandX cells per row and expandY rows,
// with the current contents copied to (offsetX, offsetY).
//
// offsetX must be a multiple of 32 so whole words move. Offsets may be
// negative; words that land outside the new grid are dropped.
func (g *Grid) Expanded(expandX, expandY, offsetX, offsetY int) (*Grid, error) {
	newWidth, newHeight := g.Width()+expandX, g.height+expandY

	var err error
	switch {
	case expandX < 0 || expandY < 0:
		err = fmt.Errorf("Expanded: expandX=%d expandY=%d must be non-negative: %w", expandX, expandY, ErrInvalidDimension)
	case offsetX%WordBits != 0:
		err = fmt.Errorf("Expanded: offsetX=%d must be a multiple of %d: %w", offsetX, WordBits, ErrInvalidOffset)
	}
	if err != nil {
		g.opts.logger.LogResize(context.Background(), newWidth, newHeight, err)
		return nil, err
	}

	out := &Grid{
		wordWidth: wordsFor(newWidth),
		height:    newHeight,
		opts:      g.opts,
	}
	if err := validateDimensions(out.wordWidth, out.height); err != nil {
		g.opts.logger.LogResize(context.Background(), newWidth, newHeight, err)
		return nil, err
	}
	out.words = make([]uint32, out.wordWidth*out.height)

	wordOffsetX := offsetX / WordBits
	for y := 0; y < g.height; y++ {
		ny := y + offsetY
		if ny < 0 || ny >= out.height {
			continue
		}
		for j := 0; j < g.wordWidth; j++ {
			nj := j + wordOffsetX
			if nj < 0 || nj >= out.wordWidth {
				continue
			}
			out.words[ny*out.wordWidth+nj] = g.words[y*g.wordWidth+j]
		}
	}

	g.opts.logger.LogResize(context.Background(), out.Width(), out.height, nil)
	return out, nil
}

// SamePatternIgnoreTranslation reports whether other holds the same set of
// cells as g up to translation. Cells shifted outside other count as unset.
func (g *Grid) SamePatternIgnoreTranslation(other *Grid) bool {
	if g.PopulationCount() != other.PopulationCount() {
		return false
	}

	a, aok := g.TopRowLeftCell()
	b, bok := other.TopRowLeftCell()
	if !aok || !bok {
		return aok == bok
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	for p := range g.Alive() {
		if !other.get(p.X+dx, p.Y+dy) {
			return false
		}
	}
	return true
}
