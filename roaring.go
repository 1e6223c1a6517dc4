package bitgrid

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// Cell indexes used by the roaring interop are y*Width()+x.

// cellCount returns the number of cells, or an error if indexes would not
// fit in uint32.
func (g *Grid) cellCount(op string) (uint64, error) {
	n := uint64(g.Width()) * uint64(g.height)
	if n > math.MaxUint32+1 {
		return 0, fmt.Errorf("%s: %d cells exceed the uint32 index space: %w", op, n, ErrInvalidDimension)
	}
	return n, nil
}

// ToRoaring returns a roaring bitmap holding the index of every set cell.
func (g *Grid) ToRoaring() (*roaring.Bitmap, error) {
	if _, err := g.cellCount("ToRoaring"); err != nil {
		return nil, err
	}

	rb := roaring.New()
	width := uint64(g.Width())
	buf := make([]uint32, 0, WordBits)
	for y := 0; y < g.height; y++ {
		row := g.words[y*g.wordWidth : (y+1)*g.wordWidth]
		for j, w := range row {
			if w == 0 {
				continue
			}
			buf = buf[:0]
			base := uint64(y)*width + uint64(j*WordBits)
			for w != 0 {
				u := bits.LeadingZeros32(w)
				buf = append(buf, uint32(base+uint64(u)))
				w &^= 1 << (31 - u)
			}
			rb.AddMany(buf)
		}
	}
	return rb, nil
}

// FromRoaring creates a width×height cell grid (see Make) with the cells
// indexed by rb set. Indexes are interpreted against the rounded-up Width().
func FromRoaring(width, height int, rb *roaring.Bitmap, opts ...Option) (*Grid, error) {
	g, err := Make(width, height, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.OrRoaring(rb); err != nil {
		return nil, err
	}
	return g, nil
}

// OrRoaring sets every cell indexed by rb. If any index lies outside the
// grid, nothing is set.
func (g *Grid) OrRoaring(rb *roaring.Bitmap) error {
	if rb == nil || rb.IsEmpty() {
		return nil
	}
	n, err := g.cellCount("OrRoaring")
	if err != nil {
		return err
	}

	width := uint64(g.Width())
	if maxIdx := uint64(rb.Maximum()); maxIdx >= n {
		if width == 0 {
			return g.outOfRange("OrRoaring", int(maxIdx), 0)
		}
		return g.outOfRange("OrRoaring", int(maxIdx%width), int(maxIdx/width))
	}

	it := rb.Iterator()
	for it.HasNext() {
		v := uint64(it.Next())
		idx, mask := g.locate(int(v%width), int(v/width))
		g.words[idx] |= mask
	}
	return nil
}
