package bitgrid

import "github.com/hupe1980/bitgrid/internal/simd"

func (g *Grid) sameSize(op string, other *Grid) error {
	if g.wordWidth != other.wordWidth || g.height != other.height {
		return &SizeMismatchError{
			Op:             op,
			WordWidth:      g.wordWidth,
			Height:         g.height,
			OtherWordWidth: other.wordWidth,
			OtherHeight:    other.height,
		}
	}
	return nil
}

// Equal reports whether g and other hold the same cells.
// Grids of different shape return a *SizeMismatchError.
func (g *Grid) Equal(other *Grid) (bool, error) {
	if err := g.sameSize("Equal", other); err != nil {
		return false, err
	}
	return simd.EqualWords(g.words, other.words), nil
}

// Or sets g to g | other.
func (g *Grid) Or(other *Grid) error {
	if err := g.sameSize("Or", other); err != nil {
		return err
	}
	simd.OrWords(g.words, other.words)
	return nil
}

// And sets g to g & other.
func (g *Grid) And(other *Grid) error {
	if err := g.sameSize("And", other); err != nil {
		return err
	}
	simd.AndWords(g.words, other.words)
	return nil
}

// AndNot clears every cell of g that is set in other.
func (g *Grid) AndNot(other *Grid) error {
	if err := g.sameSize("AndNot", other); err != nil {
		return err
	}
	simd.AndNotWords(g.words, other.words)
	return nil
}

// Xor sets g to g ^ other.
func (g *Grid) Xor(other *Grid) error {
	if err := g.sameSize("Xor", other); err != nil {
		return err
	}
	simd.XorWords(g.words, other.words)
	return nil
}
