package bitgrid

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/bitgrid/internal/simd"
)

// WordBits is the number of cells packed into one word.
const WordBits = 32

// Grid is a fixed-shape 2D grid of bits packed into 32-bit words.
//
// Memory layout (row-major, MSB-first inside a word):
//
//	┌──────────────────────────────────────────────────────────┐
//	│ row 0: word 0 (x 0..31) │ word 1 (x 32..63) │ ...         │
//	│ row 1: word W ...                                        │
//	└──────────────────────────────────────────────────────────┘
//
// Cell (x, y) lives in word y*WordWidth()+x/32 at bit 31-x%32.
//
// The backing buffer always holds exactly WordWidth()*Height() words. Data
// copies out and SetData copies in, so callers never alias grid storage.
//
// A Grid has a single owner. Concurrent readers are fine while nothing
// mutates it; SetData and the cell mutators need exclusive access.
type Grid struct {
	wordWidth int
	height    int
	words     []uint32

	opts options
}

// New creates a grid of wordWidth words per row and height rows holding a
// copy of data.
//
// It returns a *LengthError (matching ErrInvalidLength) if
// len(data) != wordWidth*height, and an *InvalidDimensionError if either
// dimension is negative.
func New(wordWidth, height int, data []uint32, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)

	g, err := newGrid(wordWidth, height, data, o)

	o.metricsCollector.RecordConstruct(err)
	o.logger.LogConstruct(context.Background(), wordWidth, height, err)

	if err != nil {
		return nil, err
	}
	return g, nil
}

// NewZeroed creates a zero-filled grid of wordWidth words per row and height rows.
func NewZeroed(wordWidth, height int, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)

	err := validateDimensions(wordWidth, height)

	o.metricsCollector.RecordConstruct(err)
	o.logger.LogConstruct(context.Background(), wordWidth, height, err)

	if err != nil {
		return nil, err
	}
	return &Grid{
		wordWidth: wordWidth,
		height:    height,
		words:     make([]uint32, wordWidth*height),
		opts:      o,
	}, nil
}

// Make creates a zero-filled grid able to hold width×height cells.
// The row is rounded up to whole words, so Width() may exceed width.
func Make(width, height int, opts ...Option) (*Grid, error) {
	if width < 0 {
		o := applyOptions(opts)
		err := &InvalidDimensionError{WordWidth: width, Height: height}
		o.metricsCollector.RecordConstruct(err)
		o.logger.LogConstruct(context.Background(), width, height, err)
		return nil, err
	}
	return NewZeroed(wordsFor(width), height, opts...)
}

func newGrid(wordWidth, height int, data []uint32, o options) (*Grid, error) {
	if err := validateDimensions(wordWidth, height); err != nil {
		return nil, err
	}
	if err := checkLength("New", wordWidth, height, data); err != nil {
		return nil, err
	}

	words := make([]uint32, len(data))
	copy(words, data)

	return &Grid{
		wordWidth: wordWidth,
		height:    height,
		words:     words,
		opts:      o,
	}, nil
}

func validateDimensions(wordWidth, height int) error {
	if wordWidth < 0 || height < 0 {
		return &InvalidDimensionError{WordWidth: wordWidth, Height: height}
	}
	// wordWidth*height must be addressable.
	if height > 0 && wordWidth > math.MaxInt/height {
		return &InvalidDimensionError{WordWidth: wordWidth, Height: height}
	}
	return nil
}

func checkLength(op string, wordWidth, height int, data []uint32) error {
	if expected := wordWidth * height; len(data) != expected {
		return &LengthError{Op: op, Expected: expected, Actual: len(data)}
	}
	return nil
}

// wordsFor returns the number of words needed for width cells.
func wordsFor(width int) int {
	return (width + WordBits - 1) / WordBits
}

// Data returns a copy of the backing words in row-major order.
func (g *Grid) Data() []uint32 {
	out := make([]uint32, len(g.words))
	copy(out, g.words)
	return out
}

// SetData replaces the backing words with a copy of data.
//
// The replacement is all-or-nothing: if len(data) != WordWidth()*Height()
// it returns a *LengthError and the grid is left untouched.
func (g *Grid) SetData(data []uint32) error {
	start := time.Now()

	err := checkLength("SetData", g.wordWidth, g.height, data)
	if err == nil {
		copy(g.words, data)
	}

	g.opts.metricsCollector.RecordSetData(time.Since(start), err)
	g.opts.logger.LogSetData(context.Background(), len(data), err)

	return err
}

// WordWidth returns the number of words per row.
func (g *Grid) WordWidth() int { return g.wordWidth }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of cells per row (WordWidth()*32).
func (g *Grid) Width() int { return g.wordWidth * WordBits }

// Size returns the grid size in cells.
func (g *Grid) Size() (width, height int) { return g.Width(), g.height }

// PopulationCount returns the number of set bits across all words.
//
// Time complexity: O(WordWidth()*Height()).
func (g *Grid) PopulationCount() uint64 {
	start := time.Now()
	n := simd.PopcountWords(g.words)
	g.opts.metricsCollector.RecordPopulationCount(time.Since(start), n)
	return n
}

// Clone returns a deep copy of the grid. The copy shares the logger and
// metrics collector.
func (g *Grid) Clone() *Grid {
	return &Grid{
		wordWidth: g.wordWidth,
		height:    g.height,
		words:     g.Data(),
		opts:      g.opts,
	}
}

// Clear sets every cell to 0.
func (g *Grid) Clear() {
	clear(g.words)
}

// WordSource produces random words. *math/rand.Rand, *math/rand/v2.Rand and
// *testutil.RNG all satisfy it.
type WordSource interface {
	Uint32() uint32
}

// Randomize fills every word from src.
func (g *Grid) Randomize(src WordSource) {
	for i := range g.words {
		g.words[i] = src.Uint32()
	}
}
