// Package bitgrid provides a validated, bit-packed 2D boolean grid for Go.
//
// A Grid stores WordWidth()×Height() 32-bit words in row-major order. Each
// word packs 32 cells, most significant bit first, so a row is
// WordWidth()*32 cells wide. What a set bit means is up to the caller
// (typically an alive cell of a cellular automaton built on top).
//
// # Quick Start
//
//	g, err := bitgrid.New(2, 1, []uint32{0xFFFFFFFF, 0x00000000})
//	if err != nil {
//	    // errors.Is(err, bitgrid.ErrInvalidLength)
//	}
//	fmt.Println(g.PopulationCount()) // 32
//
//	words := g.Data()      // copy; mutating it does not affect g
//	err = g.SetData(words) // all-or-nothing replacement
//
// Cell-sized grids:
//
//	g, _ := bitgrid.Make(100, 50) // WordWidth()=4, Width()=128
//	_ = g.Set(3, 7)
//	alive, _ := g.Get(3, 7)
//
// # Invariant
//
// len(Data()) == WordWidth()*Height() for the whole lifetime of a grid.
// New and SetData reject mismatched buffers with a *LengthError before any
// mutation; the grid is never observable in a partially replaced state.
//
// # Errors
//
// All caller mistakes surface as errors, never panics:
//
//	ErrInvalidLength    *LengthError            buffer length != WordWidth*Height
//	ErrInvalidDimension *InvalidDimensionError  negative or unaddressable shape
//	ErrOutOfRange       *OutOfRangeError        cell coordinates outside the grid
//	ErrSizeMismatch     *SizeMismatchError      combining grids of different shape
//	ErrInvalidOffset                            Expanded offset not word aligned
//
// # Roaring Interop
//
// ToRoaring and FromRoaring convert between a grid and a
// github.com/RoaringBitmap/roaring/v2 bitmap of cell indexes y*Width()+x,
// for callers that keep long-lived cell sets in roaring form.
//
// # Observability
//
// WithLogger and WithMetricsCollector attach a slog-based Logger and a
// MetricsCollector. Rejected constructions and replacements are logged at
// Warn level. Both default to no-ops.
//
// # Kernels
//
// Population counts and bulk word operations dispatch to internal kernels
// chosen at startup from CPU features. Set BITGRID_SIMD=generic to force the
// portable implementation.
package bitgrid
