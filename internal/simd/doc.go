// Package simd provides word kernels for packed bit grids.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: ASIMD (CNT)
//
// Runtime CPU feature detection selects the kernel set. Set BITGRID_SIMD=generic
// to force the portable SWAR fallback.
//
// # Operations
//
//   - Reduction: PopcountWords
//   - Logic: AndWords, OrWords, AndNotWords, XorWords
//   - Comparison: EqualWords
//
// All kernels operate on []uint32 and require equal-length operands; callers
// validate lengths before dispatch.
package simd
