package simd

import "math/bits"

// ==============================================================================
// Word Operations
// ==============================================================================
//
// These operations back the bitgrid package. They operate on []uint32 holding
// row-major packed cells.

// Kernel function pointers. Generic implementations are the default;
// initCapabilities overrides them when the CPU has a hardware popcount.
var (
	kernelPopcountWords = popcountWordsGeneric
	kernelEqualWords    = equalWordsGeneric
)

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint32) uint64 {
	return kernelPopcountWords(words)
}

// EqualWords reports whether a and b hold the same words.
func EqualWords(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	return kernelEqualWords(a, b)
}

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint32) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// ==============================================================================
// Generic implementations
// ==============================================================================

// onesCount32 is the SWAR bit count from "Bit Twiddling Hacks".
func onesCount32(n uint32) uint32 {
	n -= (n >> 1) & 0x55555555
	n = (n & 0x33333333) + ((n >> 2) & 0x33333333)
	return (((n + (n >> 4)) & 0x0F0F0F0F) * 0x01010101) >> 24
}

func popcountWordsGeneric(words []uint32) uint64 {
	var count uint64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += uint64(onesCount32(words[i]))
		count += uint64(onesCount32(words[i+1]))
		count += uint64(onesCount32(words[i+2]))
		count += uint64(onesCount32(words[i+3]))
	}
	for ; i < len(words); i++ {
		count += uint64(onesCount32(words[i]))
	}
	return count
}

func equalWordsGeneric(a, b []uint32) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ==============================================================================
// Native implementations
// ==============================================================================
//
// Pairs of words are folded into one uint64 so that math/bits lowers each pair
// to a single POPCNT/CNT instruction.

func popcountWordsNative(words []uint32) uint64 {
	var count uint64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += uint64(bits.OnesCount64(uint64(words[i])<<32 | uint64(words[i+1])))
		count += uint64(bits.OnesCount64(uint64(words[i+2])<<32 | uint64(words[i+3])))
	}
	for ; i < len(words); i++ {
		count += uint64(bits.OnesCount32(words[i]))
	}
	return count
}

func equalWordsNative(a, b []uint32) bool {
	b = b[:len(a)]
	i := 0
	for ; i+2 <= len(a); i += 2 {
		if (a[i]^b[i])|(a[i+1]^b[i+1]) != 0 {
			return false
		}
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
