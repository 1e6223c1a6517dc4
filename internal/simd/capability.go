package simd

import (
	"os"
	"runtime"
	"strings"
)

// Kernel identifies a kernel set.
type Kernel uint8

const (
	// Generic represents the portable SWAR implementation.
	Generic Kernel = iota
	// Native represents the hardware popcount path (POPCNT on x86-64, CNT on ARM64).
	Native
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "native":
		return Native, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "BITGRID_SIMD"

// Package-level state, initialized once at package init.
var (
	activeKernel Kernel
	hasOverride  bool

	// CPU feature flags (set by platform-specific init)
	hasPOPCNT bool // x86-64
	hasASIMD  bool // ARM64
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			if isKernelAvailable(k) {
				use(k)
				return
			}
		}
	}

	use(selectBestKernel())
}

func isKernelAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Native:
		return hasPOPCNT || hasASIMD
	default:
		return false
	}
}

func selectBestKernel() Kernel {
	switch runtime.GOARCH {
	case "amd64":
		if hasPOPCNT {
			return Native
		}
	case "arm64":
		if hasASIMD {
			return Native
		}
	}
	return Generic
}

// use installs the kernel set for k.
func use(k Kernel) {
	activeKernel = k
	switch k {
	case Native:
		kernelPopcountWords = popcountWordsNative
		kernelEqualWords = equalWordsNative
	default:
		kernelPopcountWords = popcountWordsGeneric
		kernelEqualWords = equalWordsGeneric
	}
}

// ActiveKernel returns the currently active kernel set.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if BITGRID_SIMD selected the kernel set.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 ASIMD is available.
func HasASIMD() bool {
	return hasASIMD
}
