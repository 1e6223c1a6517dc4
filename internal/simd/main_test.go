package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints the active kernel so CI logs show which path was tested.
func TestMain(m *testing.M) {
	fmt.Printf("=== bitgrid kernel diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("  ASIMD: %v\n", HasASIMD())
	case "amd64":
		fmt.Printf("  POPCNT: %v\n", HasPOPCNT())
	}

	fmt.Printf("==================================\n\n")

	os.Exit(m.Run())
}
