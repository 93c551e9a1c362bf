//go:build arm64

package vec

import "golang.org/x/sys/cpu"

func init() {
	// Check for SIMDUTF_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for future SVE support.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16 // NEON is 128-bit (16 byte lanes)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// Future: SVE support (scalable width, TBL at wider vectors)
	// if cpu.ARM64.HasSVE { ... }
}
