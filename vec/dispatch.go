package vec

import (
	"os"
	"strconv"
)

// Level represents the vector capability tier detected at startup.
type Level int

const (
	// LevelScalar indicates no vector unit, pure per-lane Go code.
	LevelScalar Level = iota

	// LevelSSSE3 indicates the x86-64 16-byte shuffle tier (PSHUFB).
	LevelSSSE3

	// LevelAVX2 indicates 256-bit vectors (32 byte lanes).
	LevelAVX2

	// LevelAVX512 indicates 512-bit vectors (64 byte lanes).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit, 16 byte lanes, TBL shuffle).
	LevelNEON
)

// String returns a human-readable name for the capability level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSSE3:
		return "ssse3"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected capability tier for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the vector register width in byte lanes for the
// current level. Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the capability tier being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in byte lanes.
// For example: 16 for SSSE3/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current tier.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the SIMDUTF_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDUTF_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // 16-lane vectors even in scalar mode for consistency
}
