// Copyright 2026 go-simdutf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

// Width is a vector width in byte lanes. It is a configuration value,
// not a global: algorithms take a Width and size their chunks from it,
// so the same code runs at 16, 32 or 64 lanes.
type Width int

const (
	// Width16 forces 128-bit vectors (SSSE3, NEON).
	Width16 Width = 16

	// Width32 forces 256-bit vectors (AVX2).
	Width32 Width = 32

	// Width64 forces 512-bit vectors (AVX-512).
	Width64 Width = 64
)

// Lanes returns the number of byte lanes at this width.
func (w Width) Lanes() int {
	return int(w)
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width16, Width32, Width64:
		return true
	}
	return false
}

// String returns a human-readable name for the width ("16", "32", "64").
func (w Width) String() string {
	switch w {
	case Width16:
		return "16"
	case Width32:
		return "32"
	case Width64:
		return "64"
	}
	return "invalid"
}

// PreferredWidth returns the width matching the widest vector unit the
// capability probe found at startup. In scalar mode this is Width16:
// the per-lane fallback produces identical results at any width, and 16
// keeps the zero-padded tail copies small.
func PreferredWidth() Width {
	switch currentWidth {
	case 64:
		return Width64
	case 32:
		return Width32
	default:
		return Width16
	}
}
