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

// This file provides the byte-lane specific operations. Unlike the
// generic ops, these exist only for uint8 lanes: they mirror byte-level
// instructions (palignr, pcmpgtb) that have no meaning at wider element
// sizes.

// CombineShiftRight shifts the lanes of hi up by n positions, pulling
// the vacated low lanes from the top of lo (the palignr idiom). Lane i
// of the result is lo[N-n+i] for i < n and hi[i-n] otherwise:
//
//	hi = [h0,h1,...,h15], lo = [l0,...,l15], n = 1
//	-> [l15, h0, h1, ..., h14]
//
// This is the seam operation: a chunk pipeline looks back at the
// previous chunk's trailing lanes by passing it as lo. Note n counts
// the lanes pulled from lo; the palignr byte count runs the other way
// (this is palignr(hi, lo, N-n)).
// n must be in [0, N]; both vectors must have the same width.
func CombineShiftRight(hi, lo Vec[uint8], n int) Vec[uint8] {
	lanes := min(len(lo.data), len(hi.data))
	result := make([]uint8, lanes)
	if n <= 0 {
		copy(result, hi.data[:lanes])
		return Vec[uint8]{data: result}
	}
	if n >= lanes {
		copy(result, lo.data[:lanes])
		return Vec[uint8]{data: result}
	}
	copy(result[:n], lo.data[lanes-n:lanes])
	copy(result[n:], hi.data[:lanes-n])
	return Vec[uint8]{data: result}
}

// GreaterThanSigned compares byte lanes as two's-complement int8
// (the pcmpgtb idiom), producing a mask.
//
// Classification tables use 0x80 (-128) as a "never greater" sentinel
// and 0x7F (127) as an "almost always greater" sentinel; those only
// work under signed ordering.
func GreaterThanSigned(a, b Vec[uint8]) Mask[uint8] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = int8(a.data[i]) > int8(b.data[i])
	}
	return Mask[uint8]{bits: bits}
}
