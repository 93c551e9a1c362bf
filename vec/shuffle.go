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

// This file provides the 16-entry byte table gather (PSHUFB / TBL
// semantics). The hardware instruction only exists at 16 lanes; wider
// vectors are handled by decomposing into 16-lane blocks and gathering
// each block against the same table.

// blockLanes is the width of the native table-lookup block.
const blockLanes = 16

// Shuffler gathers bytes from a 16-entry table using per-lane indices.
// Implementations form the capability tiers of the lookup: a block
// kernel standing in for the hardware shuffle, and a per-lane scalar
// fallback. Both must produce identical results for in-range indices;
// that equivalence is part of the package's test surface.
type Shuffler interface {
	// Name identifies the tier ("block", "scalar").
	Name() string

	// Gather returns a vector where lane i holds table[idx lane i & 0xF].
	// Behavior is unspecified when an index has any of its upper 4 bits
	// set; callers must produce 0-15 by construction.
	Gather(table *[16]byte, idx Vec[uint8]) Vec[uint8]
}

// activeShuffler is the tier selected by the capability probe. The
// assignment lives in an init function so it runs after the probe in
// dispatch_*.go has set the level (package variable initializers would
// run before it).
var activeShuffler Shuffler

func init() {
	if currentLevel == LevelScalar {
		activeShuffler = scalarShuffler{}
	} else {
		activeShuffler = blockShuffler{}
	}
}

// ActiveShuffler returns the tier selected at startup.
func ActiveShuffler() Shuffler {
	return activeShuffler
}

// BlockShuffler returns the block-kernel tier regardless of the probe.
// The pure-Go kernel is correct on every platform; this exists for
// equivalence testing and benchmarking against the scalar tier.
func BlockShuffler() Shuffler {
	return blockShuffler{}
}

// ScalarShuffler returns the per-lane fallback tier regardless of the
// probe. Roughly 3x slower than the block kernel at 16 lanes.
func ScalarShuffler() Shuffler {
	return scalarShuffler{}
}

// TableLookupBytes gathers from a 16-entry table using the tier
// selected at startup. Lane i of the result is table[idx[i] & 0xF].
func TableLookupBytes(table *[16]byte, idx Vec[uint8]) Vec[uint8] {
	return activeShuffler.Gather(table, idx)
}

// blockShuffler delegates to the 16-lane kernel, splitting wider
// vectors into 16-lane blocks and recombining lane-for-lane in order.
type blockShuffler struct{}

func (blockShuffler) Name() string { return "block" }

func (s blockShuffler) Gather(table *[16]byte, idx Vec[uint8]) Vec[uint8] {
	n := len(idx.data)
	if n == blockLanes {
		result := make([]uint8, blockLanes)
		gatherBlock(table, idx.data, result)
		return Vec[uint8]{data: result}
	}
	if n%blockLanes == 0 {
		result := make([]uint8, n)
		for off := 0; off < n; off += blockLanes {
			sub := s.Gather(table, Vec[uint8]{data: idx.data[off : off+blockLanes]})
			copy(result[off:off+blockLanes], sub.data)
		}
		return Vec[uint8]{data: result}
	}
	// Widths that are not a multiple of the block size never have a
	// hardware path; gather lane by lane.
	return scalarShuffler{}.Gather(table, idx)
}

// gatherBlock is the 16-lane kernel. It is fully unrolled so the
// compiler can keep the table in registers and elide bounds checks,
// standing in for the single-instruction PSHUFB/TBL path.
func gatherBlock(table *[16]byte, idx, dst []uint8) {
	_ = idx[15]
	_ = dst[15]
	dst[0] = table[idx[0]&0x0F]
	dst[1] = table[idx[1]&0x0F]
	dst[2] = table[idx[2]&0x0F]
	dst[3] = table[idx[3]&0x0F]
	dst[4] = table[idx[4]&0x0F]
	dst[5] = table[idx[5]&0x0F]
	dst[6] = table[idx[6]&0x0F]
	dst[7] = table[idx[7]&0x0F]
	dst[8] = table[idx[8]&0x0F]
	dst[9] = table[idx[9]&0x0F]
	dst[10] = table[idx[10]&0x0F]
	dst[11] = table[idx[11]&0x0F]
	dst[12] = table[idx[12]&0x0F]
	dst[13] = table[idx[13]&0x0F]
	dst[14] = table[idx[14]&0x0F]
	dst[15] = table[idx[15]&0x0F]
}

// scalarShuffler iterates every lane and indexes the table directly.
type scalarShuffler struct{}

func (scalarShuffler) Name() string { return "scalar" }

func (scalarShuffler) Gather(table *[16]byte, idx Vec[uint8]) Vec[uint8] {
	result := make([]uint8, len(idx.data))
	for i, v := range idx.data {
		result[i] = table[v&0x0F]
	}
	return Vec[uint8]{data: result}
}
