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

package utf8

import "github.com/ajroetker/go-simdutf/vec"

// chunkState is the state carried between consecutive chunks. A
// multi-byte sequence can straddle the seam by at most three lanes, so
// the next chunk only ever reads the trailing lanes of these vectors.
type chunkState struct {
	rawBytes             vec.Vec[uint8]
	highNibbles          vec.Vec[uint8]
	carriedContinuations vec.Vec[uint8]
}

// initialState returns the all-zero state a validation run starts from.
// Zero raw bytes classify as ASCII with no pending continuations, which
// is exactly "nothing before the first chunk".
func (v *Validator) initialState() chunkState {
	return chunkState{
		rawBytes:             vec.Zero[uint8](v.lanes),
		highNibbles:          vec.Zero[uint8](v.lanes),
		carriedContinuations: vec.Zero[uint8](v.lanes),
	}
}

// step runs the per-chunk pipeline: a pure function of the previous
// state and the chunk's raw bytes, returning the next state and the
// error lanes found in this chunk. Keeping it pure makes the engine
// testable chunk by chunk.
func (v *Validator) step(prev chunkState, raw vec.Vec[uint8]) (chunkState, vec.Mask[uint8]) {
	// ASCII chunks need no classification; the only thing that can be
	// wrong is a multi-byte sequence the previous chunk left unfinished.
	// An error-free predecessor always hands over a debt of at most one
	// lane, so the carry settles to all-ones across a pure-ASCII chunk.
	if !vec.GreaterThan(raw, v.asciiMax).AnyTrue() {
		next := chunkState{
			rawBytes:             raw,
			highNibbles:          vec.ShiftRight(raw, 4),
			carriedContinuations: v.ones,
		}
		return next, vec.GreaterThan(prev.carriedContinuations, v.debtLimit)
	}

	high := vec.ShiftRight(raw, 4)

	// No valid UTF-8 byte exceeds 0xF4.
	errs := vec.GreaterThan(raw, v.f4)

	lengths := v.shuf.Gather(&continuationLengths, high)
	carried := v.carryContinuations(lengths, prev.carriedContinuations)

	// A lane is in error when its continuation debt disagrees with its
	// own classification: a continuation byte (length 0) with no debt
	// is unexpected, and a starter byte with excess debt means a lead
	// upstream was not given enough continuations.
	errs = vec.MaskOr(errs, vec.MaskEqual(
		vec.GreaterThan(carried, lengths),
		vec.GreaterThan(lengths, v.zeros),
	))

	off1 := vec.CombineShiftRight(raw, prev.rawBytes, 1)

	// 0xED opens the surrogate range U+D800-U+DFFF when followed by
	// more than 0x9F; 0xF4 runs past U+10FFFF beyond 0x8F.
	badED := vec.MaskAnd(vec.Equal(off1, v.ed), vec.GreaterThan(raw, v.surrogateCeil))
	badF4 := vec.MaskAnd(vec.Equal(off1, v.f4), vec.GreaterThan(raw, v.supplementCeil))
	errs = vec.MaskOr(errs, vec.MaskOr(badED, badF4))

	// Overlong encodings: both the lead byte and the byte after it sit
	// below the floor for the lead's nibble. Signed compares make the
	// 0x80/0x7F table sentinels work.
	off1High := vec.CombineShiftRight(high, prev.highNibbles, 1)
	initialUnder := vec.GreaterThanSigned(v.shuf.Gather(&initialMins, off1High), off1)
	secondUnder := vec.GreaterThanSigned(v.shuf.Gather(&secondMins, off1High), raw)
	errs = vec.MaskOr(errs, vec.MaskAnd(initialUnder, secondUnder))

	return chunkState{rawBytes: raw, highNibbles: high, carriedContinuations: carried}, errs
}

// carryContinuations reconstructs, for every lane, the continuation
// debt outstanding at that position. A lead byte up to three lanes back
// can still owe continuations here; one lane of lookback plus two
// lanes of the running sum covers offsets 1 and 2, and the lane's own
// classification covers offset 0.
func (v *Validator) carryContinuations(lengths, prevCarried vec.Vec[uint8]) vec.Vec[uint8] {
	right1 := vec.SaturatedSub(vec.CombineShiftRight(lengths, prevCarried, 1), v.ones)
	sum := vec.Add(lengths, right1)
	right2 := vec.SaturatedSub(vec.CombineShiftRight(sum, prevCarried, 2), v.twos)
	return vec.Add(sum, right2)
}
