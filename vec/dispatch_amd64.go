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

//go:build amd64

package vec

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Prefer the widest tier the CPU offers. AVX-512BW covers the byte
	// ops (shuffle, saturated sub, byte compares) at 64 lanes; AVX2 at
	// 32; SSSE3 is the baseline PSHUFB tier at 16.
	switch {
	case cpu.X86.HasAVX512BW:
		currentLevel = LevelAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
		currentWidth = 32
	case cpu.X86.HasSSSE3:
		currentLevel = LevelSSSE3
		currentWidth = 16
	default:
		setScalarMode()
	}
}
