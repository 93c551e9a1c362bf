package vec

import (
	"math/rand"
	"reflect"
	"testing"
)

var nibbleTable = [16]byte{0xF0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0xA, 0xB, 0xC, 0xD, 0xE, 0x0F}

func TestTableLookupBytes_Block16(t *testing.T) {
	idx := make([]uint8, 16)
	for i := range idx {
		idx[i] = uint8(15 - i)
	}
	got := BlockShuffler().Gather(&nibbleTable, Load(idx))

	want := make([]uint8, 16)
	for i := range want {
		want[i] = nibbleTable[15-i]
	}
	if !reflect.DeepEqual(got.Data(), want) {
		t.Errorf("Gather() = %v, want %v", got.Data(), want)
	}
}

func TestTableLookupBytes_BlockOrder(t *testing.T) {
	// At widths wider than one block, results must concatenate
	// lane-for-lane in source order, not block-reversed.
	for _, lanes := range []int{32, 64} {
		idx := make([]uint8, lanes)
		for i := range idx {
			idx[i] = uint8(i % 16)
		}
		got := BlockShuffler().Gather(&nibbleTable, Load(idx))
		for i, v := range got.Data() {
			if v != nibbleTable[i%16] {
				t.Errorf("lanes=%d: lane %d = %#x, want %#x", lanes, i, v, nibbleTable[i%16])
			}
		}
	}
}

func TestTableLookupBytes_TierEquivalence(t *testing.T) {
	// The block kernel and the per-lane fallback must agree at every
	// supported width for all in-range index values.
	rng := rand.New(rand.NewSource(1))
	for _, lanes := range []int{16, 32, 64} {
		for trial := 0; trial < 100; trial++ {
			idx := make([]uint8, lanes)
			for i := range idx {
				idx[i] = uint8(rng.Intn(16))
			}
			v := Load(idx)
			block := BlockShuffler().Gather(&nibbleTable, v)
			scalar := ScalarShuffler().Gather(&nibbleTable, v)
			if !reflect.DeepEqual(block.Data(), scalar.Data()) {
				t.Fatalf("lanes=%d idx=%v: block=%v scalar=%v",
					lanes, idx, block.Data(), scalar.Data())
			}
		}
	}
}

func TestTableLookupBytes_ExhaustiveIndices(t *testing.T) {
	// Every index value 0-15 in every lane position, both tiers.
	for val := 0; val < 16; val++ {
		idx := Set(64, uint8(val))
		for _, s := range []Shuffler{BlockShuffler(), ScalarShuffler()} {
			got := s.Gather(&nibbleTable, idx)
			for lane, b := range got.Data() {
				if b != nibbleTable[val] {
					t.Fatalf("%s: idx=%d lane=%d got %#x want %#x",
						s.Name(), val, lane, b, nibbleTable[val])
				}
			}
		}
	}
}

func TestTableLookupBytes_NonBlockWidth(t *testing.T) {
	// Widths that are not a multiple of 16 take the per-lane path but
	// must still gather correctly.
	idx := []uint8{0, 5, 15, 3, 9}
	got := BlockShuffler().Gather(&nibbleTable, Load(idx))
	want := []uint8{nibbleTable[0], nibbleTable[5], nibbleTable[15], nibbleTable[3], nibbleTable[9]}
	if !reflect.DeepEqual(got.Data(), want) {
		t.Errorf("Gather() = %v, want %v", got.Data(), want)
	}
}

func TestActiveShuffler(t *testing.T) {
	s := ActiveShuffler()
	if s == nil {
		t.Fatal("ActiveShuffler() = nil")
	}
	if CurrentLevel() == LevelScalar && s.Name() != "scalar" {
		t.Errorf("scalar level selected %q tier", s.Name())
	}
	if CurrentLevel() != LevelScalar && s.Name() != "block" {
		t.Errorf("%s level selected %q tier", CurrentLevel(), s.Name())
	}
}

func BenchmarkTableLookupBytes(b *testing.B) {
	idx := Load(make([]uint8, 64))
	for _, s := range []Shuffler{BlockShuffler(), ScalarShuffler()} {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.Gather(&nibbleTable, idx)
			}
		})
	}
}
