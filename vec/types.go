// Package vec provides the fixed-width lane vectors that the UTF-8
// validation pipeline is built on.
//
// A vector is a parallel array of lanes processed in a single step. The
// package follows the Highway design: portable operations with a runtime
// capability probe, with the vector width (16, 32 or 64 byte lanes) as a
// first-class parameter rather than a compile-time constant.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simdutf/vec"
//
//	w := vec.PreferredWidth()
//	v := vec.Load(buf[:w.Lanes()])
//	hi := vec.ShiftRight(v, 4)
package vec

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for the types that can occupy vector lanes.
// Unlike general-purpose vector libraries this package only deals in
// integer lanes; byte-stream validation never touches floats.
type Lanes interface {
	SignedInts | UnsignedInts
}

// Vec is a fixed-width vector of lanes. The width is decided when the
// vector is created (via Load, Set or Zero) and stays constant through
// all operations derived from it.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation, one flag per lane.
//
// Mask instances should not be created directly; use comparison operations
// like Equal or GreaterThan instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
