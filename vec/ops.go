package vec

// This file provides pure Go (per-lane) implementations of the vector
// operations the validation pipelines are built from. They run a loop
// per lane but express the algorithms in terms of whole-vector steps,
// which is what allows the engine to stay width-polymorphic.

// Load creates a vector whose lanes are exactly the elements of src.
// The caller chooses the width by slicing: Load(buf[off:off+w.Lanes()]).
func Load[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector of the given width with all lanes set to value.
func Set[T Lanes](lanes int, value T) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector of the given width with all lanes set to zero.
func Zero[T Lanes](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes](lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition with the type's normal wraparound.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction with saturation.
// Results are clamped at zero instead of wrapping.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T UnsignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if b.data[i] < a.data[i] {
			result[i] = a.data[i] - b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Lanes](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = v.data[i] >> bits
	}
	return Vec[T]{data: result}
}

// Equal compares lanes for equality, producing a mask.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan compares lanes with the type's native ordering
// (unsigned for unsigned types), producing a mask.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr combines two masks lane-wise with OR.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskAnd combines two masks lane-wise with AND.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskEqual compares two masks lane-wise, true where both agree.
// This is the XNOR of the masks (the pcmpeqb-of-compares idiom).
func MaskEqual[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] == b.bits[i]
	}
	return Mask[T]{bits: bits}
}
