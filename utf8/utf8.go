// Package utf8 provides vectorized UTF-8 validation.
//
// Valid reports whether a byte buffer is well-formed UTF-8, processing
// a whole vector of bytes per step. The fast path only answers yes or
// no; it never reports where or why a buffer is malformed. Callers that
// need diagnostics can re-scan a rejected buffer with the standard
// library's decoder.
//
//	if !utf8.Valid(buf) {
//		// reject
//	}
package utf8

import "github.com/ajroetker/go-simdutf/vec"

// Validator validates UTF-8 at a fixed vector width. The zero value is
// not usable; call New. A Validator is immutable after New and safe for
// concurrent use: every call owns its own chunk state.
type Validator struct {
	lanes int
	shuf  vec.Shuffler

	// Constant vectors at the configured width, built once.
	zeros          vec.Vec[uint8]
	ones           vec.Vec[uint8]
	twos           vec.Vec[uint8]
	asciiMax       vec.Vec[uint8] // 0x7F
	f4             vec.Vec[uint8] // 0xF4: range ceiling and 4-byte lead of the last plane
	ed             vec.Vec[uint8] // 0xED: 3-byte lead adjoining the surrogate range
	surrogateCeil  vec.Vec[uint8] // 0x9F: last valid byte after 0xED
	supplementCeil vec.Vec[uint8] // 0x8F: last valid byte after 0xF4
	debtLimit      vec.Vec[uint8]
}

// Option configures a Validator.
type Option func(*Validator)

// WithWidth selects the vector width (chunk size) the validator runs
// at. The default is vec.PreferredWidth(). Invalid widths are ignored.
func WithWidth(w vec.Width) Option {
	return func(v *Validator) {
		if w.Valid() {
			v.lanes = w.Lanes()
		}
	}
}

// WithShuffler selects the table-gather tier. The default is the tier
// the capability probe picked; tests and tools use this to force the
// scalar fallback.
func WithShuffler(s vec.Shuffler) Option {
	return func(v *Validator) {
		if s != nil {
			v.shuf = s
		}
	}
}

// New returns a Validator for the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		lanes: vec.PreferredWidth().Lanes(),
		shuf:  vec.ActiveShuffler(),
	}
	for _, opt := range opts {
		opt(v)
	}

	n := v.lanes
	v.zeros = vec.Zero[uint8](n)
	v.ones = vec.Set(n, uint8(1))
	v.twos = vec.Set(n, uint8(2))
	v.asciiMax = vec.Set(n, uint8(0x7F))
	v.f4 = vec.Set(n, uint8(0xF4))
	v.ed = vec.Set(n, uint8(0xED))
	v.surrogateCeil = vec.Set(n, uint8(0x9F))
	v.supplementCeil = vec.Set(n, uint8(0x8F))

	// Only the final lane's pending-continuation count matters at true
	// end of buffer: a value above 1 there means a sequence was cut
	// off. The other lanes are compared against 9, which no carry in an
	// error-free chunk ever reaches, so they never fire.
	debt := make([]uint8, n)
	for i := range debt {
		debt[i] = 9
	}
	debt[n-1] = 1
	v.debtLimit = vec.Load(debt)

	return v
}

// Width returns the vector width the validator runs at.
func (v *Validator) Width() vec.Width {
	return vec.Width(v.lanes)
}

// Valid reports whether p is well-formed UTF-8. The empty buffer is
// vacuously well formed. Validation stops at the first chunk containing
// an error.
func (v *Validator) Valid(p []byte) bool {
	if len(p) == 0 {
		return true
	}

	n := v.lanes
	st := v.initialState()
	var errs vec.Mask[uint8]

	i := 0
	for ; i+n <= len(p); i += n {
		st, errs = v.step(st, vec.Load(p[i:i+n]))
		if errs.AnyTrue() {
			return false
		}
	}

	if i < len(p) {
		// Zero-pad the tail to a full chunk. Zero bytes classify as
		// ASCII and cannot themselves fail, but a sequence truncated at
		// the true end of input still trips the continuation check when
		// its debt runs into the padding.
		tail := make([]byte, n)
		copy(tail, p[i:])
		_, errs = v.step(st, vec.Load(tail))
		return !errs.AnyTrue()
	}

	// Whole-chunk input: the last chunk may not end owing continuations.
	return !vec.GreaterThan(st.carriedContinuations, v.debtLimit).AnyTrue()
}

// defaultValidator runs at the width and gather tier the capability
// probe selected at startup.
var defaultValidator = New()

// Valid reports whether p is well-formed UTF-8 using the process-wide
// default validator.
func Valid(p []byte) bool {
	return defaultValidator.Valid(p)
}

// ValidString is the string form of Valid.
func ValidString(s string) bool {
	return defaultValidator.Valid([]byte(s))
}
