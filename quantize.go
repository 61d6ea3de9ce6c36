package waver

import (
	"math"
	"unsafe"
)

// Sample is the set of integer types a Waveform can be quantized to.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// quantizer holds the per-type constants of the mapping from [-1, 1] onto T.
type quantizer[T Sample] struct {
	signed   bool
	half     float64 // 2^(N-1)
	full     float64 // 2^N - 1, unsigned only
	min, max T
	mid      T
}

func newQuantizer[T Sample]() quantizer[T] {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	q := quantizer[T]{
		signed: ^zero < 0,
		half:   math.Ldexp(1, int(bits)-1),
	}
	if q.signed {
		q.min = T(1) << (bits - 1)
		q.max = ^q.min
		return q
	}
	q.full = math.Ldexp(1, int(bits)) - 1
	q.max = ^zero
	q.mid = T(1) << (bits - 1)
	return q
}

// quantize rounds half away from zero and clamps in float64 before the
// conversion, so out-of-range values never reach an int conversion.
func (q quantizer[T]) quantize(x float64) T {
	if math.IsNaN(x) {
		return q.mid
	}
	if q.signed {
		v := math.Round(x * q.half)
		switch {
		case v >= q.half:
			return q.max
		case v <= -q.half:
			return q.min
		}
		return T(v)
	}
	v := math.Round((x + 1) / 2 * q.full)
	switch {
	case v <= 0:
		return 0
	case v >= q.full:
		return q.max
	}
	return T(v)
}

func (q quantizer[T]) dequantize(v T) float64 {
	if q.signed {
		return float64(v) / q.half
	}
	return float64(v)/q.full*2 - 1
}

// Quantize maps x, nominally in [-1, 1], onto the range of T.
//
// Signed N-bit types use round(x * 2^(N-1)); unsigned types map [-1, 1]
// onto [0, 2^N-1] via round((x+1)/2 * (2^N-1)). Results are clamped to the
// bounds of T. NaN maps to 0 for signed types and to Midpoint for unsigned.
func Quantize[T Sample](x float64) T {
	return newQuantizer[T]().quantize(x)
}

// Dequantize is the inverse of Quantize, up to rounding.
func Dequantize[T Sample](v T) float64 {
	return newQuantizer[T]().dequantize(v)
}

// Bounds returns the smallest and largest values of T.
func Bounds[T Sample]() (min, max T) {
	q := newQuantizer[T]()
	return q.min, q.max
}

// Midpoint is the value of T that represents silence: 0 for signed types
// and 2^(N-1) for unsigned ones.
func Midpoint[T Sample]() T {
	return newQuantizer[T]().mid
}
