package waver

import (
	"math"
	"testing"
)

func TestQuantizeInt16(t *testing.T) {
	for x, want := range map[float64]int16{
		0:    0,
		.5:   16384,
		-.5:  -16384,
		1:    math.MaxInt16,
		-1:   math.MinInt16,
		2:    math.MaxInt16,
		-2:   math.MinInt16,
		1e-5: 0,
	} {
		if got := Quantize[int16](x); got != want {
			t.Errorf("Quantize[int16](%v) = %d, want %d", x, got, want)
		}
	}
}

func TestQuantizeUint8(t *testing.T) {
	for x, want := range map[float64]uint8{
		-1:  0,
		-2:  0,
		0:   128,
		.5:  191,
		1:   255,
		1.5: 255,
	} {
		if got := Quantize[uint8](x); got != want {
			t.Errorf("Quantize[uint8](%v) = %d, want %d", x, got, want)
		}
	}
}

func TestQuantizeNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	if got := Quantize[int16](nan); got != 0 {
		t.Errorf("int16 NaN: got %d", got)
	}
	if got := Quantize[uint16](nan); got != 1<<15 {
		t.Errorf("uint16 NaN: got %d", got)
	}
	if got := Quantize[int8](inf); got != math.MaxInt8 {
		t.Errorf("int8 +Inf: got %d", got)
	}
	if got := Quantize[int8](-inf); got != math.MinInt8 {
		t.Errorf("int8 -Inf: got %d", got)
	}
	if got := Quantize[uint32](-inf); got != 0 {
		t.Errorf("uint32 -Inf: got %d", got)
	}
}

func TestQuantize64(t *testing.T) {
	if got := Quantize[int64](1); got != math.MaxInt64 {
		t.Errorf("int64 1: got %d", got)
	}
	if got := Quantize[int64](-1); got != math.MinInt64 {
		t.Errorf("int64 -1: got %d", got)
	}
	if got := Quantize[uint64](1); got != math.MaxUint64 {
		t.Errorf("uint64 1: got %d", got)
	}
	if got := Quantize[uint64](0); got != 1<<63 {
		t.Errorf("uint64 0: got %d", got)
	}
	if got := Quantize[int64](.5); got != 1<<62 {
		t.Errorf("int64 .5: got %d", got)
	}
}

type level int16

func TestQuantizeNamedType(t *testing.T) {
	if got := Quantize[level](1); got != math.MaxInt16 {
		t.Errorf("got %d", got)
	}
}

func TestBounds(t *testing.T) {
	if lo, hi := Bounds[int8](); lo != -128 || hi != 127 {
		t.Errorf("int8: got [%d, %d]", lo, hi)
	}
	if lo, hi := Bounds[uint16](); lo != 0 || hi != math.MaxUint16 {
		t.Errorf("uint16: got [%d, %d]", lo, hi)
	}
	if lo, hi := Bounds[int32](); lo != math.MinInt32 || hi != math.MaxInt32 {
		t.Errorf("int32: got [%d, %d]", lo, hi)
	}
	if m := Midpoint[int32](); m != 0 {
		t.Errorf("int32 midpoint: got %d", m)
	}
	if m := Midpoint[uint8](); m != 128 {
		t.Errorf("uint8 midpoint: got %d", m)
	}
}

func TestDequantize(t *testing.T) {
	for _, x := range []float64{-1, -.5, 0, .25, .999} {
		if got := Dequantize(Quantize[int16](x)); math.Abs(got-x) > 1./32768 {
			t.Errorf("int16 %v: got %v", x, got)
		}
		if got := Dequantize(Quantize[uint8](x)); math.Abs(got-x) > 2./255 {
			t.Errorf("uint8 %v: got %v", x, got)
		}
	}
}
