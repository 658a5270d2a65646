package astc

import (
	"math"
	"testing"
)

func TestHalfRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 2, 65504, 6.103515625e-05, 0.333251953125} {
		h := float32ToHalf(f)
		if got := halfToFloat32(h); got != f {
			t.Errorf("half round trip of %g = %g (bits %#04x)", f, got, h)
		}
	}
}

func TestHalfSpecials(t *testing.T) {
	if got := halfToFloat32(0x3C00); got != 1.0 {
		t.Errorf("0x3C00 = %g", got)
	}
	if got := halfToFloat32(0x7C00); !math.IsInf(float64(got), 1) {
		t.Errorf("0x7C00 = %g, want +Inf", got)
	}
	if got := halfToFloat32(0xFC00); !math.IsInf(float64(got), -1) {
		t.Errorf("0xFC00 = %g, want -Inf", got)
	}
	if got := halfToFloat32(0x7C01); !math.IsNaN(float64(got)) {
		t.Errorf("0x7C01 = %g, want NaN", got)
	}

	// Subnormal halves.
	if got := halfToFloat32(0x0001); got != 5.9604645e-08 {
		t.Errorf("smallest subnormal = %g", got)
	}
}

func TestUnorm16ToSF16(t *testing.T) {
	if got := unorm16ToSF16(0xFFFF); got != 0x3C00 {
		t.Errorf("unorm16ToSF16(0xFFFF) = %#04x, want 0x3C00", got)
	}
	if got := unorm16ToSF16(0); got != 0 {
		t.Errorf("unorm16ToSF16(0) = %#04x", got)
	}

	// Half of the range maps to roughly 0.5.
	f := halfToFloat32(unorm16ToSF16(0x8000))
	if f < 0.4999 || f > 0.5001 {
		t.Errorf("unorm16ToSF16(0x8000) decodes to %g", f)
	}

	// Monotone over the whole range.
	prev := float32(-1)
	for v := 0; v <= 0xFFFF; v += 257 {
		f := halfToFloat32(unorm16ToSF16(uint16(v)))
		if f < prev {
			t.Fatalf("not monotone at %#x: %g < %g", v, f, prev)
		}
		prev = f
	}
}

func TestLNSToSF16Monotone(t *testing.T) {
	prev := float32(-1)
	for v := 0; v <= 0xFFFF; v += 31 {
		f := halfToFloat32(lnsToSF16(uint16(v)))
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			t.Fatalf("lns %#x decodes to %g", v, f)
		}
		if f < prev {
			t.Fatalf("not monotone at %#x: %g < %g", v, f, prev)
		}
		prev = f
	}
}

func TestFloatTables(t *testing.T) {
	if unorm16ToFloat32Table[0] != 0 || unorm16ToFloat32Table[0xFFFF] != 1 {
		t.Error("unorm16 table endpoints wrong")
	}
	if lnsToFloat32Table[0x2000] != halfToFloat32(lnsToSF16(0x2000)) {
		t.Error("lns table out of sync with lnsToSF16")
	}
}
