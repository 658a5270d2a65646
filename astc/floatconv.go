package astc

import (
	"math"
	"math/bits"
)

// unorm16ToSF16 converts a 16-bit normalized integer to FP16, mapping
// 0xFFFF exactly to 1.0.
func unorm16ToSF16(p uint16) uint16 {
	if p == 0xFFFF {
		return 0x3C00
	}
	if p < 4 {
		return p << 8
	}

	lz := bits.LeadingZeros32(uint32(p)) - 16
	if lz < 0 {
		lz = 0
	}

	m := uint32(p) << uint(lz+1)
	m &= 0xFFFF
	m >>= 6

	return uint16(uint32(14-lz)<<10 | m)
}

// lnsToSF16 converts a value on the HDR endpoint's logarithmic scale to
// FP16, saturating at the largest finite half.
func lnsToSF16(p uint16) uint16 {
	mc := int(p & 0x7FF)
	ec := int(p >> 11)

	var mt int
	switch {
	case mc < 512:
		mt = mc * 3
	case mc < 1536:
		mt = mc*4 - 512
	default:
		mt = mc*5 - 2048
	}

	res := ec<<10 | mt>>3
	if res > 0x7BFF {
		res = 0x7BFF
	}
	return uint16(res)
}

func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		e := int32(-14)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3FF
		return math.Float32frombits(sign<<31 | uint32(e+127)<<23 | mant<<13)
	case 0x1F:
		return math.Float32frombits(sign<<31 | 0x7F800000 | mant<<13)
	default:
		return math.Float32frombits(sign<<31 | (exp+112)<<23 | mant<<13)
	}
}

func float32ToHalf(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b >> 16 & 0x8000)
	exp := int32(b >> 23 & 0xFF)
	mant := b & 0x7FFFFF

	if exp == 0xFF {
		if mant == 0 {
			return sign | 0x7C00
		}
		payload := uint16(mant>>13) & 0x3FF
		if payload == 0 {
			payload = 1
		}
		return sign | 0x7C00 | payload
	}

	exp = exp - 127 + 15
	if exp <= 0 {
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint32(1 - exp)
		mant += uint32(0x1000) << shift
		return sign | uint16(mant>>(13+shift))
	}
	if exp >= 0x1F {
		return sign | 0x7C00
	}

	mant += 0x1000
	if mant&0x800000 != 0 {
		mant = 0
		exp++
		if exp >= 0x1F {
			return sign | 0x7C00
		}
	}
	return sign | uint16(exp)<<10 | uint16(mant>>13)
}

// Lookup tables for the float32 output path. Direct conversion per texel
// is measurably slower.
var (
	unorm16ToFloat32Table [1 << 16]float32
	lnsToFloat32Table     [1 << 16]float32
)

func init() {
	for i := 0; i < 1<<16; i++ {
		u := uint16(i)
		unorm16ToFloat32Table[u] = halfToFloat32(unorm16ToSF16(u))
		lnsToFloat32Table[u] = halfToFloat32(lnsToSF16(u))
	}
}
