package astc

// Integer sequence encoder. The decoder is the hot path; this exists for
// building packed streams in tools and tests.

var (
	integerOfTrits  [3][3][3][3][3]uint8
	integerOfQuints [5][5][5]uint8
)

func init() {
	// Inverse of the decode tables. Several packed values can decode to the
	// same digit tuple; any consistent choice round-trips.
	for packed := range quintsOfInteger {
		q := quintsOfInteger[packed]
		integerOfQuints[q[2]][q[1]][q[0]] = uint8(packed)
	}
	for packed := range tritsOfInteger {
		t := tritsOfInteger[packed]
		integerOfTrits[t[4]][t[3]][t[2]][t[1]][t[0]] = uint8(packed)
	}
}

func writeBits(n, off int, p []byte, v uint32) {
	if n <= 0 {
		return
	}
	mask := uint32(1<<uint(n)) - 1
	v &= mask

	byteOff := off >> 3
	shift := uint(off & 7)
	v <<= shift
	keep := ^(mask << shift)

	if byteOff < len(p) {
		p[byteOff] = p[byteOff]&byte(keep) | byte(v)
	}
	if byteOff+1 < len(p) {
		p[byteOff+1] = p[byteOff+1]&byte(keep>>8) | byte(v>>8)
	}
}

// iseEncode packs count symbols of quantization q into out starting at
// bitOff. Symbols carry the trit or quint digit in their high bits, matching
// what iseDecode produces.
func iseEncode(q quant, count int, in []uint8, out []byte, bitOff int) {
	l := iseLayouts[q]
	bits := int(l.bits)
	mask := uint8(1<<uint(bits)) - 1

	switch {
	case l.trits:
		for i := 0; i < count; i += 5 {
			var d [5]uint8
			for j := 0; j < 5 && i+j < count; j++ {
				d[j] = in[i+j] >> bits
			}
			t := integerOfTrits[d[4]][d[3]][d[2]][d[1]][d[0]]

			for j := 0; j < 5 && i+j < count; j++ {
				n := int(tritSliceBits[j])
				slice := t >> tritSliceShift[j] & (1<<uint(n) - 1)
				writeBits(bits+n, bitOff, out, uint32(in[i+j]&mask|slice<<bits))
				bitOff += bits + n
			}
		}
	case l.quints:
		for i := 0; i < count; i += 3 {
			var d [3]uint8
			for j := 0; j < 3 && i+j < count; j++ {
				d[j] = in[i+j] >> bits
			}
			t := integerOfQuints[d[2]][d[1]][d[0]]

			for j := 0; j < 3 && i+j < count; j++ {
				n := int(quintSliceBits[j])
				slice := t >> quintSliceShift[j] & (1<<uint(n) - 1)
				writeBits(bits+n, bitOff, out, uint32(in[i+j]&mask|slice<<bits))
				bitOff += bits + n
			}
		}
	default:
		for i := 0; i < count; i++ {
			writeBits(bits, bitOff, out, uint32(in[i]))
			bitOff += bits
		}
	}
}
