package astc

// Decode tables for trit/quint digit groups and for value unquantization.
// These encode fixed format contracts; everything here is derived once at
// init from the bit-slicing rules the format defines.

// tritsOfInteger expands an 8-bit packed trit group into its 5 trits.
var tritsOfInteger [256][5]uint8

// quintsOfInteger expands a 7-bit packed quint group into its 3 quints.
var quintsOfInteger [128][3]uint8

func init() {
	for t := 0; t < 256; t++ {
		tritsOfInteger[t] = decodeTritGroup(uint8(t))
	}
	for q := 0; q < 128; q++ {
		quintsOfInteger[q] = decodeQuintGroup(uint8(q))
	}
}

func decodeTritGroup(t uint8) (out [5]uint8) {
	var c uint8
	if (t>>2)&7 == 7 {
		c = ((t >> 5) << 2) | (t & 3)
		out[4] = 2
		out[3] = 2
	} else {
		c = t & 0x1F
		if (t>>5)&3 == 3 {
			out[4] = 2
			out[3] = t >> 7
		} else {
			out[4] = t >> 7
			out[3] = (t >> 5) & 3
		}
	}

	if c&3 == 3 {
		out[2] = 2
		out[1] = (c >> 4) & 1
		out[0] = ((c >> 3) & 1) << 1
		out[0] |= ((c >> 2) & 1) &^ ((c >> 3) & 1)
	} else if (c>>2)&3 == 3 {
		out[2] = (c >> 4) & 1
		out[1] = 2
		out[0] = c & 3
	} else {
		out[2] = (c >> 4) & 1
		out[1] = (c >> 2) & 3
		out[0] = ((c >> 1) & 1) << 1
		out[0] |= (c & 1) &^ ((c >> 1) & 1)
	}
	return out
}

func decodeQuintGroup(q uint8) (out [3]uint8) {
	if (q>>1)&3 == 3 && (q>>5)&3 == 0 {
		out[2] = ((q & 1) << 2) |
			(((q>>4)&1)&^(q&1))<<1 |
			(((q >> 3) & 1) &^ (q & 1))
		out[1] = 4
		out[0] = 4
		return out
	}

	var c uint8
	if (q>>1)&3 == 3 {
		out[2] = 4
		c = (((q >> 3) & 3) << 3) | ((^(q >> 5) & 3) << 1) | (q & 1)
	} else {
		out[2] = (q >> 5) & 3
		c = q & 0x1F
	}

	if c&7 == 5 {
		out[1] = 4
		out[0] = (c >> 3) & 3
	} else {
		out[1] = (c >> 3) & 3
		out[0] = c & 7
	}
	return out
}

// colorUnquantParams hold the B-pattern bit multipliers and the C constant of
// the color endpoint unquantization transform, per extra bit count.
//
// bMul[i] is the contribution of payload bit i+1 to the 9-bit B pattern.
type colorUnquantParams struct {
	c    int
	bMul [5]int
}

var tritColorParams = [7]colorUnquantParams{
	1: {c: 204},
	2: {c: 93, bMul: [5]int{0x116}},
	3: {c: 44, bMul: [5]int{0x85, 0x10A}},
	4: {c: 22, bMul: [5]int{0x41, 0x82, 0x104}},
	5: {c: 11, bMul: [5]int{0x20, 0x40, 0x81, 0x102}},
	6: {c: 5, bMul: [5]int{0x10, 0x20, 0x40, 0x80, 0x101}},
}

var quintColorParams = [6]colorUnquantParams{
	1: {c: 113},
	2: {c: 54, bMul: [5]int{0x10C}},
	3: {c: 26, bMul: [5]int{0x82, 0x105}},
	4: {c: 13, bMul: [5]int{0x40, 0x81, 0x102}},
	5: {c: 6, bMul: [5]int{0x20, 0x40, 0x80, 0x101}},
}

// colorUnquantTables maps raw ISE symbols to 8-bit unquantized endpoint
// values, one table per color quantization range quant6..quant256.
var colorUnquantTables [17][256]uint8

func init() {
	for q := quant6; q <= quant256; q++ {
		buildColorUnquantTable(&colorUnquantTables[q-quant6], q)
	}
}

func buildColorUnquantTable(table *[256]uint8, q quant) {
	l := iseLayouts[q]
	bits := int(l.bits)

	if !l.trits && !l.quints {
		for m := 0; m < 1<<bits; m++ {
			table[m] = uint8(replicateBits(m, bits))
		}
		return
	}

	var params colorUnquantParams
	digits := 0
	if l.trits {
		params = tritColorParams[bits]
		digits = 3
	} else {
		params = quintColorParams[bits]
		digits = 5
	}

	for d := 0; d < digits; d++ {
		for m := 0; m < 1<<bits; m++ {
			a := 0
			if m&1 != 0 {
				a = 0x1FF
			}
			b := 0
			for i := 1; i < bits; i++ {
				b += ((m >> i) & 1) * params.bMul[i-1]
			}

			t := d*params.c + b
			t ^= a
			t = (a & 0x80) | (t >> 2)
			table[(d<<bits)|m] = uint8(t)
		}
	}
}

// replicateBits widens a b-bit value to 8 bits by bit replication.
func replicateBits(v, b int) int {
	if b >= 8 {
		return v & 0xFF
	}
	r := 0
	for s := 8 - b; s > -b; s -= b {
		if s >= 0 {
			r |= v << s
		} else {
			r |= v >> -s
		}
	}
	return r
}

// Weight quantization uses only quant2..quant32. The unquantized values and
// the physical-symbol scrambling are fixed by the format.

var weightUnquant = [12][32]uint8{
	// quant2
	{0, 64},
	// quant3
	{0, 32, 64},
	// quant4
	{0, 21, 43, 64},
	// quant5
	{0, 16, 32, 48, 64},
	// quant6
	{0, 12, 25, 39, 52, 64},
	// quant8
	{0, 9, 18, 27, 37, 46, 55, 64},
	// quant10
	{0, 7, 14, 21, 28, 36, 43, 50, 57, 64},
	// quant12
	{0, 5, 11, 17, 23, 28, 36, 41, 47, 53, 59, 64},
	// quant16
	{0, 4, 8, 12, 17, 21, 25, 29, 35, 39, 43, 47, 52, 56, 60, 64},
	// quant20
	{0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 35, 38, 41, 45, 48, 51, 55, 58, 61, 64},
	// quant24
	{0, 2, 5, 8, 11, 13, 16, 19, 22, 24, 27, 30, 34, 37, 40, 42, 45, 48, 51, 53, 56, 59, 62, 64},
	// quant32
	{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 34, 36, 38, 40, 42, 44, 46, 48, 50, 52, 54, 56, 58, 60, 62, 64},
}

var weightScramble = [12][32]uint8{
	// quant2
	{0, 1},
	// quant3
	{0, 1, 2},
	// quant4
	{0, 1, 2, 3},
	// quant5
	{0, 1, 2, 3, 4},
	// quant6
	{0, 2, 4, 5, 3, 1},
	// quant8
	{0, 1, 2, 3, 4, 5, 6, 7},
	// quant10
	{0, 2, 4, 6, 8, 9, 7, 5, 3, 1},
	// quant12
	{0, 4, 8, 2, 6, 10, 11, 7, 3, 9, 5, 1},
	// quant16
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	// quant20
	{0, 4, 8, 12, 16, 2, 6, 10, 14, 18, 19, 15, 11, 7, 3, 17, 13, 9, 5, 1},
	// quant24
	{0, 8, 16, 2, 10, 18, 4, 12, 20, 6, 14, 22, 23, 15, 7, 21, 13, 5, 19, 11, 3, 17, 9, 1},
	// quant32
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31},
}

// weightUnquantTables maps raw ISE weight symbols straight to unquantized
// 0..64 weights, combining the unscramble and unquantize steps.
var weightUnquantTables [12][32]uint8

func init() {
	for q := quant2; q <= quant32; q++ {
		n := q.levels()
		for i := 0; i < n; i++ {
			weightUnquantTables[q][weightScramble[q][i]] = weightUnquant[q][i]
		}
	}
}

// colorQuantForBits returns the highest color quantization range whose ISE
// encoding of count values fits in the given bit budget, or -1 if even
// quant6 does not fit.
func colorQuantForBits(count, avail int) int {
	for q := quant256; q >= quant6; q-- {
		if iseBitCount(count, q) <= avail {
			return int(q)
		}
	}
	return -1
}
