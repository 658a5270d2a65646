package astc

// Integer sequence encoding (ISE) decoder.
//
// ASTC packs sequences of non-power-of-two-range integers by pairing a small
// bit field per value with a trit (base 3) digit shared across groups of 5
// values, or a quint (base 5) digit shared across groups of 3. The packed
// trit/quint group integers are expanded through lookup tables built in
// tables.go.

// iseLayout describes the per-value packing for one quantization range.
type iseLayout struct {
	bits   uint8
	trits  bool
	quints bool
}

var iseLayouts = [21]iseLayout{
	quant2:   {bits: 1},
	quant3:   {bits: 0, trits: true},
	quant4:   {bits: 2},
	quant5:   {bits: 0, quints: true},
	quant6:   {bits: 1, trits: true},
	quant8:   {bits: 3},
	quant10:  {bits: 1, quints: true},
	quant12:  {bits: 2, trits: true},
	quant16:  {bits: 4},
	quant20:  {bits: 2, quints: true},
	quant24:  {bits: 3, trits: true},
	quant32:  {bits: 5},
	quant40:  {bits: 3, quints: true},
	quant48:  {bits: 4, trits: true},
	quant64:  {bits: 6},
	quant80:  {bits: 4, quints: true},
	quant96:  {bits: 5, trits: true},
	quant128: {bits: 7},
	quant160: {bits: 5, quints: true},
	quant192: {bits: 6, trits: true},
	quant256: {bits: 8},
}

// iseCost holds the storage cost of one value as scale/divisor, with the
// divisor encoded as (divisor<<1)+1 so bit-only ranges use divisor 1.
type iseCost struct {
	scale   uint8
	divisor uint8
}

var iseCosts = [21]iseCost{
	quant2:   {scale: 1, divisor: 0},
	quant3:   {scale: 8, divisor: 2},
	quant4:   {scale: 2, divisor: 0},
	quant5:   {scale: 7, divisor: 1},
	quant6:   {scale: 13, divisor: 2},
	quant8:   {scale: 3, divisor: 0},
	quant10:  {scale: 10, divisor: 1},
	quant12:  {scale: 18, divisor: 2},
	quant16:  {scale: 4, divisor: 0},
	quant20:  {scale: 13, divisor: 1},
	quant24:  {scale: 23, divisor: 2},
	quant32:  {scale: 5, divisor: 0},
	quant40:  {scale: 16, divisor: 1},
	quant48:  {scale: 28, divisor: 2},
	quant64:  {scale: 6, divisor: 0},
	quant80:  {scale: 19, divisor: 1},
	quant96:  {scale: 33, divisor: 2},
	quant128: {scale: 7, divisor: 0},
	quant160: {scale: 22, divisor: 1},
	quant192: {scale: 38, divisor: 2},
	quant256: {scale: 8, divisor: 0},
}

// iseBitCount returns the number of bits needed to store count values at
// quantization range q.
func iseBitCount(count int, q quant) int {
	if int(q) >= len(iseCosts) {
		return 1024
	}
	c := iseCosts[q]
	divisor := int(c.divisor<<1) + 1
	return (int(c.scale)*count + divisor - 1) / divisor
}

var bitMask64 = [17]uint64{
	0x0000,
	0x0001, 0x0003, 0x0007, 0x000F,
	0x001F, 0x003F, 0x007F, 0x00FF,
	0x01FF, 0x03FF, 0x07FF, 0x0FFF,
	0x1FFF, 0x3FFF, 0x7FFF, 0xFFFF,
}

// readBits extracts an n-bit little-endian field starting at bit offset off.
// Fields never span more than two bytes in the configuration region, so a
// 16-bit window is sufficient.
func readBits(n, off int, p []byte) uint32 {
	if n == 0 {
		return 0
	}
	mask := uint32(1<<uint(n)) - 1

	i := off >> 3
	shift := uint(off & 7)

	var v uint32
	if i < len(p) {
		v = uint32(p[i])
	}
	if i+1 < len(p) {
		v |= uint32(p[i+1]) << 8
	}
	return (v >> shift) & mask
}

// read128 reads an n-bit field from the 128-bit lane pair (lo, hi) at *bit,
// advancing the cursor.
func read128(n uint, bit *uint, lo, hi uint64) uint64 {
	b := *bit
	var v uint64
	if b < 64 {
		v = (lo >> b) | (hi << (64 - b))
	} else {
		v = hi >> (b - 64)
	}
	*bit = b + n
	return v & bitMask64[n]
}

// iseDecode unpacks count ISE symbols from the 128-bit lane pair starting at
// bitOff. Output symbols are the raw packed values: low bits plus the
// trit/quint digit shifted above them.
func iseDecode(q quant, count int, lo, hi uint64, bitOff int, out []uint8) {
	l := iseLayouts[q]
	switch {
	case l.trits:
		iseDecodeTrits(int(l.bits), count, lo, hi, bitOff, out)
	case l.quints:
		iseDecodeQuints(int(l.bits), count, lo, hi, bitOff, out)
	default:
		iseDecodeBits(int(l.bits), count, lo, hi, bitOff, out)
	}
}

func iseDecodeBits(bits, count int, lo, hi uint64, bitOff int, out []uint8) {
	mask := bitMask64[bits]

	bit := uint(bitOff)
	i := 0
	for ; i < count && bit < 64; i++ {
		v := (lo >> bit) | (hi << (64 - bit))
		out[i] = uint8(v & mask)
		bit += uint(bits)
	}
	if bit >= 64 {
		bit -= 64
	}
	for ; i < count; i++ {
		out[i] = uint8((hi >> bit) & mask)
		bit += uint(bits)
	}
}

// Trit groups pack 5 values: each value's low bits interleaved with slices of
// an 8-bit packed trit integer at widths 2,2,1,2,1.
var tritSliceBits = [5]uint{2, 2, 1, 2, 1}
var tritSliceShift = [5]uint{0, 2, 4, 5, 7}

func iseDecodeTrits(bits, count int, lo, hi uint64, bitOff int, out []uint8) {
	bit := uint(bitOff)
	shift := uint(bits)

	for i := 0; i < count; i += 5 {
		n := count - i
		if n > 5 {
			n = 5
		}

		var base [5]uint8
		var packed uint8
		for j := 0; j < n; j++ {
			if bits > 0 {
				base[j] = uint8(read128(uint(bits), &bit, lo, hi))
			}
			packed |= uint8(read128(tritSliceBits[j], &bit, lo, hi)) << tritSliceShift[j]
		}

		tv := tritsOfInteger[packed]
		for j := 0; j < n; j++ {
			out[i+j] = base[j] | (tv[j] << shift)
		}
	}
}

// Quint groups pack 3 values with slices of a 7-bit packed quint integer at
// widths 3,2,2.
var quintSliceBits = [3]uint{3, 2, 2}
var quintSliceShift = [3]uint{0, 3, 5}

func iseDecodeQuints(bits, count int, lo, hi uint64, bitOff int, out []uint8) {
	bit := uint(bitOff)
	shift := uint(bits)

	for i := 0; i < count; i += 3 {
		n := count - i
		if n > 3 {
			n = 3
		}

		var base [3]uint8
		var packed uint8
		for j := 0; j < n; j++ {
			if bits > 0 {
				base[j] = uint8(read128(uint(bits), &bit, lo, hi))
			}
			packed |= uint8(read128(quintSliceBits[j], &bit, lo, hi)) << quintSliceShift[j]
		}

		qv := quintsOfInteger[packed]
		for j := 0; j < n; j++ {
			out[i+j] = base[j] | (qv[j] << shift)
		}
	}
}
