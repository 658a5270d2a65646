package astc

// quant identifies an ASTC integer-sequence quantization range.
//
// The numeric values are fixed by the format and must not be reordered.
type quant uint8

const (
	quant2   quant = 0
	quant3   quant = 1
	quant4   quant = 2
	quant5   quant = 3
	quant6   quant = 4
	quant8   quant = 5
	quant10  quant = 6
	quant12  quant = 7
	quant16  quant = 8
	quant20  quant = 9
	quant24  quant = 10
	quant32  quant = 11
	quant40  quant = 12
	quant48  quant = 13
	quant64  quant = 14
	quant80  quant = 15
	quant96  quant = 16
	quant128 quant = 17
	quant160 quant = 18
	quant192 quant = 19
	quant256 quant = 20
)

// levels returns the number of representable values for the range.
func (q quant) levels() int {
	l := iseLayouts[q]
	n := 1 << l.bits
	if l.trits {
		n *= 3
	}
	if l.quints {
		n *= 5
	}
	return n
}
