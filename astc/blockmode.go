package astc

const (
	maxWeights     = 64
	minWeightBits  = 24
	maxWeightBits  = 96
	seedBits       = 10
	plane2Offset   = 32
	maxPartitions  = 4
	maxBlockTexels = 216
	maxColorValues = 8
	maxColorInts   = 18
	colorIntsBuf   = 32
)

// decodeBlockMode2D interprets an 11-bit 2D block mode field.
//
// It returns the weight grid dimensions, the dual-plane flag, the weight
// quantization range and the total weight storage cost. Reserved bit
// patterns and modes whose weight stream would not fit the block report
// ok=false.
func decodeBlockMode2D(mode int) (wx, wy int, dualPlane bool, wQuant quant, wBits int, ok bool) {
	baseQuant := (mode >> 4) & 1
	h := (mode >> 9) & 1
	d := (mode >> 10) & 1
	a := (mode >> 5) & 3

	if mode&3 != 0 {
		baseQuant |= (mode & 3) << 1
		b := (mode >> 7) & 3
		switch (mode >> 2) & 3 {
		case 0:
			wx = b + 4
			wy = a + 2
		case 1:
			wx = b + 8
			wy = a + 2
		case 2:
			wx = a + 2
			wy = b + 8
		case 3:
			b &= 1
			if mode&0x100 != 0 {
				wx = b + 2
				wy = a + 2
			} else {
				wx = a + 2
				wy = b + 6
			}
		}
	} else {
		baseQuant |= ((mode >> 2) & 3) << 1
		if (mode>>2)&3 == 0 {
			return 0, 0, false, 0, 0, false
		}

		b := (mode >> 9) & 3
		switch (mode >> 7) & 3 {
		case 0:
			wx = 12
			wy = a + 2
		case 1:
			wx = a + 2
			wy = 12
		case 2:
			wx = a + 6
			wy = b + 6
			d = 0
			h = 0
		case 3:
			switch (mode >> 5) & 3 {
			case 0:
				wx = 6
				wy = 10
			case 1:
				wx = 10
				wy = 6
			default:
				return 0, 0, false, 0, 0, false
			}
		}
	}

	wCount := wx * wy * (d + 1)
	qm := (baseQuant - 2) + 6*h
	if qm < 0 || qm > int(quant32) {
		return 0, 0, false, 0, 0, false
	}

	wQuant = quant(qm)
	dualPlane = d != 0

	wBits = iseBitCount(wCount, wQuant)
	if wCount > maxWeights || wBits < minWeightBits || wBits > maxWeightBits {
		return 0, 0, false, 0, 0, false
	}
	return wx, wy, dualPlane, wQuant, wBits, true
}

// decodeBlockMode3D interprets an 11-bit 3D block mode field.
func decodeBlockMode3D(mode int) (wx, wy, wz int, dualPlane bool, wQuant quant, wBits int, ok bool) {
	baseQuant := (mode >> 4) & 1
	h := (mode >> 9) & 1
	d := (mode >> 10) & 1
	a := (mode >> 5) & 3

	if mode&3 != 0 {
		baseQuant |= (mode & 3) << 1
		b := (mode >> 7) & 3
		c := (mode >> 2) & 3
		wx = a + 2
		wy = b + 2
		wz = c + 2
	} else {
		baseQuant |= ((mode >> 2) & 3) << 1
		if (mode>>2)&3 == 0 {
			return 0, 0, 0, false, 0, 0, false
		}

		b := (mode >> 9) & 3
		if (mode>>7)&3 != 3 {
			d = 0
			h = 0
		}
		switch (mode >> 7) & 3 {
		case 0:
			wx = 6
			wy = b + 2
			wz = a + 2
		case 1:
			wx = a + 2
			wy = 6
			wz = b + 2
		case 2:
			wx = a + 2
			wy = b + 2
			wz = 6
		case 3:
			wx = 2
			wy = 2
			wz = 2
			switch (mode >> 5) & 3 {
			case 0:
				wx = 6
			case 1:
				wy = 6
			case 2:
				wz = 6
			case 3:
				return 0, 0, 0, false, 0, 0, false
			}
		}
	}

	wCount := wx * wy * wz * (d + 1)
	qm := (baseQuant - 2) + 6*h
	if qm < 0 || qm > int(quant32) {
		return 0, 0, 0, false, 0, 0, false
	}

	wQuant = quant(qm)
	dualPlane = d != 0

	wBits = iseBitCount(wCount, wQuant)
	if wCount > maxWeights || wBits < minWeightBits || wBits > maxWeightBits {
		return 0, 0, 0, false, 0, 0, false
	}
	return wx, wy, wz, dualPlane, wQuant, wBits, true
}
