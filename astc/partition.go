package astc

// The procedural partition assignment is a format contract shared with every
// conformant encoder: the hash constants and the seed mixing below must match
// the reference bit for bit.

func hash52(v uint32) uint32 {
	v ^= v >> 15
	v *= 0xEEDE0891
	v ^= v >> 5
	v += v << 16
	v ^= v >> 7
	v ^= v >> 3
	v ^= v << 6
	v ^= v >> 17
	return v
}

// partitionOf returns the partition index (0..partCount-1) for one texel.
//
// smallBlock doubles the texel coordinates for blocks under 32 texels, as the
// format prescribes.
func partitionOf(seed, x, y, z, partCount int, smallBlock bool) uint8 {
	if smallBlock {
		x <<= 1
		y <<= 1
		z <<= 1
	}

	seed += (partCount - 1) * 1024
	rnum := hash52(uint32(seed))

	var s [12]uint8
	s[0] = uint8(rnum & 0xF)
	s[1] = uint8((rnum >> 4) & 0xF)
	s[2] = uint8((rnum >> 8) & 0xF)
	s[3] = uint8((rnum >> 12) & 0xF)
	s[4] = uint8((rnum >> 16) & 0xF)
	s[5] = uint8((rnum >> 20) & 0xF)
	s[6] = uint8((rnum >> 24) & 0xF)
	s[7] = uint8((rnum >> 28) & 0xF)
	s[8] = uint8((rnum >> 18) & 0xF)
	s[9] = uint8((rnum >> 22) & 0xF)
	s[10] = uint8((rnum >> 26) & 0xF)
	s[11] = uint8(((rnum >> 30) | (rnum << 2)) & 0xF)

	for i := range s {
		s[i] *= s[i]
	}

	var sh1, sh2 int
	if seed&1 != 0 {
		if seed&2 != 0 {
			sh1 = 4
		} else {
			sh1 = 5
		}
		if partCount == 3 {
			sh2 = 6
		} else {
			sh2 = 5
		}
	} else {
		if partCount == 3 {
			sh1 = 6
		} else {
			sh1 = 5
		}
		if seed&2 != 0 {
			sh2 = 4
		} else {
			sh2 = 5
		}
	}

	sh3 := sh2
	if seed&0x10 != 0 {
		sh3 = sh1
	}

	s[0] >>= uint(sh1)
	s[1] >>= uint(sh2)
	s[2] >>= uint(sh1)
	s[3] >>= uint(sh2)
	s[4] >>= uint(sh1)
	s[5] >>= uint(sh2)
	s[6] >>= uint(sh1)
	s[7] >>= uint(sh2)
	s[8] >>= uint(sh3)
	s[9] >>= uint(sh3)
	s[10] >>= uint(sh3)
	s[11] >>= uint(sh3)

	a := int(s[0])*x + int(s[1])*y + int(s[10])*z + int(rnum>>14)
	b := int(s[2])*x + int(s[3])*y + int(s[11])*z + int(rnum>>10)
	c := int(s[4])*x + int(s[5])*y + int(s[8])*z + int(rnum>>6)
	d := int(s[6])*x + int(s[7])*y + int(s[9])*z + int(rnum>>2)

	a &= 0x3F
	b &= 0x3F
	c &= 0x3F
	d &= 0x3F

	if partCount <= 3 {
		d = 0
	}
	if partCount <= 2 {
		c = 0
	}
	if partCount <= 1 {
		b = 0
	}

	switch {
	case a >= b && a >= c && a >= d:
		return 0
	case b >= c && b >= d:
		return 1
	case c >= d:
		return 2
	default:
		return 3
	}
}
