package astc

// Color endpoint modes. The values are wire format and must not be
// reordered.
const (
	cemLuminance         = 0
	cemLuminanceDelta    = 1
	cemHDRLuminanceLarge = 2
	cemHDRLuminanceSmall = 3
	cemLuminanceAlpha    = 4
	cemLuminanceAlphaDt  = 5
	cemRGBScale          = 6
	cemHDRRGBScale       = 7
	cemRGB               = 8
	cemRGBDelta          = 9
	cemRGBScaleAlpha     = 10
	cemHDRRGB            = 11
	cemRGBA              = 12
	cemRGBADelta         = 13
	cemHDRRGBLDRAlpha    = 14
	cemHDRRGBA           = 15
)

type rgbaInt [4]int

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func rgbSum(v rgbaInt) int { return v[0] + v[1] + v[2] }

// blueContract averages red and green toward blue, undoing the encoder's
// blue-contraction transform.
func blueContract(v rgbaInt) rgbaInt {
	v[0] = (v[0] + v[2]) >> 1
	v[1] = (v[1] + v[2]) >> 1
	return v
}

func bitTransferSigned(a, b rgbaInt) (rgbaInt, rgbaInt) {
	for i := 0; i < 4; i++ {
		b[i] = (b[i] >> 1) | (a[i] & 0x80)
		a[i] = (a[i] >> 1) & 0x3F
		if a[i]&0x20 != 0 {
			a[i] -= 0x40
		}
	}
	return a, b
}

func decodeRGBADelta(e0, e1 rgbaInt) (rgbaInt, rgbaInt) {
	e1, e0 = bitTransferSigned(e1, e0)

	sum := rgbSum(e1)
	for i := 0; i < 4; i++ {
		e1[i] += e0[i]
	}
	if sum < 0 {
		e0 = blueContract(e0)
		e1 = blueContract(e1)
		e0, e1 = e1, e0
	}

	for i := 0; i < 4; i++ {
		e0[i] = clampInt(e0[i], 0, 255)
		e1[i] = clampInt(e1[i], 0, 255)
	}
	return e0, e1
}

func decodeRGBDelta(e0, e1 rgbaInt) (rgbaInt, rgbaInt) {
	e0, e1 = decodeRGBADelta(e0, e1)
	e0[3] = 255
	e1[3] = 255
	return e0, e1
}

func decodeRGBA(e0, e1 rgbaInt) (rgbaInt, rgbaInt) {
	if rgbSum(e0) > rgbSum(e1) {
		e0 = blueContract(e0)
		e1 = blueContract(e1)
		e0, e1 = e1, e0
	}
	return e0, e1
}

func decodeRGB(e0, e1 rgbaInt) (rgbaInt, rgbaInt) {
	e0, e1 = decodeRGBA(e0, e1)
	e0[3] = 255
	e1[3] = 255
	return e0, e1
}

func decodeRGBScale(base rgbaInt, scale int) (e0, e1 rgbaInt) {
	e1 = base
	e1[3] = 255
	for i := 0; i < 3; i++ {
		e0[i] = (base[i] * scale) >> 8
	}
	e0[3] = 255
	return e0, e1
}

func decodeRGBScaleAlpha(base rgbaInt, alpha1, scale uint8) (e0, e1 rgbaInt) {
	e1 = base
	e1[3] = int(alpha1)
	for i := 0; i < 3; i++ {
		e0[i] = (base[i] * int(scale)) >> 8
	}
	e0[3] = base[3]
	return e0, e1
}

func decodeLuminance(v []uint8) (e0, e1 rgbaInt) {
	l0 := int(v[0])
	l1 := int(v[1])
	return rgbaInt{l0, l0, l0, 255}, rgbaInt{l1, l1, l1, 255}
}

func decodeLuminanceDelta(v []uint8) (e0, e1 rgbaInt) {
	l0 := int(v[0])>>2 | int(v[1])&0xC0
	l1 := l0 + int(v[1])&0x3F
	if l1 > 255 {
		l1 = 255
	}
	return rgbaInt{l0, l0, l0, 255}, rgbaInt{l1, l1, l1, 255}
}

func decodeLuminanceAlpha(v []uint8) (e0, e1 rgbaInt) {
	l0, l1 := int(v[0]), int(v[1])
	a0, a1 := int(v[2]), int(v[3])
	return rgbaInt{l0, l0, l0, a0}, rgbaInt{l1, l1, l1, a1}
}

func decodeLuminanceAlphaDelta(v []uint8) (e0, e1 rgbaInt) {
	l0, l1 := int(v[0]), int(v[1])
	a0, a1 := int(v[2]), int(v[3])

	l0 |= (l1 & 0x80) << 1
	a0 |= (a1 & 0x80) << 1
	l1 &= 0x7F
	a1 &= 0x7F
	if l1&0x40 != 0 {
		l1 -= 0x80
	}
	if a1&0x40 != 0 {
		a1 -= 0x80
	}

	l0 >>= 1
	l1 >>= 1
	a0 >>= 1
	a1 >>= 1
	l1 = clampInt(l1+l0, 0, 255)
	a1 = clampInt(a1+a0, 0, 255)

	return rgbaInt{l0, l0, l0, a0}, rgbaInt{l1, l1, l1, a1}
}

func lsh32(v int32, shift int) int32 {
	return int32(uint32(v) << uint(shift))
}

func decodeHDRRGBScale(v []uint8) (e0, e1 rgbaInt) {
	v0, v1, v2, v3 := int(v[0]), int(v[1]), int(v[2]), int(v[3])

	modeval := (v0&0xC0)>>6 | (v1&0x80)>>7<<2 | (v2&0x80)>>7<<3

	var majcomp, mode int
	switch {
	case modeval&0xC != 0xC:
		majcomp = modeval >> 2
		mode = modeval & 3
	case modeval != 0xF:
		majcomp = modeval & 3
		mode = 4
	default:
		majcomp = 0
		mode = 5
	}

	red := v0 & 0x3F
	green := v1 & 0x1F
	blue := v2 & 0x1F
	scale := v3 & 0x1F

	bit0 := (v1 >> 6) & 1
	bit1 := (v1 >> 5) & 1
	bit2 := (v2 >> 6) & 1
	bit3 := (v2 >> 5) & 1
	bit4 := (v3 >> 7) & 1
	bit5 := (v3 >> 6) & 1
	bit6 := (v3 >> 5) & 1

	// Bit placement depends on the sub-mode.
	ohm := 1 << mode
	if ohm&0x30 != 0 {
		green |= bit0 << 6
	}
	if ohm&0x3A != 0 {
		green |= bit1 << 5
	}
	if ohm&0x30 != 0 {
		blue |= bit2 << 6
	}
	if ohm&0x3A != 0 {
		blue |= bit3 << 5
	}
	if ohm&0x3D != 0 {
		scale |= bit6 << 5
	}
	if ohm&0x2D != 0 {
		scale |= bit5 << 6
	}
	if ohm&0x04 != 0 {
		scale |= bit4 << 7
	}
	if ohm&0x3B != 0 {
		red |= bit4 << 6
	}
	if ohm&0x04 != 0 {
		red |= bit3 << 6
	}
	if ohm&0x10 != 0 {
		red |= bit5 << 7
	}
	if ohm&0x0F != 0 {
		red |= bit2 << 7
	}
	if ohm&0x05 != 0 {
		red |= bit1 << 8
	}
	if ohm&0x0A != 0 {
		red |= bit0 << 8
	}
	if ohm&0x05 != 0 {
		red |= bit0 << 9
	}
	if ohm&0x02 != 0 {
		red |= bit6 << 9
	}
	if ohm&0x01 != 0 {
		red |= bit3 << 10
	}
	if ohm&0x02 != 0 {
		red |= bit5 << 10
	}

	shamt := [...]int{1, 1, 2, 3, 4, 5}[mode]
	red <<= shamt
	green <<= shamt
	blue <<= shamt
	scale <<= shamt

	// Modes 0..4 store green and blue as offsets from red.
	if mode != 5 {
		green = red - green
		blue = red - blue
	}

	switch majcomp {
	case 1:
		red, green = green, red
	case 2:
		red, blue = blue, red
	}

	red0 := maxInt(red-scale, 0)
	green0 := maxInt(green-scale, 0)
	blue0 := maxInt(blue-scale, 0)
	red = maxInt(red, 0)
	green = maxInt(green, 0)
	blue = maxInt(blue, 0)

	e0 = rgbaInt{red0 << 4, green0 << 4, blue0 << 4, 0x7800}
	e1 = rgbaInt{red << 4, green << 4, blue << 4, 0x7800}
	return e0, e1
}

func decodeHDRRGB(v []uint8) (e0, e1 rgbaInt) {
	v0, v1, v2 := int(v[0]), int(v[1]), int(v[2])
	v3, v4, v5 := int(v[3]), int(v[4]), int(v[5])

	modeval := (v1&0x80)>>7 | (v2&0x80)>>7<<1 | (v3&0x80)>>7<<2
	majcomp := (v4&0x80)>>7 | (v5&0x80)>>7<<1

	if majcomp == 3 {
		e0 = rgbaInt{v0 << 8, v2 << 8, (v4 & 0x7F) << 9, 0x7800}
		e1 = rgbaInt{v1 << 8, v3 << 8, (v5 & 0x7F) << 9, 0x7800}
		return e0, e1
	}

	a := v0 | (v1&0x40)<<2
	b0 := v2 & 0x3F
	b1 := v3 & 0x3F
	c := v1 & 0x3F
	d0 := v4 & 0x7F
	d1 := v5 & 0x7F

	dbits := [...]int{7, 6, 7, 6, 5, 6, 5, 6}[modeval]

	bit0 := (v2 >> 6) & 1
	bit1 := (v3 >> 6) & 1
	bit2 := (v4 >> 6) & 1
	bit3 := (v5 >> 6) & 1
	bit4 := (v4 >> 5) & 1
	bit5 := (v5 >> 5) & 1

	ohm := 1 << modeval
	if ohm&0xA4 != 0 {
		a |= bit0 << 9
	}
	if ohm&0x08 != 0 {
		a |= bit2 << 9
	}
	if ohm&0x50 != 0 {
		a |= bit4 << 9
	}
	if ohm&0x50 != 0 {
		a |= bit5 << 10
	}
	if ohm&0xA0 != 0 {
		a |= bit1 << 10
	}
	if ohm&0xC0 != 0 {
		a |= bit2 << 11
	}
	if ohm&0x04 != 0 {
		c |= bit1 << 6
	}
	if ohm&0xE8 != 0 {
		c |= bit3 << 6
	}
	if ohm&0x20 != 0 {
		c |= bit2 << 7
	}
	if ohm&0x5B != 0 {
		b0 |= bit0 << 6
		b1 |= bit1 << 6
	}
	if ohm&0x12 != 0 {
		b0 |= bit2 << 7
		b1 |= bit3 << 7
	}
	if ohm&0xAF != 0 {
		d0 |= bit4 << 5
		d1 |= bit5 << 5
	}
	if ohm&0x05 != 0 {
		d0 |= bit2 << 6
		d1 |= bit3 << 6
	}

	sx := 32 - dbits
	d0 = int(lsh32(int32(d0), sx) >> uint(sx))
	d1 = int(lsh32(int32(d1), sx) >> uint(sx))

	shamt := (modeval >> 1) ^ 3
	a = int(lsh32(int32(a), shamt))
	b0 = int(lsh32(int32(b0), shamt))
	b1 = int(lsh32(int32(b1), shamt))
	c = int(lsh32(int32(c), shamt))
	d0 = int(lsh32(int32(d0), shamt))
	d1 = int(lsh32(int32(d1), shamt))

	red1 := clampInt(a, 0, 4095)
	green1 := clampInt(a-b0, 0, 4095)
	blue1 := clampInt(a-b1, 0, 4095)
	red0 := clampInt(a-c, 0, 4095)
	green0 := clampInt(a-b0-c-d0, 0, 4095)
	blue0 := clampInt(a-b1-c-d1, 0, 4095)

	switch majcomp {
	case 1:
		red0, green0 = green0, red0
		red1, green1 = green1, red1
	case 2:
		red0, blue0 = blue0, red0
		red1, blue1 = blue1, red1
	}

	e0 = rgbaInt{red0 << 4, green0 << 4, blue0 << 4, 0x7800}
	e1 = rgbaInt{red1 << 4, green1 << 4, blue1 << 4, 0x7800}
	return e0, e1
}

func decodeHDRLuminanceSmall(v []uint8) (e0, e1 rgbaInt) {
	v0, v1 := int(v[0]), int(v[1])

	var y0, y1 int
	if v0&0x80 != 0 {
		y0 = (v1&0xE0)<<4 | (v0&0x7F)<<2
		y1 = (v1 & 0x1F) << 2
	} else {
		y0 = (v1&0xF0)<<4 | (v0&0x7F)<<1
		y1 = (v1 & 0xF) << 1
	}
	y1 += y0
	if y1 > 0xFFF {
		y1 = 0xFFF
	}

	e0 = rgbaInt{y0 << 4, y0 << 4, y0 << 4, 0x7800}
	e1 = rgbaInt{y1 << 4, y1 << 4, y1 << 4, 0x7800}
	return e0, e1
}

func decodeHDRLuminanceLarge(v []uint8) (e0, e1 rgbaInt) {
	v0, v1 := int(v[0]), int(v[1])

	var y0, y1 int
	if v1 >= v0 {
		y0 = v0 << 4
		y1 = v1 << 4
	} else {
		y0 = v1<<4 + 8
		y1 = v0<<4 - 8
	}

	e0 = rgbaInt{y0 << 4, y0 << 4, y0 << 4, 0x7800}
	e1 = rgbaInt{y1 << 4, y1 << 4, y1 << 4, 0x7800}
	return e0, e1
}

func decodeHDRAlpha(v6, v7 int) (a0, a1 int) {
	selector := (v6>>7)&1 | (v7>>6)&2
	v6 &= 0x7F
	v7 &= 0x7F
	if selector == 3 {
		a0 = v6 << 5
		a1 = v7 << 5
	} else {
		v6 |= v7 << (selector + 1) & 0x780
		v7 &= 0x3F >> selector
		v7 ^= 32 >> selector
		v7 -= 32 >> selector
		v6 <<= 4 - selector
		v7 <<= 4 - selector
		v7 += v6
		a0 = v6
		a1 = clampInt(v7, 0, 0xFFF)
	}
	return a0 << 4, a1 << 4
}

// unpackEndpoints decodes one partition's endpoint pair from its mode and
// raw values, expanding to 16-bit per channel for the requested profile.
func unpackEndpoints(profile Profile, cem uint8, v []uint8) (rgbHDR, alphaHDR bool, e0, e1 rgbaInt) {
	alphaSentinel := false

	switch int(cem) {
	case cemLuminance:
		e0, e1 = decodeLuminance(v[:2])
	case cemLuminanceDelta:
		e0, e1 = decodeLuminanceDelta(v[:2])
	case cemHDRLuminanceSmall:
		rgbHDR = true
		alphaSentinel = true
		e0, e1 = decodeHDRLuminanceSmall(v[:2])
	case cemHDRLuminanceLarge:
		rgbHDR = true
		alphaSentinel = true
		e0, e1 = decodeHDRLuminanceLarge(v[:2])
	case cemLuminanceAlpha:
		e0, e1 = decodeLuminanceAlpha(v[:4])
	case cemLuminanceAlphaDt:
		e0, e1 = decodeLuminanceAlphaDelta(v[:4])
	case cemRGBScale:
		base := rgbaInt{int(v[0]), int(v[1]), int(v[2]), 0}
		e0, e1 = decodeRGBScale(base, int(v[3]))
	case cemRGBScaleAlpha:
		base := rgbaInt{int(v[0]), int(v[1]), int(v[2]), int(v[4])}
		e0, e1 = decodeRGBScaleAlpha(base, v[5], v[3])
	case cemHDRRGBScale:
		rgbHDR = true
		alphaSentinel = true
		e0, e1 = decodeHDRRGBScale(v[:4])
	case cemRGB:
		in0 := rgbaInt{int(v[0]), int(v[2]), int(v[4]), 0}
		in1 := rgbaInt{int(v[1]), int(v[3]), int(v[5]), 0}
		e0, e1 = decodeRGB(in0, in1)
	case cemRGBDelta:
		in0 := rgbaInt{int(v[0]), int(v[2]), int(v[4]), 0}
		in1 := rgbaInt{int(v[1]), int(v[3]), int(v[5]), 0}
		e0, e1 = decodeRGBDelta(in0, in1)
	case cemHDRRGB:
		rgbHDR = true
		alphaSentinel = true
		e0, e1 = decodeHDRRGB(v[:6])
	case cemRGBA:
		in0 := rgbaInt{int(v[0]), int(v[2]), int(v[4]), int(v[6])}
		in1 := rgbaInt{int(v[1]), int(v[3]), int(v[5]), int(v[7])}
		e0, e1 = decodeRGBA(in0, in1)
	case cemRGBADelta:
		in0 := rgbaInt{int(v[0]), int(v[2]), int(v[4]), int(v[6])}
		in1 := rgbaInt{int(v[1]), int(v[3]), int(v[5]), int(v[7])}
		e0, e1 = decodeRGBADelta(in0, in1)
	case cemHDRRGBLDRAlpha:
		rgbHDR = true
		e0, e1 = decodeHDRRGB(v[:6])
		e0[3] = int(v[6])
		e1[3] = int(v[7])
	case cemHDRRGBA:
		rgbHDR = true
		alphaHDR = true
		e0, e1 = decodeHDRRGB(v[:6])
		e0[3], e1[3] = decodeHDRAlpha(int(v[6]), int(v[7]))
	}

	if alphaSentinel {
		if profile == ProfileHDR {
			e0[3] = 0x7800
			e1[3] = 0x7800
			alphaHDR = true
		} else {
			e0[3] = 0xFF
			e1[3] = 0xFF
		}
	}

	switch profile {
	case ProfileLDR:
		if rgbHDR || alphaHDR {
			e0 = rgbaInt{0xFF, 0x00, 0xFF, 0xFF}
			e1 = e0
			rgbHDR = false
			alphaHDR = false
		}
		for i := 0; i < 4; i++ {
			e0[i] *= 257
			e1[i] *= 257
		}
	case ProfileLDRSRGB:
		if rgbHDR || alphaHDR {
			e0 = rgbaInt{0xFF, 0x00, 0xFF, 0xFF}
			e1 = e0
			rgbHDR = false
			alphaHDR = false
		}
		for i := 0; i < 4; i++ {
			e0[i] = e0[i]<<8 | 0x80
			e1[i] = e1[i]<<8 | 0x80
		}
	default:
		// HDR decode profiles still carry LDR endpoints at x257.
		for i := 0; i < 4; i++ {
			scale := 257
			if (i < 3 && rgbHDR) || (i == 3 && alphaHDR) {
				scale = 1
			}
			e0[i] *= scale
			e1[i] *= scale
		}
	}

	return rgbHDR, alphaHDR, e0, e1
}
