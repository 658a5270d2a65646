package astc

func clampUNorm16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// decodeBlockRGBAF32 decodes one block into dst as float32 RGBA. HDR
// endpoints read through the LNS table, LDR endpoints through the unorm
// table, selected per partition and channel.
func decodeBlockRGBAF32(profile Profile, fp *footprint, block []byte, dst []float32) string {
	n := fp.texels
	dst = dst[:n*4]

	scb := unpackBlock(block, fp)
	switch scb.kind {
	case symBad:
		fillRGBAF32(dst, 1, 0, 1, 1)
		return scb.reason
	case symConstU16:
		fillRGBAF32(dst,
			unorm16ToFloat32Table[scb.constColor[0]],
			unorm16ToFloat32Table[scb.constColor[1]],
			unorm16ToFloat32Table[scb.constColor[2]],
			unorm16ToFloat32Table[scb.constColor[3]])
		return ""
	case symConstF16:
		if profile.isLDR() {
			fillRGBAF32(dst, 1, 0, 1, 1)
			return "fp16 constant block in LDR decode"
		}
		fillRGBAF32(dst,
			halfToFloat32(scb.constColor[0]),
			halfToFloat32(scb.constColor[1]),
			halfToFloat32(scb.constColor[2]),
			halfToFloat32(scb.constColor[3]))
		return ""
	}

	mi := &fp.modes[scb.mode]
	partCount := int(scb.partCount)

	var e0, d [maxPartitions]rgbaInt
	var rgbTab, alphaTab [maxPartitions]*[1 << 16]float32
	for p := 0; p < partCount; p++ {
		rgbHDR, alphaHDR, lo, hi := unpackEndpoints(profile, scb.cems[p], scb.cemValues[p][:])
		e0[p] = lo
		for c := 0; c < 4; c++ {
			d[p][c] = hi[c] - lo[c]
		}
		rgbTab[p] = &unorm16ToFloat32Table
		if rgbHDR {
			rgbTab[p] = &lnsToFloat32Table
		}
		alphaTab[p] = &unorm16ToFloat32Table
		if alphaHDR {
			alphaTab[p] = &lnsToFloat32Table
		}
	}

	var w1, w2 [maxBlockTexels]int
	texelWeights(mi, &scb, n, &w1, &w2)

	var parts []uint8
	if partCount > 1 {
		parts = fp.partitions[partCount].forSeed(int(scb.partSeed))
	}

	p2 := int(scb.plane2)
	off := 0
	for tix := 0; tix < n; tix++ {
		p := 0
		if parts != nil {
			p = int(parts[tix])
		}
		lo := &e0[p]
		dp := &d[p]

		wc := [4]int{w1[tix], w1[tix], w1[tix], w1[tix]}
		if p2 >= 0 {
			wc[p2] = w2[tix]
		}

		rt := rgbTab[p]
		dst[off+0] = rt[clampUNorm16(lo[0]+(dp[0]*wc[0]+32)>>6)]
		dst[off+1] = rt[clampUNorm16(lo[1]+(dp[1]*wc[1]+32)>>6)]
		dst[off+2] = rt[clampUNorm16(lo[2]+(dp[2]*wc[2]+32)>>6)]
		dst[off+3] = alphaTab[p][clampUNorm16(lo[3]+(dp[3]*wc[3]+32)>>6)]
		off += 4
	}
	return ""
}

func fillRGBAF32(dst []float32, r, g, b, a float32) {
	for i := 0; i < len(dst); i += 4 {
		dst[i+0] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}
