package astc

// texelWeights expands the weight grid of scb onto the texel grid, writing
// plane 1 into w1 and, for dual-plane blocks, plane 2 into w2. Weights are
// already unquantized to 0..64.
func texelWeights(mi *modeInfo, scb *symBlock, n int, w1, w2 *[maxBlockTexels]int) {
	if mi.direct {
		for i := 0; i < n; i++ {
			w1[i] = int(scb.weights[i])
		}
		if mi.dualPlane {
			for i := 0; i < n; i++ {
				w2[i] = int(scb.weights[i+plane2Offset])
			}
		}
		return
	}

	for i := 0; i < n; i++ {
		e := &mi.interp[i]
		sum := 8
		sum += int(scb.weights[e.idx[0]]) * int(e.w[0])
		sum += int(scb.weights[e.idx[1]]) * int(e.w[1])
		sum += int(scb.weights[e.idx[2]]) * int(e.w[2])
		sum += int(scb.weights[e.idx[3]]) * int(e.w[3])
		w1[i] = sum >> 4
	}
	if mi.dualPlane {
		for i := 0; i < n; i++ {
			e := &mi.interp[i]
			sum := 8
			sum += int(scb.weights[int(e.idx[0])+plane2Offset]) * int(e.w[0])
			sum += int(scb.weights[int(e.idx[1])+plane2Offset]) * int(e.w[1])
			sum += int(scb.weights[int(e.idx[2])+plane2Offset]) * int(e.w[2])
			sum += int(scb.weights[int(e.idx[3])+plane2Offset]) * int(e.w[3])
			w2[i] = sum >> 4
		}
	}
}

// decodeBlockRGBA8 decodes one block into dst as 8-bit RGBA. On any block
// error it fills dst with the magenta error color and returns the reason;
// the caller decides whether that aborts the decode.
func decodeBlockRGBA8(profile Profile, fp *footprint, block []byte, dst []byte) string {
	n := fp.texels
	dst = dst[:n*4]

	scb := unpackBlock(block, fp)
	switch scb.kind {
	case symBad:
		fillRGBA8(dst, 0xFF, 0x00, 0xFF, 0xFF)
		return scb.reason
	case symConstU16:
		fillRGBA8(dst,
			uint8(scb.constColor[0]>>8),
			uint8(scb.constColor[1]>>8),
			uint8(scb.constColor[2]>>8),
			uint8(scb.constColor[3]>>8))
		return ""
	case symConstF16:
		// FP16 constants require an HDR decode profile.
		fillRGBA8(dst, 0xFF, 0x00, 0xFF, 0xFF)
		return "fp16 constant block in LDR decode"
	}

	mi := &fp.modes[scb.mode]
	partCount := int(scb.partCount)

	var e0, d [maxPartitions]rgbaInt
	for p := 0; p < partCount; p++ {
		_, _, lo, hi := unpackEndpoints(profile, scb.cems[p], scb.cemValues[p][:])
		e0[p] = lo
		for c := 0; c < 4; c++ {
			d[p][c] = hi[c] - lo[c]
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

		dst[off+0] = uint8((lo[0] + (dp[0]*wc[0]+32)>>6) >> 8)
		dst[off+1] = uint8((lo[1] + (dp[1]*wc[1]+32)>>6) >> 8)
		dst[off+2] = uint8((lo[2] + (dp[2]*wc[2]+32)>>6) >> 8)
		dst[off+3] = uint8((lo[3] + (dp[3]*wc[3]+32)>>6) >> 8)
		off += 4
	}
	return ""
}

func fillRGBA8(dst []byte, r, g, b, a uint8) {
	for i := 0; i < len(dst); i += 4 {
		dst[i+0] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}
