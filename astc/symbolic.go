package astc

import (
	"encoding/binary"
	"math/bits"
)

type symKind uint8

const (
	symNormal symKind = iota
	symConstU16
	symConstF16
	symBad
)

// symBlock is the symbolic form of one physical block: everything decoded
// except the final texel composition.
type symBlock struct {
	kind   symKind
	reason string // set when kind == symBad

	mode       uint16
	partCount  uint8
	partSeed   uint16
	cems       [maxPartitions]uint8
	cemValues  [maxPartitions][maxColorValues]uint8
	colorQuant quant
	plane2     int8 // -1 for single plane

	weights    [maxWeights]uint8 // unquantized 0..64, plane 2 at +plane2Offset
	constColor [4]uint16
}

func (s *symBlock) fail(reason string) {
	s.kind = symBad
	s.reason = reason
}

// unpackBlock decodes the 128-bit physical block into symbolic form. It
// never fails hard: errors are reported through symBad plus a reason so the
// caller can decide between aborting and substituting the error color.
func unpackBlock(block []byte, fp *footprint) (scb symBlock) {
	mode := int(readBits(11, 0, block))
	if mode&0x1FF == 0x1FC {
		unpackConstBlock(block, fp, mode, &scb)
		return scb
	}

	mi := &fp.modes[mode]
	if !mi.ok {
		scb.fail("reserved block mode")
		return scb
	}

	partCount := int(readBits(2, 11, block)) + 1
	if mi.dualPlane && partCount == 4 {
		scb.fail("dual plane with four partitions")
		return scb
	}

	scb.mode = uint16(mode)
	scb.partCount = uint8(partCount)
	scb.plane2 = -1

	lo := binary.LittleEndian.Uint64(block[0:8])
	hi := binary.LittleEndian.Uint64(block[8:16])

	// Weights are packed from bit 127 downward, so the stream reads forward
	// in the bit-reversed block.
	var raw [maxWeights]uint8
	iseDecode(mi.wQuant, int(mi.iseCount), bits.Reverse64(hi), bits.Reverse64(lo), 0, raw[:])

	uq := &weightUnquantTables[mi.wQuant]
	if mi.dualPlane {
		for i := 0; i < int(mi.wCount); i++ {
			scb.weights[i] = uq[raw[2*i]]
			scb.weights[i+plane2Offset] = uq[raw[2*i+1]]
		}
	} else {
		for i := 0; i < int(mi.wCount); i++ {
			scb.weights[i] = uq[raw[i]]
		}
	}

	belowWeights := 128 - int(mi.wBits)

	var cems [maxPartitions]int
	extraCEMBits := 0
	if partCount == 1 {
		cems[0] = int(readBits(4, 13, block))
	} else {
		extraCEMBits = 3*partCount - 4
		belowWeights -= extraCEMBits
		encoded := int(readBits(6, 13+seedBits, block)) |
			int(readBits(extraCEMBits, belowWeights, block))<<6
		class := encoded & 3
		if class == 0 {
			// All partitions share one endpoint mode.
			for i := 0; i < partCount; i++ {
				cems[i] = (encoded >> 2) & 0xF
			}
			belowWeights += extraCEMBits
			extraCEMBits = 0
		} else {
			class--
			bitpos := 2
			for i := 0; i < partCount; i++ {
				cems[i] = ((encoded>>bitpos)&1 + class) << 2
				bitpos++
			}
			for i := 0; i < partCount; i++ {
				cems[i] |= (encoded >> bitpos) & 3
				bitpos += 2
			}
		}
		scb.partSeed = uint16(readBits(seedBits, 13, block))
	}

	colorInts := 0
	for i := 0; i < partCount; i++ {
		scb.cems[i] = uint8(cems[i])
		colorInts += (cems[i]>>2 + 1) * 2
	}
	if colorInts > maxColorInts {
		scb.fail("too many color endpoint integers")
		return scb
	}

	colorBitsBase := [...]int{0, 115 - 4, 113 - 4 - seedBits, 113 - 4 - seedBits, 113 - 4 - seedBits}
	colorBits := colorBitsBase[partCount] - int(mi.wBits) - extraCEMBits
	if mi.dualPlane {
		colorBits -= 2
	}
	if colorBits < 0 {
		colorBits = 0
	}

	cq := colorQuantForBits(colorInts, colorBits)
	if cq < 0 {
		scb.fail("insufficient bits for color endpoints")
		return scb
	}
	scb.colorQuant = quant(cq)

	startBit := 17
	if partCount != 1 {
		startBit = 19 + seedBits
	}
	var raw2 [colorIntsBuf]uint8
	iseDecode(scb.colorQuant, colorInts, lo, hi, startBit, raw2[:])

	unq := &colorUnquantTables[cq-int(quant6)]
	off := 0
	for i := 0; i < partCount; i++ {
		n := int(cems[i]>>2+1) * 2
		for j := 0; j < n; j++ {
			scb.cemValues[i][j] = unq[raw2[off+j]]
		}
		off += n
	}

	if mi.dualPlane {
		scb.plane2 = int8(readBits(2, belowWeights-2, block))
	}

	return scb
}

func unpackConstBlock(block []byte, fp *footprint, mode int, scb *symBlock) {
	scb.kind = symConstU16
	if mode&0x200 != 0 {
		scb.kind = symConstF16
	}

	for i := 0; i < 4; i++ {
		scb.constColor[i] = binary.LittleEndian.Uint16(block[8+2*i : 10+2*i])
	}

	// Void-extent coordinates must form a valid or all-ones range.
	if fp.z == 1 {
		if readBits(2, 10, block) != 3 {
			scb.fail("void extent reserved bits")
			return
		}
		lowS := int(readBits(8, 12, block)) | int(readBits(5, 20, block))<<8
		highS := int(readBits(13, 25, block))
		lowT := int(readBits(8, 38, block)) | int(readBits(5, 46, block))<<8
		highT := int(readBits(13, 51, block))

		allOnes := lowS == 0x1FFF && highS == 0x1FFF && lowT == 0x1FFF && highT == 0x1FFF
		if (lowS >= highS || lowT >= highT) && !allOnes {
			scb.fail("void extent bounds out of order")
		}
		return
	}

	lowS := int(readBits(9, 10, block))
	highS := int(readBits(9, 19, block))
	lowT := int(readBits(9, 28, block))
	highT := int(readBits(9, 37, block))
	lowR := int(readBits(9, 46, block))
	highR := int(readBits(9, 55, block))

	allOnes := lowS == 0x1FF && highS == 0x1FF &&
		lowT == 0x1FF && highT == 0x1FF &&
		lowR == 0x1FF && highR == 0x1FF
	if (lowS >= highS || lowT >= highT || lowR >= highR) && !allOnes {
		scb.fail("void extent bounds out of order")
	}
}
