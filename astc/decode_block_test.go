package astc

import "testing"

// setHighBits ORs the first n bits of src into block starting at bit 127
// and counting down, which is how weight streams are stored.
func setHighBits(block []byte, src []byte, n int) {
	for i := 0; i < n; i++ {
		if src[i>>3]>>(uint(i)&7)&1 != 0 {
			bit := 127 - i
			block[bit>>3] |= 1 << (uint(bit) & 7)
		}
	}
}

// buildSinglePartitionBlock packs a one-partition block with the given
// mode, endpoint mode, raw color symbols and raw weight symbols.
func buildSinglePartitionBlock(t *testing.T, mode int, cem uint32, colorQuant quant, colors []uint8, weightQuant quant, weights []uint8) []byte {
	t.Helper()

	block := make([]byte, BlockBytes)
	writeBits(11, 0, block, uint32(mode))
	// partition count 1 at bits 11..12
	writeBits(4, 13, block, cem)
	iseEncode(colorQuant, len(colors), colors, block, 17)

	wbuf := make([]byte, BlockBytes)
	iseEncode(weightQuant, len(weights), weights, wbuf, 0)
	setHighBits(block, wbuf, iseBitCount(len(weights), weightQuant))
	return block
}

func TestDecodeBlockDirectWeights(t *testing.T) {
	// 4x4 weight grid on a 4x4 block: no infill.
	const mode = 66
	fp := getFootprint(4, 4, 1)
	if mi := fp.modes[mode]; !mi.ok || mi.wx != 4 || mi.wy != 4 || mi.wQuant != quant4 || !mi.direct {
		t.Fatalf("mode %d resolved to %+v", mode, fp.modes[mode])
	}

	colors := []uint8{32, 160, 64, 192, 96, 224}
	weights := make([]uint8, 16)
	for i := range weights {
		weights[i] = 3 // unquantizes to 64
	}
	block := buildSinglePartitionBlock(t, mode, cemRGB, quant256, colors, quant4, weights)

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	want := [4]byte{160, 192, 224, 255}
	for i := 0; i < fp.texels; i++ {
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeBlockInfillWeights(t *testing.T) {
	// 4x2 weight grid on a 4x4 block: weights are interpolated per texel.
	const mode = 531
	fp := getFootprint(4, 4, 1)
	mi := fp.modes[mode]
	if !mi.ok || mi.wx != 4 || mi.wy != 2 || mi.wQuant != quant32 || mi.direct {
		t.Fatalf("mode %d resolved to %+v", mode, mi)
	}

	colors := []uint8{32, 160, 64, 192, 96, 224}
	weights := make([]uint8, 8)
	for i := range weights {
		weights[i] = 31 // unquantizes to 64
	}
	block := buildSinglePartitionBlock(t, mode, cemRGB, quant256, colors, quant32, weights)

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	// A flat weight grid interpolates to a flat image.
	want := [4]byte{160, 192, 224, 255}
	for i := 0; i < fp.texels; i++ {
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeBlockZeroWeightsHitLowEndpoint(t *testing.T) {
	const mode = 66
	fp := getFootprint(4, 4, 1)

	colors := []uint8{32, 160, 64, 192, 96, 224}
	weights := make([]uint8, 16) // raw 0 unquantizes to 0
	block := buildSinglePartitionBlock(t, mode, cemRGB, quant256, colors, quant4, weights)

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	want := [4]byte{32, 64, 96, 255}
	for i := 0; i < fp.texels; i++ {
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeBlockReservedModeIsError(t *testing.T) {
	fp := getFootprint(4, 4, 1)
	block := make([]byte, BlockBytes) // mode 0 is reserved

	dst := make([]byte, fp.texels*4)
	reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst)
	if reason == "" {
		t.Fatal("expected a decode error for the all-zero block")
	}

	for i := 0; i < fp.texels; i++ {
		if dst[i*4] != 0xFF || dst[i*4+1] != 0x00 || dst[i*4+2] != 0xFF || dst[i*4+3] != 0xFF {
			t.Fatalf("texel %d not filled with the error color: %v", i, dst[i*4:i*4+4])
		}
	}
}

func TestDecodeBlockSRGBMatchesEndpoints(t *testing.T) {
	const mode = 66
	fp := getFootprint(4, 4, 1)

	colors := []uint8{32, 160, 64, 192, 96, 224}
	weights := make([]uint8, 16)
	block := buildSinglePartitionBlock(t, mode, cemRGB, quant256, colors, quant4, weights)

	lin := make([]byte, fp.texels*4)
	srgb := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, lin); reason != "" {
		t.Fatalf("linear decode failed: %s", reason)
	}
	if reason := decodeBlockRGBA8(ProfileLDRSRGB, fp, block, srgb); reason != "" {
		t.Fatalf("srgb decode failed: %s", reason)
	}

	// sRGB expansion is (v<<8)|0x80, so the decoded bytes match the
	// endpoint values exactly in both profiles for whole weights.
	for i := 0; i < 4; i++ {
		if lin[i] != srgb[i] {
			t.Fatalf("channel %d: linear %d vs srgb %d", i, lin[i], srgb[i])
		}
	}
}

func TestUnpackBlockDualPlaneFourPartitionsRejected(t *testing.T) {
	fp := getFootprint(4, 4, 1)

	// Find a dual-plane mode for this footprint.
	mode := -1
	for m := range fp.modes {
		if fp.modes[m].ok && fp.modes[m].dualPlane {
			mode = m
			break
		}
	}
	if mode < 0 {
		t.Fatal("no dual-plane mode found")
	}

	block := make([]byte, BlockBytes)
	writeBits(11, 0, block, uint32(mode))
	writeBits(2, 11, block, 3) // partition count 4

	scb := unpackBlock(block, fp)
	if scb.kind != symBad {
		t.Fatalf("expected symBad, got kind %d", scb.kind)
	}
}

func TestVoidExtentBoundsValidation(t *testing.T) {
	fp := getFootprint(4, 4, 1)

	// All-ones void extent coordinates are explicitly allowed.
	good := EncodeConstBlockRGBA8(10, 20, 30, 40)
	scb := unpackBlock(good[:], fp)
	if scb.kind != symConstU16 {
		t.Fatalf("expected symConstU16, got kind %d (%s)", scb.kind, scb.reason)
	}
	if scb.constColor != [4]uint16{10 * 257, 20 * 257, 30 * 257, 40 * 257} {
		t.Fatalf("const color = %v", scb.constColor)
	}

	// Clearing the reserved bits makes the block invalid.
	bad := good
	bad[1] &^= 0x0C
	if scb := unpackBlock(bad[:], fp); scb.kind != symBad {
		t.Fatalf("expected symBad for reserved bits, got kind %d", scb.kind)
	}
}

func TestDecodeBlockRGBDelta(t *testing.T) {
	const mode = 66
	fp := getFootprint(4, 4, 1)

	// Base 64 per channel with a +2 delta: endpoints 32 and 34.
	colors := []uint8{64, 4, 64, 4, 64, 4}
	weights := make([]uint8, 16)
	for i := range weights {
		weights[i] = 3 // unquantizes to 64
	}
	block := buildSinglePartitionBlock(t, mode, cemRGBDelta, quant256, colors, quant4, weights)

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	want := [4]byte{34, 34, 34, 255}
	for i := 0; i < fp.texels; i++ {
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeBlockTwoPartitions(t *testing.T) {
	const (
		mode = 66
		seed = 23
	)
	fp := getFootprint(4, 4, 1)

	block := make([]byte, BlockBytes)
	writeBits(11, 0, block, mode)
	writeBits(2, 11, block, 1) // two partitions
	writeBits(seedBits, 13, block, seed)
	writeBits(6, 23, block, cemRGB<<2) // shared endpoint mode

	// Partition 0 is black; partition 1 collapses both endpoints onto one
	// gray symbol so its texels ignore the weights.
	const graySym = 7
	colors := []uint8{
		0, 0, 0, 0, 0, 0,
		graySym, graySym, graySym, graySym, graySym, graySym,
	}
	iseEncode(quant40, len(colors), colors, block, 19+seedBits)

	weights := make([]uint8, 16)
	for i := range weights {
		weights[i] = 2
	}
	wbuf := make([]byte, BlockBytes)
	iseEncode(quant4, len(weights), weights, wbuf, 0)
	setHighBits(block, wbuf, iseBitCount(len(weights), quant4))

	scb := unpackBlock(block, fp)
	if scb.kind != symNormal || scb.partCount != 2 || scb.colorQuant != quant40 {
		t.Fatalf("unpacked kind=%d partCount=%d colorQuant=%v reason=%q",
			scb.kind, scb.partCount, scb.colorQuant, scb.reason)
	}
	if scb.cems[0] != cemRGB || scb.cems[1] != cemRGB {
		t.Fatalf("shared endpoint mode decoded as %v", scb.cems[:2])
	}

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	gray := colorUnquantTables[int(quant40)-int(quant6)][graySym]
	parts := fp.partitions[2].forSeed(seed)
	for i := 0; i < fp.texels; i++ {
		want := [4]byte{0, 0, 0, 255}
		if parts[i] == 1 {
			want = [4]byte{gray, gray, gray, 255}
		}
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d (partition %d) = %v, want %v", i, parts[i], got, want)
		}
	}
}

func TestDecodeBlockDualPlane(t *testing.T) {
	// 4x4 weight grid at quant2, dual plane, second plane on blue.
	const mode = 1089
	fp := getFootprint(4, 4, 1)
	mi := fp.modes[mode]
	if !mi.ok || !mi.dualPlane || mi.wx != 4 || mi.wy != 4 || mi.wQuant != quant2 {
		t.Fatalf("mode %d resolved to %+v", mode, mi)
	}

	block := make([]byte, BlockBytes)
	writeBits(11, 0, block, mode)
	// partition count 1 at bits 11..12
	writeBits(4, 13, block, cemRGB)

	colors := []uint8{32, 160, 64, 192, 96, 224}
	iseEncode(quant256, len(colors), colors, block, 17)

	// The plane selector sits directly below the weight stream.
	writeBits(2, 128-int(mi.wBits)-2, block, 2)

	// Plane 1 all zero, plane 2 all one: blue reads the high endpoint
	// while the other channels read the low one.
	weights := make([]uint8, 32)
	for i := 1; i < len(weights); i += 2 {
		weights[i] = 1
	}
	wbuf := make([]byte, BlockBytes)
	iseEncode(quant2, len(weights), weights, wbuf, 0)
	setHighBits(block, wbuf, iseBitCount(len(weights), quant2))

	scb := unpackBlock(block, fp)
	if scb.kind != symNormal || scb.plane2 != 2 {
		t.Fatalf("unpacked kind=%d plane2=%d reason=%q", scb.kind, scb.plane2, scb.reason)
	}

	dst := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	want := [4]byte{32, 64, 224, 255}
	for i := 0; i < fp.texels; i++ {
		got := [4]byte{dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3]}
		if got != want {
			t.Fatalf("texel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeBlockHDRLuminanceF32(t *testing.T) {
	const mode = 66
	fp := getFootprint(4, 4, 1)

	colors := []uint8{100, 200}
	weights := make([]uint8, 16)
	for i := range weights {
		weights[i] = 3 // unquantizes to 64
	}
	block := buildSinglePartitionBlock(t, mode, cemHDRLuminanceLarge, quant256, colors, quant4, weights)

	dst := make([]float32, fp.texels*4)
	if reason := decodeBlockRGBAF32(ProfileHDR, fp, block, dst); reason != "" {
		t.Fatalf("decode failed: %s", reason)
	}

	// Full weights land on the high endpoint: luminance 200<<8 in LNS.
	wantY := lnsToFloat32Table[51200]
	wantA := lnsToFloat32Table[0x7800]
	for i := 0; i < fp.texels; i++ {
		got := dst[i*4 : i*4+4]
		if got[0] != wantY || got[1] != wantY || got[2] != wantY || got[3] != wantA {
			t.Fatalf("texel %d = %v, want [%g %g %g %g]", i, got, wantY, wantY, wantY, wantA)
		}
	}

	// The same block under an LDR profile is not a block error but every
	// texel decodes to the error color.
	dst8 := make([]byte, fp.texels*4)
	if reason := decodeBlockRGBA8(ProfileLDR, fp, block, dst8); reason != "" {
		t.Fatalf("ldr decode failed: %s", reason)
	}
	for i := 0; i < fp.texels; i++ {
		if dst8[i*4] != 0xFF || dst8[i*4+1] != 0x00 || dst8[i*4+2] != 0xFF || dst8[i*4+3] != 0xFF {
			t.Fatalf("texel %d = %v, want the error color", i, dst8[i*4:i*4+4])
		}
	}
}

func TestDecodeBlockF32ConstFP16(t *testing.T) {
	fp := getFootprint(4, 4, 1)
	block := EncodeConstBlockF16(
		float32ToHalf(0.5),
		float32ToHalf(1.0),
		float32ToHalf(2.0),
		float32ToHalf(1.0),
	)

	dst := make([]float32, fp.texels*4)
	if reason := decodeBlockRGBAF32(ProfileHDR, fp, block[:], dst); reason != "" {
		t.Fatalf("hdr decode failed: %s", reason)
	}
	if dst[0] != 0.5 || dst[1] != 1.0 || dst[2] != 2.0 || dst[3] != 1.0 {
		t.Fatalf("texel 0 = %v", dst[:4])
	}

	// The same block is an error under LDR profiles.
	if reason := decodeBlockRGBAF32(ProfileLDR, fp, block[:], dst); reason == "" {
		t.Fatal("expected an error under the LDR profile")
	}
	if dst[0] != 1 || dst[1] != 0 || dst[2] != 1 || dst[3] != 1 {
		t.Fatalf("error color = %v", dst[:4])
	}
}
