package astc

import "errors"

// BlockInfo describes the symbolic content of a single compressed block.
// It is intended for tooling and debugging rather than bulk decoding.
type BlockInfo struct {
	BlockX     int
	BlockY     int
	BlockZ     int
	TexelCount int

	IsErrorBlock    bool
	ErrorReason     string
	IsConstantBlock bool
	IsFP16Constant  bool
	ConstantColor   [4]uint16

	BlockMode          int
	IsDualPlaneBlock   bool
	DualPlaneComponent int

	PartitionCount int
	PartitionSeed  int

	WeightX          int
	WeightY          int
	WeightZ          int
	WeightLevelCount int
	ColorLevelCount  int

	ColorEndpointModes [4]int

	// Weights are the unquantized plane 1 weights on the weight grid, with
	// plane 2 following at offset 32 for dual-plane blocks.
	Weights [maxWeights]uint8

	// PartitionAssignment maps each texel to its partition.
	PartitionAssignment [maxBlockTexels]uint8
}

// InspectBlock decodes one 16-byte block for the given footprint without
// compositing texels.
func InspectBlock(block []byte, blockX, blockY, blockZ int) (BlockInfo, error) {
	if len(block) < BlockBytes {
		return BlockInfo{}, errors.New("astc: short block")
	}
	if !validFootprint(blockX, blockY, blockZ) {
		return BlockInfo{}, errors.New("astc: illegal block footprint")
	}

	fp := getFootprint(blockX, blockY, blockZ)
	scb := unpackBlock(block[:BlockBytes], fp)

	info := BlockInfo{
		BlockX:     blockX,
		BlockY:     blockY,
		BlockZ:     blockZ,
		TexelCount: fp.texels,
	}

	switch scb.kind {
	case symBad:
		info.IsErrorBlock = true
		info.ErrorReason = scb.reason
		return info, nil
	case symConstU16, symConstF16:
		info.IsConstantBlock = true
		info.IsFP16Constant = scb.kind == symConstF16
		info.ConstantColor = scb.constColor
		return info, nil
	}

	mi := &fp.modes[scb.mode]

	info.BlockMode = int(scb.mode)
	info.IsDualPlaneBlock = mi.dualPlane
	info.DualPlaneComponent = int(scb.plane2)
	info.PartitionCount = int(scb.partCount)
	info.PartitionSeed = int(scb.partSeed)
	info.WeightX = int(mi.wx)
	info.WeightY = int(mi.wy)
	info.WeightZ = int(mi.wz)
	info.WeightLevelCount = mi.wQuant.levels()
	info.ColorLevelCount = scb.colorQuant.levels()
	info.Weights = scb.weights

	for p := 0; p < int(scb.partCount); p++ {
		info.ColorEndpointModes[p] = int(scb.cems[p])
	}

	if scb.partCount > 1 {
		parts := fp.partitions[scb.partCount].forSeed(int(scb.partSeed))
		copy(info.PartitionAssignment[:], parts)
	}

	return info, nil
}
