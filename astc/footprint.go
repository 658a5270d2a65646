package astc

import "sync"

// modeInfo is the fully resolved form of one 11-bit block mode for a given
// footprint.
type modeInfo struct {
	ok        bool
	wx        uint8
	wy        uint8
	wz        uint8
	dualPlane bool
	wQuant    quant
	wBits     uint8
	wCount    uint8 // weights per plane
	iseCount  uint8 // ISE symbols in the weight stream (doubled for dual plane)
	direct    bool  // weight grid matches the texel grid
	interp    []texelInterp
}

// footprint carries everything decode needs that depends only on the block
// dimensions: the resolved block mode table and the partition tables.
type footprint struct {
	x, y, z int
	texels  int

	modes      [1 << 11]modeInfo
	partitions [maxPartitions + 1]*partitionTable
}

type footprintKey struct {
	x, y, z uint8
}

var footprints struct {
	mu sync.RWMutex
	m  map[footprintKey]*footprint
}

func getFootprint(x, y, z int) *footprint {
	key := footprintKey{x: uint8(x), y: uint8(y), z: uint8(z)}

	footprints.mu.RLock()
	fp := footprints.m[key]
	footprints.mu.RUnlock()
	if fp != nil {
		return fp
	}

	footprints.mu.Lock()
	defer footprints.mu.Unlock()
	if footprints.m == nil {
		footprints.m = make(map[footprintKey]*footprint)
	} else if fp := footprints.m[key]; fp != nil {
		return fp
	}

	fp = newFootprint(x, y, z)
	footprints.m[key] = fp
	return fp
}

func newFootprint(x, y, z int) *footprint {
	fp := &footprint{
		x: x, y: y, z: z,
		texels: x * y * z,
	}

	for pc := 2; pc <= maxPartitions; pc++ {
		fp.partitions[pc] = getPartitionTable(x, y, z, pc)
	}

	for mode := 0; mode < 1<<11; mode++ {
		var (
			wx, wy, wz int
			dualPlane  bool
			wQuant     quant
			wBits      int
			ok         bool
		)

		if z == 1 {
			wx, wy, dualPlane, wQuant, wBits, ok = decodeBlockMode2D(mode)
			wz = 1
			ok = ok && wx <= x && wy <= y
		} else {
			wx, wy, wz, dualPlane, wQuant, wBits, ok = decodeBlockMode3D(mode)
			ok = ok && wx <= x && wy <= y && wz <= z
		}
		if !ok {
			continue
		}

		wCount := wx * wy * wz
		iseCount := wCount
		if dualPlane {
			iseCount *= 2
		}

		fp.modes[mode] = modeInfo{
			ok:        true,
			wx:        uint8(wx),
			wy:        uint8(wy),
			wz:        uint8(wz),
			dualPlane: dualPlane,
			wQuant:    wQuant,
			wBits:     uint8(wBits),
			wCount:    uint8(wCount),
			iseCount:  uint8(iseCount),
			direct:    wx == x && wy == y && wz == z,
			interp:    getInterpTable(x, y, z, wx, wy, wz),
		}
	}

	return fp
}

// validFootprint reports whether (x, y, z) is one of the block footprints
// the format defines.
func validFootprint(x, y, z int) bool {
	if z <= 1 {
		switch (x << 8) | y {
		case 0x0404, 0x0504, 0x0505, 0x0605, 0x0606,
			0x0805, 0x0806, 0x0808, 0x0A05, 0x0A06,
			0x0A08, 0x0A0A, 0x0C0A, 0x0C0C:
			return z == 1
		}
		return false
	}
	switch (x << 16) | (y << 8) | z {
	case 0x030303, 0x040303, 0x040403, 0x040404, 0x050404,
		0x050504, 0x050505, 0x060505, 0x060605, 0x060606:
		return true
	}
	return false
}
