package astc

import "sync"

// partitionTable caches texel-to-partition assignments for every 10-bit seed
// of one (footprint, partition count) pair.
type partitionTable struct {
	texels int
	data   []uint8 // seed-major: [seed*texels : (seed+1)*texels]
}

type partitionTableKey struct {
	x, y, z uint8
	count   uint8
}

var partitionTables struct {
	mu sync.RWMutex
	m  map[partitionTableKey]*partitionTable
}

func getPartitionTable(x, y, z, count int) *partitionTable {
	if count <= 1 {
		return nil
	}

	key := partitionTableKey{x: uint8(x), y: uint8(y), z: uint8(z), count: uint8(count)}

	partitionTables.mu.RLock()
	t := partitionTables.m[key]
	partitionTables.mu.RUnlock()
	if t != nil {
		return t
	}

	partitionTables.mu.Lock()
	defer partitionTables.mu.Unlock()
	if partitionTables.m == nil {
		partitionTables.m = make(map[partitionTableKey]*partitionTable)
	} else if t := partitionTables.m[key]; t != nil {
		return t
	}

	texels := x * y * z
	smallBlock := texels < 32
	data := make([]uint8, (1<<seedBits)*texels)

	for seed := 0; seed < 1<<seedBits; seed++ {
		base := seed * texels
		i := 0
		for tz := 0; tz < z; tz++ {
			for ty := 0; ty < y; ty++ {
				for tx := 0; tx < x; tx++ {
					data[base+i] = partitionOf(seed, tx, ty, tz, count, smallBlock)
					i++
				}
			}
		}
	}

	t = &partitionTable{texels: texels, data: data}
	partitionTables.m[key] = t
	return t
}

// forSeed returns the per-texel partition assignment for one seed.
func (t *partitionTable) forSeed(seed int) []uint8 {
	if t == nil {
		return nil
	}
	seed &= (1 << seedBits) - 1
	base := seed * t.texels
	return t.data[base : base+t.texels]
}
