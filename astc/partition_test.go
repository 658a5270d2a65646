package astc

import "testing"

func TestPartitionOfRange(t *testing.T) {
	for _, partCount := range []int{2, 3, 4} {
		for seed := 0; seed < 1024; seed += 37 {
			for y := 0; y < 6; y++ {
				for x := 0; x < 6; x++ {
					p := partitionOf(seed, x, y, 0, partCount, true)
					if int(p) >= partCount {
						t.Fatalf("partitionOf(%d, %d, %d, 0, %d) = %d",
							seed, x, y, partCount, p)
					}
				}
			}
		}
	}
}

func TestPartitionOfSinglePartition(t *testing.T) {
	for seed := 0; seed < 1024; seed += 101 {
		if p := partitionOf(seed, 3, 2, 1, 1, false); p != 0 {
			t.Fatalf("single partition returned %d", p)
		}
	}
}

func TestPartitionTableMatchesDirect(t *testing.T) {
	const x, y = 6, 6
	tab := getPartitionTable(x, y, 1, 2)
	if tab == nil {
		t.Fatal("nil partition table")
	}

	smallBlock := x*y < 32
	for seed := 0; seed < 1024; seed += 53 {
		got := tab.forSeed(seed)
		for ty := 0; ty < y; ty++ {
			for tx := 0; tx < x; tx++ {
				want := partitionOf(seed, tx, ty, 0, 2, smallBlock)
				if got[ty*x+tx] != want {
					t.Fatalf("seed %d texel (%d,%d): table %d, direct %d",
						seed, tx, ty, got[ty*x+tx], want)
				}
			}
		}
	}
}

func TestPartitionTableCacheReuse(t *testing.T) {
	a := getPartitionTable(8, 8, 1, 3)
	b := getPartitionTable(8, 8, 1, 3)
	if a != b {
		t.Error("cache returned distinct tables for the same key")
	}
	if getPartitionTable(8, 8, 1, 1) != nil {
		t.Error("expected nil table for a single partition")
	}
}

func TestHash52SpreadsSeeds(t *testing.T) {
	seen := map[uint32]bool{}
	for v := uint32(0); v < 1024; v++ {
		seen[hash52(v)] = true
	}
	// The mixer should not collapse the 10-bit seed space.
	if len(seen) < 1000 {
		t.Errorf("hash52 maps 1024 seeds to %d values", len(seen))
	}
}
