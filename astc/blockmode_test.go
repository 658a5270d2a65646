package astc

import "testing"

func TestDecodeBlockMode2D(t *testing.T) {
	// Mode 0 encodes the reserved pattern.
	if _, _, _, _, _, ok := decodeBlockMode2D(0); ok {
		t.Error("mode 0 should be reserved")
	}

	wx, wy, dual, q, wBits, ok := decodeBlockMode2D(66)
	if !ok || wx != 4 || wy != 4 || dual || q != quant4 || wBits != 32 {
		t.Fatalf("mode 66: wx=%d wy=%d dual=%v q=%v bits=%d ok=%v",
			wx, wy, dual, q, wBits, ok)
	}
}

func TestBlockModeWeightLimits(t *testing.T) {
	for mode := 0; mode < 1<<11; mode++ {
		wx, wy, dual, q, wBits, ok := decodeBlockMode2D(mode)
		if !ok {
			continue
		}
		count := wx * wy
		if dual {
			count *= 2
		}
		if count > maxWeights {
			t.Errorf("mode %d allows %d weights", mode, count)
		}
		if wBits < minWeightBits || wBits > maxWeightBits {
			t.Errorf("mode %d allows %d weight bits", mode, wBits)
		}
		if got := iseBitCount(count, q); got != wBits {
			t.Errorf("mode %d reports %d bits, ise says %d", mode, wBits, got)
		}
	}
}

func TestBlockModeWeightLimits3D(t *testing.T) {
	for mode := 0; mode < 1<<11; mode++ {
		wx, wy, wz, dual, q, wBits, ok := decodeBlockMode3D(mode)
		if !ok {
			continue
		}
		count := wx * wy * wz
		if dual {
			count *= 2
		}
		if count > maxWeights {
			t.Errorf("mode %d allows %d weights", mode, count)
		}
		if wBits < minWeightBits || wBits > maxWeightBits {
			t.Errorf("mode %d allows %d weight bits", mode, wBits)
		}
		if got := iseBitCount(count, q); got != wBits {
			t.Errorf("mode %d reports %d bits, ise says %d", mode, wBits, got)
		}
	}
}

func TestFootprintModes(t *testing.T) {
	fp := getFootprint(4, 4, 1)
	nOK := 0
	for m := range fp.modes {
		mi := &fp.modes[m]
		if !mi.ok {
			continue
		}
		nOK++
		if int(mi.wx) > fp.x || int(mi.wy) > fp.y || int(mi.wz) > fp.z {
			t.Errorf("mode %d weight grid %dx%dx%d exceeds 4x4x1",
				m, mi.wx, mi.wy, mi.wz)
		}
		if mi.interp == nil {
			t.Errorf("mode %d missing interpolation table", m)
		}
		wantDirect := int(mi.wx) == fp.x && int(mi.wy) == fp.y && int(mi.wz) == fp.z
		if mi.direct != wantDirect {
			t.Errorf("mode %d direct=%v", m, mi.direct)
		}
	}
	if nOK == 0 {
		t.Fatal("no valid modes for the 4x4 footprint")
	}

	if getFootprint(4, 4, 1) != fp {
		t.Error("footprint cache returned a new instance")
	}
}

func TestValidFootprint(t *testing.T) {
	good := [][3]int{
		{4, 4, 1}, {5, 4, 1}, {6, 6, 1}, {8, 8, 1}, {10, 10, 1}, {12, 12, 1},
		{3, 3, 3}, {4, 4, 4}, {5, 5, 5}, {6, 6, 6},
	}
	for _, g := range good {
		if !validFootprint(g[0], g[1], g[2]) {
			t.Errorf("footprint %v rejected", g)
		}
	}

	bad := [][3]int{
		{4, 5, 1}, {7, 7, 1}, {13, 13, 1}, {12, 12, 12}, {4, 4, 3}, {0, 0, 0}, {2, 2, 1},
	}
	for _, b := range bad {
		if validFootprint(b[0], b[1], b[2]) {
			t.Errorf("footprint %v accepted", b)
		}
	}
}
