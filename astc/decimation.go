package astc

import "sync"

// texelInterp maps one texel to up to four stored weights with 4-bit
// interpolation factors summing to 16. Entries with factor 0 point at weight
// 0 and contribute nothing.
type texelInterp struct {
	idx [4]uint8
	w   [4]uint8
}

type interpTableKey struct {
	x, y, z    uint8
	wx, wy, wz uint8
}

var interpTables struct {
	mu sync.RWMutex
	m  map[interpTableKey][]texelInterp
}

// getInterpTable returns the weight-grid upsampling table for decoding a
// (wx, wy, wz) weight grid over an (x, y, z) block footprint. Tables are
// built once and cached.
func getInterpTable(x, y, z, wx, wy, wz int) []texelInterp {
	key := interpTableKey{
		x: uint8(x), y: uint8(y), z: uint8(z),
		wx: uint8(wx), wy: uint8(wy), wz: uint8(wz),
	}

	interpTables.mu.RLock()
	if t, ok := interpTables.m[key]; ok {
		interpTables.mu.RUnlock()
		return t
	}
	interpTables.mu.RUnlock()

	interpTables.mu.Lock()
	defer interpTables.mu.Unlock()
	if interpTables.m == nil {
		interpTables.m = make(map[interpTableKey][]texelInterp)
	} else if t, ok := interpTables.m[key]; ok {
		return t
	}

	var t []texelInterp
	if z == 1 {
		t = buildInterpTable2D(x, y, wx, wy)
	} else {
		t = buildInterpTable3D(x, y, z, wx, wy, wz)
	}
	interpTables.m[key] = t
	return t
}

// The 6.4 fixed-point scale factors and the fractional splits below follow
// the format's infill interpolation definition.
func buildInterpTable2D(x, y, wx, wy int) []texelInterp {
	table := make([]texelInterp, x*y)
	if x <= 1 || y <= 1 || wx <= 0 || wy <= 0 {
		return table
	}
	weightsPerPlane := wx * wy

	xScale := (1024 + x/2) / (x - 1)
	yScale := (1024 + y/2) / (y - 1)

	for ty := 0; ty < y; ty++ {
		for tx := 0; tx < x; tx++ {
			xw := (xScale*tx*(wx-1) + 32) >> 6
			yw := (yScale*ty*(wy-1) + 32) >> 6

			xFrac := xw & 0xF
			yFrac := yw & 0xF
			xInt := xw >> 4
			yInt := yw >> 4

			q0 := yInt*wx + xInt

			prod := xFrac * yFrac
			f3 := (prod + 8) >> 4
			f1 := xFrac - f3
			f2 := yFrac - f3
			f0 := 16 - xFrac - yFrac + f3

			table[ty*x+tx] = makeInterp(
				[4]int{q0, q0 + 1, q0 + wx, q0 + wx + 1},
				[4]int{f0, f1, f2, f3},
				weightsPerPlane,
			)
		}
	}
	return table
}

func buildInterpTable3D(x, y, z, wx, wy, wz int) []texelInterp {
	table := make([]texelInterp, x*y*z)
	if x <= 1 || y <= 1 || z <= 1 || wx <= 0 || wy <= 0 || wz <= 0 {
		return table
	}
	weightsPerPlane := wx * wy * wz

	xScale := (1024 + x/2) / (x - 1)
	yScale := (1024 + y/2) / (y - 1)
	zScale := (1024 + z/2) / (z - 1)

	n := wx
	nm := wx * wy

	i := 0
	for tz := 0; tz < z; tz++ {
		for ty := 0; ty < y; ty++ {
			for tx := 0; tx < x; tx++ {
				xw := (xScale*tx*(wx-1) + 32) >> 6
				yw := (yScale*ty*(wy-1) + 32) >> 6
				zw := (zScale*tz*(wz-1) + 32) >> 6

				fs := xw & 0xF
				ft := yw & 0xF
				fp := zw & 0xF
				xInt := xw >> 4
				yInt := yw >> 4
				zInt := zw >> 4

				q0 := (zInt*wy+yInt)*wx + xInt
				q3 := ((zInt+1)*wy+(yInt+1))*wx + (xInt + 1)

				// The simplex the texel falls in decides the stride order
				// and the fractional split.
				cas := 0
				if fs > ft {
					cas |= 4
				}
				if ft > fp {
					cas |= 2
				}
				if fs > fp {
					cas |= 1
				}

				var s1, s2, f0, f1, f2, f3 int
				switch cas {
				case 7:
					s1, s2 = 1, n
					f0, f1, f2, f3 = 16-fs, fs-ft, ft-fp, fp
				case 3:
					s1, s2 = n, 1
					f0, f1, f2, f3 = 16-ft, ft-fs, fs-fp, fp
				case 5:
					s1, s2 = 1, nm
					f0, f1, f2, f3 = 16-fs, fs-fp, fp-ft, ft
				case 4:
					s1, s2 = nm, 1
					f0, f1, f2, f3 = 16-fp, fp-fs, fs-ft, ft
				case 2:
					s1, s2 = n, nm
					f0, f1, f2, f3 = 16-ft, ft-fp, fp-fs, fs
				default:
					s1, s2 = nm, n
					f0, f1, f2, f3 = 16-fp, fp-ft, ft-fs, fs
				}

				q1 := q0 + s1
				q2 := q1 + s2

				table[i] = makeInterp(
					[4]int{q0, q1, q2, q3},
					[4]int{f0, f1, f2, f3},
					weightsPerPlane,
				)
				i++
			}
		}
	}
	return table
}

func makeInterp(idx [4]int, w [4]int, weightsPerPlane int) texelInterp {
	var e texelInterp
	for i := 0; i < 4; i++ {
		if w[i] == 0 || idx[i] < 0 || idx[i] >= weightsPerPlane {
			continue
		}
		e.idx[i] = uint8(idx[i])
		e.w[i] = uint8(w[i])
	}
	return e
}
