package astc

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Options control a decode.
//
// The zero value decodes with the linear LDR profile, aborts on the first
// malformed block, and uses all available CPUs.
type Options struct {
	// Profile selects the endpoint expansion rules.
	Profile Profile

	// Lenient substitutes the opaque magenta error color for malformed
	// blocks instead of aborting. Header and size errors still abort.
	Lenient bool

	// Workers caps decode parallelism. Zero means GOMAXPROCS; one forces
	// a sequential decode.
	Workers int
}

func (o *Options) profile() Profile {
	if o == nil {
		return ProfileLDR
	}
	return o.Profile
}

func (o *Options) lenient() bool { return o != nil && o.Lenient }

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// DecodeRGBA8 decodes a 2D .astc file into an 8-bit RGBA pixel buffer.
// Pixels are laid out in x-major order: (y*width + x) * 4.
//
// The image must have SizeZ == 1 and BlockZ == 1, and opts must select an
// LDR profile.
func DecodeRGBA8(data []byte, opts *Options) (pix []byte, width, height int, err error) {
	pix, width, height, depth, err := DecodeRGBA8Volume(data, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	if depth != 1 {
		return nil, 0, 0, errors.New("astc: DecodeRGBA8 only supports 2D images; use DecodeRGBA8Volume")
	}
	return pix, width, height, nil
}

// DecodeRGBA8Volume decodes a .astc file into an 8-bit RGBA pixel buffer.
// Pixels are laid out in x-major order, then y, then z:
// ((z*height+y)*width + x) * 4.
func DecodeRGBA8Volume(data []byte, opts *Options) (pix []byte, width, height, depth int, err error) {
	h, blocks, err := ParseFile(data)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	pix = make([]byte, int(h.SizeX)*int(h.SizeY)*int(h.SizeZ)*4)
	if err := decodeVolumeRGBA8(h, blocks, opts, pix); err != nil {
		return nil, 0, 0, 0, err
	}
	return pix, int(h.SizeX), int(h.SizeY), int(h.SizeZ), nil
}

// DecodeRGBA8VolumeInto decodes a .astc file into a caller-provided RGBA8
// buffer of at least width*height*depth*4 bytes.
func DecodeRGBA8VolumeInto(data []byte, opts *Options, dst []byte) (width, height, depth int, err error) {
	h, blocks, err := ParseFile(data)
	if err != nil {
		return 0, 0, 0, err
	}

	need := int(h.SizeX) * int(h.SizeY) * int(h.SizeZ) * 4
	if len(dst) < need {
		return 0, 0, 0, errors.New("astc: output buffer too small")
	}
	if err := decodeVolumeRGBA8(h, blocks, opts, dst[:need]); err != nil {
		return 0, 0, 0, err
	}
	return int(h.SizeX), int(h.SizeY), int(h.SizeZ), nil
}

// DecodeRGBAF32Volume decodes a .astc file into a float32 RGBA pixel
// buffer. LDR endpoints decode as unorm16 values converted to float, HDR
// endpoints as LNS values converted to float.
func DecodeRGBAF32Volume(data []byte, opts *Options) (pix []float32, width, height, depth int, err error) {
	h, blocks, err := ParseFile(data)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	pix = make([]float32, int(h.SizeX)*int(h.SizeY)*int(h.SizeZ)*4)
	if err := decodeVolumeRGBAF32(h, blocks, opts, pix); err != nil {
		return nil, 0, 0, 0, err
	}
	return pix, int(h.SizeX), int(h.SizeY), int(h.SizeZ), nil
}

// DecodeRGBAF32VolumeInto decodes a .astc file into a caller-provided
// float32 RGBA buffer of at least width*height*depth*4 elements.
func DecodeRGBAF32VolumeInto(data []byte, opts *Options, dst []float32) (width, height, depth int, err error) {
	h, blocks, err := ParseFile(data)
	if err != nil {
		return 0, 0, 0, err
	}

	need := int(h.SizeX) * int(h.SizeY) * int(h.SizeZ) * 4
	if len(dst) < need {
		return 0, 0, 0, errors.New("astc: output buffer too small")
	}
	if err := decodeVolumeRGBAF32(h, blocks, opts, dst[:need]); err != nil {
		return 0, 0, 0, err
	}
	return int(h.SizeX), int(h.SizeY), int(h.SizeZ), nil
}

// volumeGeom captures the block grid of a parsed file.
type volumeGeom struct {
	blocksX, blocksY, blocksZ int
	total                     int
	width, height, depth      int
	blockX, blockY, blockZ    int
}

func checkVolume(h Header, opts *Options) (volumeGeom, *footprint, *FormatError) {
	bx, by, bz, total, err := h.blockCount()
	if err != nil {
		return volumeGeom{}, nil, err
	}

	g := volumeGeom{
		blocksX: bx, blocksY: by, blocksZ: bz,
		total: total,
		width: int(h.SizeX), height: int(h.SizeY), depth: int(h.SizeZ),
		blockX: int(h.BlockX), blockY: int(h.BlockY), blockZ: int(h.BlockZ),
	}

	if !validFootprint(g.blockX, g.blockY, g.blockZ) {
		return volumeGeom{}, nil, headerErrf(4, "illegal block footprint %dx%dx%d",
			g.blockX, g.blockY, g.blockZ)
	}
	if !opts.profile().valid() {
		return volumeGeom{}, nil, headerErrf(0, "invalid decode profile")
	}

	return g, getFootprint(g.blockX, g.blockY, g.blockZ), nil
}

func decodeVolumeRGBA8(h Header, blocks []byte, opts *Options, dst []byte) error {
	g, fp, ferr := checkVolume(h, opts)
	if ferr != nil {
		return ferr
	}
	if !opts.profile().isLDR() {
		return errors.New("astc: 8-bit output requires an LDR profile")
	}

	profile := opts.profile()
	lenient := opts.lenient()
	ferr = runBlocks(g.total, opts.workers(), func() func(int) *FormatError {
		scratch := make([]byte, fp.texels*4)
		return func(idx int) *FormatError {
			block := blocks[idx*BlockBytes : (idx+1)*BlockBytes]
			reason := decodeBlockRGBA8(profile, fp, block, scratch)
			if reason != "" && !lenient {
				return blockErrf(idx, "%s", reason)
			}
			storeBlockBytes(g, idx, scratch, dst)
			return nil
		}
	})
	if ferr != nil {
		return ferr
	}
	return nil
}

func decodeVolumeRGBAF32(h Header, blocks []byte, opts *Options, dst []float32) error {
	g, fp, ferr := checkVolume(h, opts)
	if ferr != nil {
		return ferr
	}

	profile := opts.profile()
	lenient := opts.lenient()
	ferr = runBlocks(g.total, opts.workers(), func() func(int) *FormatError {
		scratch := make([]float32, fp.texels*4)
		return func(idx int) *FormatError {
			block := blocks[idx*BlockBytes : (idx+1)*BlockBytes]
			reason := decodeBlockRGBAF32(profile, fp, block, scratch)
			if reason != "" && !lenient {
				return blockErrf(idx, "%s", reason)
			}
			storeBlockF32(g, idx, scratch, dst)
			return nil
		}
	})
	if ferr != nil {
		return ferr
	}
	return nil
}

// storeBlockBytes copies a decoded block into the destination image,
// cropping at the image edges.
func storeBlockBytes(g volumeGeom, idx int, src []byte, dst []byte) {
	bx := idx % g.blocksX
	by := idx / g.blocksX % g.blocksY
	bz := idx / (g.blocksX * g.blocksY)

	x0 := bx * g.blockX
	y0 := by * g.blockY
	z0 := bz * g.blockZ

	nx := minInt(g.blockX, g.width-x0)
	ny := minInt(g.blockY, g.height-y0)
	nz := minInt(g.blockZ, g.depth-z0)

	rowStride := g.width * 4
	sliceStride := g.height * rowStride
	srcRow := g.blockX * 4

	for zz := 0; zz < nz; zz++ {
		dstSlice := (z0+zz)*sliceStride + x0*4
		srcSlice := zz * g.blockY * srcRow
		for yy := 0; yy < ny; yy++ {
			dstOff := dstSlice + (y0+yy)*rowStride
			srcOff := srcSlice + yy*srcRow
			copy(dst[dstOff:dstOff+nx*4], src[srcOff:srcOff+nx*4])
		}
	}
}

func storeBlockF32(g volumeGeom, idx int, src []float32, dst []float32) {
	bx := idx % g.blocksX
	by := idx / g.blocksX % g.blocksY
	bz := idx / (g.blocksX * g.blocksY)

	x0 := bx * g.blockX
	y0 := by * g.blockY
	z0 := bz * g.blockZ

	nx := minInt(g.blockX, g.width-x0)
	ny := minInt(g.blockY, g.height-y0)
	nz := minInt(g.blockZ, g.depth-z0)

	rowStride := g.width * 4
	sliceStride := g.height * rowStride
	srcRow := g.blockX * 4

	for zz := 0; zz < nz; zz++ {
		dstSlice := (z0+zz)*sliceStride + x0*4
		srcSlice := zz * g.blockY * srcRow
		for yy := 0; yy < ny; yy++ {
			dstOff := dstSlice + (y0+yy)*rowStride
			srcOff := srcSlice + yy*srcRow
			copy(dst[dstOff:dstOff+nx*4], src[srcOff:srcOff+nx*4])
		}
	}
}

// runBlocks runs fn over block indices 0..total-1. newWorker is invoked
// once per goroutine so each gets private scratch space. Small inputs run
// sequentially.
func runBlocks(total, workers int, newWorker func() func(int) *FormatError) *FormatError {
	if workers > total {
		workers = total
	}
	if workers <= 1 || total < 32 {
		fn := newWorker()
		for i := 0; i < total; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		next     uint32
		stop     uint32
		firstErr *FormatError
		errOnce  sync.Once
		wg       sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			fn := newWorker()
			for {
				if atomic.LoadUint32(&stop) != 0 {
					return
				}
				idx := int(atomic.AddUint32(&next, 1) - 1)
				if idx >= total {
					return
				}
				if err := fn(idx); err != nil {
					errOnce.Do(func() {
						firstErr = err
						atomic.StoreUint32(&stop, 1)
					})
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
