package astc

import (
	"fmt"
	"math"
)

// File layout constants.
const (
	// HeaderSize is the size in bytes of an ASTC file header.
	HeaderSize = 16
	// BlockBytes is the size in bytes of one compressed block.
	BlockBytes = 16
)

var astcMagic = [4]byte{0x13, 0xAB, 0xA1, 0x5C}

// Header is the 16-byte ASTC file header. It records the block footprint
// and the uncompressed image size.
type Header struct {
	BlockX uint8
	BlockY uint8
	BlockZ uint8

	SizeX uint32
	SizeY uint32
	SizeZ uint32
}

func (h Header) String() string {
	return fmt.Sprintf("ASTC %dx%dx%d blocks, %dx%dx%d texels",
		h.BlockX, h.BlockY, h.BlockZ,
		h.SizeX, h.SizeY, h.SizeZ)
}

func (h Header) validate() *FormatError {
	if h.BlockX == 0 || h.BlockY == 0 || h.BlockZ == 0 {
		return headerErrf(4, "zero block dimension %dx%dx%d", h.BlockX, h.BlockY, h.BlockZ)
	}
	if h.SizeX == 0 || h.SizeY == 0 || h.SizeZ == 0 {
		return headerErrf(7, "zero image dimension %dx%dx%d", h.SizeX, h.SizeY, h.SizeZ)
	}
	return nil
}

// BlockCount returns the per-axis and total block counts for this image.
func (h Header) BlockCount() (blocksX, blocksY, blocksZ, total int, err error) {
	blocksX, blocksY, blocksZ, total, ferr := h.blockCount()
	if ferr != nil {
		return 0, 0, 0, 0, ferr
	}
	return blocksX, blocksY, blocksZ, total, nil
}

func (h Header) blockCount() (blocksX, blocksY, blocksZ, total int, err *FormatError) {
	if err := h.validate(); err != nil {
		return 0, 0, 0, 0, err
	}

	blocksX = int((h.SizeX + uint32(h.BlockX) - 1) / uint32(h.BlockX))
	blocksY = int((h.SizeY + uint32(h.BlockY) - 1) / uint32(h.BlockY))
	blocksZ = int((h.SizeZ + uint32(h.BlockZ) - 1) / uint32(h.BlockZ))

	total = blocksX * blocksY * blocksZ
	if total/blocksX/blocksY != blocksZ {
		return 0, 0, 0, 0, headerErrf(7, "block count overflow")
	}
	// The payload byte count must stay addressable too.
	if total > (math.MaxInt-HeaderSize)/BlockBytes {
		return 0, 0, 0, 0, headerErrf(7, "block count %d exceeds the addressable payload size", total)
	}
	return blocksX, blocksY, blocksZ, total, nil
}

// ParseHeader parses the 16-byte ASTC file header. It checks the magic and
// that no dimension is zero; footprint legality is checked at decode time.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, headerErrf(0, "truncated header: %d of %d bytes", len(data), HeaderSize)
	}
	if data[0] != astcMagic[0] || data[1] != astcMagic[1] ||
		data[2] != astcMagic[2] || data[3] != astcMagic[3] {
		return Header{}, headerErrf(0, "bad magic %02x %02x %02x %02x",
			data[0], data[1], data[2], data[3])
	}

	h := Header{
		BlockX: data[4],
		BlockY: data[5],
		BlockZ: data[6],
		SizeX:  decodeU24LE(data[7:10]),
		SizeY:  decodeU24LE(data[10:13]),
		SizeZ:  decodeU24LE(data[13:16]),
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// MarshalHeader returns the 16-byte encoding for h.
func MarshalHeader(h Header) ([HeaderSize]byte, error) {
	if err := h.validate(); err != nil {
		return [HeaderSize]byte{}, err
	}
	if h.SizeX > 0xFFFFFF || h.SizeY > 0xFFFFFF || h.SizeZ > 0xFFFFFF {
		return [HeaderSize]byte{}, headerErrf(7, "image dimension exceeds 24 bits")
	}

	var out [HeaderSize]byte
	copy(out[0:4], astcMagic[:])
	out[4] = h.BlockX
	out[5] = h.BlockY
	out[6] = h.BlockZ
	encodeU24LE(out[7:10], h.SizeX)
	encodeU24LE(out[10:13], h.SizeY)
	encodeU24LE(out[13:16], h.SizeZ)
	return out, nil
}

// ParseFile parses a full .astc file, returning the header and the block
// payload. The returned slice aliases data.
func ParseFile(data []byte) (Header, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	_, _, _, total, err := h.BlockCount()
	if err != nil {
		return Header{}, nil, err
	}

	need := HeaderSize + total*BlockBytes
	if len(data) < need {
		missing := (len(data) - HeaderSize) / BlockBytes
		if missing < 0 {
			missing = 0
		}
		return Header{}, nil, blockErrf(missing, "truncated payload: file has %d bytes, need %d for %d blocks",
			len(data), need, total)
	}
	if len(data) > need {
		// Tolerate zero padding but reject anything else: it usually means
		// two files were concatenated.
		for _, b := range data[need:] {
			if b != 0 {
				return Header{}, nil, headerErrf(need, "trailing non-zero data")
			}
		}
	}

	return h, data[HeaderSize:need], nil
}

func decodeU24LE(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func encodeU24LE(dst []byte, v uint32) {
	_ = dst[2]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
}
