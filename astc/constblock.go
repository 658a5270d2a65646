package astc

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var (
	constBlockU16Prefix = [8]byte{0xFC, 0xFD, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	constBlockF16Prefix = [8]byte{0xFC, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
)

// EncodeConstBlockUNorm16 encodes a constant-color block storing UNORM16
// RGBA values.
func EncodeConstBlockUNorm16(r, g, b, a uint16) [BlockBytes]byte {
	var out [BlockBytes]byte
	copy(out[:8], constBlockU16Prefix[:])
	binary.LittleEndian.PutUint16(out[8:10], r)
	binary.LittleEndian.PutUint16(out[10:12], g)
	binary.LittleEndian.PutUint16(out[12:14], b)
	binary.LittleEndian.PutUint16(out[14:16], a)
	return out
}

// EncodeConstBlockRGBA8 encodes a constant-color block for an RGBA8 pixel.
// Channels are widened by 8->16 bit replication (v*257).
func EncodeConstBlockRGBA8(r, g, b, a uint8) [BlockBytes]byte {
	return EncodeConstBlockUNorm16(
		uint16(r)*257,
		uint16(g)*257,
		uint16(b)*257,
		uint16(a)*257,
	)
}

// EncodeConstBlockF16 encodes a constant-color block storing FP16 RGBA
// values. Such blocks decode only under HDR profiles.
func EncodeConstBlockF16(r, g, b, a uint16) [BlockBytes]byte {
	var out [BlockBytes]byte
	copy(out[:8], constBlockF16Prefix[:])
	binary.LittleEndian.PutUint16(out[8:10], r)
	binary.LittleEndian.PutUint16(out[10:12], g)
	binary.LittleEndian.PutUint16(out[12:14], b)
	binary.LittleEndian.PutUint16(out[14:16], a)
	return out
}

// DecodeConstBlockRGBA8 decodes a UNORM16 or FP16 constant-color block into
// an RGBA8 value.
func DecodeConstBlockRGBA8(block []byte) (r, g, b, a uint8, err error) {
	if len(block) < BlockBytes {
		return 0, 0, 0, 0, errors.New("astc: short block")
	}

	switch {
	case bytes.Equal(block[:8], constBlockU16Prefix[:]):
		return unorm16ToUnorm8(binary.LittleEndian.Uint16(block[8:10])),
			unorm16ToUnorm8(binary.LittleEndian.Uint16(block[10:12])),
			unorm16ToUnorm8(binary.LittleEndian.Uint16(block[12:14])),
			unorm16ToUnorm8(binary.LittleEndian.Uint16(block[14:16])), nil
	case bytes.Equal(block[:8], constBlockF16Prefix[:]):
		return float01ToUnorm8(halfToFloat32(binary.LittleEndian.Uint16(block[8:10]))),
			float01ToUnorm8(halfToFloat32(binary.LittleEndian.Uint16(block[10:12]))),
			float01ToUnorm8(halfToFloat32(binary.LittleEndian.Uint16(block[12:14]))),
			float01ToUnorm8(halfToFloat32(binary.LittleEndian.Uint16(block[14:16]))), nil
	}
	return 0, 0, 0, 0, errors.New("astc: not a constant-color block")
}

// unorm16ToUnorm8 rounds [0,65535] down to [0,255]. Values written by 8->16
// replication map back exactly.
func unorm16ToUnorm8(v uint16) uint8 {
	return uint8((uint32(v) + 128) / 257)
}

func float01ToUnorm8(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
