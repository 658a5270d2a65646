package astc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texturekit/go-astc/astc"
)

var header8x8 = []byte{
	0x13, 0xAB, 0xA1, 0x5C, // magic
	0x04, 0x04, 0x01, // 4x4x1 blocks
	0x08, 0x00, 0x00, // width 8
	0x08, 0x00, 0x00, // height 8
	0x01, 0x00, 0x00, // depth 1
}

func TestParseHeader(t *testing.T) {
	h, err := astc.ParseHeader(header8x8)
	require.NoError(t, err)

	assert.Equal(t, uint8(4), h.BlockX)
	assert.Equal(t, uint8(4), h.BlockY)
	assert.Equal(t, uint8(1), h.BlockZ)
	assert.Equal(t, uint32(8), h.SizeX)
	assert.Equal(t, uint32(8), h.SizeY)
	assert.Equal(t, uint32(1), h.SizeZ)

	bx, by, bz, total, err := h.BlockCount()
	require.NoError(t, err)
	assert.Equal(t, 2, bx)
	assert.Equal(t, 2, by)
	assert.Equal(t, 1, bz)
	assert.Equal(t, 4, total)
}

func TestParseHeaderErrors(t *testing.T) {
	short := header8x8[:astc.HeaderSize-1]
	_, err := astc.ParseHeader(short)
	assert.Error(t, err)

	badMagic := append([]byte(nil), header8x8...)
	badMagic[0] = 0x14
	_, err = astc.ParseHeader(badMagic)
	assert.Error(t, err)

	zeroDim := append([]byte(nil), header8x8...)
	zeroDim[7], zeroDim[8], zeroDim[9] = 0, 0, 0
	_, err = astc.ParseHeader(zeroDim)
	assert.Error(t, err)
}

func TestMarshalHeaderRoundTrip(t *testing.T) {
	h := astc.Header{
		BlockX: 6, BlockY: 5, BlockZ: 1,
		SizeX: 300, SizeY: 200, SizeZ: 1,
	}
	raw, err := astc.MarshalHeader(h)
	require.NoError(t, err)

	got, err := astc.ParseHeader(raw[:])
	require.NoError(t, err)
	assert.Equal(t, h, got)

	h.SizeX = 1 << 24
	_, err = astc.MarshalHeader(h)
	assert.Error(t, err)
}

func TestParseFileTruncated(t *testing.T) {
	// 4 blocks expected, only 2 supplied.
	data := append([]byte(nil), header8x8...)
	data = append(data, make([]byte, 2*astc.BlockBytes)...)

	_, _, err := astc.ParseFile(data)
	require.Error(t, err)

	var ferr *astc.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 2, ferr.Block)
}

func TestParseFileHugeBlockCount(t *testing.T) {
	// 1x1x1 blocks over a 1000000^3 image: the block count fits in an int
	// but the payload byte count does not.
	huge := []byte{
		0x13, 0xAB, 0xA1, 0x5C,
		0x01, 0x01, 0x01,
		0x40, 0x42, 0x0F,
		0x40, 0x42, 0x0F,
		0x40, 0x42, 0x0F,
	}

	h, err := astc.ParseHeader(huge)
	require.NoError(t, err)

	_, _, _, _, err = h.BlockCount()
	require.Error(t, err)
	var ferr *astc.FormatError
	require.ErrorAs(t, err, &ferr)

	_, _, err = astc.ParseFile(huge)
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, -1, ferr.Block)
}

func TestParseFileTrailingData(t *testing.T) {
	data := append([]byte(nil), header8x8...)
	data = append(data, make([]byte, 4*astc.BlockBytes)...)

	// Zero padding after the payload is tolerated.
	padded := append(append([]byte(nil), data...), 0, 0, 0)
	_, payload, err := astc.ParseFile(padded)
	require.NoError(t, err)
	assert.Len(t, payload, 4*astc.BlockBytes)

	// Non-zero trailing bytes are not.
	junk := append(append([]byte(nil), data...), 0xAB)
	_, _, err = astc.ParseFile(junk)
	assert.Error(t, err)
}
