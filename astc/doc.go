// Package astc decodes ASTC (Adaptive Scalable Texture Compression) images.
//
// The package parses the 16-byte .astc container header and decompresses the
// fixed-size 128-bit blocks that follow it into flat RGBA pixel buffers. Both
// 2D images and 3D volumes are supported, for every legal block footprint
// from 4x4 up to 12x12 (and 3x3x3 up to 6x6x6 for volumes).
//
// Basic usage:
//
//	pix, w, h, err := astc.DecodeRGBA8(data, nil)
//
// Decoding is strict by default: the first malformed block aborts the decode
// with a *FormatError naming the offending block. Options.Lenient switches to
// the reference codec's behavior of painting bad blocks with the error color
// and continuing.
package astc
