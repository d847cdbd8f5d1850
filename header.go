// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/quicklz

package quicklz

import "fmt"

// Header is the decoded QuickLZ buffer header.
type Header struct {
	Flags            byte // raw flags byte
	HeaderLen        int  // 3 or 9
	CompressedSize   int  // total buffer size including the header
	DecompressedSize int  // size of the decoded output
}

// Compressed reports whether the payload is compressed (false means stored verbatim).
func (h Header) Compressed() bool {
	return h.Flags&flagCompressed != 0
}

// Long reports whether the header uses the 9-byte form.
func (h Header) Long() bool {
	return h.Flags&flagLongHeader != 0
}

// Level returns the compression level recorded in the flags byte (0..3).
func (h Header) Level() int {
	return int(h.Flags>>levelShift) & levelMask
}

// HeaderLen returns the header length of src: 9 if the long-header flag is set, else 3.
// src should hold at least one byte; an empty src reports the short form.
func HeaderLen(src []byte) int {
	if len(src) > 0 && src[0]&flagLongHeader != 0 {
		return headerLenLong
	}

	return headerLenShort
}

// SizeCompressed returns the declared total compressed size of src, header included.
// Missing header bytes read as zero.
func SizeCompressed(src []byte) int {
	if HeaderLen(src) == headerLenLong {
		return int(peekLE(src, 1, 4))
	}

	return int(peekLE(src, 1, 1))
}

// SizeDecompressed returns the declared decompressed size of src.
// Missing header bytes read as zero.
func SizeDecompressed(src []byte) int {
	if HeaderLen(src) == headerLenLong {
		return int(peekLE(src, 5, 4))
	}

	return int(peekLE(src, 2, 1))
}

// ParseHeader validates the header of src and returns it.
// Checks run in order: minimum length, declared header length, declared
// compressed size, level. Stored payloads may carry level 0.
func ParseHeader(src []byte) (Header, error) {
	if len(src) <= headerLenShort {
		return Header{}, fmt.Errorf("%w: input=%d", ErrTooShortForHeader, len(src))
	}

	h := Header{
		Flags:     src[0],
		HeaderLen: HeaderLen(src),
	}
	if len(src) < h.HeaderLen {
		return Header{}, fmt.Errorf("%w: input=%d header=%d", ErrTooShortForHeader, len(src), h.HeaderLen)
	}

	h.CompressedSize = SizeCompressed(src)
	h.DecompressedSize = SizeDecompressed(src)
	if h.CompressedSize < 0 || h.DecompressedSize < 0 {
		// Only reachable where int is 32 bits wide.
		return Header{}, fmt.Errorf("%w: declared sizes overflow int", ErrOutputTooLarge)
	}

	if len(src) < h.CompressedSize {
		return Header{}, fmt.Errorf("%w: input=%d declared=%d", ErrTooShortForDeclaredData, len(src), h.CompressedSize)
	}

	switch level := h.Level(); {
	case level == Level1 || level == Level3:
	case level == 0 && !h.Compressed():
	default:
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedLevel, level)
	}

	return h, nil
}

// peekLE reads an n-byte little-endian value at pos. Bytes outside src read as zero.
func peekLE(src []byte, pos, n int) uint32 {
	var v uint32
	for i := range n {
		p := pos + i
		if p < 0 || p >= len(src) {
			continue
		}

		v |= uint32(src[p]) << (8 * i)
	}

	return v
}
