package quicklz

import (
	"encoding/binary"
	"slices"
)

// Reference streams in the layout written by the QuickLZ 1.5.0 encoder
// (long header, flags bit 6 set).

// level1RunOfA is "aaaaaaaaaa": shorter than the match margin, so all tail literals.
var level1RunOfA = []byte{
	0x47, 0x17, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x80,
	'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a',
}

// level1HashedMatch is "abcd", a nibble-length match resolved through hash 0x457 ("abc" at 0), then literals.
var level1HashedMatch = []byte{
	0x47, 0x1e, 0x00, 0x00, 0x00, 0x13, 0x00, 0x00, 0x00,
	0x10, 0x00, 0x00, 0x80,
	'a', 'b', 'c', 'd',
	0x72, 0x45,
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A',
}

const level1HashedMatchPlain = "abcdabcd0123456789A"

// level1OverlapRun is "xyz" followed by an explicit-length match of 21 bytes
// starting at 0, so source and destination overlap.
var level1OverlapRun = []byte{
	0x47, 0x1e, 0x00, 0x00, 0x00, 0x23, 0x00, 0x00, 0x00,
	0x08, 0x00, 0x00, 0x80,
	'x', 'y', 'z',
	0xf0, 0xed, 0x15,
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A',
}

const level1OverlapRunPlain = "xyzxyzxyzxyzxyzxyzxyzxyz0123456789A"

// level3OverlapRun is "ab" followed by a match of length 10 at distance 2.
var level3OverlapRun = []byte{
	0x4f, 0x1c, 0x00, 0x00, 0x00, 0x17, 0x00, 0x00, 0x00,
	0x04, 0x00, 0x00, 0x80,
	'a', 'b',
	0x9e, 0x00,
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A',
}

const level3OverlapRunPlain = "abababababab0123456789A"

// level3OverlapMatchOffset is the index of the match reference in level3OverlapRun.
const level3OverlapMatchOffset = 15

// literalStream encodes data as a compressed stream holding only literals,
// laid out exactly as the reference encoder lays out incompressible input.
func literalStream(level int, data []byte) []byte {
	out := make([]byte, headerLenLong, headerLenLong+cwordLen+len(data)+(len(data)/31+1)*cwordLen)
	cwordPos := len(out)
	out = append(out, 0, 0, 0, 0)

	bits := 0
	for _, b := range data {
		if bits == 31 {
			binary.LittleEndian.PutUint32(out[cwordPos:], cwordTailSentinel)
			cwordPos = len(out)
			out = append(out, 0, 0, 0, 0)
			bits = 0
		}

		out = append(out, b)
		bits++
	}

	binary.LittleEndian.PutUint32(out[cwordPos:], cwordTailSentinel)
	out[0] = flagCompressed | flagLongHeader | byte(level<<levelShift) | 0x40
	binary.LittleEndian.PutUint32(out[1:], uint32(len(out)))
	binary.LittleEndian.PutUint32(out[5:], uint32(len(data)))

	return out
}

// storedStream wraps data in a stored (uncompressed) buffer.
func storedStream(level int, data []byte, long bool) []byte {
	flags := byte(level<<levelShift) | 0x40
	if !long {
		out := []byte{flags, byte(headerLenShort + len(data)), byte(len(data))}
		return append(out, data...)
	}

	out := make([]byte, headerLenLong, headerLenLong+len(data))
	out[0] = flags | flagLongHeader
	binary.LittleEndian.PutUint32(out[1:], uint32(headerLenLong+len(data)))
	binary.LittleEndian.PutUint32(out[5:], uint32(len(data)))

	return append(out, data...)
}

// withCompressedSize returns a copy of a long-header buffer with its compressed size rewritten.
func withCompressedSize(src []byte, size int) []byte {
	out := slices.Clone(src)
	binary.LittleEndian.PutUint32(out[1:], uint32(size))
	return out
}

// byteCycle returns n bytes cycling through 0..250, which holds no repeats within a window.
func byteCycle(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}

	return out
}
