// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/quicklz

package quicklz

import "fmt"

// Decompress decodes a whole QuickLZ buffer and returns a new slice of exactly
// SizeDecompressed(src) bytes. src is never modified.
func Decompress(src []byte) ([]byte, error) {
	return DecompressWithOptions(src, nil)
}

// DecompressWithOptions is Decompress with resource limits. opts may be nil (no limits).
func DecompressWithOptions(src []byte, opts *DecompressOptions) ([]byte, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxOutputSize > 0 && h.DecompressedSize > opts.MaxOutputSize {
		return nil, fmt.Errorf("%w: declared=%d limit=%d", ErrOutputTooLarge, h.DecompressedSize, opts.MaxOutputSize)
	}

	dst := make([]byte, h.DecompressedSize)
	if err := decompressPayload(src, h, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressInto decodes src into the caller-provided dst and returns dst[:SizeDecompressed(src)].
// Returns ErrOutputOverrun if dst is shorter than the declared size.
func DecompressInto(src, dst []byte) ([]byte, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	if len(dst) < h.DecompressedSize {
		return nil, fmt.Errorf("%w: declared=%d capacity=%d", ErrOutputOverrun, h.DecompressedSize, len(dst))
	}

	out := dst[:h.DecompressedSize]
	// Matches may read positions not yet written; keep them zero as in a fresh buffer.
	clear(out)
	if err := decompressPayload(src, h, out); err != nil {
		return nil, err
	}

	return out, nil
}

// decompressPayload fills dst (len == h.DecompressedSize, zeroed) from the payload of src.
func decompressPayload(src []byte, h Header, dst []byte) error {
	if !h.Compressed() {
		end := h.HeaderLen + len(dst)
		if end > len(src) {
			return fmt.Errorf("%w: stored payload needs %d bytes, input=%d", ErrMalformedStream, end, len(src))
		}

		copy(dst, src[h.HeaderLen:end])
		return nil
	}

	return decompressCore(src, dst, h.HeaderLen, h.Level())
}

// decompressCore runs the control-word loop over src starting at inPos.
// It returns nil once every byte of dst is written, which happens only in the
// literal tail; any cursor leaving src or dst yields ErrMalformedStream.
func decompressCore(src, dst []byte, inPos, level int) error {
	var (
		cword          uint32 = 1
		fetch          uint32
		outPos         int
		lastMatchStart = len(dst) - unconditionalMatchLn - uncompressedEnd - 1
		fetchLen       = 4
		table          *matchTable
	)

	if level == Level1 {
		fetchLen = 3
		table = acquireMatchTable()
		defer releaseMatchTable(table)
	}

	for {
		if cword == 1 {
			cword = peekLE(src, inPos, cwordLen)
			inPos += cwordLen
			if outPos <= lastMatchStart {
				fetch = peekLE(src, inPos, fetchLen)
			}
		}

		if cword&1 == 1 {
			cword >>= 1

			var matchPos, matchLen int
			if level == Level1 {
				matchPos = table.lookup(fetch >> 4)
				if fetch&0xf != 0 {
					matchLen = int(fetch&0xf) + 2
					inPos += 2
				} else {
					b, err := readCompressedByte(src, inPos+2)
					if err != nil {
						return err
					}

					matchLen = int(b)
					inPos += 3
				}
			} else {
				offset, n, consumed := decodeLevel3Match(fetch)
				matchPos = outPos - offset
				matchLen = n
				inPos += consumed
			}

			if err := copyMatch(dst, outPos, matchPos, matchLen); err != nil {
				return fmt.Errorf("%w: match at output=%d from=%d length=%d", err, outPos, matchPos, matchLen)
			}

			outPos += matchLen
			if table != nil {
				if err := table.hashMatch(dst, outPos-matchLen); err != nil {
					return fmt.Errorf("%w: hashing match at output=%d", err, outPos-matchLen)
				}

				table.lastHashed = outPos - 1
			}

			fetch = peekLE(src, inPos, fetchLen)
			continue
		}

		if outPos > lastMatchStart {
			return copyLiteralTail(src, inPos, dst, outPos, cword)
		}

		b, err := readCompressedByte(src, inPos)
		if err != nil {
			return err
		}

		dst[outPos] = b
		outPos++
		inPos++
		cword >>= 1

		// Shift the next payload bytes into the lookahead.
		if table != nil {
			table.hashLiterals(dst, outPos-3)

			b2, err := readCompressedByte(src, inPos+2)
			if err != nil {
				return err
			}

			fetch = (fetch>>8)&0xffff | uint32(b2)<<16
		} else {
			b2, err := readCompressedByte(src, inPos+2)
			if err != nil {
				return err
			}

			b3, err := readCompressedByte(src, inPos+3)
			if err != nil {
				return err
			}

			fetch = (fetch>>8)&0xffff | uint32(b2)<<16 | uint32(b3)<<24
		}
	}
}

// decodeLevel3Match decodes a level 3 back-reference from the 4-byte lookahead.
// It returns the backward distance, the match length and the number of payload
// bytes the reference occupies (1 to 4).
func decodeLevel3Match(fetch uint32) (offset, length, consumed int) {
	switch {
	case fetch&3 == 0:
		return int((fetch & 0xff) >> 2), 3, 1
	case fetch&2 == 0:
		return int((fetch & 0xffff) >> 2), 3, 2
	case fetch&1 == 0:
		return int((fetch & 0xffff) >> 6), int((fetch>>2)&15) + 3, 2
	case fetch&127 != 3:
		return int((fetch >> 7) & 0x1ffff), int((fetch>>2)&0x1f) + 2, 3
	default:
		return int(fetch >> 15), int((fetch>>7)&255) + 3, 4
	}
}

// copyLiteralTail copies the remaining output bytes literally. The control word
// only counts bits here: each time it runs out the next 4 payload bytes are
// skipped and it restarts from cwordTailSentinel.
func copyLiteralTail(src []byte, inPos int, dst []byte, outPos int, cword uint32) error {
	for outPos < len(dst) {
		if cword == 1 {
			inPos += cwordLen
			cword = cwordTailSentinel
		}

		b, err := readCompressedByte(src, inPos)
		if err != nil {
			return err
		}

		dst[outPos] = b
		outPos++
		inPos++
		cword >>= 1
	}

	return nil
}

// readCompressedByte returns src[pos] or ErrMalformedStream if pos is out of range.
func readCompressedByte(src []byte, pos int) (byte, error) {
	if pos < 0 || pos >= len(src) {
		return 0, fmt.Errorf("%w: read at %d past input of %d bytes", ErrMalformedStream, pos, len(src))
	}

	return src[pos], nil
}
