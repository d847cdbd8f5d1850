// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/quicklz

/*
Package quicklz implements QuickLZ 1.5.x decompression for levels 1 and 3.

A QuickLZ buffer starts with a flags byte followed by either a 3-byte (short)
or 9-byte (long) header holding the compressed and decompressed sizes as
little-endian integers. The payload is either stored verbatim or a sequence of
32-bit control words, each bit selecting a literal byte or a back-reference.
Level 1 resolves back-references through a 4096-slot hash table rebuilt from
the decoded output; level 3 stores backward distances directly.

Compression is not implemented; Compress always returns ErrCompressUnsupported.

# Decompress

From a byte slice:

	out, err := quicklz.Decompress(compressed)

With limits on the declared output size:

	opts := quicklz.DefaultDecompressOptions()
	opts.MaxOutputSize = 64 << 20
	out, err := quicklz.DecompressWithOptions(compressed, opts)

To reuse caller-managed output memory:

	dst := make([]byte, quicklz.SizeDecompressed(compressed))
	out, err := quicklz.DecompressInto(compressed, dst)

From an io.Reader holding exactly one compressed buffer:

	out, err := quicklz.DecompressFromReader(r, nil)

# Header

	h, err := quicklz.ParseHeader(compressed)
	if err != nil {
		return err
	}
	_ = h.DecompressedSize
*/
package quicklz
