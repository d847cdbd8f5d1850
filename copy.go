// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/quicklz

package quicklz

// copyMatch copies length bytes from dst[matchPos:] to dst[outputPos:].
// At least minMatchCopy bytes are always written, whatever length says.
// Source and destination may overlap (matchPos+length > outputPos), so the copy
// runs forward one byte at a time and every written byte is visible to later
// reads. The built-in copy would replicate the stale region instead.
func copyMatch(dst []byte, outputPos, matchPos, length int) error {
	n := max(length, minMatchCopy)
	if matchPos < 0 || matchPos > outputPos {
		return ErrMalformedStream
	}

	if outputPos+n > len(dst) {
		return ErrMalformedStream
	}

	for i := range n {
		dst[outputPos+i] = dst[matchPos+i]
	}

	return nil
}
