// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/quicklz

package quicklz

// matchTable is the level 1 hash table: for each 12-bit hash of a 3-byte
// window it holds the most recent output position starting that window.
type matchTable struct {
	positions  [hashValues]uint32
	lastHashed int // highest output index already folded into positions
}

// hashWindow hashes a 3-byte little-endian window.
func hashWindow(w uint32) uint32 {
	return ((w >> 12) ^ w) & hashMask
}

// lookup returns the output position recorded for hash.
func (t *matchTable) lookup(hash uint32) int {
	return int(t.positions[hash&hashMask])
}

// hashLiterals folds every complete window starting at or before through into the table.
func (t *matchTable) hashLiterals(out []byte, through int) {
	for t.lastHashed < through {
		t.lastHashed++
		t.positions[hashWindow(peekLE(out, t.lastHashed, 3))] = uint32(t.lastHashed) //nolint:gosec // G115: output positions fit uint32
	}
}

// hashMatch folds windows up to through after a match was copied, keeping
// the window rolling instead of re-reading three bytes per position.
func (t *matchTable) hashMatch(out []byte, through int) error {
	window := peekLE(out, t.lastHashed+1, 3)
	for t.lastHashed < through {
		t.lastHashed++
		t.positions[hashWindow(window)] = uint32(t.lastHashed) //nolint:gosec // G115: output positions fit uint32

		next := t.lastHashed + 3
		if next >= len(out) {
			return ErrMalformedStream
		}

		window = (window>>8)&0xffff | uint32(out[next])<<16
	}

	return nil
}
