// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/quicklz

package quicklz

// QuickLZ 1.5.x format constants. None of these are tunable.

// Header layout.
const (
	headerLenShort = 3
	headerLenLong  = 9

	flagCompressed = 0x01 // payload is compressed
	flagLongHeader = 0x02 // sizes are 4 bytes wide
	levelShift     = 2
	levelMask      = 0x03
)

// Supported compression levels.
const (
	Level1 = 1
	Level3 = 3
)

// Decoder parameters.
const (
	hashValues           = 4096 // level 1 hash table slots (12-bit hash)
	hashMask             = hashValues - 1
	unconditionalMatchLn = 6 // bytes a match may span past its start
	uncompressedEnd      = 4 // trailing bytes always stored as literals
	cwordLen             = 4
	cwordTailSentinel    = 0x80000000 // bit counter used once only literals remain
	minMatchCopy         = 3          // bytes every match writes unconditionally
)
