// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/quicklz

package quicklz

import "errors"

// Sentinel errors for header parsing and decompression.
var (
	// ErrTooShortForHeader is returned when the input is shorter than 4 bytes
	// or shorter than the header length it declares.
	ErrTooShortForHeader = errors.New("input too short for quicklz header")
	// ErrTooShortForDeclaredData is returned when the input is shorter than its declared compressed size.
	ErrTooShortForDeclaredData = errors.New("input too short for declared compressed size")
	// ErrUnsupportedLevel is returned when the header level is neither 1 nor 3.
	ErrUnsupportedLevel = errors.New("unsupported quicklz level")
	// ErrMalformedStream is returned when a decoder cursor leaves the input or output bounds.
	ErrMalformedStream = errors.New("malformed quicklz stream")
	// ErrOutputOverrun is returned when a caller-provided destination is smaller than the declared size.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrOutputTooLarge is returned when the declared decompressed size exceeds MaxOutputSize.
	ErrOutputTooLarge = errors.New("declared size exceeds MaxOutputSize")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrCompressUnsupported is returned by Compress; this package only decodes.
	ErrCompressUnsupported = errors.New("quicklz compression is not supported")
)
