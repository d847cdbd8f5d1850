// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/quicklz

package quicklz

// Compress exists for API parity with other QuickLZ ports. It always returns
// ErrCompressUnsupported and never produces output.
func Compress(src []byte, level int) ([]byte, error) {
	return nil, ErrCompressUnsupported
}
