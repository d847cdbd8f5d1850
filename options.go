// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/quicklz

package quicklz

// DecompressOptions configures resource limits for decompression.
// The zero value applies no limits.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// MaxOutputSize limits the declared decompressed size accepted before allocation (0 = no limit).
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with no input or output limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
