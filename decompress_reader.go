package quicklz

import (
	"fmt"
	"io"
)

// DecompressFromReader reads the full stream then calls DecompressWithOptions. No decoding logic of its own.
// opts may be nil. If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts != nil && opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, fmt.Errorf("%w: limit=%d", ErrInputTooLarge, opts.MaxInputSize)
	}

	return DecompressWithOptions(src, opts)
}
