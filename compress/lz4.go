package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec reads and writes the LZ4 frame format, as produced by the lz4 CLI.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Type returns CompressionLZ4.
func (LZ4Codec) Type() CompressionType {
	return CompressionLZ4
}

// NewReader returns a reader that decompresses an LZ4 frame stream.
func (LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter returns a writer that produces an LZ4 frame stream.
func (LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
