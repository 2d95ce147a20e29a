package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec reads and writes the S2 stream format.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns CompressionS2.
func (S2Codec) Type() CompressionType {
	return CompressionS2
}

// NewReader returns a reader that decompresses an S2 (or Snappy framed) stream.
func (S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter returns a writer that produces an S2 stream.
func (S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
