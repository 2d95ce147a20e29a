package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec reads and writes Zstandard streams.
//
// Decoders run single-threaded; dataset files are small and read once.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns CompressionZstd.
func (ZstdCodec) Type() CompressionType {
	return CompressionZstd
}

// NewReader returns a reader that decompresses a Zstandard stream.
// Closing the reader releases the decoder.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return decoder.IOReadCloser(), nil
}

// NewWriter returns a writer that produces a Zstandard stream.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return encoder, nil
}
