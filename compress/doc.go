// Package compress provides streaming codecs for compressed dataset files.
//
// Supported formats:
//   - None: pass-through
//   - Zstd: Zstandard frames (klauspost/compress/zstd), extensions .zst and .zstd
//   - S2: S2/Snappy framed streams (klauspost/compress/s2), extension .s2
//   - LZ4: LZ4 frames (pierrec/lz4), extension .lz4
//
// Usage:
//
//	codec, err := compress.GetCodec(compress.TypeFromPath(path))
//	if err != nil {
//	    return err
//	}
//	r, err := codec.NewReader(f)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package compress
