// Package dataset loads paired (x, y) samples for analysis.
//
// A dataset source is a CSV stream with one "x,y" pair per row. The first row
// is a header if neither of its fields is a number. Blank lines and lines
// starting with '#' are ignored. The stream may be compressed with any codec
// from the compress package.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/hellomath/compress"
	"github.com/arloliu/hellomath/errs"
	"github.com/arloliu/hellomath/internal/hash"
	"github.com/arloliu/hellomath/internal/options"
)

// Dataset holds paired samples. X[i] pairs with Y[i].
type Dataset struct {
	X []float64
	Y []float64
}

// Default returns the built-in demo dataset.
func Default() *Dataset {
	return &Dataset{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{2, 4.1, 5.9, 8.2, 10.1},
	}
}

// Len returns the number of pairs.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Fingerprint returns an xxHash64 of the x and y series, in order.
func (d *Dataset) Fingerprint() uint64 {
	return hash.Samples(d.X, d.Y)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{X: slices.Clone(d.X), Y: slices.Clone(d.Y)}
}

// LoadConfig controls how a dataset source is read.
type LoadConfig struct {
	// Compression overrides the compression detected from the file extension.
	// Zero means detect.
	Compression compress.CompressionType
	// MaxRows limits the number of pairs read. Zero means unlimited.
	MaxRows int
}

// LoadOption is a functional option for LoadConfig.
type LoadOption = options.Option[*LoadConfig]

// WithCompression forces the given compression instead of detecting it
// from the file extension.
func WithCompression(ct compress.CompressionType) LoadOption {
	return options.New(func(cfg *LoadConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		cfg.Compression = ct

		return nil
	})
}

// WithMaxRows limits the number of pairs read; reading more fails.
func WithMaxRows(n int) LoadOption {
	return options.New(func(cfg *LoadConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max rows must be positive, got %d", errs.ErrInvalidArgument, n)
		}
		cfg.MaxRows = n

		return nil
	})
}

// Load reads a dataset from the file at path.
//
// Parameters:
//   - path: CSV file, optionally compressed (.zst, .s2, .lz4)
//   - opts: Optional load options
//
// Returns:
//   - *Dataset: Parsed pairs
//   - error: I/O, decompression or parse error
func Load(path string, opts ...LoadOption) (*Dataset, error) {
	cfg := LoadConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Compression == 0 {
		cfg.Compression = compress.TypeFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := read(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Read parses an uncompressed or compressed CSV stream.
// Without WithCompression the stream is read as plain CSV.
func Read(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := LoadConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Compression == 0 {
		cfg.Compression = compress.CompressionNone
	}

	return read(r, cfg)
}

func read(r io.Reader, cfg LoadConfig) (*Dataset, error) {
	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}
	rc, err := codec.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	ds := &Dataset{}
	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidDataset, err)
		}

		x, y, err := parsePair(record)
		if err != nil {
			if first && isHeader(record) {
				continue
			}
			line, _ := cr.FieldPos(0)

			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrInvalidDataset, line, err)
		}

		if cfg.MaxRows > 0 && ds.Len() >= cfg.MaxRows {
			return nil, fmt.Errorf("%w: more than %d rows", errs.ErrInvalidDataset, cfg.MaxRows)
		}
		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, y)
	}

	return ds, nil
}

func parsePair(record []string) (x, y float64, err error) {
	x, err = strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// isHeader reports whether no field of record is numeric. A row with one
// numeric field is a malformed data row, not a header.
func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return true
}
