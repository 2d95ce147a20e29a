package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hellomath/compress"
	"github.com/arloliu/hellomath/errs"
)

const demoCSV = `x,y
# demo data
1,2
2,4.1
3, 5.9

4,8.2
5,10.1
`

func writeFile(t *testing.T, name string, ct compress.CompressionType, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	codec, err := compress.GetCodec(ct)
	require.NoError(t, err)
	w, err := codec.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return path
}

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(demoCSV))
	require.NoError(t, err)
	require.Equal(t, Default().X, ds.X)
	require.Equal(t, Default().Y, ds.Y)
	require.Equal(t, 5, ds.Len())
}

func TestRead_WithoutHeader(t *testing.T) {
	ds, err := Read(strings.NewReader("1,2\n-3.5,4e2\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1, -3.5}, ds.X)
	require.Equal(t, []float64{2, 400}, ds.Y)
}

func TestRead_Empty(t *testing.T) {
	ds, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, ds.Len())
}

func TestRead_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad number":           "x,y\n1,2\n3,abc\n",
		"too many fields":      "1,2,3\n",
		"too few fields":       "1,2\n3\n",
		"bad first y":          "1,2x\n2,4\n3,6\n",
		"bad first x":          "one,2\n2,4\n",
		"bad row after header": "x,y\n1,2x\n2,4\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input))
			require.ErrorIs(t, err, errs.ErrInvalidDataset)
		})
	}
}

func TestRead_MalformedFirstRowReportsLine(t *testing.T) {
	ds, err := Read(strings.NewReader("1,2x\n2,4\n3,6\n"))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)
	require.ErrorContains(t, err, "line 1")
	require.Nil(t, ds)
}

func TestRead_HeaderNeedsNoNumericField(t *testing.T) {
	ds, err := Read(strings.NewReader("time, value\n1,2\n2,4\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, ds.X)
	require.Equal(t, []float64{2, 4}, ds.Y)
}

func TestRead_MaxRows(t *testing.T) {
	_, err := Read(strings.NewReader(demoCSV), WithMaxRows(4))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)

	ds, err := Read(strings.NewReader(demoCSV), WithMaxRows(5))
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())

	_, err = Read(strings.NewReader(demoCSV), WithMaxRows(0))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestLoad_Compressed(t *testing.T) {
	tests := []struct {
		name string
		ct   compress.CompressionType
	}{
		{"data.csv", compress.CompressionNone},
		{"data.csv.zst", compress.CompressionZstd},
		{"data.csv.s2", compress.CompressionS2},
		{"data.csv.lz4", compress.CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.ct, demoCSV)

			ds, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, Default().Fingerprint(), ds.Fingerprint())
		})
	}
}

func TestLoad_WithCompressionOverride(t *testing.T) {
	path := writeFile(t, "data.bin", compress.CompressionZstd, demoCSV)

	ds, err := Load(path, WithCompression(compress.CompressionZstd))
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())

	_, err = Load(path, WithCompression(compress.CompressionType(0x7f)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataset_FingerprintAndClone(t *testing.T) {
	a := Default()
	b := a.Clone()
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Y[0] = 2.5
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	require.Equal(t, 2.0, a.Y[0])
}
