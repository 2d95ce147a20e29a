// Package hash provides xxHash64 fingerprints of sample data.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Samples computes the xxHash64 of one or more float64 series.
//
// Each series is hashed as its length followed by the little-endian IEEE 754
// bits of every value, so ([1, 2], [3]) and ([1], [2, 3]) hash differently.
// The result depends on value order.
func Samples(series ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
