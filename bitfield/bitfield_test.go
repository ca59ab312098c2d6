package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSetTestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "n")
		seen := map[int]bool{}
		var bits []int
		for i := 0; i < n; i++ {
			b := rapid.IntRange(0, 63).Draw(t, "bit")
			seen[b] = true
			bits = append(bits, b)
		}

		mask := Set(bits...)
		for b := 0; b < 64; b++ {
			assert.Equal(t, seen[b], Test(mask, b), "bit %d", b)
		}
	})
}

func TestSetEmpty(t *testing.T) {
	assert.Equal(t, uint64(0), Set())
}
