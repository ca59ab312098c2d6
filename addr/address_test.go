package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAddressRoundTripBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b [6]byte
		for i := range b {
			b[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}

		a := FromBytes(b)
		assert.True(t, a.Valid())
		assert.Equal(t, b, a.Bytes())
	})
}

func TestAddressRoundTripString(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b [6]byte
		for i := range b {
			b[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}

		a := FromBytes(b)
		parsed, err := Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	})
}

func TestAddressStringFormat(t *testing.T) {
	a := FromBytes([6]byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA})
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", a.String())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Parse("AA:BB:CC:DD:EE")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
