package advdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseS6(t *testing.T) {
	input := []byte{
		0x02, 0x01, 0x06,
		0x06, 0xFF, 0x59, 0x00, 0x01, 0x02, 0x03,
		0x02, 0x0A, 0x7F,
		0x07, 0x09, 0x66, 0x6F, 0x6F, 0x62, 0x61, 0x72,
	}

	out := Parse(input)
	require.True(t, out.HasFlags)
	assert.Equal(t, uint8(0x06), out.Flags)

	require.Len(t, out.ManufacturerData, 1)
	assert.Equal(t, uint16(0x0059), out.ManufacturerData[0].CompanyID)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, out.ManufacturerData[0].Data)

	require.True(t, out.HasTxPowerLevel)
	assert.Equal(t, int8(0x7F), out.TxPowerLevel)

	assert.Equal(t, "foobar", out.LocalName)
}

func TestParseSkipsZeroLengthRecord(t *testing.T) {
	input := []byte{0x00, 0x02, 0x01, 0x06}
	out := Parse(input)
	assert.True(t, out.HasFlags)
	assert.Equal(t, uint8(0x06), out.Flags)
}

func TestParseSkipsOverrunningRecord(t *testing.T) {
	// Declares a 10-byte record but only 3 bytes follow: the record is
	// dropped and parsing stops since there's nothing left to resync on.
	input := []byte{0x0A, 0x09, 0x66, 0x6F}
	out := Parse(input)
	assert.Empty(t, out.LocalName)
}

func TestParseShortenedNameFallsBackWhenNoCompleteNameSeen(t *testing.T) {
	input := []byte{0x04, 0x08, 0x66, 0x6F, 0x6F} // shortened "foo"
	out := Parse(input)
	assert.Equal(t, "foo", out.LocalName)
}

func TestParseCompleteNamePreferredOverShortened(t *testing.T) {
	input := []byte{
		0x04, 0x08, 0x66, 0x6F, 0x6F, // shortened "foo"
		0x04, 0x09, 0x62, 0x61, 0x72, // complete "bar"
	}
	out := Parse(input)
	assert.Equal(t, "bar", out.LocalName)
}

func TestParseServiceUUIDsDeduplicatedFirstSeenOrder(t *testing.T) {
	input := []byte{
		0x05, 0x03, 0x01, 0x00, 0x02, 0x00, // complete 16-bit UUIDs 0x0001, 0x0002
		0x03, 0x02, 0x01, 0x00, // incomplete 16-bit UUID 0x0001 (duplicate)
	}
	out := Parse(input)
	assert.Equal(t, []string{"0001", "0002"}, out.ServiceUUIDs)
}

func TestParseServiceData(t *testing.T) {
	input := []byte{0x05, 0x16, 0x0F, 0x18, 0xAA, 0xBB}
	out := Parse(input)
	require.Len(t, out.ServiceData, 1)
	assert.Equal(t, "180f", out.ServiceData[0].UUID)
	assert.Equal(t, []byte{0xAA, 0xBB}, out.ServiceData[0].Data)
}

func TestParseUnknownTypeIgnored(t *testing.T) {
	input := []byte{0x03, 0x77, 0xAA, 0xBB, 0x02, 0x01, 0x04}
	out := Parse(input)
	assert.True(t, out.HasFlags)
	assert.Equal(t, uint8(0x04), out.Flags)
}

func TestParseNeverPanicsOnArbitraryInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(rt, "n")
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rapid.IntRange(0, 255).Draw(rt, "byte"))
		}
		assert.NotPanics(t, func() { Parse(buf) })
	})
}
