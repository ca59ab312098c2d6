package hci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestOpcodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ogf := uint16(rapid.IntRange(0, 0x3F).Draw(t, "ogf"))
		ocf := uint16(rapid.IntRange(0, 0x3FF).Draw(t, "ocf"))

		op := PackOpcode(ogf, ocf)
		gotOgf, gotOcf := UnpackOpcode(op)

		assert.Equal(t, ogf, gotOgf)
		assert.Equal(t, ocf, gotOcf)
	})
}

func TestResetOpcodeMatchesSpecExample(t *testing.T) {
	// S1: Reset has OGF=0x03, OCF=0x0003 -> opcode 0x0C03.
	op := PackOpcode(OgfHostCtl, OcfReset)
	assert.Equal(t, Opcode(0x0C03), op)
}

func TestStatusNameUnknown(t *testing.T) {
	assert.Equal(t, "Unknown Status", StatusName(0xEE))
	assert.Equal(t, "Success", StatusName(StatusSuccess))
}
