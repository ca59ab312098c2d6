package hci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSupportedStatesEmpty(t *testing.T) {
	assert.Empty(t, DecodeSupportedStates(0))
}

func TestDecodeSupportedStatesSingleBit(t *testing.T) {
	combos := DecodeSupportedStates(1 << 0)
	if assert.Len(t, combos, 1) {
		assert.Equal(t, 0, combos[0].Bit)
		assert.Equal(t, []Role{RoleNonConnNonScanUndirectAdv}, combos[0].Roles)
	}
}

func TestDecodeSupportedStatesBitOrder(t *testing.T) {
	mask := uint64(1<<7 | 1<<0 | 1<<8)
	combos := DecodeSupportedStates(mask)
	if assert.Len(t, combos, 3) {
		assert.Equal(t, []int{0, 7, 8}, []int{combos[0].Bit, combos[1].Bit, combos[2].Bit})
	}
}

func TestDecodeSupportedStatesReservedBitIgnored(t *testing.T) {
	// Bit 41 is reserved and carries no role combination, even when set.
	combos := DecodeSupportedStates(1 << 41)
	assert.Empty(t, combos)
}

func TestDecodeSupportedStatesIgnoresBitsBeyond42(t *testing.T) {
	combos := DecodeSupportedStates(1 << 62)
	assert.Empty(t, combos)
}
