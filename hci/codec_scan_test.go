package hci

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtScanParamsEncodeBothPhys(t *testing.T) {
	p := ExtScanParams{
		OwnAddrType:  0,
		FilterPolicy: 0,
		LE1M:         &ScanPhyParams{ScanType: 1, IntervalMs: 100, WindowMs: 50},
		LECoded:      &ScanPhyParams{ScanType: 0, IntervalMs: 200, WindowMs: 100},
	}
	b, err := p.Encode()
	require.NoError(t, err)
	// 3 header + 2 scan_type + 2*2 interval + 2*2 window = 13
	require.Len(t, b, 13)
	assert.Equal(t, PhyLE1M|PhyLECoded, b[2])
	assert.Equal(t, uint8(1), b[3])
	assert.Equal(t, uint8(0), b[4])
	iv1 := binary.LittleEndian.Uint16(b[5:7])
	assert.Equal(t, MsToAdvUnits(100), iv1)
}

func TestExtScanParamsEncodeSinglePhy(t *testing.T) {
	p := ExtScanParams{LE1M: &ScanPhyParams{ScanType: 1, IntervalMs: 100, WindowMs: 50}}
	b, err := p.Encode()
	require.NoError(t, err)
	require.Len(t, b, 3+1+2+2)
	assert.Equal(t, PhyLE1M, b[2])
}

func TestExtScanParamsEncodeNoPhysIsInvalid(t *testing.T) {
	p := ExtScanParams{}
	_, err := p.Encode()
	assert.ErrorIs(t, err, ErrInvalidCommandParameter)
}

func TestEncodeLESetExtScanEnable(t *testing.T) {
	b := EncodeLESetExtScanEnable(true, true, 1000, 2560)
	require.Len(t, b, 6)
	assert.Equal(t, uint8(1), b[0])
	assert.Equal(t, uint8(1), b[1])
	assert.Equal(t, MsToSlots10(1000), binary.LittleEndian.Uint16(b[2:4]))
	assert.Equal(t, MsToPeriodicSyncUnits(2560), binary.LittleEndian.Uint16(b[4:6]))
}
