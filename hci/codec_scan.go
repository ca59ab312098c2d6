package hci

import "encoding/binary"

// Scanning PHY bits, as used by LE Set Extended Scan Parameters and LE
// Extended Create Connection.
const (
	PhyLE1M    uint8 = 1 << 0
	PhyLE2M    uint8 = 1 << 1
	PhyLECoded uint8 = 1 << 2
)

// ScanPhyParams holds the per-PHY scan type/interval/window for one
// enabled PHY in LE Set Extended Scan Parameters.
type ScanPhyParams struct {
	ScanType   uint8
	IntervalMs float64
	WindowMs   float64
}

// ExtScanParams is the input to LE Set Extended Scan Parameters.
type ExtScanParams struct {
	OwnAddrType  uint8
	FilterPolicy uint8
	// LE1M and LECoded are nil when that PHY is not enabled. At least
	// one of the two must be non-nil.
	LE1M    *ScanPhyParams
	LECoded *ScanPhyParams
}

// Encode lays out own_addr_type(1) | filter_policy(1) | phy_bitmask(1),
// followed by one scan_type byte per enabled PHY (LE 1M before LE
// Coded), then one interval u16 per enabled PHY, then one window u16 per
// enabled PHY. Returns ErrInvalidCommandParameter if no PHY is enabled.
func (p ExtScanParams) Encode() ([]byte, error) {
	var phys []*ScanPhyParams
	var phyMask uint8
	if p.LE1M != nil {
		phyMask |= PhyLE1M
		phys = append(phys, p.LE1M)
	}
	if p.LECoded != nil {
		phyMask |= PhyLECoded
		phys = append(phys, p.LECoded)
	}
	if len(phys) == 0 {
		return nil, ErrInvalidCommandParameter
	}

	n := len(phys)
	b := make([]byte, 3+n+2*n+2*n)
	b[0] = p.OwnAddrType
	b[1] = p.FilterPolicy
	b[2] = phyMask

	off := 3
	for _, ph := range phys {
		b[off] = ph.ScanType
		off++
	}
	for _, ph := range phys {
		binary.LittleEndian.PutUint16(b[off:off+2], MsToAdvUnits(ph.IntervalMs))
		off += 2
	}
	for _, ph := range phys {
		binary.LittleEndian.PutUint16(b[off:off+2], MsToAdvUnits(ph.WindowMs))
		off += 2
	}

	return b, nil
}

// EncodeLESetExtScanEnable encodes enable(1) | filter_duplicates(1) |
// duration(2, 10ms units) | period(2, 1.28s units) for LE Set Extended
// Scan Enable.
func EncodeLESetExtScanEnable(enable, filterDuplicates bool, durationMs, periodMs float64) []byte {
	b := make([]byte, 6)
	if enable {
		b[0] = 1
	}
	if filterDuplicates {
		b[1] = 1
	}
	binary.LittleEndian.PutUint16(b[2:4], MsToSlots10(durationMs))
	binary.LittleEndian.PutUint16(b[4:6], MsToPeriodicSyncUnits(periodMs))
	return b
}
