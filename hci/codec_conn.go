package hci

import "encoding/binary"

// CreateConnParams is the input to LE Create Connection.
type CreateConnParams struct {
	ScanIntervalMs    float64
	ScanWindowMs      float64
	InitiatorFilter   uint8
	PeerAddrType      uint8
	PeerAddr          [6]byte
	OwnAddrType       uint8
	ConnIntervalMinMs float64
	ConnIntervalMaxMs float64
	LatencyEvents     uint16
	SupervisionMs     float64
	MinCELengthMs     float64
	MaxCELengthMs     float64
}

// Encode lays out the 25-byte LE Create Connection payload: scan
// interval/window(2 each, 0.625ms units) | initiator_filter(1) |
// peer_addr_type(1) | peer_addr(6) | own_addr_type(1) |
// conn_interval_min/max(2 each, 1.25ms units) | latency(2) |
// supervision_timeout(2, 10ms units) | min/max_ce_length(2 each, 0.625ms
// units).
func (p CreateConnParams) Encode() []byte {
	b := make([]byte, 25)
	binary.LittleEndian.PutUint16(b[0:2], MsToAdvUnits(p.ScanIntervalMs))
	binary.LittleEndian.PutUint16(b[2:4], MsToAdvUnits(p.ScanWindowMs))
	b[4] = p.InitiatorFilter
	b[5] = p.PeerAddrType
	copy(b[6:12], p.PeerAddr[:])
	b[12] = p.OwnAddrType
	binary.LittleEndian.PutUint16(b[13:15], MsToConnUnits(p.ConnIntervalMinMs))
	binary.LittleEndian.PutUint16(b[15:17], MsToConnUnits(p.ConnIntervalMaxMs))
	binary.LittleEndian.PutUint16(b[17:19], p.LatencyEvents)
	binary.LittleEndian.PutUint16(b[19:21], MsToSupervisionUnits(p.SupervisionMs))
	binary.LittleEndian.PutUint16(b[21:23], MsToAdvUnits(p.MinCELengthMs))
	binary.LittleEndian.PutUint16(b[23:25], MsToAdvUnits(p.MaxCELengthMs))
	return b
}

// EncodeLECreateConnCancel returns the (empty) parameter block for LE
// Create Connection Cancel.
func EncodeLECreateConnCancel() []byte { return nil }

// ExtCreateConnPhyParams holds the per-PHY scan and connection timing for
// one enabled PHY in LE Extended Create Connection.
type ExtCreateConnPhyParams struct {
	ScanIntervalMs    float64
	ScanWindowMs      float64
	ConnIntervalMinMs float64
	ConnIntervalMaxMs float64
	LatencyEvents     uint16
	SupervisionMs     float64
	MinCELengthMs     float64
	MaxCELengthMs     float64
}

// ExtCreateConnParams is the input to LE Extended Create Connection.
// LE1M, LE2M, and LECoded are nil when that PHY is not enabled; at
// least one must be non-nil.
type ExtCreateConnParams struct {
	InitiatorFilterPolicy uint8
	OwnAddrType           uint8
	PeerAddrType          uint8
	PeerAddr              [6]byte
	LE1M                  *ExtCreateConnPhyParams
	LE2M                  *ExtCreateConnPhyParams
	LECoded               *ExtCreateConnPhyParams
}

// Encode lays out initiator_filter_policy(1) | own_addr_type(1) |
// peer_addr_type(1) | peer_addr(6) | initiating_phys(1, bitmask),
// followed by one 16-byte (scan_interval(2) | scan_window(2) |
// conn_interval_min(2) | conn_interval_max(2) | conn_latency(2) |
// supervision_timeout(2) | min_ce_length(2) | max_ce_length(2)) block per
// enabled PHY, in LE 1M, LE 2M, LE Coded order — mirroring the PHY-bitmask
// structure of ExtScanParams.Encode. Returns ErrInvalidCommandParameter
// if no PHY is enabled.
func (p ExtCreateConnParams) Encode() ([]byte, error) {
	var phys []*ExtCreateConnPhyParams
	var phyMask uint8
	if p.LE1M != nil {
		phyMask |= PhyLE1M
		phys = append(phys, p.LE1M)
	}
	if p.LE2M != nil {
		phyMask |= PhyLE2M
		phys = append(phys, p.LE2M)
	}
	if p.LECoded != nil {
		phyMask |= PhyLECoded
		phys = append(phys, p.LECoded)
	}
	if len(phys) == 0 {
		return nil, ErrInvalidCommandParameter
	}

	const headerLen = 10
	const phyBlockLen = 16

	b := make([]byte, headerLen+phyBlockLen*len(phys))
	b[0] = p.InitiatorFilterPolicy
	b[1] = p.OwnAddrType
	b[2] = p.PeerAddrType
	copy(b[3:9], p.PeerAddr[:])
	b[9] = phyMask

	off := headerLen
	for _, ph := range phys {
		binary.LittleEndian.PutUint16(b[off:off+2], MsToAdvUnits(ph.ScanIntervalMs))
		binary.LittleEndian.PutUint16(b[off+2:off+4], MsToAdvUnits(ph.ScanWindowMs))
		binary.LittleEndian.PutUint16(b[off+4:off+6], MsToConnUnits(ph.ConnIntervalMinMs))
		binary.LittleEndian.PutUint16(b[off+6:off+8], MsToConnUnits(ph.ConnIntervalMaxMs))
		binary.LittleEndian.PutUint16(b[off+8:off+10], ph.LatencyEvents)
		binary.LittleEndian.PutUint16(b[off+10:off+12], MsToSupervisionUnits(ph.SupervisionMs))
		binary.LittleEndian.PutUint16(b[off+12:off+14], MsToAdvUnits(ph.MinCELengthMs))
		binary.LittleEndian.PutUint16(b[off+14:off+16], MsToAdvUnits(ph.MaxCELengthMs))
		off += phyBlockLen
	}

	return b, nil
}

// ConnectionUpdateParams is the input to LE Connection Update.
//
// The Core Specification layout is interval_min(2) | interval_max(2) |
// latency(2) | supervision_timeout(2) | min_ce_length(2) |
// max_ce_length(2), prefixed with the connection handle — see
// DESIGN.md's Open Question notes for why this does not reproduce the
// distillation's mis-assigned latency field.
type ConnectionUpdateParams struct {
	Handle            uint16
	ConnIntervalMinMs float64
	ConnIntervalMaxMs float64
	LatencyEvents     uint16
	SupervisionMs     float64
	MinCELengthMs     float64
	MaxCELengthMs     float64
}

// Encode lays out the 14-byte LE Connection Update payload.
func (p ConnectionUpdateParams) Encode() []byte {
	b := make([]byte, 14)
	binary.LittleEndian.PutUint16(b[0:2], p.Handle)
	binary.LittleEndian.PutUint16(b[2:4], MsToConnUnits(p.ConnIntervalMinMs))
	binary.LittleEndian.PutUint16(b[4:6], MsToConnUnits(p.ConnIntervalMaxMs))
	binary.LittleEndian.PutUint16(b[6:8], p.LatencyEvents)
	binary.LittleEndian.PutUint16(b[8:10], MsToSupervisionUnits(p.SupervisionMs))
	binary.LittleEndian.PutUint16(b[10:12], MsToAdvUnits(p.MinCELengthMs))
	binary.LittleEndian.PutUint16(b[12:14], MsToAdvUnits(p.MaxCELengthMs))
	return b
}

// DisconnectReason is the HCI reason code placed in a Disconnect
// command, drawn from the controller error/status registry.
type DisconnectReason = uint8

// EncodeDisconnect encodes handle(2) | reason(1) for Disconnect.
func EncodeDisconnect(handle uint16, reason DisconnectReason) []byte {
	b := make([]byte, 3)
	binary.LittleEndian.PutUint16(b[0:2], handle)
	b[2] = reason
	return b
}

// DisconnectCompleteResult is the decoded Command Complete return of
// Disconnect (the handle and status are echoed; the real disconnection
// itself is reported later by the Disconnection Complete event, which
// the Engine routes to its diagnostics/event stream rather than to the
// pending command).
type DisconnectCompleteResult struct {
	Handle uint16
}

// DecodeDisconnectResult decodes the 2-byte handle Disconnect's Command
// Complete carries.
func DecodeDisconnectResult(b []byte) (DisconnectCompleteResult, error) {
	if len(b) < 2 {
		return DisconnectCompleteResult{}, &InvalidPayloadSizeError{Needed: 2, Got: len(b)}
	}
	return DisconnectCompleteResult{Handle: binary.LittleEndian.Uint16(b[0:2])}, nil
}
