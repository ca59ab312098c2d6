package hci

import "encoding/binary"

// EncodeLESetRandomAddress encodes the 6-byte address for LE Set Random
// Address.
func EncodeLESetRandomAddress(addr [6]byte) []byte {
	b := make([]byte, 6)
	copy(b, addr[:])
	return b
}

// ExtAdvertisingParams is the input to LE Set Extended Advertising
// Parameters.
type ExtAdvertisingParams struct {
	Handle            uint8
	EventProperties   uint16
	IntervalMinMs     float64
	IntervalMaxMs     float64
	ChannelMap        uint8
	OwnAddrType       uint8
	PeerAddrType      uint8
	PeerAddr          [6]byte
	FilterPolicy      uint8
	TxPower           int8 // 0x7F means "no preference"
	PrimaryPhy        uint8
	SecondaryMaxSkip  uint8
	SecondaryPhy      uint8
	SID               uint8
	ScanRequestNotify uint8
}

// NoPreferredTxPower is the sentinel value meaning "host has no
// preference" for ExtAdvertisingParams.TxPower.
const NoPreferredTxPower int8 = 0x7F

// Encode lays out the 25-byte LE Set Extended Advertising Parameters
// payload: handle(1) | event_props(2) | interval_min(3) |
// interval_max(3) | channel_map(1) | own_addr_type(1) | peer_addr_type(1)
// | peer_addr(6) | filter_policy(1) | tx_power(1) | primary_phy(1) |
// secondary_max_skip(1) | secondary_phy(1) | sid(1) | scan_req_notif(1).
func (p ExtAdvertisingParams) Encode() []byte {
	b := make([]byte, 25)
	b[0] = p.Handle
	binary.LittleEndian.PutUint16(b[1:3], p.EventProperties)
	putUint24(b[3:6], MsToAdvUnits(p.IntervalMinMs))
	putUint24(b[6:9], MsToAdvUnits(p.IntervalMaxMs))
	b[9] = p.ChannelMap
	b[10] = p.OwnAddrType
	b[11] = p.PeerAddrType
	copy(b[12:18], p.PeerAddr[:])
	b[18] = p.FilterPolicy
	b[19] = byte(p.TxPower)
	b[20] = p.PrimaryPhy
	b[21] = p.SecondaryMaxSkip
	b[22] = p.SecondaryPhy
	b[23] = p.SID
	b[24] = p.ScanRequestNotify
	return b
}

// putUint24 writes the low 24 bits of v into b (little-endian), which
// has width 3 despite the value being carried in a uint16-range unit
// count; advertising interval fields are 3 bytes wide on the wire even
// though their unit count never exceeds 16 bits in practice.
func putUint24(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = 0
}

// DecodeExtAdvertisingParamsResult decodes the signed selected TX power
// returned by LE Set Extended Advertising Parameters.
func DecodeExtAdvertisingParamsResult(b []byte) (int8, error) {
	if len(b) < 1 {
		return 0, &InvalidPayloadSizeError{Needed: 1, Got: len(b)}
	}
	return int8(b[0]), nil
}

// ExtAdvertisingDataOp mirrors the "op" byte of LE Set Extended
// Advertising Data / Scan Response Data: whether this call carries the
// complete payload, the first/intermediate/last fragment, or a
// zero-length unchanged-data marker.
type ExtAdvertisingDataOp uint8

const (
	ExtAdvDataComplete      ExtAdvertisingDataOp = 0x03
	ExtAdvDataFirstFragment ExtAdvertisingDataOp = 0x01
	ExtAdvDataIntermediate  ExtAdvertisingDataOp = 0x00
	ExtAdvDataLastFragment  ExtAdvertisingDataOp = 0x02
	ExtAdvDataUnchanged     ExtAdvertisingDataOp = 0x04
)

// FragmentPreference selects whether the controller may fragment the
// advertising data itself.
type FragmentPreference uint8

const (
	// ControllerMayFragment: the controller may fragment all Host
	// advertising data.
	ControllerMayFragment FragmentPreference = 0x00
	// HostWillNotFragmentFurther: the Host will not fragment further;
	// each payload given must fit within a single PDU.
	HostWillNotFragmentFurther FragmentPreference = 0x01
)

// EncodeLESetExtAdvertisingData encodes handle(1) | op(1) |
// fragment_preference(1) | data_len(1) | data, shared by both LE Set
// Extended Advertising Data and LE Set Extended Scan Response Data.
func EncodeLESetExtAdvertisingData(handle uint8, op ExtAdvertisingDataOp, fragPref FragmentPreference, data []byte) []byte {
	b := make([]byte, 4+len(data))
	b[0] = handle
	b[1] = byte(op)
	b[2] = byte(fragPref)
	b[3] = byte(len(data))
	copy(b[4:], data)
	return b
}

// ExtAdvertisingEnableEntry is one entry of the handle-keyed LE Set
// Extended Advertising Enable parameter list.
type ExtAdvertisingEnableEntry struct {
	Handle     uint8
	DurationMs float64 // 0 means "advertise until disabled"
	MaxEvents  uint8
}

// EncodeLESetExtAdvertisingEnable encodes enable(1) | num_sets(1),
// followed by one (handle(1) | duration(2, 10ms units) |
// max_extended_advertising_events(1)) per entry.
func EncodeLESetExtAdvertisingEnable(enable bool, sets []ExtAdvertisingEnableEntry) []byte {
	const entryLen = 4
	b := make([]byte, 2+entryLen*len(sets))
	if enable {
		b[0] = 1
	}
	b[1] = byte(len(sets))
	for i, s := range sets {
		off := 2 + i*entryLen
		b[off] = s.Handle
		binary.LittleEndian.PutUint16(b[off+1:off+3], MsToSlots10(s.DurationMs))
		b[off+3] = s.MaxEvents
	}
	return b
}
