package hci

import "encoding/binary"

// EncodeReset returns the (empty) parameter block for the Reset command.
func EncodeReset() []byte { return nil }

// EncodeReadBDAddr returns the (empty) parameter block for Read BD
// Address.
func EncodeReadBDAddr() []byte { return nil }

// DecodeReadBDAddrResult decodes the 6-byte little-endian address
// returned by Read BD Address.
func DecodeReadBDAddrResult(b []byte) ([6]byte, error) {
	var addr [6]byte
	if len(b) < 6 {
		return addr, &InvalidPayloadSizeError{Needed: 6, Got: len(b)}
	}
	copy(addr[:], b[:6])
	return addr, nil
}

// EncodeSetEventMask encodes the 8-byte event mask for Set Event Mask.
func EncodeSetEventMask(mask uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, mask)
	return b
}

// EncodeLESetEventMask encodes the 8-byte LE event mask for LE Set Event
// Mask.
func EncodeLESetEventMask(mask uint64) []byte {
	return EncodeSetEventMask(mask)
}

func decodeBitmask64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, &InvalidPayloadSizeError{Needed: 8, Got: len(b)}
	}
	return binary.LittleEndian.Uint64(b[:8]), nil
}

// DecodeReadLocalSupportedFeaturesResult decodes the 8-byte feature
// bitmask returned by Read Local Supported Features.
func DecodeReadLocalSupportedFeaturesResult(b []byte) (uint64, error) {
	return decodeBitmask64(b)
}

// DecodeLEReadLocalSupportedFeaturesResult decodes the 8-byte LE feature
// bitmask returned by LE Read Local Supported Features.
func DecodeLEReadLocalSupportedFeaturesResult(b []byte) (uint64, error) {
	return decodeBitmask64(b)
}

// DecodeLEReadSupportedStatesResult decodes the 8-byte supported-states
// bitmask returned by LE Read Supported States.
func DecodeLEReadSupportedStatesResult(b []byte) (uint64, error) {
	return decodeBitmask64(b)
}

// LEReadBufferSizeV1Result is the return of LE Read Buffer Size
// (version 1).
type LEReadBufferSizeV1Result struct {
	ACLDataPacketLength    uint16
	TotalNumACLDataPackets uint8
}

// DecodeLEReadBufferSizeV1Result decodes the v1 result.
func DecodeLEReadBufferSizeV1Result(b []byte) (LEReadBufferSizeV1Result, error) {
	if len(b) < 3 {
		return LEReadBufferSizeV1Result{}, &InvalidPayloadSizeError{Needed: 3, Got: len(b)}
	}
	return LEReadBufferSizeV1Result{
		ACLDataPacketLength:    binary.LittleEndian.Uint16(b[0:2]),
		TotalNumACLDataPackets: b[2],
	}, nil
}

// LEReadBufferSizeV2Result is the return of LE Read Buffer Size
// (version 2), which adds the ISO data packet fields.
type LEReadBufferSizeV2Result struct {
	ACLDataPacketLength    uint16
	TotalNumACLDataPackets uint8
	ISOPacketLength        uint16
	TotalNumISOPackets     uint8
}

// DecodeLEReadBufferSizeV2Result decodes the v2 result.
func DecodeLEReadBufferSizeV2Result(b []byte) (LEReadBufferSizeV2Result, error) {
	if len(b) < 6 {
		return LEReadBufferSizeV2Result{}, &InvalidPayloadSizeError{Needed: 6, Got: len(b)}
	}
	return LEReadBufferSizeV2Result{
		ACLDataPacketLength:    binary.LittleEndian.Uint16(b[0:2]),
		TotalNumACLDataPackets: b[2],
		ISOPacketLength:        binary.LittleEndian.Uint16(b[3:5]),
		TotalNumISOPackets:     b[5],
	}, nil
}

// ReadLocalVersionResult is the return of Read Local Version
// Information.
type ReadLocalVersionResult struct {
	HCIVersion       uint8
	HCIRevision      uint16
	LMPVersion       uint8
	ManufacturerName uint16
	LMPSubversion    uint16
}

// DecodeReadLocalVersionResult decodes Read Local Version Information's
// 8-byte return.
func DecodeReadLocalVersionResult(b []byte) (ReadLocalVersionResult, error) {
	if len(b) < 8 {
		return ReadLocalVersionResult{}, &InvalidPayloadSizeError{Needed: 8, Got: len(b)}
	}
	return ReadLocalVersionResult{
		HCIVersion:       b[0],
		HCIRevision:      binary.LittleEndian.Uint16(b[1:3]),
		LMPVersion:       b[3],
		ManufacturerName: binary.LittleEndian.Uint16(b[4:6]),
		LMPSubversion:    binary.LittleEndian.Uint16(b[6:8]),
	}, nil
}

// EncodeReadRSSI encodes the connection handle for Read RSSI.
func EncodeReadRSSI(handle uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, handle)
	return b
}

// ReadRSSIResult is the return of Read RSSI.
type ReadRSSIResult struct {
	Handle uint16
	RSSI   int8
}

// DecodeReadRSSIResult decodes Read RSSI's 3-byte return.
func DecodeReadRSSIResult(b []byte) (ReadRSSIResult, error) {
	if len(b) < 3 {
		return ReadRSSIResult{}, &InvalidPayloadSizeError{Needed: 3, Got: len(b)}
	}
	return ReadRSSIResult{
		Handle: binary.LittleEndian.Uint16(b[0:2]),
		RSSI:   int8(b[2]),
	}, nil
}
