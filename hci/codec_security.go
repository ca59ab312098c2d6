package hci

import "encoding/binary"

// reverseBytes returns a reversed copy of b, used for the 128-bit
// key/plaintext/ciphertext blocks LE Encrypt places on the wire
// little-endian-within-block (reversed relative to how callers present
// them).
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// EncodeLEEncrypt encodes the 16-byte key followed by the 16-byte
// plaintext block for LE Encrypt, each reversed before being placed on
// the wire.
func EncodeLEEncrypt(key, plaintext [16]byte) []byte {
	b := make([]byte, 32)
	copy(b[0:16], reverseBytes(key[:]))
	copy(b[16:32], reverseBytes(plaintext[:]))
	return b
}

// DecodeLEEncryptResult decodes and un-reverses the 16-byte ciphertext
// block LE Encrypt returns.
func DecodeLEEncryptResult(b []byte) ([16]byte, error) {
	var out [16]byte
	if len(b) < 16 {
		return out, &InvalidPayloadSizeError{Needed: 16, Got: len(b)}
	}
	copy(out[:], reverseBytes(b[:16]))
	return out, nil
}

// EncodeLERand returns the (empty) parameter block for LE Rand.
func EncodeLERand() []byte { return nil }

// DecodeLERandResult decodes the 8 random bytes LE Rand returns.
func DecodeLERandResult(b []byte) ([8]byte, error) {
	var out [8]byte
	if len(b) < 8 {
		return out, &InvalidPayloadSizeError{Needed: 8, Got: len(b)}
	}
	copy(out[:], b[:8])
	return out, nil
}

// EncodeLELongTermKeyRequestReply encodes handle(2) | ltk(16, reversed)
// for LE Long Term Key Request Reply.
func EncodeLELongTermKeyRequestReply(handle uint16, ltk [16]byte) []byte {
	b := make([]byte, 18)
	binary.LittleEndian.PutUint16(b[0:2], handle)
	copy(b[2:18], reverseBytes(ltk[:]))
	return b
}

// EncodeLELongTermKeyRequestNegReply encodes handle(2) for LE Long Term
// Key Request Negative Reply.
func EncodeLELongTermKeyRequestNegReply(handle uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, handle)
	return b
}

// RemoteConnParamReqReply is the input to LE Remote Connection Parameter
// Request Reply.
type RemoteConnParamReqReply struct {
	Handle            uint16
	ConnIntervalMinMs float64
	ConnIntervalMaxMs float64
	LatencyEvents     uint16
	SupervisionMs     float64
	MinCELengthMs     float64
	MaxCELengthMs     float64
}

// Encode lays out the 14-byte payload for LE Remote Connection Parameter
// Request Reply — identical field order to ConnectionUpdateParams.
func (p RemoteConnParamReqReply) Encode() []byte {
	return ConnectionUpdateParams(p).Encode()
}

// EncodeLERemoteConnParamReqNegReply encodes handle(2) | reason(1) for
// LE Remote Connection Parameter Request Negative Reply.
func EncodeLERemoteConnParamReqNegReply(handle uint16, reason uint8) []byte {
	b := make([]byte, 3)
	binary.LittleEndian.PutUint16(b[0:2], handle)
	b[2] = reason
	return b
}
