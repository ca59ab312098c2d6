package att

import "encoding/binary"

// ErrorResponse is the 5-byte ATT Error Response:
// opcode(1) | req_opcode(1) | attr_handle(2) | error_code(1).
type ErrorResponse struct {
	RequestOpcode Opcode
	AttrHandle    uint16
	ErrorCode     uint8
}

// Serialize encodes an Error Response.
func (r ErrorResponse) Serialize() []byte {
	b := make([]byte, 5)
	b[0] = byte(OpErrorResponse)
	b[1] = byte(r.RequestOpcode)
	binary.LittleEndian.PutUint16(b[2:4], r.AttrHandle)
	b[4] = r.ErrorCode
	return b
}

// DeserializeErrorResponse decodes b as an Error Response. ok is false
// when the opcode does not match or the buffer is the wrong size —
// either case means "not this PDU", never an error.
func DeserializeErrorResponse(b []byte) (resp ErrorResponse, ok bool) {
	if len(b) != 5 || Opcode(b[0]) != OpErrorResponse {
		return ErrorResponse{}, false
	}
	return ErrorResponse{
		RequestOpcode: Opcode(b[1]),
		AttrHandle:    binary.LittleEndian.Uint16(b[2:4]),
		ErrorCode:     b[4],
	}, true
}

// ExchangeMTU is the shared 3-byte body of Exchange MTU Request and
// Exchange MTU Response: opcode(1) | mtu(2).
type ExchangeMTU struct {
	MTU uint16
}

// SerializeRequest encodes an Exchange MTU Request.
func (m ExchangeMTU) SerializeRequest() []byte {
	return m.serialize(OpExchangeMTURequest)
}

// SerializeResponse encodes an Exchange MTU Response.
func (m ExchangeMTU) SerializeResponse() []byte {
	return m.serialize(OpExchangeMTUResponse)
}

func (m ExchangeMTU) serialize(op Opcode) []byte {
	b := make([]byte, 3)
	b[0] = byte(op)
	binary.LittleEndian.PutUint16(b[1:3], m.MTU)
	return b
}

// DeserializeExchangeMTURequest decodes b as an Exchange MTU Request.
func DeserializeExchangeMTURequest(b []byte) (ExchangeMTU, bool) {
	return deserializeExchangeMTU(b, OpExchangeMTURequest)
}

// DeserializeExchangeMTUResponse decodes b as an Exchange MTU Response.
func DeserializeExchangeMTUResponse(b []byte) (ExchangeMTU, bool) {
	return deserializeExchangeMTU(b, OpExchangeMTUResponse)
}

func deserializeExchangeMTU(b []byte, op Opcode) (ExchangeMTU, bool) {
	if len(b) != 3 || Opcode(b[0]) != op {
		return ExchangeMTU{}, false
	}
	return ExchangeMTU{MTU: binary.LittleEndian.Uint16(b[1:3])}, true
}

// FindInformationRequest is the 5-byte Find Information Request:
// opcode(1) | start_handle(2) | end_handle(2).
type FindInformationRequest struct {
	StartHandle uint16
	EndHandle   uint16
}

// Serialize encodes a Find Information Request.
func (r FindInformationRequest) Serialize() []byte {
	b := make([]byte, 5)
	b[0] = byte(OpFindInformationRequest)
	binary.LittleEndian.PutUint16(b[1:3], r.StartHandle)
	binary.LittleEndian.PutUint16(b[3:5], r.EndHandle)
	return b
}

// DeserializeFindInformationRequest decodes b as a Find Information
// Request.
func DeserializeFindInformationRequest(b []byte) (FindInformationRequest, bool) {
	if len(b) != 5 || Opcode(b[0]) != OpFindInformationRequest {
		return FindInformationRequest{}, false
	}
	return FindInformationRequest{
		StartHandle: binary.LittleEndian.Uint16(b[1:3]),
		EndHandle:   binary.LittleEndian.Uint16(b[3:5]),
	}, true
}

// FindInformationEntry is one handle/UUID pair of a Find Information
// Response. UUID is the canonical (non-reversed) byte order; reversal
// happens only at the wire boundary in Serialize/Deserialize.
type FindInformationEntry struct {
	Handle uint16
	UUID   []byte // 2 or 16 bytes
}

// FindInformationResponse is the variable-length Find Information
// Response: opcode(1) | format(1) | N * (handle(2) | uuid(2 or 16)).
type FindInformationResponse struct {
	Entries []FindInformationEntry
}

// Serialize encodes a Find Information Response. Every entry's UUID must
// be the same length (2 or 16 bytes); any other mix, or an empty entry
// list, is a programmer error and Serialize returns nil.
func (r FindInformationResponse) Serialize() []byte {
	if len(r.Entries) == 0 {
		return nil
	}
	uuidLen := len(r.Entries[0].UUID)
	if uuidLen != 2 && uuidLen != 16 {
		return nil
	}
	for _, e := range r.Entries {
		if len(e.UUID) != uuidLen {
			return nil
		}
	}

	format := UUIDFormat16Bit
	if uuidLen == 16 {
		format = UUIDFormat128Bit
	}
	stride := 2 + uuidLen

	b := make([]byte, 2+stride*len(r.Entries))
	b[0] = byte(OpFindInformationResponse)
	b[1] = byte(format)
	for i, e := range r.Entries {
		off := 2 + i*stride
		binary.LittleEndian.PutUint16(b[off:off+2], e.Handle)
		copy(b[off+2:off+2+uuidLen], reverse(e.UUID))
	}
	return b
}

// DeserializeFindInformationResponse decodes b as a Find Information
// Response. Malformed means the body length is not an exact multiple of
// the format's stride, or the format byte is neither 1 nor 2.
func DeserializeFindInformationResponse(b []byte) (FindInformationResponse, bool) {
	if len(b) < 6 || Opcode(b[0]) != OpFindInformationResponse {
		return FindInformationResponse{}, false
	}

	var uuidLen int
	switch UUIDFormat(b[1]) {
	case UUIDFormat16Bit:
		uuidLen = 2
	case UUIDFormat128Bit:
		uuidLen = 16
	default:
		return FindInformationResponse{}, false
	}
	stride := 2 + uuidLen

	body := b[2:]
	if len(body)%stride != 0 {
		return FindInformationResponse{}, false
	}

	n := len(body) / stride
	entries := make([]FindInformationEntry, n)
	for i := 0; i < n; i++ {
		off := i * stride
		entries[i] = FindInformationEntry{
			Handle: binary.LittleEndian.Uint16(body[off : off+2]),
			UUID:   reverse(body[off+2 : off+stride]),
		}
	}
	return FindInformationResponse{Entries: entries}, true
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
