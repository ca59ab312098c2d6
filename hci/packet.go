package hci

import "encoding/binary"

// BuildCommandPacket frames an HCI command packet: opcode (u16 LE),
// param_len (u8), params. Panics if params is longer than 255 bytes —
// callers are expected to validate parameter sizes in their codecs,
// where the layouts are fixed and always well under the limit.
func BuildCommandPacket(op Opcode, params []byte) []byte {
	if len(params) > 255 {
		panic("hci: command parameters exceed 255 bytes")
	}

	buf := make([]byte, 3+len(params))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(op))
	buf[2] = byte(len(params))
	copy(buf[3:], params)
	return buf
}

// EventPacket is a parsed HCI event packet: event code, and the
// parameter bytes that followed it on the wire.
type EventPacket struct {
	Code   uint8
	Params []byte
}

// ParseEventPacket validates and splits a raw event packet
// (event_code, param_len, params...). It returns an error when the
// buffer is too short to contain a header, or when the declared
// param_len disagrees with the number of trailing bytes actually
// present — per spec, this is a framing error the caller should log
// and drop, not propagate as a command failure.
func ParseEventPacket(buf []byte) (EventPacket, error) {
	if len(buf) < 2 {
		return EventPacket{}, &InvalidPayloadSizeError{Needed: 2, Got: len(buf)}
	}

	declared := int(buf[1])
	got := len(buf) - 2
	if declared != got {
		return EventPacket{}, &ProtocolFramingError{Declared: declared, Got: got}
	}

	return EventPacket{Code: buf[0], Params: buf[2:]}, nil
}

// CommandComplete is the decoded body of an EvtCmdComplete event.
type CommandComplete struct {
	NumHCIPackets uint8
	Opcode        Opcode
	Status        uint8
	ReturnParams  []byte
}

// ParseCommandComplete decodes the parameters of a Command Complete
// event: num_hci_packets(1) | opcode(2, LE) | status(1) |
// return_parameters(remainder). Requires at least 4 bytes total.
func ParseCommandComplete(params []byte) (CommandComplete, error) {
	if len(params) < 4 {
		return CommandComplete{}, &InvalidPayloadSizeError{Needed: 4, Got: len(params)}
	}

	return CommandComplete{
		NumHCIPackets: params[0],
		Opcode:        Opcode(binary.LittleEndian.Uint16(params[1:3])),
		Status:        params[3],
		ReturnParams:  params[4:],
	}, nil
}
