// Package att implements Attribute Protocol PDU framing: per-opcode
// encode/decode of the request/response layer that exposes a
// handle-keyed attribute database over a connected link.
package att

// Opcode is the single byte every ATT PDU leads with.
type Opcode uint8

// Opcodes fully implemented by this package.
const (
	OpErrorResponse           Opcode = 0x01
	OpExchangeMTURequest      Opcode = 0x02
	OpExchangeMTUResponse     Opcode = 0x03
	OpFindInformationRequest  Opcode = 0x04
	OpFindInformationResponse Opcode = 0x05
)

// Opcodes named by the Attribute Protocol that this package declares but
// leaves unimplemented: Deserialize for these always reports "not this
// PDU" rather than special-casing "known opcode, no decoder" against
// Deserialize's normal "malformed" / "wrong opcode" outcomes.
const (
	OpFindByTypeValueRequest       Opcode = 0x06
	OpFindByTypeValueResponse      Opcode = 0x07
	OpReadByTypeRequest            Opcode = 0x08
	OpReadByTypeResponse           Opcode = 0x09
	OpReadRequest                  Opcode = 0x0A
	OpReadResponse                 Opcode = 0x0B
	OpReadBlobRequest              Opcode = 0x0C
	OpReadBlobResponse             Opcode = 0x0D
	OpReadMultipleRequest          Opcode = 0x0E
	OpReadMultipleResponse         Opcode = 0x0F
	OpReadByGroupTypeRequest       Opcode = 0x10
	OpReadByGroupTypeResponse      Opcode = 0x11
	OpWriteRequest                 Opcode = 0x12
	OpWriteResponse                Opcode = 0x13
	OpPrepareWriteRequest          Opcode = 0x16
	OpPrepareWriteResponse         Opcode = 0x17
	OpExecuteWriteRequest          Opcode = 0x18
	OpExecuteWriteResponse         Opcode = 0x19
	OpReadMultipleVariableRequest  Opcode = 0x20
	OpReadMultipleVariableResponse Opcode = 0x21
)

// UUIDFormat selects the element width of a Find Information Response's
// entry list.
type UUIDFormat uint8

const (
	UUIDFormat16Bit  UUIDFormat = 1
	UUIDFormat128Bit UUIDFormat = 2
)
