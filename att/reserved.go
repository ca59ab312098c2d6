package att

// IsReserved reports whether op is named in the Attribute Protocol's
// opcode registry but has no codec in this package yet: Find By Type
// Value, Read By Type, Read, Read Blob, Read Multiple, Read By Group
// Type, Write, Prepare Write, Execute Write, Read Multiple Variable,
// and their responses. An opcode-directed dispatch loop can treat such
// PDUs exactly like unknown opcodes — no decoder claims them.
func IsReserved(op Opcode) bool {
	switch op {
	case OpFindByTypeValueRequest, OpFindByTypeValueResponse,
		OpReadByTypeRequest, OpReadByTypeResponse,
		OpReadRequest, OpReadResponse,
		OpReadBlobRequest, OpReadBlobResponse,
		OpReadMultipleRequest, OpReadMultipleResponse,
		OpReadByGroupTypeRequest, OpReadByGroupTypeResponse,
		OpWriteRequest, OpWriteResponse,
		OpPrepareWriteRequest, OpPrepareWriteResponse,
		OpExecuteWriteRequest, OpExecuteWriteResponse,
		OpReadMultipleVariableRequest, OpReadMultipleVariableResponse:
		return true
	}
	return false
}
