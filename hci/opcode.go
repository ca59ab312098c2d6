// Package hci implements the host-side HCI command engine and the
// parameter codecs for the command/event set in use, following the
// framing rules of the Bluetooth Core Specification's Host Controller
// Interface.
package hci

// Opcode is a 16-bit HCI command opcode: ogf<<10 | ocf.
type Opcode uint16

// OGF values (Opcode Group Field).
const (
	OgfLinkCtl     = 0x01
	OgfHostCtl     = 0x03
	OgfInfoParam   = 0x04
	OgfStatusParam = 0x05
	OgfLECtl       = 0x08
)

// OCF values (Opcode Command Field), grouped by their OGF.
const (
	// OgfLinkCtl
	OcfDisconnect = 0x0006

	// OgfHostCtl
	OcfSetEventMask = 0x0001
	OcfReset        = 0x0003

	// OgfInfoParam
	OcfReadLocalVersion  = 0x0001
	OcfReadLocalFeatures = 0x0003
	OcfReadBDAddr        = 0x0009

	// OgfStatusParam
	OcfReadRSSI = 0x0005

	// OgfLECtl
	OcfLESetEventMask               = 0x0001
	OcfLEReadBufferSizeV1           = 0x0002
	OcfLEReadLocalSupportedFeatures = 0x0003
	OcfLESetRandomAddress           = 0x0005
	OcfLESetAdvertisingParameters   = 0x0006
	OcfLESetAdvertisingData         = 0x0008
	OcfLESetScanResponseData        = 0x0009
	OcfLESetAdvertiseEnable         = 0x000A
	OcfLESetScanParameters          = 0x000B
	OcfLESetScanEnable              = 0x000C
	OcfLECreateConn                 = 0x000D
	OcfLECreateConnCancel           = 0x000E
	OcfLEConnUpdate                 = 0x0013
	OcfLEEncrypt                    = 0x0017
	OcfLERand                       = 0x0018
	OcfLELongTermKeyRequestReply    = 0x001A
	OcfLELongTermKeyRequestNegReply = 0x001B
	OcfLEReadSupportedStates        = 0x001C
	OcfLERemoteConnParamReqReply    = 0x0020
	OcfLERemoteConnParamReqNegReply = 0x0021
	OcfLESetExtAdvertisingParams    = 0x0036
	OcfLESetExtAdvertisingData      = 0x0037
	OcfLESetExtScanResponseData     = 0x0038
	OcfLESetExtAdvertisingEnable    = 0x0039
	OcfLESetExtScanParameters       = 0x0041
	OcfLESetExtScanEnable           = 0x0042
	OcfLEExtCreateConn              = 0x0043
	OcfLEReadBufferSizeV2           = 0x0060
)

// HCI event codes.
const (
	EvtDisconnComplete = 0x05
	EvtEncryptChange   = 0x08
	EvtCmdComplete     = 0x0E
	EvtCmdStatus       = 0x0F
	EvtHardwareError   = 0x10
	EvtNumCompPkts     = 0x13
	EvtLEMetaEvent     = 0x3E
)

// LE Meta subevent codes, carried in the first byte of an EvtLEMetaEvent
// event's parameters.
const (
	LEMetaConnComplete               = 0x01
	LEMetaAdvertisingReport          = 0x02
	LEMetaConnectionUpdateComplete   = 0x03
	LEMetaReadRemoteFeaturesComplete = 0x04
	LEMetaLongTermKeyRequest         = 0x05
	LEMetaRemoteConnParamRequest     = 0x06
	LEMetaDataLengthChange           = 0x07
	LEMetaEnhancedConnectionComplete = 0x0A
	LEMetaExtendedAdvertisingReport  = 0x0D
)

// Status/error codes (Bluetooth Core Specification Vol 2, Part D).
const (
	StatusSuccess                       = 0x00
	StatusUnknownHCICommand             = 0x01
	StatusUnknownConnectionIdentifier   = 0x02
	StatusHardwareFailure               = 0x03
	StatusAuthenticationFailure         = 0x05
	StatusPinOrKeyMissing               = 0x06
	StatusMemoryCapacityExceeded        = 0x07
	StatusConnectionTimeout             = 0x08
	StatusConnectionLimitExceeded       = 0x09
	StatusCommandDisallowed             = 0x0C
	StatusInvalidHCICommandParameters   = 0x12
	StatusRemoteUserTerminatedConn      = 0x13
	StatusConnectionTerminatedLocalHost = 0x16
	StatusUnsupportedRemoteFeature      = 0x1A
	StatusUnspecifiedError              = 0x1F
	StatusInstantPassed                 = 0x28
	StatusDifferentTransactionCollision = 0x2A
	StatusControllerBusy                = 0x3A
	StatusDirectedAdvertisingTimeout    = 0x3C
)

var statusNames = map[uint8]string{
	StatusSuccess:                       "Success",
	StatusUnknownHCICommand:             "Unknown HCI Command",
	StatusUnknownConnectionIdentifier:   "Unknown Connection Identifier",
	StatusHardwareFailure:               "Hardware Failure",
	StatusAuthenticationFailure:         "Authentication Failure",
	StatusPinOrKeyMissing:               "PIN or Key Missing",
	StatusMemoryCapacityExceeded:        "Memory Capacity Exceeded",
	StatusConnectionTimeout:             "Connection Timeout",
	StatusConnectionLimitExceeded:       "Connection Limit Exceeded",
	StatusCommandDisallowed:             "Command Disallowed",
	StatusInvalidHCICommandParameters:   "Invalid HCI Command Parameters",
	StatusRemoteUserTerminatedConn:      "Remote User Terminated Connection",
	StatusConnectionTerminatedLocalHost: "Connection Terminated by Local Host",
	StatusUnsupportedRemoteFeature:      "Unsupported Remote Feature",
	StatusUnspecifiedError:              "Unspecified Error",
	StatusInstantPassed:                 "Instant Passed",
	StatusDifferentTransactionCollision: "Different Transaction Collision",
	StatusControllerBusy:                "Controller Busy",
	StatusDirectedAdvertisingTimeout:    "Directed Advertising Timeout",
}

// StatusName returns the Bluetooth Core Specification name for status, or
// "Unknown Status" if it is not in the registry above.
func StatusName(status uint8) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "Unknown Status"
}

// PackOpcode assembles an opcode from its OGF and OCF fields. Total for
// all ogf <= 0x3F, ocf <= 0x3FF.
func PackOpcode(ogf, ocf uint16) Opcode {
	return Opcode((ogf&0x3F)<<10 | (ocf & 0x3FF))
}

// UnpackOpcode splits an opcode back into its OGF and OCF fields. Exact
// inverse of PackOpcode for every valid (ogf, ocf) pair.
func UnpackOpcode(op Opcode) (ogf, ocf uint16) {
	v := uint16(op)
	return (v >> 10) & 0x3F, v & 0x3FF
}
