package hci

import (
	"errors"
	"fmt"
)

// ErrBusy is returned by Engine.Execute when a command is already
// pending completion.
var ErrBusy = errors.New("hci: command already pending")

// ErrTimeout is returned by Engine.Execute when no matching Command
// Complete event arrives within the configured deadline.
var ErrTimeout = errors.New("hci: command timed out")

// ErrInvalidCommandParameter is returned by a codec's Encode when the
// caller-supplied parameters are host-side invalid before any bytes are
// ever placed on the wire (e.g. LE Set Extended Scan Parameters with no
// PHY enabled).
var ErrInvalidCommandParameter = errors.New("hci: invalid command parameter")

// InvalidPayloadSizeError is returned by a codec's Decode when the
// provided buffer is shorter than the minimum required for that PDU.
type InvalidPayloadSizeError struct {
	Needed int
	Got    int
}

func (e *InvalidPayloadSizeError) Error() string {
	return fmt.Sprintf("hci: invalid payload size: need at least %d bytes, got %d", e.Needed, e.Got)
}

// HciError wraps a non-zero controller status byte returned in a Command
// Complete event.
type HciError struct {
	Status uint8
}

func (e *HciError) Error() string {
	return fmt.Sprintf("hci: controller error 0x%02X (%s)", e.Status, StatusName(e.Status))
}

// ProtocolFramingError describes an event whose declared parameter
// length disagreed with its trailing byte count. ParseEventPacket returns
// it; Engine.HandleEvent (which has no error return) only publishes it on
// the Engine's diagnostics stream.
type ProtocolFramingError struct {
	Declared int
	Got      int
}

func (e *ProtocolFramingError) Error() string {
	return fmt.Sprintf("hci: event declared %d parameter bytes, got %d", e.Declared, e.Got)
}
