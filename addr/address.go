// Package addr implements the 48-bit Bluetooth device address (BD_ADDR)
// value type, with conversions to and from its on-wire little-endian byte
// form and its canonical colon-separated text form.
package addr

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidAddress is returned when parsing text or bytes that cannot
// represent a 48-bit address.
var ErrInvalidAddress = errors.New("addr: invalid address")

// Address is a 48-bit Bluetooth device address, stored numerically so it
// round-trips cleanly through string, byte, and integer representations.
type Address uint64

const maxAddress = (1 << 48) - 1

// FromBytes builds an Address from its 6-byte little-endian wire form,
// as it appears in HCI command/event parameters.
func FromBytes(b [6]byte) Address {
	var v uint64
	for i := 5; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return Address(v)
}

// Bytes renders the address in its 6-byte little-endian wire form.
func (a Address) Bytes() [6]byte {
	var b [6]byte
	v := uint64(a)
	for i := 0; i < 6; i++ {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// String renders the address in canonical colon-separated big-endian hex,
// e.g. "AA:BB:CC:DD:EE:FF".
func (a Address) String() string {
	b := a.Bytes()
	parts := make([]string, 6)
	for i := 0; i < 6; i++ {
		// Bytes() is little-endian on the wire; canonical text is
		// big-endian, so walk the array in reverse.
		parts[i] = strings.ToUpper(hex.EncodeToString(b[5-i : 6-i]))
	}
	return strings.Join(parts, ":")
}

// Parse parses the canonical colon-separated text form into an Address.
func Parse(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return 0, ErrInvalidAddress
	}
	var b [6]byte
	for i, p := range parts {
		raw, err := hex.DecodeString(p)
		if err != nil || len(raw) != 1 {
			return 0, ErrInvalidAddress
		}
		// text is big-endian, wire form is little-endian
		b[5-i] = raw[0]
	}
	return FromBytes(b), nil
}

// Valid reports whether a is representable in 6 bytes.
func (a Address) Valid() bool {
	return uint64(a) <= maxAddress
}
