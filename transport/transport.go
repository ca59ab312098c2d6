// Package transport provides the byte-oriented carriers the hci engine
// sends commands over and receives events from: a serial HCI UART
// transport for real hardware, and an in-memory transport for tests.
package transport

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/term"
)

// EventSink receives each decoded HCI event packet's raw bytes
// (event_code, len, params...), matching hci.Engine.HandleEvent's
// signature without importing the hci package directly.
type EventSink func(packet []byte)

// Serial is an HCI UART transport: commands are written directly to the
// port (no H4 packet-type byte, since the controller in use is
// addressed over a dedicated HCI-only line), and a background reader
// goroutine reassembles event packets from the incoming byte stream and
// delivers them to the configured sink.
type Serial struct {
	port *term.Term

	mu   sync.Mutex
	sink EventSink
}

// OpenSerial opens device at the given baud rate and starts the
// background event reader. Close stops the reader and releases the
// port.
func OpenSerial(device string, baud int) (*Serial, error) {
	port, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", device, err)
	}
	if err := port.SetSpeed(baud); err != nil {
		return nil, fmt.Errorf("transport: set speed %d: %w", baud, err)
	}

	s := &Serial{port: port}
	go s.readLoop()
	return s, nil
}

// SetEventHandler installs the callback invoked with each decoded event
// packet. Must be called before events of interest are expected;
// events read before a handler is installed are dropped.
func (s *Serial) SetEventHandler(fn EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = fn
}

// Send writes a fully framed HCI command packet to the port.
func (s *Serial) Send(packet []byte) error {
	n, err := s.port.Write(packet)
	if err != nil {
		return fmt.Errorf("transport: write: %w", err)
	}
	if n != len(packet) {
		return fmt.Errorf("transport: short write: wrote %d of %d bytes", n, len(packet))
	}
	return nil
}

// Close releases the underlying serial port.
func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) readLoop() {
	r := bufio.NewReader(s.port)
	for {
		header := make([]byte, 2)
		if _, err := io.ReadFull(r, header); err != nil {
			return
		}

		paramLen := int(header[1])
		packet := make([]byte, 2+paramLen)
		copy(packet, header)
		if paramLen > 0 {
			if _, err := io.ReadFull(r, packet[2:]); err != nil {
				return
			}
		}

		s.mu.Lock()
		sink := s.sink
		s.mu.Unlock()
		if sink != nil {
			sink(packet)
		}
	}
}

// Mock is an in-memory Transport for tests and simulation: Send records
// every packet, and InjectEvent delivers a raw event packet straight to
// the installed handler.
type Mock struct {
	mu   sync.Mutex
	sent [][]byte
	sink EventSink
}

// NewMock constructs an unopened Mock transport.
func NewMock() *Mock {
	return &Mock{}
}

// Send records packet for later inspection via Sent.
func (m *Mock) Send(packet []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(packet))
	copy(cp, packet)
	m.sent = append(m.sent, cp)
	return nil
}

// SetEventHandler installs the callback InjectEvent delivers to.
func (m *Mock) SetEventHandler(fn EventSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sink = fn
}

// Sent returns every packet handed to Send so far, in order.
func (m *Mock) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	copy(out, m.sent)
	return out
}

// InjectEvent delivers a raw event packet to the installed handler, if
// any. No-op when no handler has been installed yet.
func (m *Mock) InjectEvent(packet []byte) {
	m.mu.Lock()
	sink := m.sink
	m.mu.Unlock()
	if sink != nil {
		sink(packet)
	}
}

// InjectCommandComplete is a convenience wrapper around InjectEvent that
// assembles a Command Complete event for opcode/status/returnParams.
func (m *Mock) InjectCommandComplete(opcode uint16, status uint8, returnParams []byte) {
	params := make([]byte, 4+len(returnParams))
	params[0] = 1
	binary.LittleEndian.PutUint16(params[1:3], opcode)
	params[3] = status
	copy(params[4:], returnParams)

	buf := make([]byte, 2+len(params))
	buf[0] = 0x0E // EvtCmdComplete
	buf[1] = byte(len(params))
	copy(buf[2:], params)
	m.InjectEvent(buf)
}
