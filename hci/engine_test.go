package hci

import (
	"encoding/hex"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records every packet sent to it and lets tests feed
// events back into an Engine on demand.
type fakeTransport struct {
	mu  sync.Mutex
	out [][]byte
}

func (f *fakeTransport) Send(packet []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(packet))
	copy(cp, packet)
	f.out = append(f.out, cp)
	return nil
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.out)
}

func (f *fakeTransport) last() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.out) == 0 {
		return nil
	}
	return f.out[len(f.out)-1]
}

func TestEngineResetRoundTrip(t *testing.T) {
	// S1 Reset round-trip.
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{})

	done := make(chan struct{})
	var resultErr error
	go func() {
		_, resultErr = e.Execute(PackOpcode(OgfHostCtl, OcfReset), EncodeReset())
		close(done)
	}()

	waitForSends(t, tr, 1)
	assert.Equal(t, "030c00", hex.EncodeToString(tr.last()))

	e.HandleEvent([]byte{0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00})

	<-done
	assert.NoError(t, resultErr)
}

func TestEngineBusy(t *testing.T) {
	// S2 Busy.
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{})

	go func() {
		_, _ = e.Execute(PackOpcode(OgfHostCtl, OcfReset), nil)
	}()
	waitForSends(t, tr, 1)

	_, err := e.Execute(PackOpcode(OgfInfoParam, OcfReadBDAddr), nil)
	assert.ErrorIs(t, err, ErrBusy)
}

func TestEngineTimeout(t *testing.T) {
	// S3 Timeout, then a subsequent identical submission succeeds.
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{CmdTimeout: 20 * time.Millisecond})

	_, err := e.Execute(PackOpcode(OgfHostCtl, OcfReset), nil)
	assert.ErrorIs(t, err, ErrTimeout)

	done := make(chan struct{})
	var resultErr error
	go func() {
		_, resultErr = e.Execute(PackOpcode(OgfHostCtl, OcfReset), nil)
		close(done)
	}()
	waitForSends(t, tr, 2)
	e.HandleEvent([]byte{0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00})
	<-done
	assert.NoError(t, resultErr)
}

func TestEngineOpcodeMismatchDoesNotResume(t *testing.T) {
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{CmdTimeout: 50 * time.Millisecond})

	done := make(chan struct{})
	var resultErr error
	go func() {
		_, resultErr = e.Execute(PackOpcode(OgfHostCtl, OcfReset), nil)
		close(done)
	}()
	waitForSends(t, tr, 1)

	// Command Complete for a different opcode (Read BD Addr) must not
	// resume the pending Reset.
	mismatch := buildCommandCompleteEvent(t, PackOpcode(OgfInfoParam, OcfReadBDAddr), StatusSuccess, nil)
	e.HandleEvent(mismatch)

	select {
	case <-done:
		t.Fatal("engine resumed on opcode mismatch")
	case <-time.After(10 * time.Millisecond):
	}

	// The real completion still resolves it.
	e.HandleEvent(buildCommandCompleteEvent(t, PackOpcode(OgfHostCtl, OcfReset), StatusSuccess, nil))
	<-done
	assert.NoError(t, resultErr)
}

func TestEngineHciError(t *testing.T) {
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{})

	done := make(chan struct{})
	var resultErr error
	go func() {
		_, resultErr = e.Execute(PackOpcode(OgfHostCtl, OcfReset), nil)
		close(done)
	}()
	waitForSends(t, tr, 1)

	e.HandleEvent(buildCommandCompleteEvent(t, PackOpcode(OgfHostCtl, OcfReset), StatusHardwareFailure, nil))
	<-done

	require.Error(t, resultErr)
	var herr *HciError
	require.ErrorAs(t, resultErr, &herr)
	assert.Equal(t, uint8(StatusHardwareFailure), herr.Status)
}

func TestEngineEventsStreamForNonCommandComplete(t *testing.T) {
	tr := &fakeTransport{}
	e := NewEngine(tr, Config{})

	// Disconnection Complete with no command pending.
	e.HandleEvent([]byte{EvtDisconnComplete, 0x04, 0x00, 0x01, 0x00, 0x13})

	select {
	case ev := <-e.Events():
		assert.Equal(t, uint8(EvtDisconnComplete), ev.Code)
	case <-time.After(time.Second):
		t.Fatal("expected event on stream")
	}
}

func waitForSends(t *testing.T, tr *fakeTransport, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if tr.count() >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for transport send")
}

// buildCommandCompleteEvent is a small test helper assembling a raw
// Command Complete event packet for the given opcode/status/return
// params.
func buildCommandCompleteEvent(t *testing.T, op Opcode, status uint8, returnParams []byte) []byte {
	t.Helper()
	params := make([]byte, 4+len(returnParams))
	params[0] = 1
	params[1] = byte(op)
	params[2] = byte(op >> 8)
	params[3] = status
	copy(params[4:], returnParams)

	buf := make([]byte, 2+len(params))
	buf[0] = EvtCmdComplete
	buf[1] = byte(len(params))
	copy(buf[2:], params)
	return buf
}
