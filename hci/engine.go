package hci

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultCmdTimeout is the command-completion deadline used when a
// Config leaves CmdTimeout unset.
const DefaultCmdTimeout = 2000 * time.Millisecond

// Transport is the narrow byte interface the Engine borrows from the
// embedding application: a synchronous send of a fully framed HCI
// command packet. Everything else (the physical link, H4 framing) is an
// external collaborator the Engine never touches directly.
type Transport interface {
	Send(packet []byte) error
}

// Event is a decoded HCI event the Engine did not consume as a Command
// Complete match — LE Meta events, Number of Completed Packets,
// Disconnection Complete, Hardware Error, and any Command Complete whose
// opcode did not match the pending command or that arrived with no
// command pending.
type Event struct {
	Code   uint8
	Params []byte
}

// Diagnostic is a non-fatal condition the Engine logs and otherwise
// drops: a framing error, an unmatched Command Complete, or a Command
// Complete arriving with no command pending. Never surfaced as an error from
// Execute or HandleEvent.
type Diagnostic struct {
	Message string
	Err     error
}

type pendingCommand struct {
	opcode Opcode
	result chan commandResult
}

type commandResult struct {
	params []byte
	err    error
}

// Config configures an Engine.
type Config struct {
	// CmdTimeout is the per-command completion deadline. Zero means
	// DefaultCmdTimeout.
	CmdTimeout time.Duration
	// Logger receives diagnostic and command-lifecycle log lines. Nil
	// means no logging.
	Logger *slog.Logger
}

// Engine is the HCI command engine: it serialises one outstanding
// command at a time onto the Transport, matches the corresponding
// Command Complete event by opcode, enforces a timeout, and resumes the
// caller with the decoded return parameters or a typed error.
type Engine struct {
	transport Transport
	timeout   time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	pending *pendingCommand

	diagnostics chan Diagnostic
	events      chan Event
}

// NewEngine constructs an Engine bound to transport, which it uses for
// every outgoing command packet.
func NewEngine(transport Transport, cfg Config) *Engine {
	timeout := cfg.CmdTimeout
	if timeout <= 0 {
		timeout = DefaultCmdTimeout
	}
	return &Engine{
		transport:   transport,
		timeout:     timeout,
		logger:      cfg.Logger,
		diagnostics: make(chan Diagnostic, 32),
		events:      make(chan Event, 32),
	}
}

// Diagnostics returns the channel of non-fatal protocol diagnostics
// (framing errors, unmatched completions). Readers should drain it;
// the Engine never blocks waiting for a reader, dropping diagnostics
// past the channel's buffer instead.
func (e *Engine) Diagnostics() <-chan Diagnostic {
	return e.diagnostics
}

// Events returns the channel of decoded HCI events the Engine did not
// consume as a matching Command Complete.
func (e *Engine) Events() <-chan Event {
	return e.events
}

func (e *Engine) emitDiagnostic(d Diagnostic) {
	if e.logger != nil {
		e.logger.Warn(d.Message, slog.Any("err", d.Err))
	}
	select {
	case e.diagnostics <- d:
	default:
	}
}

func (e *Engine) emitEvent(ev Event) {
	select {
	case e.events <- ev:
	default:
		e.emitDiagnostic(Diagnostic{Message: "event stream full, dropping event", Err: nil})
	}
}

// Execute sends an HCI command and blocks until its Command Complete
// arrives, the command times out, or another command is already
// pending. Exactly one suspension point per call.
func (e *Engine) Execute(op Opcode, params []byte) ([]byte, error) {
	resultCh := make(chan commandResult, 1)

	e.mu.Lock()
	if e.pending != nil {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	pc := &pendingCommand{opcode: op, result: resultCh}
	e.pending = pc
	e.mu.Unlock()

	if e.logger != nil {
		e.logger.Debug("hci: execute", slog.Uint64("opcode", uint64(op)))
	}

	timer := time.AfterFunc(e.timeout, func() {
		e.resolveTimeout(pc)
	})

	packet := BuildCommandPacket(op, params)
	if err := e.transport.Send(packet); err != nil {
		// Per the transport contract, send failures are the transport's
		// concern: the pending command is left armed and will resolve
		// via the timeout above rather than failing fast here.
		e.emitDiagnostic(Diagnostic{Message: "hci: transport send failed", Err: err})
	}

	res := <-resultCh
	timer.Stop()
	return res.params, res.err
}

func (e *Engine) resolveTimeout(pc *pendingCommand) {
	e.mu.Lock()
	if e.pending != pc {
		// Already resolved by a matching Command Complete.
		e.mu.Unlock()
		return
	}
	e.pending = nil
	e.mu.Unlock()

	if e.logger != nil {
		e.logger.Warn("hci: command timed out", slog.Uint64("opcode", uint64(pc.opcode)))
	}
	pc.result <- commandResult{err: ErrTimeout}
}

// HandleEvent is the receive-side entry point the transport calls with
// each decoded HCI event packet's raw bytes. It never returns an error:
// malformed or unmatched events are logged as diagnostics and dropped.
func (e *Engine) HandleEvent(buf []byte) {
	evt, err := ParseEventPacket(buf)
	if err != nil {
		e.emitDiagnostic(Diagnostic{Message: "hci: dropping malformed event", Err: err})
		return
	}

	if evt.Code != EvtCmdComplete {
		e.emitEvent(Event{Code: evt.Code, Params: evt.Params})
		return
	}

	cc, err := ParseCommandComplete(evt.Params)
	if err != nil {
		e.emitDiagnostic(Diagnostic{Message: "hci: dropping malformed command complete", Err: err})
		return
	}

	e.mu.Lock()
	pc := e.pending
	if pc == nil {
		e.mu.Unlock()
		// Benign: the controller may emit NOP completes with nothing
		// pending.
		e.emitDiagnostic(Diagnostic{Message: "hci: command complete with no pending command", Err: nil})
		e.emitEvent(Event{Code: evt.Code, Params: evt.Params})
		return
	}
	if cc.Opcode != pc.opcode {
		e.mu.Unlock()
		// Opcode-directed dispatch: do not resume, do not clear state.
		e.emitDiagnostic(Diagnostic{Message: "hci: command complete opcode mismatch", Err: nil})
		e.emitEvent(Event{Code: evt.Code, Params: evt.Params})
		return
	}
	e.pending = nil
	e.mu.Unlock()

	if e.logger != nil {
		e.logger.Debug("hci: command complete", slog.Uint64("opcode", uint64(cc.Opcode)), slog.Int("status", int(cc.Status)))
	}

	if cc.Status == StatusSuccess {
		pc.result <- commandResult{params: cc.ReturnParams}
	} else {
		pc.result <- commandResult{err: &HciError{Status: cc.Status}}
	}
}
