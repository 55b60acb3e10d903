package dul

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/codeninja55/go-dcmx/dimse/pdu"
)

// ErrAssociationRejected is returned when the peer answers A-ASSOCIATE-RQ
// with A-ASSOCIATE-RJ.
var ErrAssociationRejected = errors.New("association rejected")

// ErrAssociationAborted is returned when the association is torn down by an
// A-ABORT from either side.
var ErrAssociationAborted = errors.New("association aborted")

// ErrAssociationReleased is returned by ReadData when the peer gracefully
// releases the association.
var ErrAssociationReleased = errors.New("association released by peer")

// defaultARTIMTimeout bounds waits in the transient association states when
// the config does not choose one.
const defaultARTIMTimeout = 30 * time.Second

// Config parameterizes one association endpoint.
type Config struct {
	CalledAE  string
	CallingAE string
	// MaxPDULength is the local max-PDU offer; zero means DefaultMaxLength.
	MaxPDULength uint32
	// ImplementationClassUID identifies this implementation in negotiation.
	ImplementationClassUID string
	// ImplementationVersion is the version name sent alongside.
	ImplementationVersion string
	// ARTIMTimeout bounds the ARTIM timer; zero means 30 seconds.
	ARTIMTimeout time.Duration
}

// Association drives a Machine over a Connection, executing the actions each
// transition emits: PDU sends, transport close, ARTIM start/stop.
type Association struct {
	conn    *Connection
	machine *Machine
	cfg     Config

	mu    sync.Mutex
	artim *time.Timer

	// aborted records that the machine emitted an abort notification.
	aborted bool
}

// newAssociation wires a machine to a connection.
func newAssociation(conn *Connection, cfg Config) *Association {
	if cfg.MaxPDULength == 0 {
		cfg.MaxPDULength = pdu.DefaultMaxLength
	}
	if cfg.ARTIMTimeout == 0 {
		cfg.ARTIMTimeout = defaultARTIMTimeout
	}
	return &Association{conn: conn, machine: NewMachine(), cfg: cfg}
}

// Machine returns the underlying state machine for inspection.
func (a *Association) Machine() *Machine {
	return a.machine
}

// Connection returns the underlying transport connection.
func (a *Association) Connection() *Connection {
	return a.conn
}

// CalledAE returns the negotiated called AE title.
func (a *Association) CalledAE() string {
	return a.machine.CalledAE()
}

// CallingAE returns the negotiated calling AE title.
func (a *Association) CallingAE() string {
	return a.machine.CallingAE()
}

// AcceptedPresentationContexts returns the negotiated contexts.
func (a *Association) AcceptedPresentationContexts() []AcceptedPresentationContext {
	return a.machine.AcceptedPresentationContexts()
}

// FindPresentationContext returns the accepted context for an abstract
// syntax.
func (a *Association) FindPresentationContext(abstractSyntax string) (AcceptedPresentationContext, bool) {
	for _, pc := range a.machine.AcceptedPresentationContexts() {
		if pc.AbstractSyntax == abstractSyntax {
			return pc, true
		}
	}
	return AcceptedPresentationContext{}, false
}

// process feeds one event to the machine and executes the emitted actions.
// The caller holds a.mu.
func (a *Association) process(ctx context.Context, event Event) error {
	var firstErr error
	for _, action := range a.machine.Process(event) {
		switch action.Kind {
		case ActionSendPDU:
			if err := a.conn.SendPDU(ctx, action.PDU); err != nil && firstErr == nil {
				firstErr = err
			}
		case ActionCloseTransport:
			if err := a.conn.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		case ActionStartARTIM:
			a.startARTIM()
		case ActionStopARTIM:
			a.stopARTIM()
		case ActionNotifyAborted:
			a.aborted = true
		default:
			// Notifications surface through the calling method's result.
		}
	}
	return firstErr
}

// startARTIM arms the ARTIM timer; expiry feeds ARTIMExpired back into the
// machine, which force-closes the transport.
func (a *Association) startARTIM() {
	a.stopARTIM()
	a.artim = time.AfterFunc(a.cfg.ARTIMTimeout, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		_ = a.process(context.Background(), ARTIMExpired{})
	})
}

func (a *Association) stopARTIM() {
	if a.artim != nil {
		a.artim.Stop()
		a.artim = nil
	}
}

// Associate dials the peer and negotiates an association as the requestor
// (SCU). On success the machine is in Sta6.
func Associate(ctx context.Context, address string, cfg Config, contexts []pdu.PresentationContextRQ) (*Association, error) {
	conn, err := Dial(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}

	a := newAssociation(conn, cfg)
	a.mu.Lock()
	defer a.mu.Unlock()

	rq := &pdu.AssociateRQ{
		ProtocolVersion:      0x0001,
		CalledAETitle:        pdu.PadAETitle(cfg.CalledAE),
		CallingAETitle:       pdu.PadAETitle(cfg.CallingAE),
		ApplicationContext:   "1.2.840.10008.3.1.1.1",
		PresentationContexts: contexts,
		UserInfo: pdu.UserInformation{
			MaxPDULength:           a.cfg.MaxPDULength,
			ImplementationClassUID: cfg.ImplementationClassUID,
			ImplementationVersion:  cfg.ImplementationVersion,
		},
	}

	// Sta1 -> Sta4 (open transport; Dial already did), then Sta4 -> Sta5
	// (send the RQ).
	if err := a.process(ctx, AAssociateRequest{RQ: rq}); err != nil {
		conn.Close()
		return nil, err
	}
	if err := a.process(ctx, TransportConfirm{}); err != nil {
		conn.Close()
		return nil, err
	}

	response, err := a.readPDUEvent(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read association response: %w", err)
	}
	if err := a.process(ctx, response); err != nil {
		conn.Close()
		return nil, err
	}

	switch ev := response.(type) {
	case AAssociateACReceived:
		a.conn.SetMaxPDULength(a.machine.NegotiatedMaxPDU())
		return a, nil
	case AAssociateRJReceived:
		return nil, fmt.Errorf("%w: result=%d source=%d reason=%d",
			ErrAssociationRejected, ev.RJ.Result, ev.RJ.Source, ev.RJ.Reason)
	case AAbortReceived:
		return nil, fmt.Errorf("%w: source=%d reason=%d", ErrAssociationAborted, ev.Abort.Source, ev.Abort.Reason)
	default:
		return nil, fmt.Errorf("unexpected answer to A-ASSOCIATE-RQ: %s", response)
	}
}

// AcceptAssociation negotiates an inbound association as the acceptor (SCP).
// supported maps abstract syntax UIDs to the transfer syntaxes offered for
// them, in preference order.
func AcceptAssociation(ctx context.Context, conn *Connection, cfg Config, supported map[string][]string) (*Association, error) {
	a := newAssociation(conn, cfg)
	a.mu.Lock()
	defer a.mu.Unlock()

	// Sta1 -> Sta2: the transport is open, ARTIM bounds the wait for the RQ.
	if err := a.process(ctx, TransportIndication{}); err != nil {
		return nil, err
	}

	event, err := a.readPDUEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read association request: %w", err)
	}
	if err := a.process(ctx, event); err != nil {
		return nil, err
	}

	rqEvent, ok := event.(AAssociateRQReceived)
	if !ok {
		return nil, fmt.Errorf("expected A-ASSOCIATE-RQ, got %s", event)
	}
	rq := rqEvent.RQ

	ac := &pdu.AssociateAC{
		ProtocolVersion:    0x0001,
		CalledAETitle:      rq.CalledAETitle,
		CallingAETitle:     rq.CallingAETitle,
		ApplicationContext: rq.ApplicationContext,
		UserInfo: pdu.UserInformation{
			MaxPDULength:           a.cfg.MaxPDULength,
			ImplementationClassUID: cfg.ImplementationClassUID,
			ImplementationVersion:  cfg.ImplementationVersion,
		},
	}
	for _, pc := range rq.PresentationContexts {
		ac.PresentationContexts = append(ac.PresentationContexts, negotiateContext(pc, supported))
	}

	// Sta3 -> Sta6: accept.
	if err := a.process(ctx, AAssociateResponseAccept{AC: ac}); err != nil {
		return nil, err
	}
	a.conn.SetMaxPDULength(a.machine.NegotiatedMaxPDU())
	return a, nil
}

// negotiateContext resolves one proposed presentation context against the
// supported syntax table.
func negotiateContext(rq pdu.PresentationContextRQ, supported map[string][]string) pdu.PresentationContextAC {
	offered, ok := supported[rq.AbstractSyntax]
	if !ok {
		return pdu.PresentationContextAC{ID: rq.ID, Result: pdu.PresentationContextAbstractSyntaxNotSupported}
	}
	for _, ts := range offered {
		for _, requested := range rq.TransferSyntaxes {
			if ts == requested {
				return pdu.PresentationContextAC{ID: rq.ID, Result: pdu.PresentationContextAcceptance, TransferSyntax: ts}
			}
		}
	}
	return pdu.PresentationContextAC{ID: rq.ID, Result: pdu.PresentationContextTransferSyntaxesNotSupported}
}

// SendData sends one P-DATA-TF on an established association.
func (a *Association) SendData(ctx context.Context, data *pdu.DataTF) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.process(ctx, PDataRequest{Data: data})
}

// ReadData reads PDUs until a P-DATA-TF arrives, feeding every received PDU
// through the machine. A peer release is answered with A-RELEASE-RP and
// surfaces as ErrAssociationReleased; an abort as ErrAssociationAborted.
func (a *Association) ReadData(ctx context.Context) (*pdu.DataTF, error) {
	for {
		a.mu.Lock()
		event, err := a.readPDUEvent(ctx)
		if err != nil {
			perr := a.process(ctx, TransportClosed{})
			a.mu.Unlock()
			if perr != nil {
				return nil, perr
			}
			return nil, err
		}
		perr := a.process(ctx, event)
		aborted := a.aborted
		a.mu.Unlock()
		if perr != nil {
			return nil, perr
		}
		if aborted {
			return nil, ErrAssociationAborted
		}

		switch data := event.(type) {
		case PDataTFReceived:
			return data.Data, nil
		case AReleaseRQReceived:
			// Answer the release and wait for the peer to close.
			a.mu.Lock()
			if err := a.process(ctx, AReleaseResponse{}); err != nil {
				a.mu.Unlock()
				return nil, err
			}
			if _, err := a.conn.ReadPDU(ctx); err != nil {
				_ = a.process(ctx, TransportClosed{})
			}
			a.conn.Close()
			a.mu.Unlock()
			return nil, ErrAssociationReleased
		}
	}
}

// Release performs a graceful release, handling the release-collision
// paths. On return the transport is closed.
func (a *Association) Release(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Sta6 -> Sta7.
	if err := a.process(ctx, AReleaseRequest{}); err != nil {
		return err
	}

	for {
		switch a.machine.State() {
		case Sta1:
			return nil
		case Sta9:
			// Collision: the peer also requested release; await its RP.
		case Sta11:
			// Collision resolved; answer with our own RP.
			if err := a.process(ctx, AReleaseResponse{}); err != nil {
				return err
			}
			continue
		case Sta13:
			// Torn down; close our side and settle the machine.
			a.conn.Close()
			return a.process(ctx, TransportClosed{})
		}

		event, err := a.readPDUEvent(ctx)
		if err != nil {
			a.conn.Close()
			return a.process(ctx, TransportClosed{})
		}
		if err := a.process(ctx, event); err != nil {
			return err
		}
		if a.aborted {
			return ErrAssociationAborted
		}
	}
}

// Abort sends A-ABORT and closes the transport.
func (a *Association) Abort(ctx context.Context, reason uint8) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.process(ctx, AAbortRequest{Reason: reason})
}

// readPDUEvent reads one PDU and wraps it in its machine event. A read error,
// transport closure included, is returned as is; callers feed TransportClosed
// to the machine for it.
func (a *Association) readPDUEvent(ctx context.Context) (Event, error) {
	p, err := a.conn.ReadPDU(ctx)
	if err != nil {
		return nil, err
	}
	switch p := p.(type) {
	case *pdu.AssociateRQ:
		return AAssociateRQReceived{RQ: p}, nil
	case *pdu.AssociateAC:
		return AAssociateACReceived{AC: p}, nil
	case *pdu.AssociateRJ:
		return AAssociateRJReceived{RJ: p}, nil
	case *pdu.DataTF:
		return PDataTFReceived{Data: p}, nil
	case *pdu.ReleaseRQ:
		return AReleaseRQReceived{}, nil
	case *pdu.ReleaseRP:
		return AReleaseRPReceived{}, nil
	case *pdu.Abort:
		return AAbortReceived{Abort: p}, nil
	default:
		return InvalidPDUReceived{Cause: fmt.Errorf("unhandled PDU type 0x%02X", p.Type())}, nil
	}
}
