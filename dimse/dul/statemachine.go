// Package dul implements the DICOM Upper Layer: the PS3.8 Section 9.2
// association state machine as a pure transition function, and the
// association/transport wiring that interprets its emitted actions.
//
// The machine owns no sockets and no timers. Each Process call maps
// (state, event) to a new state plus a list of requested actions — start or
// stop the ARTIM timer, open or close the transport, send a PDU, notify the
// local user — which the host executes. Process must be serialized by the
// caller; it suspends nowhere.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part08.html#sect_9.2
package dul

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dimse/pdu"
)

// State enumerates the PS3.8 Table 9-10 machine states.
type State int

const (
	// Sta1: idle, no association and no transport connection.
	Sta1 State = iota + 1
	// Sta2: transport connection open, awaiting A-ASSOCIATE-RQ.
	Sta2
	// Sta3: awaiting local A-ASSOCIATE response primitive.
	Sta3
	// Sta4: awaiting transport connection opening to complete.
	Sta4
	// Sta5: awaiting A-ASSOCIATE-AC or A-ASSOCIATE-RJ.
	Sta5
	// Sta6: association established, ready for data transfer.
	Sta6
	// Sta7: release requested, awaiting A-RELEASE-RP.
	Sta7
	// Sta8: peer requested release, awaiting local A-RELEASE response.
	Sta8
	// Sta9: release collision after a local request, awaiting A-RELEASE-RP.
	Sta9
	// Sta10: release collision after a peer request, awaiting local response.
	Sta10
	// Sta11: collision continue, awaiting the local A-RELEASE response.
	Sta11
	// Sta12: collision continue, awaiting A-RELEASE-RP.
	Sta12
	// Sta13: association torn down, awaiting transport connection close.
	Sta13
)

func (s State) String() string {
	if s >= Sta1 && s <= Sta13 {
		return fmt.Sprintf("Sta%d", int(s))
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event is one input to the machine. Events partition into user primitives,
// transport events, received PDUs and the ARTIM timer.
type Event interface {
	isEvent()
	String() string
}

// User primitives.

// AAssociateRequest is the local A-ASSOCIATE request primitive, carrying the
// request PDU the host will send once the transport confirms.
type AAssociateRequest struct{ RQ *pdu.AssociateRQ }

// AAssociateResponseAccept is the local accept response with the AC to send.
type AAssociateResponseAccept struct{ AC *pdu.AssociateAC }

// AAssociateResponseReject is the local reject response with the RJ to send.
type AAssociateResponseReject struct{ RJ *pdu.AssociateRJ }

// AReleaseRequest is the local A-RELEASE request primitive.
type AReleaseRequest struct{}

// AReleaseResponse is the local A-RELEASE response primitive.
type AReleaseResponse struct{}

// AAbortRequest is the local A-ABORT request primitive.
type AAbortRequest struct{ Reason uint8 }

// PDataRequest is the local P-DATA request primitive.
type PDataRequest struct{ Data *pdu.DataTF }

// Transport events.

// TransportConfirm reports a locally initiated connection completing.
type TransportConfirm struct{}

// TransportIndication reports an inbound connection being accepted.
type TransportIndication struct{}

// TransportClosed reports the transport connection closing.
type TransportClosed struct{}

// Received PDUs.

// AAssociateRQReceived carries a received A-ASSOCIATE-RQ.
type AAssociateRQReceived struct{ RQ *pdu.AssociateRQ }

// AAssociateACReceived carries a received A-ASSOCIATE-AC.
type AAssociateACReceived struct{ AC *pdu.AssociateAC }

// AAssociateRJReceived carries a received A-ASSOCIATE-RJ.
type AAssociateRJReceived struct{ RJ *pdu.AssociateRJ }

// PDataTFReceived carries a received P-DATA-TF.
type PDataTFReceived struct{ Data *pdu.DataTF }

// AReleaseRQReceived reports a received A-RELEASE-RQ.
type AReleaseRQReceived struct{}

// AReleaseRPReceived reports a received A-RELEASE-RP.
type AReleaseRPReceived struct{}

// AAbortReceived carries a received A-ABORT.
type AAbortReceived struct{ Abort *pdu.Abort }

// InvalidPDUReceived reports an unrecognized or undecodable PDU.
type InvalidPDUReceived struct{ Cause error }

// Timer events.

// ARTIMExpired reports expiry of the Association Request/Reject/Release
// Timer.
type ARTIMExpired struct{}

func (AAssociateRequest) isEvent()        {}
func (AAssociateResponseAccept) isEvent() {}
func (AAssociateResponseReject) isEvent() {}
func (AReleaseRequest) isEvent()          {}
func (AReleaseResponse) isEvent()         {}
func (AAbortRequest) isEvent()            {}
func (PDataRequest) isEvent()             {}
func (TransportConfirm) isEvent()         {}
func (TransportIndication) isEvent()      {}
func (TransportClosed) isEvent()          {}
func (AAssociateRQReceived) isEvent()     {}
func (AAssociateACReceived) isEvent()     {}
func (AAssociateRJReceived) isEvent()     {}
func (PDataTFReceived) isEvent()          {}
func (AReleaseRQReceived) isEvent()       {}
func (AReleaseRPReceived) isEvent()       {}
func (AAbortReceived) isEvent()           {}
func (InvalidPDUReceived) isEvent()       {}
func (ARTIMExpired) isEvent()             {}

func (AAssociateRequest) String() string        { return "A-ASSOCIATE request" }
func (AAssociateResponseAccept) String() string { return "A-ASSOCIATE response (accept)" }
func (AAssociateResponseReject) String() string { return "A-ASSOCIATE response (reject)" }
func (AReleaseRequest) String() string          { return "A-RELEASE request" }
func (AReleaseResponse) String() string         { return "A-RELEASE response" }
func (AAbortRequest) String() string            { return "A-ABORT request" }
func (PDataRequest) String() string             { return "P-DATA request" }
func (TransportConfirm) String() string         { return "transport connect confirmation" }
func (TransportIndication) String() string      { return "transport connection indication" }
func (TransportClosed) String() string          { return "transport connection closed" }
func (AAssociateRQReceived) String() string     { return "A-ASSOCIATE-RQ PDU" }
func (AAssociateACReceived) String() string     { return "A-ASSOCIATE-AC PDU" }
func (AAssociateRJReceived) String() string     { return "A-ASSOCIATE-RJ PDU" }
func (PDataTFReceived) String() string          { return "P-DATA-TF PDU" }
func (AReleaseRQReceived) String() string       { return "A-RELEASE-RQ PDU" }
func (AReleaseRPReceived) String() string       { return "A-RELEASE-RP PDU" }
func (AAbortReceived) String() string           { return "A-ABORT PDU" }
func (InvalidPDUReceived) String() string       { return "invalid PDU" }
func (ARTIMExpired) String() string             { return "ARTIM timer expired" }

// ActionKind identifies a side effect the host must perform.
type ActionKind int

const (
	ActionStartARTIM ActionKind = iota + 1
	ActionStopARTIM
	ActionOpenTransport
	ActionCloseTransport
	ActionSendPDU
	ActionNotifyAssociateRequested
	ActionNotifyAccepted
	ActionNotifyRejected
	ActionNotifyData
	ActionNotifyReleaseRequested
	ActionNotifyReleased
	ActionNotifyAborted
)

func (k ActionKind) String() string {
	switch k {
	case ActionStartARTIM:
		return "start ARTIM"
	case ActionStopARTIM:
		return "stop ARTIM"
	case ActionOpenTransport:
		return "open transport"
	case ActionCloseTransport:
		return "close transport"
	case ActionSendPDU:
		return "send PDU"
	case ActionNotifyAssociateRequested:
		return "notify associate requested"
	case ActionNotifyAccepted:
		return "notify accepted"
	case ActionNotifyRejected:
		return "notify rejected"
	case ActionNotifyData:
		return "notify data"
	case ActionNotifyReleaseRequested:
		return "notify release requested"
	case ActionNotifyReleased:
		return "notify released"
	case ActionNotifyAborted:
		return "notify aborted"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one side-effect request emitted by a transition. PDU is set for
// ActionSendPDU and for the notify kinds that carry a peer message.
type Action struct {
	Kind ActionKind
	PDU  pdu.PDU
}

func (a Action) String() string {
	if a.PDU != nil {
		return fmt.Sprintf("%s (type 0x%02X)", a.Kind, a.PDU.Type())
	}
	return a.Kind.String()
}

// AcceptedPresentationContext is one successfully negotiated context.
type AcceptedPresentationContext struct {
	ID             uint8
	AbstractSyntax string
	TransferSyntax string
}

// Machine is the association state machine. It is single-threaded
// cooperative: callers serialize Process and observe each call's actions
// before feeding the next event.
type Machine struct {
	state State

	// proposed maps presentation context ID to abstract syntax from the
	// A-ASSOCIATE-RQ, for resolving accepted contexts on acceptance.
	proposed map[uint8]string

	// pendingRQ is the request PDU to send once the transport confirms.
	pendingRQ *pdu.AssociateRQ

	localMaxPDU uint32
	peerMaxPDU  uint32

	calledAE  string
	callingAE string
	accepted  []AcceptedPresentationContext
	maxPDU    uint32
}

// NewMachine creates a machine in Sta1.
func NewMachine() *Machine {
	return &Machine{state: Sta1}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// CalledAE returns the called AE title once association negotiation has
// begun.
func (m *Machine) CalledAE() string {
	return m.calledAE
}

// CallingAE returns the calling AE title once association negotiation has
// begun.
func (m *Machine) CallingAE() string {
	return m.callingAE
}

// AcceptedPresentationContexts returns the negotiated contexts, valid once
// the machine has reached Sta6.
func (m *Machine) AcceptedPresentationContexts() []AcceptedPresentationContext {
	return m.accepted
}

// NegotiatedMaxPDU returns the agreed maximum PDU length: the minimum of the
// local and peer offers, valid once the machine has reached Sta6.
func (m *Machine) NegotiatedMaxPDU() uint32 {
	return m.maxPDU
}

// negotiateMaxPDU takes the minimum of two offers, where zero means "no
// limit stated" and defers to the other side.
func negotiateMaxPDU(local, peer uint32) uint32 {
	switch {
	case local == 0:
		return peer
	case peer == 0:
		return local
	case peer < local:
		return peer
	default:
		return local
	}
}

func send(p pdu.PDU) Action {
	return Action{Kind: ActionSendPDU, PDU: p}
}

func act(kind ActionKind) Action {
	return Action{Kind: kind}
}

// providerAbort builds the A-ABORT emitted on protocol violations.
func providerAbort() Action {
	return send(&pdu.Abort{Source: pdu.AbortSourceServiceProvider, Reason: pdu.AbortReasonUnexpectedPDU})
}

// Process feeds one event through the transition table and returns the
// actions the host must perform, in order. A (state, event) pair outside the
// table is a protocol violation: the machine emits an abort and returns to
// Sta1.
func (m *Machine) Process(event Event) []Action {
	m.observe(event)

	if next, actions, ok := m.transition(event); ok {
		m.state = next
		return actions
	}

	// Global rules for every state except Sta1.
	if m.state != Sta1 {
		switch ev := event.(type) {
		case TransportClosed:
			m.state = Sta1
			return []Action{act(ActionStopARTIM), act(ActionNotifyAborted)}
		case AAbortReceived:
			m.state = Sta1
			return []Action{act(ActionStopARTIM), Action{Kind: ActionNotifyAborted, PDU: ev.Abort}, act(ActionCloseTransport)}
		case AAbortRequest:
			m.state = Sta1
			return []Action{
				act(ActionStopARTIM),
				send(&pdu.Abort{Source: pdu.AbortSourceServiceUser, Reason: ev.Reason}),
				act(ActionCloseTransport),
			}
		}
	}

	return m.violation()
}

// violation aborts the association and resets to Sta1.
func (m *Machine) violation() []Action {
	m.state = Sta1
	return []Action{providerAbort(), act(ActionCloseTransport), act(ActionNotifyAborted)}
}

// observe records negotiation context carried by events, independent of the
// transition outcome.
func (m *Machine) observe(event Event) {
	switch ev := event.(type) {
	case AAssociateRequest:
		if ev.RQ == nil {
			return
		}
		m.calledAE = pdu.TrimAETitle(ev.RQ.CalledAETitle)
		m.callingAE = pdu.TrimAETitle(ev.RQ.CallingAETitle)
		m.localMaxPDU = ev.RQ.UserInfo.MaxPDULength
		m.pendingRQ = ev.RQ
		m.rememberProposed(ev.RQ)

	case AAssociateRQReceived:
		if ev.RQ == nil {
			return
		}
		m.calledAE = pdu.TrimAETitle(ev.RQ.CalledAETitle)
		m.callingAE = pdu.TrimAETitle(ev.RQ.CallingAETitle)
		m.peerMaxPDU = ev.RQ.UserInfo.MaxPDULength
		m.rememberProposed(ev.RQ)

	case AAssociateACReceived:
		if ev.AC == nil {
			return
		}
		m.finishNegotiation(ev.AC.PresentationContexts, ev.AC.UserInfo.MaxPDULength)

	case AAssociateResponseAccept:
		if ev.AC == nil {
			return
		}
		m.localMaxPDU = ev.AC.UserInfo.MaxPDULength
		m.finishNegotiation(ev.AC.PresentationContexts, m.peerMaxPDU)
	}
}

func (m *Machine) rememberProposed(rq *pdu.AssociateRQ) {
	m.proposed = make(map[uint8]string, len(rq.PresentationContexts))
	for _, pc := range rq.PresentationContexts {
		m.proposed[pc.ID] = pc.AbstractSyntax
	}
}

func (m *Machine) finishNegotiation(contexts []pdu.PresentationContextAC, peerMaxPDU uint32) {
	m.accepted = m.accepted[:0]
	for _, pc := range contexts {
		if pc.Result != pdu.PresentationContextAcceptance {
			continue
		}
		m.accepted = append(m.accepted, AcceptedPresentationContext{
			ID:             pc.ID,
			AbstractSyntax: m.proposed[pc.ID],
			TransferSyntax: pc.TransferSyntax,
		})
	}
	m.maxPDU = negotiateMaxPDU(m.localMaxPDU, peerMaxPDU)
}

// transition is the state table proper. The bool result is false when the
// pair is not enumerated, handing control to the global rules.
func (m *Machine) transition(event Event) (State, []Action, bool) {
	switch m.state {
	case Sta1:
		switch event.(type) {
		case AAssociateRequest:
			return Sta4, []Action{act(ActionOpenTransport)}, true
		case TransportIndication:
			return Sta2, []Action{act(ActionStartARTIM)}, true
		}

	case Sta2:
		switch ev := event.(type) {
		case AAssociateRQReceived:
			return Sta3, []Action{act(ActionStopARTIM), Action{Kind: ActionNotifyAssociateRequested, PDU: ev.RQ}}, true
		case ARTIMExpired:
			return Sta1, []Action{act(ActionCloseTransport)}, true
		case TransportClosed:
			return Sta1, []Action{act(ActionStopARTIM)}, true
		}

	case Sta3:
		switch ev := event.(type) {
		case AAssociateResponseAccept:
			return Sta6, []Action{send(ev.AC)}, true
		case AAssociateResponseReject:
			return Sta13, []Action{send(ev.RJ), act(ActionStartARTIM)}, true
		}

	case Sta4:
		switch event.(type) {
		case TransportConfirm:
			return Sta5, []Action{send(m.pendingRQ)}, true
		case TransportClosed:
			return Sta1, []Action{act(ActionNotifyAborted)}, true
		}

	case Sta5:
		switch ev := event.(type) {
		case AAssociateACReceived:
			return Sta6, []Action{Action{Kind: ActionNotifyAccepted, PDU: ev.AC}}, true
		case AAssociateRJReceived:
			return Sta1, []Action{Action{Kind: ActionNotifyRejected, PDU: ev.RJ}, act(ActionCloseTransport)}, true
		}

	case Sta6:
		switch ev := event.(type) {
		case PDataRequest:
			return Sta6, []Action{send(ev.Data)}, true
		case PDataTFReceived:
			return Sta6, []Action{Action{Kind: ActionNotifyData, PDU: ev.Data}}, true
		case AReleaseRequest:
			return Sta7, []Action{send(&pdu.ReleaseRQ{})}, true
		case AReleaseRQReceived:
			return Sta8, []Action{act(ActionNotifyReleaseRequested)}, true
		}

	case Sta7:
		switch ev := event.(type) {
		case AReleaseRPReceived:
			return Sta1, []Action{act(ActionNotifyReleased), act(ActionCloseTransport)}, true
		case AReleaseRQReceived:
			// Release collision while we await the peer's A-RELEASE-RP.
			return Sta9, []Action{act(ActionNotifyReleaseRequested)}, true
		case PDataTFReceived:
			return Sta7, []Action{Action{Kind: ActionNotifyData, PDU: ev.Data}}, true
		}

	case Sta8:
		switch ev := event.(type) {
		case AReleaseResponse:
			return Sta13, []Action{send(&pdu.ReleaseRP{}), act(ActionStartARTIM)}, true
		case AReleaseRequest:
			// Release collision: the local user also asked to release.
			return Sta10, []Action{send(&pdu.ReleaseRQ{})}, true
		case PDataRequest:
			return Sta8, []Action{send(ev.Data)}, true
		}

	case Sta9:
		switch event.(type) {
		case AReleaseRPReceived:
			return Sta11, nil, true
		}

	case Sta10:
		switch event.(type) {
		case AReleaseResponse:
			return Sta12, []Action{send(&pdu.ReleaseRP{})}, true
		}

	case Sta11:
		switch event.(type) {
		case AReleaseResponse:
			return Sta13, []Action{send(&pdu.ReleaseRP{}), act(ActionStartARTIM)}, true
		}

	case Sta12:
		switch event.(type) {
		case AReleaseRPReceived:
			return Sta13, []Action{act(ActionStartARTIM)}, true
		}

	case Sta13:
		switch event.(type) {
		case TransportClosed:
			return Sta1, []Action{act(ActionStopARTIM)}, true
		case ARTIMExpired:
			return Sta1, []Action{act(ActionCloseTransport)}, true
		}
	}

	return 0, nil, false
}

