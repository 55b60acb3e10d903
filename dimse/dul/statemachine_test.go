package dul

import (
	"testing"

	"github.com/codeninja55/go-dcmx/dimse/pdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func associateRequest() AAssociateRequest {
	return AAssociateRequest{RQ: &pdu.AssociateRQ{
		ProtocolVersion:    0x0001,
		CalledAETitle:      pdu.PadAETitle("STORE_SCP"),
		CallingAETitle:     pdu.PadAETitle("STORE_SCU"),
		ApplicationContext: "1.2.840.10008.3.1.1.1",
		PresentationContexts: []pdu.PresentationContextRQ{
			{ID: 1, AbstractSyntax: "1.2.840.10008.1.1", TransferSyntaxes: []string{"1.2.840.10008.1.2"}},
		},
		UserInfo: pdu.UserInformation{MaxPDULength: 16384},
	}}
}

func acceptance(maxPDU uint32) AAssociateACReceived {
	return AAssociateACReceived{AC: &pdu.AssociateAC{
		ProtocolVersion: 0x0001,
		PresentationContexts: []pdu.PresentationContextAC{
			{ID: 1, Result: pdu.PresentationContextAcceptance, TransferSyntax: "1.2.840.10008.1.2"},
		},
		UserInfo: pdu.UserInformation{MaxPDULength: maxPDU},
	}}
}

// kinds extracts the action kinds for compact assertions.
func kinds(actions []Action) []ActionKind {
	result := make([]ActionKind, len(actions))
	for i, a := range actions {
		result[i] = a.Kind
	}
	return result
}

func TestMachine_RequestorHappyPath(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, Sta1, m.State())

	actions := m.Process(associateRequest())
	trace := actions
	assert.Equal(t, Sta4, m.State())
	assert.Equal(t, []ActionKind{ActionOpenTransport}, kinds(actions))

	actions = m.Process(TransportConfirm{})
	trace = append(trace, actions...)
	assert.Equal(t, Sta5, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))
	assert.Equal(t, pdu.TypeAssociateRQ, actions[0].PDU.Type())

	actions = m.Process(acceptance(32768))
	trace = append(trace, actions...)
	assert.Equal(t, Sta6, m.State())

	// Exactly one accepted notification across the whole trace
	accepted := 0
	for _, a := range trace {
		if a.Kind == ActionNotifyAccepted {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)

	// Association context is exposed after Sta6
	assert.Equal(t, "STORE_SCP", m.CalledAE())
	assert.Equal(t, "STORE_SCU", m.CallingAE())
	assert.Equal(t, uint32(16384), m.NegotiatedMaxPDU(), "min of local 16384 and peer 32768")
	require.Len(t, m.AcceptedPresentationContexts(), 1)
	assert.Equal(t, "1.2.840.10008.1.1", m.AcceptedPresentationContexts()[0].AbstractSyntax)
	assert.Equal(t, "1.2.840.10008.1.2", m.AcceptedPresentationContexts()[0].TransferSyntax)
}

func TestMachine_NegotiatedMaxPDUIsMinimum(t *testing.T) {
	m := NewMachine()
	m.Process(associateRequest())
	m.Process(TransportConfirm{})
	m.Process(acceptance(8192))
	assert.Equal(t, uint32(8192), m.NegotiatedMaxPDU())
}

func TestMachine_Rejection(t *testing.T) {
	m := NewMachine()
	m.Process(associateRequest())
	m.Process(TransportConfirm{})

	actions := m.Process(AAssociateRJReceived{RJ: &pdu.AssociateRJ{
		Result: pdu.RejectResultPermanent,
		Source: pdu.RejectSourceServiceUser,
		Reason: 1,
	}})
	assert.Equal(t, Sta1, m.State())
	assert.Equal(t, []ActionKind{ActionNotifyRejected, ActionCloseTransport}, kinds(actions))
}

func TestMachine_AcceptorPath(t *testing.T) {
	m := NewMachine()

	actions := m.Process(TransportIndication{})
	assert.Equal(t, Sta2, m.State())
	assert.Equal(t, []ActionKind{ActionStartARTIM}, kinds(actions))

	actions = m.Process(AAssociateRQReceived{RQ: associateRequest().RQ})
	assert.Equal(t, Sta3, m.State())
	assert.Equal(t, []ActionKind{ActionStopARTIM, ActionNotifyAssociateRequested}, kinds(actions))

	ac := acceptance(32768).AC
	actions = m.Process(AAssociateResponseAccept{AC: ac})
	assert.Equal(t, Sta6, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))
	assert.Equal(t, pdu.TypeAssociateAC, actions[0].PDU.Type())

	assert.Equal(t, uint32(16384), m.NegotiatedMaxPDU(), "min of peer 16384 and local 32768")
}

func TestMachine_ARTIMExpiryInSta2(t *testing.T) {
	m := NewMachine()
	m.Process(TransportIndication{})

	actions := m.Process(ARTIMExpired{})
	assert.Equal(t, Sta1, m.State())
	assert.Equal(t, []ActionKind{ActionCloseTransport}, kinds(actions))
}

func TestMachine_DataTransferStaysInSta6(t *testing.T) {
	m := establish(t)

	data := &pdu.DataTF{Items: []pdu.PresentationDataValue{{PresentationContextID: 1, Data: []byte{1}}}}

	actions := m.Process(PDataRequest{Data: data})
	assert.Equal(t, Sta6, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))

	actions = m.Process(PDataTFReceived{Data: data})
	assert.Equal(t, Sta6, m.State())
	assert.Equal(t, []ActionKind{ActionNotifyData}, kinds(actions))
}

// establish drives a machine to Sta6 as the requestor.
func establish(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine()
	m.Process(associateRequest())
	m.Process(TransportConfirm{})
	m.Process(acceptance(16384))
	require.Equal(t, Sta6, m.State())
	return m
}

func TestMachine_GracefulRelease(t *testing.T) {
	m := establish(t)

	actions := m.Process(AReleaseRequest{})
	assert.Equal(t, Sta7, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))
	assert.Equal(t, pdu.TypeReleaseRQ, actions[0].PDU.Type())

	actions = m.Process(AReleaseRPReceived{})
	assert.Equal(t, Sta1, m.State())
	assert.Equal(t, []ActionKind{ActionNotifyReleased, ActionCloseTransport}, kinds(actions))
}

func TestMachine_PeerRelease(t *testing.T) {
	m := establish(t)

	actions := m.Process(AReleaseRQReceived{})
	assert.Equal(t, Sta8, m.State())
	assert.Equal(t, []ActionKind{ActionNotifyReleaseRequested}, kinds(actions))

	actions = m.Process(AReleaseResponse{})
	assert.Equal(t, Sta13, m.State())
	assert.Equal(t, []ActionKind{ActionSendPDU, ActionStartARTIM}, kinds(actions))
	assert.Equal(t, pdu.TypeReleaseRP, actions[0].PDU.Type())

	actions = m.Process(TransportClosed{})
	assert.Equal(t, Sta1, m.State())
	assert.Equal(t, []ActionKind{ActionStopARTIM}, kinds(actions))
}

func TestMachine_ReleaseCollision(t *testing.T) {
	m := establish(t)

	var artimStarts int
	track := func(actions []Action) {
		for _, a := range actions {
			if a.Kind == ActionStartARTIM {
				artimStarts++
			}
		}
	}

	track(m.Process(AReleaseRequest{}))
	assert.Equal(t, Sta7, m.State())

	track(m.Process(AReleaseRQReceived{}))
	assert.Equal(t, Sta9, m.State())

	track(m.Process(AReleaseRPReceived{}))
	assert.Equal(t, Sta11, m.State())

	track(m.Process(AReleaseResponse{}))
	assert.Equal(t, Sta13, m.State())

	assert.Equal(t, 1, artimStarts, "exactly one ARTIM start, entering Sta13")
}

func TestMachine_ReleaseCollisionAcceptorSide(t *testing.T) {
	m := establish(t)

	m.Process(AReleaseRQReceived{})
	assert.Equal(t, Sta8, m.State())

	actions := m.Process(AReleaseRequest{})
	assert.Equal(t, Sta10, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))

	actions = m.Process(AReleaseResponse{})
	assert.Equal(t, Sta12, m.State())
	require.Equal(t, []ActionKind{ActionSendPDU}, kinds(actions))
	assert.Equal(t, pdu.TypeReleaseRP, actions[0].PDU.Type())

	actions = m.Process(AReleaseRPReceived{})
	assert.Equal(t, Sta13, m.State())
	assert.Equal(t, []ActionKind{ActionStartARTIM}, kinds(actions))
}

func TestMachine_Sta13ARTIMExpiryForcesClose(t *testing.T) {
	m := establish(t)
	m.Process(AReleaseRQReceived{})
	m.Process(AReleaseResponse{})
	require.Equal(t, Sta13, m.State())

	actions := m.Process(ARTIMExpired{})
	assert.Equal(t, Sta1, m.State())
	assert.Equal(t, []ActionKind{ActionCloseTransport}, kinds(actions))
}

func TestMachine_AbortRules(t *testing.T) {
	t.Run("abort received in Sta6", func(t *testing.T) {
		m := establish(t)
		actions := m.Process(AAbortReceived{Abort: &pdu.Abort{Source: pdu.AbortSourceServiceProvider}})
		assert.Equal(t, Sta1, m.State())
		assert.Contains(t, kinds(actions), ActionNotifyAborted)
		assert.Contains(t, kinds(actions), ActionCloseTransport)
	})

	t.Run("abort requested in Sta6", func(t *testing.T) {
		m := establish(t)
		actions := m.Process(AAbortRequest{Reason: pdu.AbortReasonNotSpecified})
		assert.Equal(t, Sta1, m.State())
		var sentAbort bool
		for _, a := range actions {
			if a.Kind == ActionSendPDU && a.PDU.Type() == pdu.TypeAbort {
				sentAbort = true
			}
		}
		assert.True(t, sentAbort)
		assert.Contains(t, kinds(actions), ActionCloseTransport)
	})

	t.Run("transport closed in Sta5", func(t *testing.T) {
		m := NewMachine()
		m.Process(associateRequest())
		m.Process(TransportConfirm{})
		actions := m.Process(TransportClosed{})
		assert.Equal(t, Sta1, m.State())
		assert.Contains(t, kinds(actions), ActionNotifyAborted)
	})
}

func TestMachine_ProtocolViolation(t *testing.T) {
	// A P-DATA-TF while awaiting the associate response is not enumerated
	m := NewMachine()
	m.Process(associateRequest())
	m.Process(TransportConfirm{})
	require.Equal(t, Sta5, m.State())

	actions := m.Process(PDataTFReceived{Data: &pdu.DataTF{}})
	assert.Equal(t, Sta1, m.State())

	var sentAbort bool
	for _, a := range actions {
		if a.Kind == ActionSendPDU && a.PDU.Type() == pdu.TypeAbort {
			sentAbort = true
		}
	}
	assert.True(t, sentAbort, "violations abort the association")
}

func TestMachine_EveryCleanTraceTerminates(t *testing.T) {
	// Invariant: traces without a transport close end in Sta1, Sta6 or with
	// a protocol-violation abort back to Sta1.
	traces := [][]Event{
		{associateRequest(), TransportConfirm{}, acceptance(0)},
		{associateRequest(), TransportConfirm{}, AAssociateRJReceived{RJ: &pdu.AssociateRJ{}}},
		{TransportIndication{}, ARTIMExpired{}},
		{associateRequest(), TransportConfirm{}, acceptance(0), AReleaseRequest{}, AReleaseRPReceived{}},
		{associateRequest(), acceptance(0)}, // violation in Sta4
	}

	for i, trace := range traces {
		m := NewMachine()
		for _, event := range trace {
			m.Process(event)
		}
		final := m.State()
		assert.True(t, final == Sta1 || final == Sta6, "trace %d ended in %s", i, final)
	}
}

func TestNegotiateMaxPDU(t *testing.T) {
	assert.Equal(t, uint32(100), negotiateMaxPDU(100, 200))
	assert.Equal(t, uint32(100), negotiateMaxPDU(200, 100))
	assert.Equal(t, uint32(200), negotiateMaxPDU(0, 200))
	assert.Equal(t, uint32(100), negotiateMaxPDU(100, 0))
	assert.Equal(t, uint32(0), negotiateMaxPDU(0, 0))
}
