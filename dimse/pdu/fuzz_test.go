package pdu_test

import (
	"bytes"
	"testing"

	"github.com/codeninja55/go-dcmx/dimse/pdu"
)

// FuzzReadPDU feeds arbitrary byte streams through the PDU reader. Decoding
// must either fail cleanly or produce a PDU that re-encodes without error;
// it must never panic or over-allocate past the declared size bounds.
func FuzzReadPDU(f *testing.F) {
	seed := func(p pdu.PDU) {
		var buf bytes.Buffer
		if err := p.Encode(&buf); err == nil {
			f.Add(buf.Bytes())
		}
	}

	seed(&pdu.AssociateRQ{
		ProtocolVersion:    1,
		CalledAETitle:      pdu.PadAETitle("SCP"),
		CallingAETitle:     pdu.PadAETitle("SCU"),
		ApplicationContext: "1.2.840.10008.3.1.1.1",
		PresentationContexts: []pdu.PresentationContextRQ{
			{ID: 1, AbstractSyntax: "1.2.840.10008.1.1", TransferSyntaxes: []string{"1.2.840.10008.1.2"}},
		},
		UserInfo: pdu.UserInformation{MaxPDULength: 16384},
	})
	seed(&pdu.AssociateRJ{Result: 1, Source: 1, Reason: 1})
	seed(&pdu.DataTF{Items: []pdu.PresentationDataValue{{PresentationContextID: 1, Data: []byte{1, 2}}}})
	seed(&pdu.ReleaseRQ{})
	seed(&pdu.Abort{Source: 2, Reason: 2})
	f.Add([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		p, err := pdu.ReadPDU(bytes.NewReader(data))
		if err != nil {
			return
		}
		var buf bytes.Buffer
		if err := p.Encode(&buf); err != nil {
			t.Fatalf("decoded PDU type 0x%02X failed to re-encode: %v", p.Type(), err)
		}
	})
}
