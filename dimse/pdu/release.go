package pdu

import (
	"io"
)

// ReleaseRQ is the A-RELEASE-RQ PDU (type 0x05). Its body is four reserved
// bytes.
type ReleaseRQ struct{}

// ReleaseRP is the A-RELEASE-RP PDU (type 0x06). Its body is four reserved
// bytes.
type ReleaseRP struct{}

// Type returns TypeReleaseRQ.
func (p *ReleaseRQ) Type() byte {
	return TypeReleaseRQ
}

// Encode writes the complete A-RELEASE-RQ.
func (p *ReleaseRQ) Encode(w io.Writer) error {
	return encodeWithHeader(w, TypeReleaseRQ, make([]byte, 4))
}

// Decode consumes the reserved body bytes.
func (p *ReleaseRQ) Decode(r io.Reader) error {
	_, err := io.CopyN(io.Discard, r, 4)
	return err
}

// Type returns TypeReleaseRP.
func (p *ReleaseRP) Type() byte {
	return TypeReleaseRP
}

// Encode writes the complete A-RELEASE-RP.
func (p *ReleaseRP) Encode(w io.Writer) error {
	return encodeWithHeader(w, TypeReleaseRP, make([]byte, 4))
}

// Decode consumes the reserved body bytes.
func (p *ReleaseRP) Decode(r io.Reader) error {
	_, err := io.CopyN(io.Discard, r, 4)
	return err
}
