package uid

import (
	"encoding/binary"
	"fmt"
)

// TransferSyntax describes a UID-identified dataset encoding: the VR form,
// the byte order, and whether pixel data is encapsulated (compressed into
// fragments) and lossy.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
type TransferSyntax struct {
	// UID is the transfer syntax UID value.
	UID string
	// ExplicitVR is true when VR codes are carried on the wire.
	ExplicitVR bool
	// LittleEndian is true for little-endian multi-byte integer encoding.
	LittleEndian bool
	// Encapsulated is true when pixel data is carried as a fragment sequence.
	Encapsulated bool
	// Lossy is true when the encapsulated codec discards image information.
	Lossy bool
	// Deflated is true when the dataset stream is RFC 1951 DEFLATE compressed.
	Deflated bool
}

// ByteOrder returns the binary.ByteOrder for this transfer syntax.
func (ts TransferSyntax) ByteOrder() binary.ByteOrder {
	if ts.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// String returns the transfer syntax UID value.
func (ts TransferSyntax) String() string {
	return ts.UID
}

// Equals returns true if both transfer syntaxes carry the same UID.
func (ts TransferSyntax) Equals(other TransferSyntax) bool {
	return ts.UID == other.UID
}

// Well-known transfer syntax instances.
var (
	// TransferSyntaxImplicitVRLittleEndian is the DICOM default (1.2.840.10008.1.2).
	TransferSyntaxImplicitVRLittleEndian = TransferSyntax{
		UID: ImplicitVRLittleEndian.String(), LittleEndian: true,
	}

	// TransferSyntaxExplicitVRLittleEndian is 1.2.840.10008.1.2.1.
	TransferSyntaxExplicitVRLittleEndian = TransferSyntax{
		UID: ExplicitVRLittleEndian.String(), ExplicitVR: true, LittleEndian: true,
	}

	// TransferSyntaxExplicitVRBigEndian is the retired 1.2.840.10008.1.2.2,
	// supported for read only.
	TransferSyntaxExplicitVRBigEndian = TransferSyntax{
		UID: ExplicitVRBigEndian.String(), ExplicitVR: true,
	}

	// TransferSyntaxDeflatedExplicitVRLittleEndian is 1.2.840.10008.1.2.1.99.
	TransferSyntaxDeflatedExplicitVRLittleEndian = TransferSyntax{
		UID: DeflatedExplicitVRLittleEndian.String(), ExplicitVR: true, LittleEndian: true, Deflated: true,
	}

	// TransferSyntaxRLELossless is 1.2.840.10008.1.2.5.
	TransferSyntaxRLELossless = TransferSyntax{
		UID: RLELossless.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true,
	}
)

// transferSyntaxMap indexes every recognized transfer syntax by UID.
var transferSyntaxMap = func() map[string]TransferSyntax {
	all := []TransferSyntax{
		TransferSyntaxImplicitVRLittleEndian,
		TransferSyntaxExplicitVRLittleEndian,
		TransferSyntaxExplicitVRBigEndian,
		TransferSyntaxDeflatedExplicitVRLittleEndian,
		TransferSyntaxRLELossless,
		{UID: JPEGBaseline8Bit.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true, Lossy: true},
		{UID: JPEGExtended12Bit.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true, Lossy: true},
		{UID: JPEGLossless.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true},
		{UID: JPEGLosslessSV1.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true},
		{UID: JPEGLSLossless.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true},
		{UID: JPEGLSNearLossless.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true, Lossy: true},
		{UID: JPEG2000Lossless.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true},
		{UID: JPEG2000.String(), ExplicitVR: true, LittleEndian: true, Encapsulated: true, Lossy: true},
	}
	m := make(map[string]TransferSyntax, len(all))
	for _, ts := range all {
		m[ts.UID] = ts
	}
	return m
}()

// FindTransferSyntax returns the TransferSyntax for a UID value.
// Returns an error for UIDs that are not recognized transfer syntaxes.
func FindTransferSyntax(uidValue string) (TransferSyntax, error) {
	if ts, ok := transferSyntaxMap[uidValue]; ok {
		return ts, nil
	}
	return TransferSyntax{}, fmt.Errorf("unknown transfer syntax UID %q", uidValue)
}
