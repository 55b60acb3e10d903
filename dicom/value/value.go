// Package value provides DICOM element value representations and operations.
//
// Values in DICOM can be strings, fixed-width numerics, opaque bytes, or
// sequences. String values keep the raw wire bytes (including padding) so a
// decoded dataset can be re-serialized byte-for-byte; the typed accessors
// trim padding and split multi-valued strings on access.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package value

import (
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Value represents a DICOM element value.
type Value interface {
	// VR returns the Value Representation of this value.
	VR() vr.VR

	// Bytes returns the wire encoding of this value. Numeric values encode
	// little-endian; use the type-specific EncodeBytes for other byte orders.
	// The result is not implicitly padded to even length; padding is the
	// serializer's job.
	Bytes() []byte

	// String returns a human-readable representation.
	String() string

	// Multiplicity returns the number of logical values.
	Multiplicity() int

	// Equals returns true if this value equals another value.
	Equals(other Value) bool

	// Clone returns an independent deep copy of this value that owns its
	// bytes, sharing nothing with any input buffer.
	Clone() Value
}
