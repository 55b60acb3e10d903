package value

import (
	"fmt"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// BytesValue represents opaque binary DICOM values.
// Supports VRs: OB, OD, OF, OL, OV, OW, UN.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type BytesValue struct {
	vr   vr.VR
	data []byte
}

// NewBytesValue creates a new BytesValue with the specified VR and data.
// Returns an error if the VR is not a binary type. Nil data is treated as empty.
func NewBytesValue(v vr.VR, data []byte) (*BytesValue, error) {
	if !v.IsBinaryType() {
		return nil, fmt.Errorf("VR %s is not a binary type", v)
	}
	if data == nil {
		data = []byte{}
	}
	return &BytesValue{vr: v, data: data}, nil
}

// VR returns the Value Representation of this byte value.
func (b *BytesValue) VR() vr.VR {
	return b.vr
}

// Bytes returns the raw byte data.
func (b *BytesValue) Bytes() []byte {
	return b.data
}

// Multiplicity returns 1 for non-empty data and 0 otherwise. Opaque byte
// streams carry a single logical value.
func (b *BytesValue) Multiplicity() int {
	if len(b.data) == 0 {
		return 0
	}
	return 1
}

// String returns a hex dump of the bytes, truncated for readability.
func (b *BytesValue) String() string {
	const maxDisplayBytes = 16

	if len(b.data) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")
	n := len(b.data)
	if n > maxDisplayBytes {
		n = maxDisplayBytes
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%02X", b.data[i])
	}
	if len(b.data) > maxDisplayBytes {
		fmt.Fprintf(&sb, " ... (%d bytes)", len(b.data))
	}
	sb.WriteString("]")
	return sb.String()
}

// Equals returns true if the other value is a BytesValue with the same VR and
// identical bytes. Nil and empty data compare equal.
func (b *BytesValue) Equals(other Value) bool {
	o, ok := other.(*BytesValue)
	if !ok || b.vr != o.vr || len(b.data) != len(o.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy that owns its bytes.
func (b *BytesValue) Clone() Value {
	return &BytesValue{vr: b.vr, data: append([]byte(nil), b.data...)}
}

// Verify BytesValue implements Value interface at compile time
var _ Value = (*BytesValue)(nil)
