package value

import (
	"fmt"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// StringValue represents string-based DICOM values.
// Supports VRs: AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT.
//
// The raw wire bytes are stored verbatim, padding included, so that writing a
// decoded element reproduces the input byte-for-byte. Strings() and First()
// trim the VR's padding byte and split on backslash for multi-valued VRs.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type StringValue struct {
	vr  vr.VR
	raw []byte
}

// NewStringValue creates a StringValue from logical string values. The values
// are joined with the backslash separator and padded to even length with the
// VR's padding byte.
//
// Returns an error if the VR is not a string type, if multiple values are
// supplied for a VR that does not permit the separator, or if a value
// exceeds the VR's maximum length.
func NewStringValue(v vr.VR, values []string) (*StringValue, error) {
	if !v.IsStringType() {
		return nil, fmt.Errorf("VR %s is not a string type", v)
	}
	if len(values) > 1 && !v.AllowsMultiValue() {
		return nil, fmt.Errorf("VR %s does not permit multiple values", v)
	}
	if maxLen := v.MaxLength(); maxLen > 0 {
		for _, val := range values {
			if len(val) > maxLen {
				return nil, fmt.Errorf("value %q exceeds maximum length %d for VR %s", val, maxLen, v)
			}
		}
	}

	raw := []byte(strings.Join(values, "\\"))
	if len(raw)%2 == 1 {
		raw = append(raw, v.PaddingByte())
	}
	return &StringValue{vr: v, raw: raw}, nil
}

// NewStringValueRaw creates a StringValue that adopts the given wire bytes
// verbatim. Used by the parser, which must not rewrite what it read.
func NewStringValueRaw(v vr.VR, raw []byte) (*StringValue, error) {
	if !v.IsStringType() {
		return nil, fmt.Errorf("VR %s is not a string type", v)
	}
	return &StringValue{vr: v, raw: raw}, nil
}

// VR returns the Value Representation of this string value.
func (s *StringValue) VR() vr.VR {
	return s.vr
}

// Bytes returns the raw wire bytes, padding included.
func (s *StringValue) Bytes() []byte {
	return s.raw
}

// trimmed returns the raw bytes with trailing padding stripped: the VR's
// padding byte, spaces and NULs are all removed whatever the VR, which
// tolerates mismatched padding seen in lenient real-world files.
func (s *StringValue) trimmed() string {
	return strings.TrimRight(string(s.raw), string([]byte{s.vr.PaddingByte(), ' ', 0x00}))
}

// Strings returns the logical string values. Multi-valued VRs split on the
// backslash separator; single-value VRs always return at most one element.
func (s *StringValue) Strings() []string {
	str := s.trimmed()
	if str == "" {
		return []string{}
	}
	if !s.vr.AllowsMultiValue() {
		return []string{str}
	}
	return strings.Split(str, "\\")
}

// First returns the first logical value, or "" when the value is empty.
func (s *StringValue) First() string {
	values := s.Strings()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Multiplicity returns the number of logical values.
func (s *StringValue) Multiplicity() int {
	return len(s.Strings())
}

// String returns the logical values joined with the backslash separator.
func (s *StringValue) String() string {
	return strings.Join(s.Strings(), "\\")
}

// Equals returns true if the other value is a StringValue with the same VR
// and identical raw bytes.
func (s *StringValue) Equals(other Value) bool {
	o, ok := other.(*StringValue)
	if !ok || s.vr != o.vr {
		return false
	}
	return string(s.raw) == string(o.raw)
}

// Clone returns an independent copy that owns its raw bytes.
func (s *StringValue) Clone() Value {
	return &StringValue{vr: s.vr, raw: append([]byte(nil), s.raw...)}
}

// Verify StringValue implements Value interface at compile time
var _ Value = (*StringValue)(nil)
