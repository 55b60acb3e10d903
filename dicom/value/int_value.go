package value

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// IntValue represents integer-based DICOM values.
// Supports VRs: SS, US, SL, UL, SV, UV, AT.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type IntValue struct {
	vr     vr.VR
	values []int64
}

// isIntVR returns true if the VR is an integer type.
func isIntVR(v vr.VR) bool {
	switch v {
	case vr.SignedShort, vr.UnsignedShort,
		vr.SignedLong, vr.UnsignedLong,
		vr.SignedVeryLong, vr.UnsignedVeryLong,
		vr.AttributeTag:
		return true
	default:
		return false
	}
}

// validateIntRange checks if a value is within the valid range for its VR.
func validateIntRange(v vr.VR, value int64) error {
	switch v {
	case vr.SignedShort:
		if value < -32768 || value > 32767 {
			return fmt.Errorf("value %d out of range for SS (int16)", value)
		}
	case vr.UnsignedShort:
		if value < 0 || value > 65535 {
			return fmt.Errorf("value %d out of range for US (uint16)", value)
		}
	case vr.SignedLong:
		if value < -2147483648 || value > 2147483647 {
			return fmt.Errorf("value %d out of range for SL (int32)", value)
		}
	case vr.UnsignedLong, vr.AttributeTag:
		if value < 0 || value > 4294967295 {
			return fmt.Errorf("value %d out of range for %s (uint32)", value, v)
		}
	case vr.UnsignedVeryLong:
		if value < 0 {
			return fmt.Errorf("value %d out of range for UV (uint64): must be non-negative", value)
		}
	}
	return nil
}

// NewIntValue creates a new IntValue with the specified VR and values.
// Returns an error if the VR is not an integer type or a value is out of range.
func NewIntValue(v vr.VR, values []int64) (*IntValue, error) {
	if !isIntVR(v) {
		return nil, fmt.Errorf("VR %s is not an integer type", v)
	}
	for _, val := range values {
		if err := validateIntRange(v, val); err != nil {
			return nil, err
		}
	}
	return &IntValue{vr: v, values: values}, nil
}

// DecodeIntValue decodes raw wire bytes into an IntValue using the given byte
// order. The length must be a multiple of the VR's element size.
func DecodeIntValue(v vr.VR, data []byte, order binary.ByteOrder) (*IntValue, error) {
	if !isIntVR(v) {
		return nil, fmt.Errorf("VR %s is not an integer type", v)
	}
	size := v.ElementSize()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("invalid length %d for VR %s (not a multiple of %d)", len(data), v, size)
	}

	values := make([]int64, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		var val int64
		switch v {
		case vr.SignedShort:
			val = int64(int16(order.Uint16(data[off:])))
		case vr.UnsignedShort:
			val = int64(order.Uint16(data[off:]))
		case vr.SignedLong:
			val = int64(int32(order.Uint32(data[off:])))
		case vr.UnsignedLong:
			val = int64(order.Uint32(data[off:]))
		case vr.AttributeTag:
			// AT is two consecutive uint16s (group then element), each in
			// the active byte order.
			group := order.Uint16(data[off:])
			elem := order.Uint16(data[off+2:])
			val = int64(uint32(group)<<16 | uint32(elem))
		case vr.SignedVeryLong, vr.UnsignedVeryLong:
			val = int64(order.Uint64(data[off:]))
		}
		values = append(values, val)
	}
	return &IntValue{vr: v, values: values}, nil
}

// VR returns the Value Representation of this integer value.
func (i *IntValue) VR() vr.VR {
	return i.vr
}

// Ints returns the integer values as a slice.
func (i *IntValue) Ints() []int64 {
	return i.values
}

// First returns the first value, or 0 when the value is empty.
func (i *IntValue) First() int64 {
	if len(i.values) == 0 {
		return 0
	}
	return i.values[0]
}

// Multiplicity returns the number of values.
func (i *IntValue) Multiplicity() int {
	return len(i.values)
}

// String returns the values joined with the backslash separator.
func (i *IntValue) String() string {
	parts := make([]string, len(i.values))
	for idx, val := range i.values {
		parts[idx] = fmt.Sprintf("%d", val)
	}
	return strings.Join(parts, "\\")
}

// Bytes returns the little-endian wire encoding of the values.
func (i *IntValue) Bytes() []byte {
	return i.EncodeBytes(binary.LittleEndian)
}

// EncodeBytes returns the wire encoding of the values in the given byte order.
//   - SS/US: 2 bytes per value
//   - SL/UL/AT: 4 bytes per value
//   - SV/UV: 8 bytes per value
func (i *IntValue) EncodeBytes(order binary.ByteOrder) []byte {
	size := i.vr.ElementSize()
	result := make([]byte, len(i.values)*size)
	off := 0
	for _, val := range i.values {
		switch i.vr {
		case vr.SignedShort, vr.UnsignedShort:
			order.PutUint16(result[off:], uint16(val))
		case vr.SignedLong, vr.UnsignedLong:
			order.PutUint32(result[off:], uint32(val))
		case vr.AttributeTag:
			order.PutUint16(result[off:], uint16(uint32(val)>>16))
			order.PutUint16(result[off+2:], uint16(uint32(val)&0xFFFF))
		case vr.SignedVeryLong, vr.UnsignedVeryLong:
			order.PutUint64(result[off:], uint64(val))
		}
		off += size
	}
	return result
}

// Equals returns true if this value equals another value.
func (i *IntValue) Equals(other Value) bool {
	o, ok := other.(*IntValue)
	if !ok || i.vr != o.vr || len(i.values) != len(o.values) {
		return false
	}
	for idx := range i.values {
		if i.values[idx] != o.values[idx] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the values.
func (i *IntValue) Clone() Value {
	return &IntValue{vr: i.vr, values: append([]int64(nil), i.values...)}
}

// Verify IntValue implements Value interface at compile time
var _ Value = (*IntValue)(nil)
