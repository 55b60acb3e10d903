package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// FloatValue represents floating-point DICOM values.
// Supports VRs: FL, FD.
//
// DICOM fully supports IEEE 754 special values (NaN, +Inf, -Inf) as these may
// be meaningful for representing computational results. FL (float32) values
// may lose precision when converted from float64.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type FloatValue struct {
	vr     vr.VR
	values []float64
}

// isFloatVR returns true if the VR is a floating-point type.
func isFloatVR(v vr.VR) bool {
	return v == vr.FloatingPointSingle || v == vr.FloatingPointDouble
}

// NewFloatValue creates a new FloatValue with the specified VR and values.
// Returns an error if the VR is not a float type.
func NewFloatValue(v vr.VR, values []float64) (*FloatValue, error) {
	if !isFloatVR(v) {
		return nil, fmt.Errorf("VR %s is not a floating-point type", v)
	}
	return &FloatValue{vr: v, values: values}, nil
}

// DecodeFloatValue decodes raw wire bytes into a FloatValue using the given
// byte order. The length must be a multiple of the VR's element size.
func DecodeFloatValue(v vr.VR, data []byte, order binary.ByteOrder) (*FloatValue, error) {
	if !isFloatVR(v) {
		return nil, fmt.Errorf("VR %s is not a floating-point type", v)
	}
	size := v.ElementSize()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("invalid length %d for VR %s (not a multiple of %d)", len(data), v, size)
	}

	values := make([]float64, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		if v == vr.FloatingPointSingle {
			values = append(values, float64(math.Float32frombits(order.Uint32(data[off:]))))
		} else {
			values = append(values, math.Float64frombits(order.Uint64(data[off:])))
		}
	}
	return &FloatValue{vr: v, values: values}, nil
}

// VR returns the Value Representation of this float value.
func (f *FloatValue) VR() vr.VR {
	return f.vr
}

// Floats returns the float values as a slice.
func (f *FloatValue) Floats() []float64 {
	return f.values
}

// First returns the first value, or 0 when the value is empty.
func (f *FloatValue) First() float64 {
	if len(f.values) == 0 {
		return 0
	}
	return f.values[0]
}

// Multiplicity returns the number of values.
func (f *FloatValue) Multiplicity() int {
	return len(f.values)
}

// String returns the values joined with the backslash separator.
// Special values format as NaN, +Inf, -Inf.
func (f *FloatValue) String() string {
	parts := make([]string, len(f.values))
	for i, val := range f.values {
		parts[i] = formatFloat(val)
	}
	return strings.Join(parts, "\\")
}

func formatFloat(val float64) string {
	switch {
	case math.IsNaN(val):
		return "NaN"
	case math.IsInf(val, 1):
		return "+Inf"
	case math.IsInf(val, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
}

// Bytes returns the little-endian IEEE 754 wire encoding of the values.
func (f *FloatValue) Bytes() []byte {
	return f.EncodeBytes(binary.LittleEndian)
}

// EncodeBytes returns the IEEE 754 wire encoding in the given byte order.
//   - FL: 4 bytes per value (binary32)
//   - FD: 8 bytes per value (binary64)
func (f *FloatValue) EncodeBytes(order binary.ByteOrder) []byte {
	size := f.vr.ElementSize()
	result := make([]byte, len(f.values)*size)
	off := 0
	for _, val := range f.values {
		if f.vr == vr.FloatingPointSingle {
			order.PutUint32(result[off:], math.Float32bits(float32(val)))
		} else {
			order.PutUint64(result[off:], math.Float64bits(val))
		}
		off += size
	}
	return result
}

// Equals returns true if this value equals another value.
//
// Per IEEE 754, NaN != NaN; for DICOM value comparison purposes two NaN
// values are treated as equal so decoded datasets compare meaningfully.
func (f *FloatValue) Equals(other Value) bool {
	o, ok := other.(*FloatValue)
	if !ok || f.vr != o.vr || len(f.values) != len(o.values) {
		return false
	}
	for i := range f.values {
		if math.IsNaN(f.values[i]) && math.IsNaN(o.values[i]) {
			continue
		}
		if f.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the values.
func (f *FloatValue) Clone() Value {
	return &FloatValue{vr: f.vr, values: append([]float64(nil), f.values...)}
}

// Verify FloatValue implements Value interface at compile time
var _ Value = (*FloatValue)(nil)
