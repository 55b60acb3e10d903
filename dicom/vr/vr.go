// Package vr defines DICOM Value Representations (VRs) and their properties.
//
// Value Representations specify the data type and format of DICOM element values.
// Each VR has specific encoding rules, padding requirements, and length constraints.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package vr

import (
	"fmt"
)

// VR represents a DICOM Value Representation type.
// Each VR defines how element values are encoded and interpreted.
type VR uint8

// Standard DICOM Value Representations as defined in Part 5, Section 6.2.
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
const (
	// ApplicationEntity (AE) - Application Entity title (string, max 16 chars, space-padded)
	ApplicationEntity VR = iota + 1
	// AgeString (AS) - Age in format nnnD, nnnW, nnnM, nnnY (string, fixed 4 chars)
	AgeString
	// AttributeTag (AT) - Tag (4 bytes, group-element pair)
	AttributeTag
	// CodeString (CS) - Code value (string, max 16 chars, space-padded, uppercase)
	CodeString
	// Date (DA) - Date in format YYYYMMDD (string, 8 chars)
	Date
	// DecimalString (DS) - Decimal number as string (string, max 16 chars)
	DecimalString
	// DateTime (DT) - Date and time (string, max 26 chars)
	DateTime
	// FloatingPointDouble (FD) - 64-bit floating point (8 bytes)
	FloatingPointDouble
	// FloatingPointSingle (FL) - 32-bit floating point (4 bytes)
	FloatingPointSingle
	// IntegerString (IS) - Integer as string (string, max 12 chars)
	IntegerString
	// LongString (LO) - Character string (string, max 64 chars)
	LongString
	// LongText (LT) - Text (string, max 10240 chars)
	LongText
	// OtherByte (OB) - Byte string (binary, null-padded)
	OtherByte
	// OtherDouble (OD) - 64-bit floating point array (binary)
	OtherDouble
	// OtherFloat (OF) - 32-bit floating point array (binary)
	OtherFloat
	// OtherLong (OL) - 32-bit integer array (binary)
	OtherLong
	// OtherVeryLong (OV) - 64-bit integer array (binary)
	OtherVeryLong
	// OtherWord (OW) - 16-bit integer array (binary)
	OtherWord
	// PersonName (PN) - Person's name in component-group form (string, max 324 chars)
	PersonName
	// ShortString (SH) - Short character string (string, max 16 chars)
	ShortString
	// SignedLong (SL) - Signed 32-bit integer (4 bytes)
	SignedLong
	// SequenceOfItems (SQ) - Sequence containing nested datasets
	SequenceOfItems
	// SignedShort (SS) - Signed 16-bit integer (2 bytes)
	SignedShort
	// ShortText (ST) - Short text (string, max 1024 chars)
	ShortText
	// SignedVeryLong (SV) - Signed 64-bit integer (8 bytes)
	SignedVeryLong
	// Time (TM) - Time in format HHMMSS.FFFFFF (string, max 14 chars)
	Time
	// UnlimitedCharacters (UC) - Unlimited length character string
	UnlimitedCharacters
	// UniqueIdentifier (UI) - UID in dotted notation (string, max 64 chars, null-padded)
	UniqueIdentifier
	// UnsignedLong (UL) - Unsigned 32-bit integer (4 bytes)
	UnsignedLong
	// Unknown (UN) - Unknown value type (binary, null-padded)
	Unknown
	// UniversalResourceIdentifier (UR) - URI or URL (string, unlimited)
	UniversalResourceIdentifier
	// UnsignedShort (US) - Unsigned 16-bit integer (2 bytes)
	UnsignedShort
	// UnlimitedText (UT) - Unlimited length text (string)
	UnlimitedText
	// UnsignedVeryLong (UV) - Unsigned 64-bit integer (8 bytes)
	UnsignedVeryLong
)

// Kind partitions VRs into the four structural families the element model
// dispatches on.
type Kind uint8

const (
	// KindString covers the text VRs (AE AS CS DA DS DT IS LO LT PN SH ST TM UC UI UR UT).
	KindString Kind = iota + 1
	// KindNumeric covers the fixed-width binary numeric VRs (FL FD SL SS SV UL US UV AT).
	KindNumeric
	// KindBinary covers the opaque byte VRs (OB OD OF OL OV OW UN).
	KindBinary
	// KindSequence covers SQ.
	KindSequence
)

// properties holds the per-VR metadata that drives encoding, padding and
// validation. One row per standard VR.
type properties struct {
	code string
	kind Kind
	// padding is the byte appended to make odd-length values even on the wire.
	padding byte
	// maxLength is the maximum value length in bytes; 0 means unlimited.
	maxLength int
	// longLength is true for VRs that use the reserved-2-bytes-then-uint32
	// length form in explicit VR encoding.
	longLength bool
	// multiValue is true when backslash (0x5C) acts as a value separator.
	// For LT, ST, UT and UR the backslash is ordinary text.
	multiValue bool
	// elementSize is the fixed width in bytes of one value for numeric VRs;
	// 0 for everything else.
	elementSize int
}

var vrProperties = map[VR]properties{
	ApplicationEntity:           {code: "AE", kind: KindString, padding: ' ', maxLength: 16, multiValue: true},
	AgeString:                   {code: "AS", kind: KindString, padding: ' ', maxLength: 4, multiValue: true},
	AttributeTag:                {code: "AT", kind: KindNumeric, padding: 0x00, elementSize: 4},
	CodeString:                  {code: "CS", kind: KindString, padding: ' ', maxLength: 16, multiValue: true},
	Date:                        {code: "DA", kind: KindString, padding: ' ', maxLength: 8, multiValue: true},
	DecimalString:               {code: "DS", kind: KindString, padding: ' ', maxLength: 16, multiValue: true},
	DateTime:                    {code: "DT", kind: KindString, padding: ' ', maxLength: 26, multiValue: true},
	FloatingPointDouble:         {code: "FD", kind: KindNumeric, padding: 0x00, elementSize: 8},
	FloatingPointSingle:         {code: "FL", kind: KindNumeric, padding: 0x00, elementSize: 4},
	IntegerString:               {code: "IS", kind: KindString, padding: ' ', maxLength: 12, multiValue: true},
	LongString:                  {code: "LO", kind: KindString, padding: ' ', maxLength: 64, multiValue: true},
	LongText:                    {code: "LT", kind: KindString, padding: ' ', maxLength: 10240},
	OtherByte:                   {code: "OB", kind: KindBinary, padding: 0x00, longLength: true},
	OtherDouble:                 {code: "OD", kind: KindBinary, padding: 0x00, longLength: true},
	OtherFloat:                  {code: "OF", kind: KindBinary, padding: 0x00, longLength: true},
	OtherLong:                   {code: "OL", kind: KindBinary, padding: 0x00, longLength: true},
	OtherVeryLong:               {code: "OV", kind: KindBinary, padding: 0x00, longLength: true},
	OtherWord:                   {code: "OW", kind: KindBinary, padding: 0x00, longLength: true},
	PersonName:                  {code: "PN", kind: KindString, padding: ' ', maxLength: 324, multiValue: true},
	ShortString:                 {code: "SH", kind: KindString, padding: ' ', maxLength: 16, multiValue: true},
	SignedLong:                  {code: "SL", kind: KindNumeric, padding: 0x00, elementSize: 4},
	SequenceOfItems:             {code: "SQ", kind: KindSequence, padding: 0x00, longLength: true},
	SignedShort:                 {code: "SS", kind: KindNumeric, padding: 0x00, elementSize: 2},
	ShortText:                   {code: "ST", kind: KindString, padding: ' ', maxLength: 1024},
	SignedVeryLong:              {code: "SV", kind: KindNumeric, padding: 0x00, longLength: true, elementSize: 8},
	Time:                        {code: "TM", kind: KindString, padding: ' ', maxLength: 14, multiValue: true},
	UnlimitedCharacters:         {code: "UC", kind: KindString, padding: ' ', longLength: true, multiValue: true},
	UniqueIdentifier:            {code: "UI", kind: KindString, padding: 0x00, maxLength: 64, multiValue: true},
	UnsignedLong:                {code: "UL", kind: KindNumeric, padding: 0x00, elementSize: 4},
	Unknown:                     {code: "UN", kind: KindBinary, padding: 0x00, longLength: true},
	UniversalResourceIdentifier: {code: "UR", kind: KindString, padding: ' ', longLength: true},
	UnsignedShort:               {code: "US", kind: KindNumeric, padding: 0x00, elementSize: 2},
	UnlimitedText:               {code: "UT", kind: KindString, padding: ' ', longLength: true},
	UnsignedVeryLong:            {code: "UV", kind: KindNumeric, padding: 0x00, longLength: true, elementSize: 8},
}

// stringToVR is the reverse index of vrProperties, built at init.
var stringToVR = func() map[string]VR {
	m := make(map[string]VR, len(vrProperties))
	for v, p := range vrProperties {
		m[p.code] = v
	}
	return m
}()

// String returns the two-character string representation of the VR.
func (v VR) String() string {
	if p, ok := vrProperties[v]; ok {
		return p.code
	}
	return "UN"
}

// IsValid returns true if the given string is a valid VR identifier.
func IsValid(s string) bool {
	_, ok := stringToVR[s]
	return ok
}

// Parse parses a two-character VR string and returns the corresponding VR constant.
func Parse(s string) (VR, error) {
	if v, ok := stringToVR[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("invalid VR: %q", s)
}

// Kind returns the structural family of the VR.
func (v VR) Kind() Kind {
	if p, ok := vrProperties[v]; ok {
		return p.kind
	}
	return KindBinary
}

// UsesExplicitLength32 returns true if this VR requires the
// reserved-2-bytes-then-uint32 length form in explicit VR encoding, as
// opposed to the standard 16-bit length.
//
// See DICOM Part 5, Section 7.1.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (v VR) UsesExplicitLength32() bool {
	return vrProperties[v].longLength
}

// PaddingByte returns the byte used for padding odd-length values for this VR.
// Most string VRs pad with space (0x20); UI and the binary VRs pad with null.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func (v VR) PaddingByte() byte {
	if p, ok := vrProperties[v]; ok {
		return p.padding
	}
	return 0x00
}

// MaxLength returns the maximum allowed length in bytes for this VR.
// Returns 0 for VRs with unlimited length.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func (v VR) MaxLength() int {
	return vrProperties[v].maxLength
}

// AllowsMultiValue returns true if backslash (0x5C) is a value separator for
// this VR, permitting multi-valued elements. For the text VRs LT, ST, UT and
// UR the backslash is part of the character repertoire, so values never split.
//
// See DICOM Part 5, Section 6.4:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.4
func (v VR) AllowsMultiValue() bool {
	return vrProperties[v].multiValue
}

// ElementSize returns the fixed width in bytes of a single value for numeric
// VRs (SS/US = 2, SL/UL/FL/AT = 4, SV/UV/FD = 8). Returns 0 for non-numeric VRs;
// their value length is not constrained to a fixed multiple.
func (v VR) ElementSize() int {
	return vrProperties[v].elementSize
}

// IsStringType returns true if this VR represents character string data.
func (v VR) IsStringType() bool {
	return v.Kind() == KindString
}

// IsBinaryType returns true if this VR represents opaque binary data.
func (v VR) IsBinaryType() bool {
	return v.Kind() == KindBinary
}

// IsNumericType returns true if this VR represents fixed-width numeric data.
func (v VR) IsNumericType() bool {
	return v.Kind() == KindNumeric
}
