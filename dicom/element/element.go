// Package element provides the DICOM data element structure.
//
// A DICOM Data Element consists of a tag, VR (Value Representation), and
// value. Sequence and fragment-sequence values are defined alongside the
// containers that own them; this package only requires that they satisfy
// the value.Value interface.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
package element

import (
	"fmt"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Element represents a DICOM data element: a (tag, VR, value) triple.
//
// The declared VR is stored alongside the value so that elements read with a
// wire VR differing from the dictionary (e.g. UN for an unresolvable private
// element) re-serialize exactly as read.
type Element struct {
	tag   tag.Tag
	vr    vr.VR
	value value.Value
}

// New creates a new DICOM data element.
// The value must be non-nil and its VR must match the declared VR.
func New(t tag.Tag, v vr.VR, val value.Value) (*Element, error) {
	if val == nil {
		return nil, fmt.Errorf("value cannot be nil")
	}
	if val.VR() != v {
		return nil, fmt.Errorf("value VR %s does not match element VR %s", val.VR(), v)
	}
	return &Element{tag: t, vr: v, value: val}, nil
}

// MustNew is like New but panics on error. Intended for tests and literals
// built from well-known constants.
func MustNew(t tag.Tag, v vr.VR, val value.Value) *Element {
	e, err := New(t, v, val)
	if err != nil {
		panic(err)
	}
	return e
}

// Tag returns the DICOM tag of this element.
func (e *Element) Tag() tag.Tag {
	return e.tag
}

// VR returns the declared Value Representation of this element.
func (e *Element) VR() vr.VR {
	return e.vr
}

// Value returns the value of this element.
func (e *Element) Value() value.Value {
	return e.value
}

// SetValue updates the value of this element.
// The new value must be non-nil and carry the same VR as the element.
func (e *Element) SetValue(val value.Value) error {
	if val == nil {
		return fmt.Errorf("value cannot be nil")
	}
	if val.VR() != e.vr {
		return fmt.Errorf("value VR %s does not match element VR %s", val.VR(), e.vr)
	}
	e.value = val
	return nil
}

// Name returns the human-readable name of this element from the DICOM
// dictionary, or "" if the tag is not found (e.g. unresolved private tags).
func (e *Element) Name() string {
	info, err := tag.Find(e.tag)
	if err != nil {
		return ""
	}
	return info.Name
}

// Keyword returns the keyword identifier of this element from the DICOM
// dictionary, or "" if the tag is not found.
func (e *Element) Keyword() string {
	info, err := tag.Find(e.tag)
	if err != nil {
		return ""
	}
	return info.Keyword
}

// String returns a human-readable representation in the form
// "(GGGG,EEEE) VR [Name] = value". The name is omitted for unknown tags and
// long values are truncated.
func (e *Element) String() string {
	var sb strings.Builder

	sb.WriteString(e.tag.String())
	sb.WriteString(" ")
	sb.WriteString(e.vr.String())
	sb.WriteString(" ")

	if name := e.Name(); name != "" {
		sb.WriteString("[")
		sb.WriteString(name)
		sb.WriteString("] ")
	}

	sb.WriteString("= ")
	valueStr := e.value.String()
	const maxValueLen = 80
	if len(valueStr) > maxValueLen {
		valueStr = valueStr[:maxValueLen] + "..."
	}
	sb.WriteString(valueStr)

	return sb.String()
}

// Equals returns true if this element has the same tag, VR, and value as the
// other element.
func (e *Element) Equals(other *Element) bool {
	if other == nil {
		return false
	}
	return e.tag.Equals(other.tag) && e.vr == other.vr && e.value.Equals(other.value)
}
