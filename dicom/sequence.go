package dicom

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Sequence is the value of an SQ element: an ordered list of item datasets.
//
// Each item is an independent DataSet owned by the sequence; private-creator
// bindings do not cross item boundaries. The sequence records whether it was
// read with undefined length so the writer reproduces the same length form.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Sequence struct {
	items           []*DataSet
	undefinedLength bool
}

// NewSequence creates a sequence owning the given item datasets.
// Sequences are written with undefined length by default.
func NewSequence(items ...*DataSet) *Sequence {
	return &Sequence{items: items, undefinedLength: true}
}

// VR returns vr.SequenceOfItems.
func (s *Sequence) VR() vr.VR {
	return vr.SequenceOfItems
}

// Items returns the item datasets in insertion order.
func (s *Sequence) Items() []*DataSet {
	return s.items
}

// Append adds an item dataset to the end of the sequence.
func (s *Sequence) Append(item *DataSet) {
	s.items = append(s.items, item)
}

// UndefinedLength reports whether this sequence serializes with undefined
// length (delimited items) rather than a precomputed byte count.
func (s *Sequence) UndefinedLength() bool {
	return s.undefinedLength
}

// SetUndefinedLength selects the length form used when serializing.
func (s *Sequence) SetUndefinedLength(undefined bool) {
	s.undefinedLength = undefined
}

// Multiplicity returns the number of items.
func (s *Sequence) Multiplicity() int {
	return len(s.items)
}

// Bytes returns nil: a sequence has no flat byte representation. The encoder
// serializes items recursively.
func (s *Sequence) Bytes() []byte {
	return nil
}

// String returns a short summary of the sequence.
func (s *Sequence) String() string {
	if len(s.items) == 1 {
		return "Sequence with 1 item"
	}
	return fmt.Sprintf("Sequence with %d items", len(s.items))
}

// Equals returns true if the other value is a Sequence with pairwise-equal
// items.
func (s *Sequence) Equals(other value.Value) bool {
	o, ok := other.(*Sequence)
	if !ok || len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if !s.items[i].Equals(o.items[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the sequence and every item dataset.
func (s *Sequence) Clone() value.Value {
	items := make([]*DataSet, len(s.items))
	for i, item := range s.items {
		items[i] = item.DeepCopy()
	}
	return &Sequence{items: items, undefinedLength: s.undefinedLength}
}

// Verify Sequence implements value.Value at compile time
var _ value.Value = (*Sequence)(nil)
