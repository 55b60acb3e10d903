// Package pixel provides encapsulated pixel data handling: the fragment
// sequence value, the codec interface and registry, and the reference RLE
// codec.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
package pixel

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// FragmentSequence is the value of an encapsulated (7FE0,0010) element: an
// optional Basic Offset Table followed by zero or more byte fragments.
//
// It is structurally distinct from an SQ sequence despite sharing the
// undefined-length item framing on the wire; the parser classifies it by tag
// and the active transfer syntax.
type FragmentSequence struct {
	// offsets is the Basic Offset Table: byte offsets of each frame's first
	// fragment, relative to the first byte after the table item.
	offsets []uint32
	// hasBOT distinguishes an empty table item from an absent one.
	hasBOT    bool
	fragments [][]byte
}

// NewFragmentSequence creates a fragment sequence with an empty Basic Offset
// Table item and the given fragments.
func NewFragmentSequence(fragments ...[]byte) *FragmentSequence {
	return &FragmentSequence{hasBOT: true, fragments: fragments}
}

// NewFragmentSequenceWithOffsets creates a fragment sequence whose Basic
// Offset Table carries the given frame offsets.
func NewFragmentSequenceWithOffsets(offsets []uint32, fragments [][]byte) *FragmentSequence {
	return &FragmentSequence{offsets: offsets, hasBOT: true, fragments: fragments}
}

// VR returns vr.OtherByte: encapsulated pixel data is declared OB on the wire.
func (fs *FragmentSequence) VR() vr.VR {
	return vr.OtherByte
}

// Fragments returns the data fragments, excluding the Basic Offset Table.
func (fs *FragmentSequence) Fragments() [][]byte {
	return fs.fragments
}

// Fragment returns the fragment at the given index.
func (fs *FragmentSequence) Fragment(i int) ([]byte, error) {
	if i < 0 || i >= len(fs.fragments) {
		return nil, fmt.Errorf("fragment index %d out of range (have %d)", i, len(fs.fragments))
	}
	return fs.fragments[i], nil
}

// AppendFragment adds a data fragment to the sequence.
func (fs *FragmentSequence) AppendFragment(data []byte) {
	fs.fragments = append(fs.fragments, data)
}

// OffsetTable returns the Basic Offset Table frame offsets, which may be
// empty.
func (fs *FragmentSequence) OffsetTable() []uint32 {
	return fs.offsets
}

// NumFrames returns the number of frames: the offset-table length when
// populated, else the fragment count (one fragment per frame).
func (fs *FragmentSequence) NumFrames() int {
	if len(fs.offsets) > 0 {
		return len(fs.offsets)
	}
	return len(fs.fragments)
}

// FrameFragments returns the fragments composing the given frame.
//
// With an empty offset table each fragment is one complete frame. With a
// populated table, fragment start offsets (8-byte item headers included, per
// the standard's offset definition) are matched against the frame's offset
// range.
func (fs *FragmentSequence) FrameFragments(frame int) ([][]byte, error) {
	if len(fs.offsets) == 0 {
		if frame < 0 || frame >= len(fs.fragments) {
			return nil, fmt.Errorf("frame index %d out of range (have %d fragments)", frame, len(fs.fragments))
		}
		return fs.fragments[frame : frame+1], nil
	}

	if frame < 0 || frame >= len(fs.offsets) {
		return nil, fmt.Errorf("frame index %d out of range (have %d frames)", frame, len(fs.offsets))
	}

	// Reconstruct each fragment's start offset as the standard defines it:
	// from the first byte following the offset table item, each fragment
	// contributing an 8-byte item header plus its data.
	start := fs.offsets[frame]
	end := uint32(0)
	hasEnd := frame+1 < len(fs.offsets)
	if hasEnd {
		end = fs.offsets[frame+1]
	}

	var result [][]byte
	offset := uint32(0)
	for _, frag := range fs.fragments {
		if offset >= start && (!hasEnd || offset < end) {
			result = append(result, frag)
		}
		offset += 8 + uint32(len(frag))
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no fragments found for frame %d", frame)
	}
	return result, nil
}

// FrameData concatenates the fragments of the given frame into one buffer.
func (fs *FragmentSequence) FrameData(frame int) ([]byte, error) {
	frags, err := fs.FrameFragments(frame)
	if err != nil {
		return nil, err
	}
	if len(frags) == 1 {
		return frags[0], nil
	}
	total := 0
	for _, f := range frags {
		total += len(f)
	}
	data := make([]byte, 0, total)
	for _, f := range frags {
		data = append(data, f...)
	}
	return data, nil
}

// Multiplicity returns the number of data fragments.
func (fs *FragmentSequence) Multiplicity() int {
	return len(fs.fragments)
}

// Bytes returns nil: fragment framing is the encoder's job.
func (fs *FragmentSequence) Bytes() []byte {
	return nil
}

// String returns a short summary of the fragment sequence.
func (fs *FragmentSequence) String() string {
	total := 0
	for _, f := range fs.fragments {
		total += len(f)
	}
	return fmt.Sprintf("FragmentSequence with %d fragments (%d bytes, %d frame offsets)",
		len(fs.fragments), total, len(fs.offsets))
}

// Equals returns true if the other value is a FragmentSequence with an
// identical offset table and identical fragments.
func (fs *FragmentSequence) Equals(other value.Value) bool {
	o, ok := other.(*FragmentSequence)
	if !ok || len(fs.offsets) != len(o.offsets) || len(fs.fragments) != len(o.fragments) {
		return false
	}
	for i := range fs.offsets {
		if fs.offsets[i] != o.offsets[i] {
			return false
		}
	}
	for i := range fs.fragments {
		if string(fs.fragments[i]) != string(o.fragments[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy owning all fragment bytes.
func (fs *FragmentSequence) Clone() value.Value {
	copied := &FragmentSequence{
		offsets: append([]uint32(nil), fs.offsets...),
		hasBOT:  fs.hasBOT,
	}
	copied.fragments = make([][]byte, len(fs.fragments))
	for i, f := range fs.fragments {
		copied.fragments[i] = append([]byte(nil), f...)
	}
	return copied
}

// Verify FragmentSequence implements value.Value at compile time
var _ value.Value = (*FragmentSequence)(nil)
