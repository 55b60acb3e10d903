package dicom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/element"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// DataSet is an ordered mapping from Tag to Element with O(1) lookup and
// deterministic ascending-tag iteration.
//
// The sort index is maintained lazily: mutation invalidates it and the next
// iteration rebuilds it. A DataSet also owns a PrivateCreatorTable recording
// the creator string bound to each private block present in the set.
//
// A DataSet is not safe for concurrent mutation. Reads are safe given no
// concurrent writer.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type DataSet struct {
	elements map[tag.Tag]*element.Element
	creators *PrivateCreatorTable

	// sorted caches the ascending-tag iteration order; nil when stale.
	sorted []tag.Tag
}

// NewDataSet creates a new empty DICOM dataset.
func NewDataSet() *DataSet {
	return &DataSet{
		elements: make(map[tag.Tag]*element.Element),
		creators: NewPrivateCreatorTable(),
	}
}

// Insert adds or replaces an element in the dataset.
//
// Inserting a private creator element (gggg,00ss) also binds its creator
// string in the PrivateCreatorTable; binding a slot already claimed by a
// different creator fails with ErrDuplicateCreatorSlot and leaves the
// dataset unchanged.
func (ds *DataSet) Insert(elem *element.Element) error {
	if elem == nil {
		return fmt.Errorf("cannot insert nil element")
	}

	if elem.Tag().IsPrivateCreator() {
		if sv, ok := elem.Value().(*value.StringValue); ok {
			if err := ds.creators.Register(elem.Tag(), string(sv.Bytes())); err != nil {
				return err
			}
		}
	}

	if _, exists := ds.elements[elem.Tag()]; !exists {
		ds.sorted = nil
	}
	ds.elements[elem.Tag()] = elem
	return nil
}

// Add is an alias for Insert.
func (ds *DataSet) Add(elem *element.Element) error {
	return ds.Insert(elem)
}

// Replace substitutes the element at the given tag.
// Returns ErrNotFound when the tag is not present.
func (ds *DataSet) Replace(t tag.Tag, elem *element.Element) error {
	if elem == nil {
		return fmt.Errorf("cannot insert nil element")
	}
	if !elem.Tag().Equals(t) {
		return fmt.Errorf("element tag %s does not match %s", elem.Tag(), t)
	}
	if _, exists := ds.elements[t]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, t)
	}
	ds.elements[t] = elem
	return nil
}

// Remove removes an element from the dataset by its tag.
// Returns ErrNotFound when the tag is not present.
func (ds *DataSet) Remove(t tag.Tag) error {
	if _, exists := ds.elements[t]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, t)
	}
	delete(ds.elements, t)
	ds.sorted = nil
	return nil
}

// Get retrieves an element by its DICOM tag.
// Returns ErrNotFound when the tag is not present.
func (ds *DataSet) Get(t tag.Tag) (*element.Element, error) {
	elem, exists := ds.elements[t]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, t)
	}
	return elem, nil
}

// GetByKeyword retrieves an element by its DICOM dictionary keyword, e.g.
// "PatientName".
func (ds *DataSet) GetByKeyword(keyword string) (*element.Element, error) {
	info, err := tag.FindByKeyword(keyword)
	if err != nil {
		return nil, fmt.Errorf("unknown keyword %q: %w", keyword, err)
	}
	return ds.Get(info.Tag)
}

// Contains checks if an element with the given tag exists in the dataset.
func (ds *DataSet) Contains(t tag.Tag) bool {
	_, exists := ds.elements[t]
	return exists
}

// Len returns the number of elements in the dataset.
func (ds *DataSet) Len() int {
	return len(ds.elements)
}

// Tags returns all tags in strictly ascending order. The slice is owned by
// the dataset's lazy sort index; callers must not modify it.
func (ds *DataSet) Tags() []tag.Tag {
	if ds.sorted == nil {
		ds.sorted = make([]tag.Tag, 0, len(ds.elements))
		for t := range ds.elements {
			ds.sorted = append(ds.sorted, t)
		}
		sort.Slice(ds.sorted, func(i, j int) bool {
			return ds.sorted[i].Compare(ds.sorted[j]) < 0
		})
	}
	return ds.sorted
}

// Elements returns all elements in ascending tag order.
func (ds *DataSet) Elements() []*element.Element {
	tags := ds.Tags()
	elements := make([]*element.Element, len(tags))
	for i, t := range tags {
		elements[i] = ds.elements[t]
	}
	return elements
}

// PrivateCreators returns the dataset's private creator table.
func (ds *DataSet) PrivateCreators() *PrivateCreatorTable {
	return ds.creators
}

// IsOrphan reports whether the given private data element has no matching
// creator binding in this dataset.
func (ds *DataSet) IsOrphan(t tag.Tag) bool {
	if !t.IsPrivateData() {
		return false
	}
	_, bound := ds.creators.Lookup(t)
	return !bound
}

// GetString returns the first logical string value of the element at t.
// Fails with ErrNotFound or ErrWrongVR.
func (ds *DataSet) GetString(t tag.Tag) (string, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return "", err
	}
	sv, ok := elem.Value().(*value.StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
	return sv.First(), nil
}

// GetStrings returns all logical string values of the element at t.
func (ds *DataSet) GetStrings(t tag.Tag) ([]string, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, err
	}
	sv, ok := elem.Value().(*value.StringValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
	return sv.Strings(), nil
}

// GetInt returns the first integer value of the element at t. Numeric
// elements return their first value directly; IS elements parse their text.
// Fails with ErrNotFound, ErrWrongVR or ErrValueParse.
func (ds *DataSet) GetInt(t tag.Tag) (int64, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return 0, err
	}
	switch v := elem.Value().(type) {
	case *value.IntValue:
		if v.Multiplicity() == 0 {
			return 0, fmt.Errorf("%w: %s is empty", ErrValueParse, t)
		}
		return v.First(), nil
	case *value.StringValue:
		if elem.VR() != vr.IntegerString {
			return 0, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v.First()), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrValueParse, t, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
}

// GetFloat returns the first floating-point value of the element at t.
// FL/FD elements return their first value; DS elements parse their text.
func (ds *DataSet) GetFloat(t tag.Tag) (float64, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return 0, err
	}
	switch v := elem.Value().(type) {
	case *value.FloatValue:
		if v.Multiplicity() == 0 {
			return 0, fmt.Errorf("%w: %s is empty", ErrValueParse, t)
		}
		return v.First(), nil
	case *value.StringValue:
		if elem.VR() != vr.DecimalString {
			return 0, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v.First()), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrValueParse, t, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
}

// GetTag returns the first attribute-tag value of an AT element.
func (ds *DataSet) GetTag(t tag.Tag) (tag.Tag, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return tag.Tag{}, err
	}
	iv, ok := elem.Value().(*value.IntValue)
	if !ok || elem.VR() != vr.AttributeTag {
		return tag.Tag{}, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
	if iv.Multiplicity() == 0 {
		return tag.Tag{}, fmt.Errorf("%w: %s is empty", ErrValueParse, t)
	}
	return tag.FromUint32(uint32(iv.First())), nil
}

// GetSequence returns the Sequence value of an SQ element.
func (ds *DataSet) GetSequence(t tag.Tag) (*Sequence, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, err
	}
	seq, ok := elem.Value().(*Sequence)
	if !ok {
		return nil, fmt.Errorf("%w: %s has VR %s", ErrWrongVR, t, elem.VR())
	}
	return seq, nil
}

// DeepCopy produces an independent dataset whose elements own their bytes,
// with no slices borrowed from any input buffer. Sequence items are copied
// recursively; the private creator table is cloned.
func (ds *DataSet) DeepCopy() *DataSet {
	copied := NewDataSet()
	copied.creators = ds.creators.clone()
	for t, elem := range ds.elements {
		cloned, err := element.New(elem.Tag(), elem.VR(), elem.Value().Clone())
		if err != nil {
			// Value VRs never change after construction, so this cannot fail.
			panic(fmt.Sprintf("deep copy of %s: %v", t, err))
		}
		copied.elements[t] = cloned
	}
	return copied
}

// Equals returns true if both datasets contain pairwise-equal elements.
func (ds *DataSet) Equals(other *DataSet) bool {
	if other == nil || len(ds.elements) != len(other.elements) {
		return false
	}
	for t, elem := range ds.elements {
		otherElem, ok := other.elements[t]
		if !ok || !elem.Equals(otherElem) {
			return false
		}
	}
	return true
}

// CompactPrivateGroup renumbers the creator slots of the given private group
// to be contiguous from 0x10, rewriting every creator element and data
// element tag that references them.
func (ds *DataSet) CompactPrivateGroup(group uint16) error {
	if group%2 == 0 {
		return fmt.Errorf("group %04X is not private", group)
	}

	oldSlots := ds.creators.slots(group)
	if len(oldSlots) == 0 {
		return nil
	}

	remap := make(map[uint8]uint8, len(oldSlots))
	for i, old := range oldSlots {
		remap[old] = uint8(0x10 + i)
	}

	rebound := NewPrivateCreatorTable()
	for key, binding := range ds.creators.bindings {
		if key.group == group {
			key.slot = remap[key.slot]
		}
		rebound.bindings[key] = binding
	}

	relocated := make(map[tag.Tag]*element.Element, len(ds.elements))
	for t, elem := range ds.elements {
		newTag := t
		switch {
		case t.Group == group && t.IsPrivateCreator():
			newTag = tag.New(group, uint16(remap[t.Slot()]))
		case t.Group == group && t.IsPrivateData():
			if newSlot, ok := remap[t.Slot()]; ok {
				newTag = tag.New(group, uint16(newSlot)<<8|uint16(t.Offset()))
			}
		}
		if !newTag.Equals(t) {
			moved, err := element.New(newTag, elem.VR(), elem.Value())
			if err != nil {
				return fmt.Errorf("compact group %04X: %w", group, err)
			}
			elem = moved
		}
		relocated[newTag] = elem
	}

	ds.elements = relocated
	ds.creators = rebound
	ds.sorted = nil
	return nil
}

// String returns a human-readable listing of the dataset in tag order.
func (ds *DataSet) String() string {
	var sb strings.Builder

	switch count := ds.Len(); count {
	case 0:
		return "DataSet with 0 elements"
	case 1:
		sb.WriteString("DataSet with 1 element:\n")
	default:
		fmt.Fprintf(&sb, "DataSet with %d elements:\n", count)
	}

	for _, elem := range ds.Elements() {
		sb.WriteString("  ")
		sb.WriteString(elem.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// FileMetaInformation returns a new DataSet containing only the group 0x0002
// elements, or nil when none are present.
func (ds *DataSet) FileMetaInformation() *DataSet {
	fileMeta := NewDataSet()
	for t, elem := range ds.elements {
		if t.IsMetaElement() {
			fileMeta.elements[t] = elem
		}
	}
	if fileMeta.Len() == 0 {
		return nil
	}
	return fileMeta
}
