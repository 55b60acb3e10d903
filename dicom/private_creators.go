package dicom

import (
	"fmt"
	"sort"

	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// PrivateCreatorTable records, per (group, slot), the private creator string
// bound by the creator element at (gggg,00ss). The relation between creator
// and data elements is modeled as this lookup rather than by pointer, which
// keeps datasets cheap to deep-copy.
//
// Creator strings are compared after normalization (trailing space/NUL
// trimmed, case folded) but the original bytes are preserved so round-trip
// output is unaffected.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.8.1
type PrivateCreatorTable struct {
	bindings map[slotKey]creatorBinding
}

type slotKey struct {
	group uint16
	slot  uint8
}

type creatorBinding struct {
	// raw is the creator string exactly as it appeared in the dataset.
	raw string
	// normalized is the comparison form per tag.NormalizeCreator.
	normalized string
}

// NewPrivateCreatorTable creates an empty creator table.
func NewPrivateCreatorTable() *PrivateCreatorTable {
	return &PrivateCreatorTable{bindings: make(map[slotKey]creatorBinding)}
}

// Register binds the creator string carried by the creator element at
// creatorTag. Re-registering the same creator (after normalization) is a
// no-op that keeps the first raw bytes; a different creator for an occupied
// slot fails with ErrDuplicateCreatorSlot.
func (pt *PrivateCreatorTable) Register(creatorTag tag.Tag, creator string) error {
	if !creatorTag.IsPrivateCreator() {
		return fmt.Errorf("%s is not a private creator tag", creatorTag)
	}

	key := slotKey{group: creatorTag.Group, slot: creatorTag.Slot()}
	normalized := tag.NormalizeCreator(creator)

	if existing, ok := pt.bindings[key]; ok {
		if existing.normalized != normalized {
			return fmt.Errorf("%w: (%04X,xx%02X) bound to %q, cannot rebind to %q",
				ErrDuplicateCreatorSlot, creatorTag.Group, creatorTag.Slot(), existing.raw, creator)
		}
		return nil
	}

	pt.bindings[key] = creatorBinding{raw: creator, normalized: normalized}
	return nil
}

// Lookup derives (group, slot) from a private data tag and returns the bound
// creator string (original bytes). The second return is false when the block
// has no creator, i.e. the data element is an orphan.
func (pt *PrivateCreatorTable) Lookup(dataTag tag.Tag) (string, bool) {
	if !dataTag.IsPrivateData() {
		return "", false
	}
	binding, ok := pt.bindings[slotKey{group: dataTag.Group, slot: dataTag.Slot()}]
	return binding.raw, ok
}

// CreatorAt returns the creator bound at (group, slot), if any.
func (pt *PrivateCreatorTable) CreatorAt(group uint16, slot uint8) (string, bool) {
	binding, ok := pt.bindings[slotKey{group: group, slot: slot}]
	return binding.raw, ok
}

// AllocateSlot returns the creator tag for the given creator in the group,
// reusing an existing binding when the creator is already registered, else
// binding the lowest unused slot in [0x10, 0xFF]. Fails with ErrSlotExhausted
// when every slot is taken.
func (pt *PrivateCreatorTable) AllocateSlot(group uint16, creator string) (tag.Tag, error) {
	if group%2 == 0 {
		return tag.Tag{}, fmt.Errorf("group %04X is not private", group)
	}

	normalized := tag.NormalizeCreator(creator)
	for slot := 0x10; slot <= 0xFF; slot++ {
		if binding, ok := pt.bindings[slotKey{group: group, slot: uint8(slot)}]; ok && binding.normalized == normalized {
			return tag.New(group, uint16(slot)), nil
		}
	}

	for slot := 0x10; slot <= 0xFF; slot++ {
		key := slotKey{group: group, slot: uint8(slot)}
		if _, ok := pt.bindings[key]; !ok {
			pt.bindings[key] = creatorBinding{raw: creator, normalized: normalized}
			return tag.New(group, uint16(slot)), nil
		}
	}

	return tag.Tag{}, fmt.Errorf("%w: group %04X", ErrSlotExhausted, group)
}

// slots returns the occupied slots of a group in ascending order.
func (pt *PrivateCreatorTable) slots(group uint16) []uint8 {
	var slots []uint8
	for key := range pt.bindings {
		if key.group == group {
			slots = append(slots, key.slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// clone returns an independent copy of the table.
func (pt *PrivateCreatorTable) clone() *PrivateCreatorTable {
	copied := NewPrivateCreatorTable()
	for key, binding := range pt.bindings {
		copied.bindings[key] = binding
	}
	return copied
}
