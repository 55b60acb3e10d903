package dicom_test

import (
	"fmt"
	"testing"

	"github.com/codeninja55/go-dcmx/dicom"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateCreatorTable_RegisterLookup(t *testing.T) {
	pt := dicom.NewPrivateCreatorTable()

	require.NoError(t, pt.Register(tag.New(0x0029, 0x0010), "SIEMENS MED DISPLAY"))

	creator, ok := pt.Lookup(tag.New(0x0029, 0x1004))
	require.True(t, ok)
	assert.Equal(t, "SIEMENS MED DISPLAY", creator)

	// Different block in the same group is unbound
	_, ok = pt.Lookup(tag.New(0x0029, 0x1104))
	assert.False(t, ok)

	// Non-private-data tags never resolve
	_, ok = pt.Lookup(tag.New(0x0010, 0x0010))
	assert.False(t, ok)
	_, ok = pt.Lookup(tag.New(0x0029, 0x0010))
	assert.False(t, ok)
}

func TestPrivateCreatorTable_RegisterValidation(t *testing.T) {
	pt := dicom.NewPrivateCreatorTable()

	// Only creator tags can register
	assert.Error(t, pt.Register(tag.New(0x0028, 0x0010), "X"))
	assert.Error(t, pt.Register(tag.New(0x0029, 0x1004), "X"))

	require.NoError(t, pt.Register(tag.New(0x0029, 0x0010), "ACME CORP"))

	// Re-registering the same creator (modulo padding and case) is a no-op
	require.NoError(t, pt.Register(tag.New(0x0029, 0x0010), "ACME CORP "))
	require.NoError(t, pt.Register(tag.New(0x0029, 0x0010), "acme corp\x00"))

	// The first raw bytes survive re-registration
	creator, ok := pt.Lookup(tag.New(0x0029, 0x1001))
	require.True(t, ok)
	assert.Equal(t, "ACME CORP", creator)

	// A distinct creator for the occupied slot fails
	err := pt.Register(tag.New(0x0029, 0x0010), "OTHER VENDOR")
	assert.ErrorIs(t, err, dicom.ErrDuplicateCreatorSlot)
}

func TestPrivateCreatorTable_AllocateSlot(t *testing.T) {
	pt := dicom.NewPrivateCreatorTable()

	// First allocation takes the lowest slot
	creatorTag, err := pt.AllocateSlot(0x0029, "VENDOR A")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0029, 0x0010), creatorTag)

	// A second creator takes the next slot
	creatorTag, err = pt.AllocateSlot(0x0029, "VENDOR B")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0029, 0x0011), creatorTag)

	// Re-allocating an existing creator returns its slot
	creatorTag, err = pt.AllocateSlot(0x0029, "VENDOR A")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0029, 0x0010), creatorTag)

	// Even groups are not private
	_, err = pt.AllocateSlot(0x0028, "VENDOR A")
	assert.Error(t, err)
}

func TestPrivateCreatorTable_SlotExhaustion(t *testing.T) {
	pt := dicom.NewPrivateCreatorTable()

	for i := 0; i <= 0xFF-0x10; i++ {
		_, err := pt.AllocateSlot(0x0011, fmt.Sprintf("VENDOR %03d", i))
		require.NoError(t, err)
	}

	_, err := pt.AllocateSlot(0x0011, "ONE TOO MANY")
	assert.ErrorIs(t, err, dicom.ErrSlotExhausted)
}

func TestDataSet_CompactPrivateGroup(t *testing.T) {
	ds := dicom.NewDataSet()

	// Creators at sparse slots 0x12 and 0x54 with one data element each
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0029, 0x0012), vr.LongString, "VENDOR A")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0029, 0x0054), vr.LongString, "VENDOR B")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0029, 0x1201), vr.ShortString, "a-value")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0029, 0x5403), vr.ShortString, "b-value")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))

	require.NoError(t, ds.CompactPrivateGroup(0x0029))

	// Slots renumbered contiguously from 0x10, data elements rewritten with them
	creator, err := ds.GetString(tag.New(0x0029, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, "VENDOR A", creator)
	creator, err = ds.GetString(tag.New(0x0029, 0x0011))
	require.NoError(t, err)
	assert.Equal(t, "VENDOR B", creator)

	v, err := ds.GetString(tag.New(0x0029, 0x1001))
	require.NoError(t, err)
	assert.Equal(t, "a-value", v)
	v, err = ds.GetString(tag.New(0x0029, 0x1103))
	require.NoError(t, err)
	assert.Equal(t, "b-value", v)

	// The old tags are gone; unrelated elements are untouched
	assert.False(t, ds.Contains(tag.New(0x0029, 0x0012)))
	assert.False(t, ds.Contains(tag.New(0x0029, 0x5403)))
	assert.True(t, ds.Contains(tag.New(0x0010, 0x0010)))

	// Creator bindings moved with the elements
	boundA, ok := ds.PrivateCreators().Lookup(tag.New(0x0029, 0x1001))
	require.True(t, ok)
	assert.Equal(t, "VENDOR A", boundA)
	boundB, ok := ds.PrivateCreators().Lookup(tag.New(0x0029, 0x1103))
	require.True(t, ok)
	assert.Equal(t, "VENDOR B", boundB)
}

func TestDataSet_CompactPrivateGroup_Validation(t *testing.T) {
	ds := dicom.NewDataSet()
	assert.Error(t, ds.CompactPrivateGroup(0x0028))

	// Compacting a group with no creators is a no-op
	require.NoError(t, ds.CompactPrivateGroup(0x0029))
}
