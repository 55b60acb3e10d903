package dicom_test

import (
	"testing"

	"github.com/codeninja55/go-dcmx/dicom"
	"github.com/codeninja55/go-dcmx/dicom/element"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringElem(t *testing.T, tg tag.Tag, v vr.VR, values ...string) *element.Element {
	t.Helper()
	val, err := value.NewStringValue(v, values)
	require.NoError(t, err)
	return element.MustNew(tg, v, val)
}

func intElem(t *testing.T, tg tag.Tag, v vr.VR, values ...int64) *element.Element {
	t.Helper()
	val, err := value.NewIntValue(v, values)
	require.NoError(t, err)
	return element.MustNew(tg, v, val)
}

func TestDataSet_InsertGetRemove(t *testing.T) {
	ds := dicom.NewDataSet()
	assert.Equal(t, 0, ds.Len())

	patientName := stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")
	require.NoError(t, ds.Insert(patientName))
	assert.Equal(t, 1, ds.Len())
	assert.True(t, ds.Contains(tag.New(0x0010, 0x0010)))

	got, err := ds.Get(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.True(t, got.Equals(patientName))

	_, err = ds.Get(tag.New(0x0010, 0x0020))
	assert.ErrorIs(t, err, dicom.ErrNotFound)

	require.NoError(t, ds.Remove(tag.New(0x0010, 0x0010)))
	assert.Equal(t, 0, ds.Len())
	assert.ErrorIs(t, ds.Remove(tag.New(0x0010, 0x0010)), dicom.ErrNotFound)
}

func TestDataSet_Replace(t *testing.T) {
	ds := dicom.NewDataSet()
	tg := tag.New(0x0010, 0x0020)
	require.NoError(t, ds.Insert(stringElem(t, tg, vr.LongString, "PATIENT001")))

	replacement := stringElem(t, tg, vr.LongString, "PATIENT002")
	require.NoError(t, ds.Replace(tg, replacement))

	s, err := ds.GetString(tg)
	require.NoError(t, err)
	assert.Equal(t, "PATIENT002", s)

	// Replace requires an existing element and a matching tag
	assert.ErrorIs(t, ds.Replace(tag.New(0x0010, 0x0030), stringElem(t, tag.New(0x0010, 0x0030), vr.Date, "20230101")), dicom.ErrNotFound)
	assert.Error(t, ds.Replace(tg, stringElem(t, tag.New(0x0010, 0x0030), vr.Date, "20230101")))
}

func TestDataSet_AscendingTagIteration(t *testing.T) {
	ds := dicom.NewDataSet()

	// Insert in reverse order; iteration must still ascend
	require.NoError(t, ds.Insert(intElem(t, tag.New(0x7FE0, 0x0000), vr.UnsignedLong, 0)))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0020), vr.LongString, "PATIENT001")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0008, 0x0060), vr.CodeString, "CT")))

	expected := []tag.Tag{
		tag.New(0x0008, 0x0060),
		tag.New(0x0010, 0x0010),
		tag.New(0x0010, 0x0020),
		tag.New(0x7FE0, 0x0000),
	}
	assert.Equal(t, expected, ds.Tags())

	// The sort index is invalidated by mutation
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0008, 0x0020), vr.Date, "20230115")))
	assert.Equal(t, tag.New(0x0008, 0x0020), ds.Tags()[0])

	require.NoError(t, ds.Remove(tag.New(0x7FE0, 0x0000)))
	tags := ds.Tags()
	assert.Equal(t, tag.New(0x0010, 0x0020), tags[len(tags)-1])
}

func TestDataSet_TypedGetters(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0028, 0x0008), vr.IntegerString, "12")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0028, 0x1053), vr.DecimalString, "1.5")))
	require.NoError(t, ds.Insert(intElem(t, tag.New(0x0028, 0x0010), vr.UnsignedShort, 512)))
	require.NoError(t, ds.Insert(intElem(t, tag.New(0x0028, 0x0009), vr.AttributeTag, 0x00181063)))

	s, err := ds.GetString(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", s)

	n, err := ds.GetInt(tag.New(0x0028, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, int64(512), n)

	// IS parses through GetInt as well
	n, err = ds.GetInt(tag.New(0x0028, 0x0008))
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	f, err := ds.GetFloat(tag.New(0x0028, 0x1053))
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	at, err := ds.GetTag(tag.New(0x0028, 0x0009))
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0018, 0x1063), at)

	// Error kinds
	_, err = ds.GetString(tag.New(0x0099, 0x0001))
	assert.ErrorIs(t, err, dicom.ErrNotFound)
	_, err = ds.GetString(tag.New(0x0028, 0x0010))
	assert.ErrorIs(t, err, dicom.ErrWrongVR)
	_, err = ds.GetInt(tag.New(0x0010, 0x0010))
	assert.ErrorIs(t, err, dicom.ErrWrongVR)
}

func TestDataSet_GetIntParseError(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0028, 0x0008), vr.IntegerString, "twelve")))

	_, err := ds.GetInt(tag.New(0x0028, 0x0008))
	assert.ErrorIs(t, err, dicom.ErrValueParse)
}

func TestDataSet_GetByKeyword(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))

	elem, err := ds.GetByKeyword("PatientName")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0010, 0x0010), elem.Tag())

	_, err = ds.GetByKeyword("NoSuchKeyword")
	assert.Error(t, err)
}

func TestDataSet_Sequence(t *testing.T) {
	item := dicom.NewDataSet()
	require.NoError(t, item.Insert(stringElem(t, tag.New(0x0008, 0x0100), vr.ShortString, "121327")))

	seq := dicom.NewSequence(item)
	seqElem, err := element.New(tag.New(0x0008, 0x1110), vr.SequenceOfItems, seq)
	require.NoError(t, err)

	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(seqElem))

	got, err := ds.GetSequence(tag.New(0x0008, 0x1110))
	require.NoError(t, err)
	require.Len(t, got.Items(), 1)

	code, err := got.Items()[0].GetString(tag.New(0x0008, 0x0100))
	require.NoError(t, err)
	assert.Equal(t, "121327", code)

	_, err = ds.GetSequence(tag.New(0x0099, 0x0001))
	assert.ErrorIs(t, err, dicom.ErrNotFound)
}

func TestDataSet_DeepCopy(t *testing.T) {
	item := dicom.NewDataSet()
	require.NoError(t, item.Insert(stringElem(t, tag.New(0x0008, 0x0104), vr.LongString, "Finding")))

	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))
	seqElem, err := element.New(tag.New(0x0040, 0xA730), vr.SequenceOfItems, dicom.NewSequence(item))
	require.NoError(t, err)
	require.NoError(t, ds.Insert(seqElem))

	copied := ds.DeepCopy()
	assert.True(t, ds.Equals(copied))

	// Mutating the copy leaves the original untouched, including nested items
	require.NoError(t, copied.Remove(tag.New(0x0010, 0x0010)))
	copiedSeq, err := copied.GetSequence(tag.New(0x0040, 0xA730))
	require.NoError(t, err)
	require.NoError(t, copiedSeq.Items()[0].Remove(tag.New(0x0008, 0x0104)))

	assert.True(t, ds.Contains(tag.New(0x0010, 0x0010)))
	origSeq, err := ds.GetSequence(tag.New(0x0040, 0xA730))
	require.NoError(t, err)
	assert.True(t, origSeq.Items()[0].Contains(tag.New(0x0008, 0x0104)))
}

func TestDataSet_PrivateCreatorRegistrationOnInsert(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0029, 0x0010), vr.LongString, "SIEMENS MED DISPLAY")))

	// The binding keeps the element's bytes, including the even-length pad
	creator, ok := ds.PrivateCreators().Lookup(tag.New(0x0029, 0x1004))
	require.True(t, ok)
	assert.Equal(t, "SIEMENS MED DISPLAY ", creator)

	// A different creator for the same slot is rejected
	err := ds.Insert(stringElem(t, tag.New(0x0029, 0x0010), vr.LongString, "OTHER VENDOR"))
	assert.ErrorIs(t, err, dicom.ErrDuplicateCreatorSlot)

	// Orphan classification
	assert.False(t, ds.IsOrphan(tag.New(0x0029, 0x1004)))
	assert.True(t, ds.IsOrphan(tag.New(0x0029, 0x1104)))
	assert.False(t, ds.IsOrphan(tag.New(0x0010, 0x0010)))
}

func TestDataSet_FileMetaInformation(t *testing.T) {
	ds := dicom.NewDataSet()
	assert.Nil(t, ds.FileMetaInformation())

	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0002, 0x0010), vr.UniqueIdentifier, "1.2.840.10008.1.2.1")))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0010), vr.PersonName, "Doe^John")))

	meta := ds.FileMetaInformation()
	require.NotNil(t, meta)
	assert.Equal(t, 1, meta.Len())
	assert.True(t, meta.Contains(tag.New(0x0002, 0x0010)))
}
