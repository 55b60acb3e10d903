package dicom_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codeninja55/go-dcmx/dicom"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instance builds a dataset with full information-model identity.
func instance(t *testing.T, patientID, study, series, sopInstance string) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0008, 0x0016), vr.UniqueIdentifier, uid.CTImageStorage.String())))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0008, 0x0018), vr.UniqueIdentifier, sopInstance)))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0010, 0x0020), vr.LongString, patientID)))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0020, 0x000D), vr.UniqueIdentifier, study)))
	require.NoError(t, ds.Insert(stringElem(t, tag.New(0x0020, 0x000E), vr.UniqueIdentifier, series)))
	return ds
}

func TestCollection_AddAndIndexes(t *testing.T) {
	c := dicom.NewCollection()

	a := instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1")
	b := instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.2")
	other := instance(t, "P2", "1.2.4", "1.2.4.1", "1.2.4.1.1")

	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	require.NoError(t, c.Add(other))

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains("1.2.3.1.1"))

	got, err := c.Get("1.2.3.1.2")
	require.NoError(t, err)
	assert.Same(t, b, got)

	assert.Len(t, c.BySeries("1.2.3.1"), 2)
	assert.Len(t, c.ByStudy("1.2.3"), 2)
	assert.Len(t, c.ByPatient("P1"), 2)
	assert.Len(t, c.ByPatient("P2"), 1)
	assert.Equal(t, []*dicom.DataSet{a, b, other}, c.DataSets())
}

func TestCollection_Validation(t *testing.T) {
	c := dicom.NewCollection()

	assert.Error(t, c.Add(nil))
	assert.Error(t, c.Add(dicom.NewDataSet()), "dataset without SOPInstanceUID")

	ds := instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1")
	require.NoError(t, c.Add(ds))
	assert.Error(t, c.Add(ds), "duplicate SOPInstanceUID")
}

func TestCollection_Remove(t *testing.T) {
	c := dicom.NewCollection()
	a := instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1")
	b := instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.2")
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	require.NoError(t, c.Remove("1.2.3.1.1"))
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Contains("1.2.3.1.1"))
	assert.Len(t, c.BySeries("1.2.3.1"), 1)
	assert.Len(t, c.ByPatient("P1"), 1)
	assert.Equal(t, []*dicom.DataSet{b}, c.DataSets())

	assert.ErrorIs(t, c.Remove("1.2.3.1.1"), dicom.ErrNotFound)
}

func TestParseDirectory_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := dicom.NewCollection()
	require.NoError(t, c.Add(instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1")))
	require.NoError(t, c.Add(instance(t, "P1", "1.2.3", "1.2.3.2", "1.2.3.2.1")))
	require.NoError(t, dicom.WriteCollection(dir, c, dicom.WriteOptions{Overwrite: true, Atomic: true}))

	// A non-DICOM file in the tree is skipped, not fatal
	junk := filepath.Join(dir, "notes.dcm")
	require.NoError(t, writeJunk(junk))

	result, err := dicom.ParseDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Collection.Len())
	assert.True(t, result.Collection.Contains("1.2.3.1.1"))
	assert.True(t, result.Collection.Contains("1.2.3.2.1"))
	assert.Contains(t, result.Skipped, junk)
}

func TestParseDirectory_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")

	top := dicom.NewCollection()
	require.NoError(t, top.Add(instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1")))
	require.NoError(t, dicom.WriteCollection(dir, top, dicom.WriteOptions{Overwrite: true, Atomic: true}))

	nested := dicom.NewCollection()
	require.NoError(t, nested.Add(instance(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.2")))
	require.NoError(t, dicom.WriteCollection(sub, nested, dicom.WriteOptions{Overwrite: true, Atomic: true}))

	result, err := dicom.ParseDirectoryWithOptions(context.Background(), dir, dicom.DirectoryOptions{
		Recursive:     false,
		ReaderOptions: dicom.DefaultReaderOptions(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Collection.Len())
	assert.True(t, result.Collection.Contains("1.2.3.1.1"))
}

func writeJunk(path string) error {
	return os.WriteFile(path, []byte("this is not a DICOM file"), 0o644)
}
