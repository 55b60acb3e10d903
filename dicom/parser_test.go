package dicom_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/codeninja55/go-dcmx/dicom"
	"github.com/codeninja55/go-dcmx/dicom/pixel"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/validate"
	"github.com/codeninja55/go-dcmx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireBuf hand-crafts little-endian DICOM streams for parser tests.
type wireBuf struct {
	bytes.Buffer
}

func (b *wireBuf) u16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	b.Write(buf[:])
}

func (b *wireBuf) u32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.Write(buf[:])
}

func (b *wireBuf) tag(t tag.Tag) {
	b.u16(t.Group)
	b.u16(t.Element)
}

// explicitShort writes an explicit-VR element with a 16-bit length field.
func (b *wireBuf) explicitShort(t tag.Tag, vrCode string, val []byte) {
	b.tag(t)
	b.WriteString(vrCode)
	b.u16(uint16(len(val)))
	b.Write(val)
}

// explicitLongHeader writes an explicit-VR header with the reserved bytes
// and a 32-bit length field.
func (b *wireBuf) explicitLongHeader(t tag.Tag, vrCode string, length uint32) {
	b.tag(t)
	b.WriteString(vrCode)
	b.u16(0)
	b.u32(length)
}

// implicit writes an implicit-VR element.
func (b *wireBuf) implicit(t tag.Tag, val []byte) {
	b.tag(t)
	b.u32(uint32(len(val)))
	b.Write(val)
}

// dicomFile frames a dataset with a preamble and a minimal file meta group
// declaring the given transfer syntax.
func dicomFile(tsUID string, dataset []byte) []byte {
	tsValue := []byte(tsUID)
	if len(tsValue)%2 == 1 {
		tsValue = append(tsValue, 0x00)
	}

	var meta wireBuf
	meta.explicitShort(tag.TransferSyntaxUID, "UI", tsValue)

	var f wireBuf
	f.Write(make([]byte, 128))
	f.WriteString("DICM")
	var groupLen [4]byte
	binary.LittleEndian.PutUint32(groupLen[:], uint32(meta.Len()))
	f.explicitShort(tag.New(0x0002, 0x0000), "UL", groupLen[:])
	f.Write(meta.Bytes())
	f.Write(dataset)
	return f.Bytes()
}

const (
	tsImplicitLE = "1.2.840.10008.1.2"
	tsExplicitLE = "1.2.840.10008.1.2.1"
	tsExplicitBE = "1.2.840.10008.1.2.2"
	tsRLE        = "1.2.840.10008.1.2.5"
)

func TestParse_MinimalFile(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0010, 0x0010), "PN", []byte("Doe^John"))
	body.explicitShort(tag.New(0x0010, 0x0020), "LO", []byte("PATIENT001"))

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())))
	require.NoError(t, err)

	name, err := ds.GetString(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", name)

	id, err := ds.GetString(tag.New(0x0010, 0x0020))
	require.NoError(t, err)
	assert.Equal(t, "PATIENT001", id)

	// Iteration order strictly ascends; meta elements precede the dataset
	tags := ds.Tags()
	for i := 1; i < len(tags); i++ {
		assert.Equal(t, -1, tags[i-1].Compare(tags[i]))
	}
}

func TestParse_BadMagic(t *testing.T) {
	var f wireBuf
	f.Write(make([]byte, 128))
	f.WriteString("NOPE")

	_, err := dicom.ParseReader(bytes.NewReader(f.Bytes()))
	assert.ErrorIs(t, err, dicom.ErrInvalidPreamble)

	_, err = dicom.ParseReader(bytes.NewReader(make([]byte, 40)))
	assert.ErrorIs(t, err, dicom.ErrInvalidPreamble)
}

func TestParse_UnknownTransferSyntax(t *testing.T) {
	_, err := dicom.ParseReader(bytes.NewReader(dicomFile("1.2.3.999", nil)))
	assert.ErrorIs(t, err, dicom.ErrUnsupportedTransferSyntax)
}

func TestParse_ImplicitVR(t *testing.T) {
	var body wireBuf
	body.implicit(tag.New(0x0010, 0x0010), []byte("Doe^John"))
	// (0028,0010) Rows resolves to US through the dictionary
	body.implicit(tag.New(0x0028, 0x0010), []byte{0x00, 0x02})

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsImplicitLE, body.Bytes())))
	require.NoError(t, err)

	elem, err := ds.Get(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, vr.PersonName, elem.VR())

	rows, err := ds.GetInt(tag.New(0x0028, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, int64(512), rows)

	// Unknown standard tags read as opaque UN
	var body2 wireBuf
	body2.implicit(tag.New(0xAAAA, 0xBBBB), []byte{0x01, 0x02})
	ds, err = dicom.ParseReader(bytes.NewReader(dicomFile(tsImplicitLE, body2.Bytes())))
	require.NoError(t, err)
	elem, err = ds.Get(tag.New(0xAAAA, 0xBBBB))
	require.NoError(t, err)
	assert.Equal(t, vr.Unknown, elem.VR())
}

func TestParse_ImplicitVRPrivateTagWithDictionary(t *testing.T) {
	build := func() []byte {
		var body wireBuf
		body.implicit(tag.New(0x0029, 0x0010), []byte("SIEMENS MED DISPLAY "))
		body.implicit(tag.New(0x0029, 0x1004), []byte("MONOCHROME2 "))
		return dicomFile(tsImplicitLE, body.Bytes())
	}

	// Without the private dictionary loaded the VR stays UN
	ds, err := dicom.ParseReader(bytes.NewReader(build()))
	require.NoError(t, err)
	elem, err := ds.Get(tag.New(0x0029, 0x1004))
	require.NoError(t, err)
	assert.Equal(t, vr.Unknown, elem.VR())

	// With the Siemens dictionary the element resolves to CS
	tag.RegisterPrivateDictionary("SIEMENS MED DISPLAY", []tag.PrivateEntry{
		{Offset: 0x04, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	})

	ds, err = dicom.ParseReader(bytes.NewReader(build()))
	require.NoError(t, err)
	elem, err = ds.Get(tag.New(0x0029, 0x1004))
	require.NoError(t, err)
	assert.Equal(t, vr.CodeString, elem.VR())

	creator, ok := ds.PrivateCreators().Lookup(tag.New(0x0029, 0x1004))
	require.True(t, ok)
	assert.Equal(t, "SIEMENS MED DISPLAY ", creator)

	info, err := tag.FindPrivate(tag.New(0x0029, 0x1004), creator)
	require.NoError(t, err)
	assert.Equal(t, "PhotometricInterpretation", info.Keyword)
}

func TestParse_ExplicitUNPrivateResolution(t *testing.T) {
	tag.RegisterPrivateDictionary("DCMX EXPLICIT VENDOR", []tag.PrivateEntry{
		{Offset: 0x01, VRs: []vr.VR{vr.UnsignedShort}, Keyword: "VendorCounter", VM: "1"},
	})

	var body wireBuf
	body.explicitShort(tag.New(0x0031, 0x0010), "LO", []byte("DCMX EXPLICIT VENDOR"))
	// Written as UN with a length consistent with US
	body.explicitLongHeader(tag.New(0x0031, 0x1001), "UN", 2)
	body.u16(7)
	// And one with an inconsistent length that must stay UN
	body.explicitLongHeader(tag.New(0x0031, 0x1001+1), "UN", 3)
	body.Write([]byte{1, 2, 3})

	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), dicom.DefaultReaderOptions())
	require.NoError(t, err)

	resolved, err := result.DataSet.Get(tag.New(0x0031, 0x1001))
	require.NoError(t, err)
	assert.Equal(t, vr.UnsignedShort, resolved.VR())

	unresolved, err := result.DataSet.Get(tag.New(0x0031, 0x1002))
	require.NoError(t, err)
	assert.Equal(t, vr.Unknown, unresolved.VR())
}

func TestParse_UndefinedLengthSequence(t *testing.T) {
	var item wireBuf
	item.explicitShort(tag.New(0x0008, 0x0100), "SH", []byte("121327"))

	var body wireBuf
	body.explicitLongHeader(tag.New(0x0008, 0x1110), "SQ", 0xFFFFFFFF)
	// Item with undefined length, closed by the item delimitation item
	body.tag(tag.Item)
	body.u32(0xFFFFFFFF)
	body.Write(item.Bytes())
	body.tag(tag.ItemDelimitation)
	body.u32(0)
	// Item with defined length
	body.tag(tag.Item)
	body.u32(uint32(item.Len()))
	body.Write(item.Bytes())
	// (FFFE,E0DD) here is the sequence delimiter, not a data element
	body.tag(tag.SequenceDelimitation)
	body.u32(0)

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())))
	require.NoError(t, err)

	seq, err := ds.GetSequence(tag.New(0x0008, 0x1110))
	require.NoError(t, err)
	assert.True(t, seq.UndefinedLength())
	require.Len(t, seq.Items(), 2)

	for _, itemDS := range seq.Items() {
		code, err := itemDS.GetString(tag.New(0x0008, 0x0100))
		require.NoError(t, err)
		assert.Equal(t, "121327", code)
	}
}

func TestParse_NestedSequences(t *testing.T) {
	var inner wireBuf
	inner.explicitShort(tag.New(0x0008, 0x0104), "LO", []byte("Nested"))

	var innerSeq wireBuf
	innerSeq.explicitLongHeader(tag.New(0x0040, 0xA043), "SQ", 0xFFFFFFFF)
	innerSeq.tag(tag.Item)
	innerSeq.u32(uint32(inner.Len()))
	innerSeq.Write(inner.Bytes())
	innerSeq.tag(tag.SequenceDelimitation)
	innerSeq.u32(0)

	var body wireBuf
	body.explicitLongHeader(tag.New(0x0040, 0xA730), "SQ", 0xFFFFFFFF)
	body.tag(tag.Item)
	body.u32(0xFFFFFFFF)
	body.Write(innerSeq.Bytes())
	body.tag(tag.ItemDelimitation)
	body.u32(0)
	body.tag(tag.SequenceDelimitation)
	body.u32(0)

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())))
	require.NoError(t, err)

	outer, err := ds.GetSequence(tag.New(0x0040, 0xA730))
	require.NoError(t, err)
	require.Len(t, outer.Items(), 1)

	nested, err := outer.Items()[0].GetSequence(tag.New(0x0040, 0xA043))
	require.NoError(t, err)
	require.Len(t, nested.Items(), 1)

	meaning, err := nested.Items()[0].GetString(tag.New(0x0008, 0x0104))
	require.NoError(t, err)
	assert.Equal(t, "Nested", meaning)
}

func TestParse_DefinedSequenceChildrenExceedLength(t *testing.T) {
	var item wireBuf
	item.explicitShort(tag.New(0x0008, 0x0100), "SH", []byte("121327"))

	var body wireBuf
	// Sequence claims 8 bytes but its single item needs more
	body.explicitLongHeader(tag.New(0x0008, 0x1110), "SQ", 8)
	body.tag(tag.Item)
	body.u32(uint32(item.Len()))
	body.Write(item.Bytes())

	_, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())))
	assert.ErrorIs(t, err, dicom.ErrTruncatedElement)
}

func TestParse_TruncatedElement(t *testing.T) {
	// A value declaring exactly the remaining bytes parses
	var exact wireBuf
	exact.explicitShort(tag.New(0x0010, 0x0020), "LO", []byte("PATIENT001"))
	_, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, exact.Bytes())))
	require.NoError(t, err)

	// One byte more is truncated
	var over wireBuf
	over.tag(tag.New(0x0010, 0x0020))
	over.WriteString("LO")
	over.u16(11)
	over.WriteString("PATIENT001") // 10 bytes, 1 short
	_, err = dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitLE, over.Bytes())))
	assert.ErrorIs(t, err, dicom.ErrTruncatedElement)
}

func TestParse_OddLengthIsNotFatal(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0010, 0x0020), "LO", []byte("ODD"))
	body.explicitShort(tag.New(0x0010, 0x0021), "LO", []byte("NEXT"))

	opts := dicom.DefaultReaderOptions()
	opts.ValidationProfile = validate.LenientProfile()
	opts.CollectIssues = true

	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	require.NoError(t, err)

	// The element after the odd-length one still parses
	next, err := result.DataSet.GetString(tag.New(0x0010, 0x0021))
	require.NoError(t, err)
	assert.Equal(t, "NEXT", next)

	found := false
	for _, issue := range result.Issues {
		if issue.RuleID == "even-length" && issue.Tag.Equals(tag.New(0x0010, 0x0020)) {
			found = true
		}
	}
	assert.True(t, found, "odd length must surface as an issue")
}

func TestParse_ExplicitVRBigEndian(t *testing.T) {
	var body wireBuf
	// Hand-encode big-endian: tag, VR, 16-bit length and value all BE
	body.Write([]byte{0x00, 0x28, 0x00, 0x10}) // (0028,0010)
	body.WriteString("US")
	body.Write([]byte{0x00, 0x02}) // length 2
	body.Write([]byte{0x01, 0x02}) // 258 big-endian

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsExplicitBE, body.Bytes())))
	require.NoError(t, err)

	rows, err := ds.GetInt(tag.New(0x0028, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, int64(258), rows)
}

func TestParse_EncapsulatedPixelData(t *testing.T) {
	fragment := []byte{0x01, 0x02, 0x03, 0x04}

	var body wireBuf
	body.explicitLongHeader(tag.PixelData, "OB", 0xFFFFFFFF)
	// Empty Basic Offset Table
	body.tag(tag.Item)
	body.u32(0)
	// One fragment
	body.tag(tag.Item)
	body.u32(uint32(len(fragment)))
	body.Write(fragment)
	body.tag(tag.SequenceDelimitation)
	body.u32(0)

	ds, err := dicom.ParseReader(bytes.NewReader(dicomFile(tsRLE, body.Bytes())))
	require.NoError(t, err)

	elem, err := ds.Get(tag.PixelData)
	require.NoError(t, err)

	fs, ok := elem.Value().(*pixel.FragmentSequence)
	require.True(t, ok, "encapsulated pixel data must parse as a fragment sequence")
	require.Len(t, fs.Fragments(), 1)
	assert.Equal(t, fragment, fs.Fragments()[0])
	assert.Empty(t, fs.OffsetTable())
}

func TestParse_ValidationStrictFails(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0008, 0x0020), "DA", []byte("20231301")) // month 13

	opts := dicom.DefaultReaderOptions()
	opts.ValidationProfile = validate.StrictProfile()

	_, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	assert.ErrorIs(t, err, dicom.ErrValidationFailed)
}

func TestParse_ValidationCallbackAborts(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0008, 0x0020), "DA", []byte("20231301"))
	body.explicitShort(tag.New(0x0008, 0x0021), "DA", []byte("20231302"))

	var seen int
	opts := dicom.DefaultReaderOptions()
	opts.ValidationProfile = validate.LenientProfile()
	opts.OnIssue = func(validate.Issue) bool {
		seen++
		return false
	}

	_, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	assert.ErrorIs(t, err, dicom.ErrValidationFailed)
	assert.Equal(t, 1, seen, "abort stops after the first issue")
}

func TestParse_IssuesStableOrderedByPosition(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0008, 0x0020), "DA", []byte("20231301"))
	body.explicitShort(tag.New(0x0008, 0x0060), "CS", []byte("ct"))

	opts := dicom.DefaultReaderOptions()
	opts.ValidationProfile = validate.LenientProfile()
	opts.CollectIssues = true

	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(result.Issues), 2)
	for i := 1; i < len(result.Issues); i++ {
		assert.LessOrEqual(t, result.Issues[i-1].StreamPosition, result.Issues[i].StreamPosition)
	}
}

func TestParse_OrphanPrivateElement(t *testing.T) {
	var body wireBuf
	// Private data element with no creator for block xx10
	body.explicitShort(tag.New(0x0029, 0x1001), "SH", []byte("stray "))

	// Default: parses, flagged as an issue
	opts := dicom.DefaultReaderOptions()
	opts.CollectIssues = true
	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	require.NoError(t, err)
	assert.True(t, result.DataSet.Contains(tag.New(0x0029, 0x1001)))
	assert.True(t, result.DataSet.IsOrphan(tag.New(0x0029, 0x1001)))

	found := false
	for _, issue := range result.Issues {
		if issue.RuleID == "orphan-private-element" {
			found = true
		}
	}
	assert.True(t, found)

	// Strict option: fatal
	opts = dicom.DefaultReaderOptions()
	opts.FailOnOrphanPrivateElements = true
	_, err = dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	assert.ErrorIs(t, err, dicom.ErrOrphanPrivateElement)
}

func TestParse_DuplicatePrivateSlot(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0029, 0x0010), "LO", []byte("VENDOR ONE"))
	body.explicitShort(tag.New(0x0029, 0x1001), "SH", []byte("v1data"))
	// Same slot, different creator: malformed but tolerated by default
	body.explicitShort(tag.New(0x0029, 0x0010), "LO", []byte("VENDOR TWO"))

	opts := dicom.DefaultReaderOptions()
	opts.CollectIssues = true
	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	require.NoError(t, err)

	// The first binding survives
	creator, ok := result.DataSet.PrivateCreators().Lookup(tag.New(0x0029, 0x1001))
	require.True(t, ok)
	assert.Equal(t, "VENDOR ONE", creator)

	opts = dicom.DefaultReaderOptions()
	opts.FailOnDuplicatePrivateSlots = true
	_, err = dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	assert.ErrorIs(t, err, dicom.ErrDuplicateCreatorSlot)
}

func TestParse_DropUnknownPrivateTags(t *testing.T) {
	var body wireBuf
	body.explicitShort(tag.New(0x0033, 0x0010), "LO", []byte("DCMX UNLISTED VENDOR"))
	body.explicitLongHeader(tag.New(0x0033, 0x1005), "UN", 2)
	body.u16(0xBEEF)

	opts := dicom.DefaultReaderOptions()
	opts.RetainUnknownPrivateTags = false
	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsExplicitLE, body.Bytes())), opts)
	require.NoError(t, err)

	assert.False(t, result.DataSet.Contains(tag.New(0x0033, 0x1005)))
	// The creator element itself is kept
	assert.True(t, result.DataSet.Contains(tag.New(0x0033, 0x0010)))
}

func TestParse_TransferSyntaxOverride(t *testing.T) {
	// File meta claims implicit VR but the payload is explicit VR
	var body wireBuf
	body.explicitShort(tag.New(0x0010, 0x0020), "LO", []byte("PATIENT001"))

	opts := dicom.DefaultReaderOptions()
	opts.TransferSyntaxOverride = tsExplicitLE
	result, err := dicom.ParseReaderWithOptions(bytes.NewReader(dicomFile(tsImplicitLE, body.Bytes())), opts)
	require.NoError(t, err)

	assert.Equal(t, tsExplicitLE, result.TransferSyntax.UID)
	id, err := result.DataSet.GetString(tag.New(0x0010, 0x0020))
	require.NoError(t, err)
	assert.Equal(t, "PATIENT001", id)
}
