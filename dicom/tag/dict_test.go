package tag_test

import (
	"testing"

	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_StandardTags(t *testing.T) {
	tests := []struct {
		name    string
		tg      tag.Tag
		keyword string
		firstVR vr.VR
	}{
		{"PatientName", tag.New(0x0010, 0x0010), "PatientName", vr.PersonName},
		{"SOPClassUID", tag.New(0x0008, 0x0016), "SOPClassUID", vr.UniqueIdentifier},
		{"Rows", tag.New(0x0028, 0x0010), "Rows", vr.UnsignedShort},
		{"PixelData", tag.New(0x7FE0, 0x0010), "PixelData", vr.OtherWord},
		{"TransferSyntaxUID", tag.New(0x0002, 0x0010), "TransferSyntaxUID", vr.UniqueIdentifier},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := tag.Find(tc.tg)
			require.NoError(t, err)
			assert.Equal(t, tc.keyword, info.Keyword)
			require.NotEmpty(t, info.VRs)
			assert.Equal(t, tc.firstVR, info.VRs[0])
		})
	}
}

func TestFind_MultiVRTag(t *testing.T) {
	// (0028,0106) Smallest Image Pixel Value is "US or SS"
	info, err := tag.Find(tag.New(0x0028, 0x0106))
	require.NoError(t, err)
	assert.Equal(t, []vr.VR{vr.UnsignedShort, vr.SignedShort}, info.VRs)
}

func TestFind_GenericGroupLength(t *testing.T) {
	info, err := tag.Find(tag.New(0x0018, 0x0000))
	require.NoError(t, err)
	assert.Equal(t, "GenericGroupLength", info.Keyword)
	assert.Equal(t, []vr.VR{vr.UnsignedLong}, info.VRs)

	// Odd groups have no group length synthesis
	_, err = tag.Find(tag.New(0x0019, 0x0000))
	assert.Error(t, err)
}

func TestFind_MaskedOverlayGroups(t *testing.T) {
	// The canonical entry lives at (6000,3000); repeating groups resolve
	// through the masked fallback.
	for _, group := range []uint16{0x6000, 0x6002, 0x60FE} {
		info, err := tag.Find(tag.New(group, 0x3000))
		require.NoError(t, err, "group %04X", group)
		assert.Equal(t, "OverlayData", info.Keyword)
		assert.Equal(t, tag.New(group, 0x3000), info.Tag)
	}
}

func TestFind_MaskedCurveGroups(t *testing.T) {
	info, err := tag.Find(tag.New(0x5004, 0x3000))
	require.NoError(t, err)
	assert.Equal(t, "CurveData", info.Keyword)
	assert.True(t, info.Retired)
}

func TestFind_UnknownTag(t *testing.T) {
	_, err := tag.Find(tag.New(0xAAAA, 0xBBBB))
	assert.Error(t, err)
}

func TestFindByKeyword(t *testing.T) {
	info, err := tag.FindByKeyword("SOPInstanceUID")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0008, 0x0018), info.Tag)

	info, err = tag.FindByKeyword("Patient's Name")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0010, 0x0010), info.Tag)

	_, err = tag.FindByKeyword("NoSuchKeyword")
	assert.Error(t, err)

	_, err = tag.FindByKeyword("")
	assert.Error(t, err)
}

func TestNormalizeCreator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trailing space", "SIEMENS MED DISPLAY ", "SIEMENS MED DISPLAY"},
		{"trailing nul", "SIEMENS MED DISPLAY\x00", "SIEMENS MED DISPLAY"},
		{"case folding", "Siemens Med Display", "SIEMENS MED DISPLAY"},
		{"embedded double space preserved", "ACME  CORP", "ACME  CORP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tag.NormalizeCreator(tc.input))
		})
	}
}

func TestPrivateDictionary(t *testing.T) {
	tag.RegisterPrivateDictionary("SIEMENS MED DISPLAY", []tag.PrivateEntry{
		{Offset: 0x04, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	})

	data := tag.New(0x0029, 0x1004)

	// Resolution is keyed on normalized creator, so padding and case do not matter.
	for _, creator := range []string{"SIEMENS MED DISPLAY", "SIEMENS MED DISPLAY ", "siemens med display\x00"} {
		info, err := tag.FindPrivate(data, creator)
		require.NoError(t, err, "creator %q", creator)
		assert.Equal(t, "PhotometricInterpretation", info.Keyword)
		assert.Equal(t, []vr.VR{vr.CodeString}, info.VRs)
		assert.Equal(t, data, info.Tag)
	}

	// Unknown offset or creator
	_, err := tag.FindPrivate(tag.New(0x0029, 0x10FF), "SIEMENS MED DISPLAY")
	assert.Error(t, err)
	_, err = tag.FindPrivate(data, "UNKNOWN VENDOR")
	assert.Error(t, err)
	_, err = tag.FindPrivate(data, "")
	assert.Error(t, err)
}

func TestPrivateDictionary_LaterRegistrationShadows(t *testing.T) {
	tag.RegisterPrivateDictionary("DCMX TEST VENDOR", []tag.PrivateEntry{
		{Offset: 0x01, VRs: []vr.VR{vr.LongString}, Keyword: "VendorNote", VM: "1"},
	})
	tag.RegisterPrivateDictionary("DCMX TEST VENDOR", []tag.PrivateEntry{
		{Offset: 0x01, VRs: []vr.VR{vr.ShortText}, Keyword: "VendorNoteText", VM: "1"},
	})

	info, err := tag.FindPrivate(tag.New(0x0011, 0x1001), "DCMX TEST VENDOR")
	require.NoError(t, err)
	assert.Equal(t, "VendorNoteText", info.Keyword)
	assert.Equal(t, []vr.VR{vr.ShortText}, info.VRs)
}
