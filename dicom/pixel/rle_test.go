package pixel

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayscale16x4x2() PixelDataInfo {
	return PixelDataInfo{
		Rows:                      2,
		Columns:                   4,
		BitsAllocated:             16,
		BitsStored:                16,
		HighBit:                   15,
		SamplesPerPixel:           1,
		PhotometricInterpretation: "MONOCHROME2",
	}
}

func TestRLE_RoundTrip16BitGrayscale(t *testing.T) {
	// 4x2 pixels, little-endian 16-bit samples 1..8
	pixels := []byte{
		0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00,
		0x05, 0x00, 0x06, 0x00, 0x07, 0x00, 0x08, 0x00,
	}
	info := grayscale16x4x2()
	codec := &RLECodec{}

	fragments, err := codec.Encode(pixels, info, nil)
	require.NoError(t, err)
	require.Len(t, fragments.Fragments(), 1)

	frame := fragments.Fragments()[0]
	require.GreaterOrEqual(t, len(frame), rleHeaderSize)
	assert.Equal(t, 0, len(frame)%2, "encoded frame must be even length")

	// Two segments (2 bytes per sample, 1 sample), first at offset 64
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(frame[0:4]))
	assert.Equal(t, uint32(64), binary.LittleEndian.Uint32(frame[4:8]))

	dst := make([]byte, info.FrameSize())
	result := codec.Decode(fragments, info, 0, dst)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Equal(t, info.FrameSize(), result.BytesWritten)
	assert.Equal(t, pixels, dst)
}

func TestRLE_RoundTrip8BitRGB(t *testing.T) {
	info := PixelDataInfo{
		Rows: 2, Columns: 2,
		BitsAllocated: 8, BitsStored: 8, HighBit: 7,
		SamplesPerPixel:           3,
		PhotometricInterpretation: "RGB",
	}
	// Interleaved RGB for 4 pixels
	pixels := []byte{
		10, 20, 30, 11, 21, 31,
		12, 22, 32, 13, 23, 33,
	}
	codec := &RLECodec{}

	fragments, err := codec.Encode(pixels, info, nil)
	require.NoError(t, err)

	frame := fragments.Fragments()[0]
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(frame[0:4]))

	dst := make([]byte, info.FrameSize())
	result := codec.Decode(fragments, info, 0, dst)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Equal(t, pixels, dst)
}

func TestRLE_RoundTripPlanarRGB(t *testing.T) {
	info := PixelDataInfo{
		Rows: 2, Columns: 2,
		BitsAllocated: 8, BitsStored: 8, HighBit: 7,
		SamplesPerPixel:           3,
		PlanarConfiguration:       1,
		PhotometricInterpretation: "RGB",
	}
	// Planar RGB: all reds, all greens, all blues
	pixels := []byte{
		10, 11, 12, 13,
		20, 21, 22, 23,
		30, 31, 32, 33,
	}
	codec := &RLECodec{}

	fragments, err := codec.Encode(pixels, info, nil)
	require.NoError(t, err)

	dst := make([]byte, info.FrameSize())
	result := codec.Decode(fragments, info, 0, dst)
	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Equal(t, pixels, dst)
}

func TestPackBits_LiteralAndReplicate(t *testing.T) {
	// Replicate of 3 A's then a literal of 4 bytes
	raw := []byte{0xAA, 0xAA, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE}
	encoded := encodePackBits(raw)
	assert.Equal(t, []byte{0xFE, 0xAA, 0x03, 0xBB, 0xCC, 0xDD, 0xEE}, encoded)

	dst := make([]byte, len(raw))
	n, err := decodePackBits(encoded, dst)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, raw, dst)
}

func TestPackBits_LongRuns(t *testing.T) {
	// A run longer than 128 splits into capped replicate runs
	run := make([]byte, 300)
	for i := range run {
		run[i] = 0x42
	}
	encoded := encodePackBits(run)
	dst := make([]byte, len(run))
	n, err := decodePackBits(encoded, dst)
	require.NoError(t, err)
	assert.Equal(t, len(run), n)
	assert.Equal(t, run, dst)

	// A literal stretch longer than 128 splits into capped literal runs
	literal := make([]byte, 200)
	for i := range literal {
		literal[i] = byte(i)
	}
	encoded = encodePackBits(literal)
	dst = make([]byte, len(literal))
	n, err = decodePackBits(encoded, dst)
	require.NoError(t, err)
	assert.Equal(t, len(literal), n)
	assert.Equal(t, literal, dst)
}

func TestPackBits_NoOpControlByte(t *testing.T) {
	// -128 (0x80) is a no-op on decode
	encoded := []byte{0x80, 0x01, 0x42, 0x43}
	dst := make([]byte, 2)
	n, err := decodePackBits(encoded, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x42, 0x43}, dst)
}

func TestPackBits_Truncated(t *testing.T) {
	dst := make([]byte, 16)

	// Literal run overrunning the input
	_, err := decodePackBits([]byte{0x03, 0x01}, dst)
	assert.Error(t, err)

	// Replicate run missing its data byte
	_, err = decodePackBits([]byte{0xFE}, dst)
	assert.Error(t, err)
}

func TestRLE_DecodeFailures(t *testing.T) {
	info := grayscale16x4x2()
	codec := &RLECodec{}

	t.Run("fragment shorter than header", func(t *testing.T) {
		fragments := NewFragmentSequence(make([]byte, 32))
		result := codec.Decode(fragments, info, 0, make([]byte, info.FrameSize()))
		assert.False(t, result.OK)
		assert.NotEmpty(t, result.Diagnostics)
	})

	t.Run("segment count mismatch", func(t *testing.T) {
		frame := make([]byte, rleHeaderSize)
		binary.LittleEndian.PutUint32(frame[0:4], 5) // image requires 2
		binary.LittleEndian.PutUint32(frame[4:8], 64)
		fragments := NewFragmentSequence(frame)
		result := codec.Decode(fragments, info, 0, make([]byte, info.FrameSize()))
		assert.False(t, result.OK)
	})

	t.Run("offset beyond fragment", func(t *testing.T) {
		frame := make([]byte, rleHeaderSize+4)
		binary.LittleEndian.PutUint32(frame[0:4], 2)
		binary.LittleEndian.PutUint32(frame[4:8], 64)
		binary.LittleEndian.PutUint32(frame[8:12], 9999)
		fragments := NewFragmentSequence(frame)
		result := codec.Decode(fragments, info, 0, make([]byte, info.FrameSize()))
		assert.False(t, result.OK)
	})

	t.Run("decoded length mismatch", func(t *testing.T) {
		// Each segment decodes to 2 bytes, but 4x2 needs 8 per segment
		frame := make([]byte, rleHeaderSize)
		binary.LittleEndian.PutUint32(frame[0:4], 2)
		binary.LittleEndian.PutUint32(frame[4:8], 64)
		binary.LittleEndian.PutUint32(frame[8:12], 68)
		frame = append(frame, 0x01, 0x07, 0x09, 0x00) // literal of 2
		frame = append(frame, 0x01, 0x01, 0x02, 0x00)
		fragments := NewFragmentSequence(frame)
		result := codec.Decode(fragments, info, 0, make([]byte, info.FrameSize()))
		assert.False(t, result.OK)
	})

	t.Run("destination too small", func(t *testing.T) {
		pixels := make([]byte, info.FrameSize())
		fragments, err := codec.Encode(pixels, info, nil)
		require.NoError(t, err)
		result := codec.Decode(fragments, info, 0, make([]byte, 4))
		assert.False(t, result.OK)
	})
}

func TestRLE_EncodeValidation(t *testing.T) {
	codec := &RLECodec{}
	info := grayscale16x4x2()

	// Wrong input size
	_, err := codec.Encode(make([]byte, 7), info, nil)
	assert.Error(t, err)

	// 32-bit four-sample data would need 16 segments
	tooDeep := PixelDataInfo{Rows: 1, Columns: 2, BitsAllocated: 32, SamplesPerPixel: 4}
	_, err = codec.Encode(make([]byte, tooDeep.FrameSize()), tooDeep, nil)
	assert.Error(t, err)
}

func TestRLE_Validate(t *testing.T) {
	codec := &RLECodec{}
	info := grayscale16x4x2()

	pixels := make([]byte, info.FrameSize())
	fragments, err := codec.Encode(pixels, info, nil)
	require.NoError(t, err)

	result := codec.Validate(fragments, info)
	assert.True(t, result.OK, "issues: %v", result.Issues)

	bad := NewFragmentSequence(make([]byte, 10))
	result = codec.Validate(bad, info)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Issues)
}
