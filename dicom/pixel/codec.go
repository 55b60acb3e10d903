package pixel

import (
	"github.com/codeninja55/go-dcmx/dicom/uid"
)

// PixelDataInfo carries the image-pixel module attributes a codec needs to
// interpret a frame.
type PixelDataInfo struct {
	Rows    uint16
	Columns uint16
	// BitsAllocated is the container size of one sample in bits.
	BitsAllocated uint16
	BitsStored    uint16
	HighBit       uint16
	// SamplesPerPixel is 1 for grayscale, 3 for RGB/YBR.
	SamplesPerPixel           uint16
	PhotometricInterpretation string
	// PlanarConfiguration is 0 for interleaved samples, 1 for planar.
	PlanarConfiguration uint16
	// PixelRepresentation is 1 for signed samples.
	PixelRepresentation uint16
}

// BytesPerSample returns the container size of one sample in whole bytes.
func (info PixelDataInfo) BytesPerSample() int {
	return (int(info.BitsAllocated) + 7) / 8
}

// FrameSize returns the byte size of one decoded frame.
func (info PixelDataInfo) FrameSize() int {
	return int(info.Rows) * int(info.Columns) * int(info.SamplesPerPixel) * info.BytesPerSample()
}

// Capabilities describes what a codec implementation can do.
type Capabilities struct {
	Encode     bool
	Decode     bool
	Lossy      bool
	MultiFrame bool
	// BitDepths lists the supported BitsAllocated values.
	BitDepths []uint16
	// SamplesPerPixel lists the supported sample counts.
	SamplesPerPixel []uint16
}

// DecodeResult reports the outcome of a frame decode. On failure the
// destination buffer contents are unspecified.
type DecodeResult struct {
	OK           bool
	BytesWritten int
	// Diagnostics carries human-readable failure or warning detail.
	Diagnostics []string
}

// ValidationResult reports a cheap structural check of encapsulated data
// without a full decode.
type ValidationResult struct {
	OK     bool
	Issues []string
}

// EncodeOptions carries optional codec-specific encode parameters.
type EncodeOptions struct {
	// Quality is a codec-specific lossy quality setting; ignored by lossless
	// codecs.
	Quality int
}

// Codec compresses and decompresses encapsulated pixel data for one transfer
// syntax. Implementations must be safe for concurrent use and free of shared
// mutable state across frames, so callers may encode frames in parallel.
type Codec interface {
	// TransferSyntax returns the transfer syntax this codec implements.
	TransferSyntax() uid.TransferSyntax

	// Capabilities describes the codec's supported operations.
	Capabilities() Capabilities

	// Decode decompresses one frame into dst, which must be at least
	// info.FrameSize() bytes. It never writes beyond dst.
	Decode(fragments *FragmentSequence, info PixelDataInfo, frame int, dst []byte) DecodeResult

	// Encode compresses one frame of native pixel data into a fragment
	// sequence whose first item is the Basic Offset Table. Every fragment
	// has even length.
	Encode(pixels []byte, info PixelDataInfo, opts *EncodeOptions) (*FragmentSequence, error)

	// Validate performs a cheap structural check without a full decode.
	Validate(fragments *FragmentSequence, info PixelDataInfo) ValidationResult
}
