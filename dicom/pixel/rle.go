package pixel

import (
	"encoding/binary"
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/uid"
)

// rleHeaderSize is the fixed RLE frame header: a uint32 segment count plus 15
// uint32 segment start offsets.
const rleHeaderSize = 64

// rleMaxSegments is the most segments one RLE frame can carry.
const rleMaxSegments = 15

// RLECodec implements DICOM RLE Lossless (1.2.840.10008.1.2.5): PackBits
// run-length coding over byte-deinterleaved segments.
//
// For b = BitsAllocated/8 bytes per sample and s samples per pixel, a frame
// carries n = b*s segments ordered most-significant byte first within each
// sample, samples in color order. Each segment PackBits-encodes one byte
// plane of rows*columns bytes.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_G
type RLECodec struct{}

// TransferSyntax returns RLE Lossless.
func (c *RLECodec) TransferSyntax() uid.TransferSyntax {
	return uid.TransferSyntaxRLELossless
}

// Capabilities reports full encode/decode support for 8-, 16- and 32-bit data,
// grayscale and three-sample color, multi-frame via the offset table.
func (c *RLECodec) Capabilities() Capabilities {
	return Capabilities{
		Encode:          true,
		Decode:          true,
		Lossy:           false,
		MultiFrame:      true,
		BitDepths:       []uint16{8, 16, 32},
		SamplesPerPixel: []uint16{1, 3},
	}
}

// segmentCount returns the RLE segment count the image attributes demand.
func segmentCount(info PixelDataInfo) int {
	return info.BytesPerSample() * int(info.SamplesPerPixel)
}

// sampleByteOffset maps (pixel, sample, byte-within-sample) to the byte's
// position in a native little-endian frame buffer. The segment index b runs
// MSB-first, so segment byte b has little-endian position B-1-b within the
// sample.
func sampleByteOffset(info PixelDataInfo, pixel, sample, msbIndex int) int {
	bytesPerSample := info.BytesPerSample()
	pixels := int(info.Rows) * int(info.Columns)

	var sampleBase int
	if info.PlanarConfiguration == 1 {
		sampleBase = (sample*pixels + pixel) * bytesPerSample
	} else {
		sampleBase = (pixel*int(info.SamplesPerPixel) + sample) * bytesPerSample
	}
	return sampleBase + (bytesPerSample - 1 - msbIndex)
}

// Decode decompresses one RLE frame into dst.
func (c *RLECodec) Decode(fragments *FragmentSequence, info PixelDataInfo, frame int, dst []byte) DecodeResult {
	fail := func(format string, args ...any) DecodeResult {
		return DecodeResult{Diagnostics: []string{fmt.Sprintf(format, args...)}}
	}

	data, err := fragments.FrameData(frame)
	if err != nil {
		return fail("frame %d: %v", frame, err)
	}
	if len(data) < rleHeaderSize {
		return fail("%v: frame %d is %d bytes, header needs %d", ErrFragmentTruncated, frame, len(data), rleHeaderSize)
	}

	frameSize := info.FrameSize()
	if len(dst) < frameSize {
		return fail("%v: need %d bytes, have %d", ErrBufferTooSmall, frameSize, len(dst))
	}

	numSegments := int(binary.LittleEndian.Uint32(data[0:4]))
	expected := segmentCount(info)
	if numSegments != expected {
		return fail("%v: frame has %d segments, image attributes require %d", ErrSegmentHeader, numSegments, expected)
	}
	if numSegments < 1 || numSegments > rleMaxSegments {
		return fail("%v: segment count %d out of range", ErrSegmentHeader, numSegments)
	}

	offsets := make([]int, rleMaxSegments)
	for i := range offsets {
		offsets[i] = int(binary.LittleEndian.Uint32(data[4+i*4 : 8+i*4]))
	}
	if offsets[0] != rleHeaderSize {
		return fail("%v: first segment offset %d, want %d", ErrSegmentHeader, offsets[0], rleHeaderSize)
	}

	segmentLength := int(info.Rows) * int(info.Columns)
	plane := make([]byte, segmentLength)

	bytesPerSample := info.BytesPerSample()
	for seg := 0; seg < numSegments; seg++ {
		start := offsets[seg]
		end := len(data)
		if seg+1 < numSegments {
			end = offsets[seg+1]
		}
		if start > len(data) || end > len(data) || start > end {
			return fail("%v: segment %d spans [%d,%d) beyond fragment of %d bytes", ErrSegmentHeader, seg, start, end, len(data))
		}

		n, err := decodePackBits(data[start:end], plane)
		if err != nil {
			return fail("segment %d: %v", seg, err)
		}
		if n != segmentLength {
			return fail("%v: segment %d decoded %d bytes, want %d", ErrDecodedLengthMismatch, seg, n, segmentLength)
		}

		// Re-interleave this byte plane into the destination.
		sample := seg / bytesPerSample
		msbIndex := seg % bytesPerSample
		for pixel := 0; pixel < segmentLength; pixel++ {
			dst[sampleByteOffset(info, pixel, sample, msbIndex)] = plane[pixel]
		}
	}

	return DecodeResult{OK: true, BytesWritten: frameSize}
}

// Encode compresses one frame of native little-endian pixel data. The result
// carries an empty Basic Offset Table item followed by one even-length
// fragment holding the RLE frame.
func (c *RLECodec) Encode(pixels []byte, info PixelDataInfo, _ *EncodeOptions) (*FragmentSequence, error) {
	frameSize := info.FrameSize()
	if len(pixels) != frameSize {
		return nil, fmt.Errorf("%w: have %d bytes, image attributes require %d", ErrDecodedLengthMismatch, len(pixels), frameSize)
	}

	numSegments := segmentCount(info)
	if numSegments < 1 || numSegments > rleMaxSegments {
		return nil, fmt.Errorf("%w: %d segments unsupported (max %d)", ErrSegmentHeader, numSegments, rleMaxSegments)
	}

	segmentLength := int(info.Rows) * int(info.Columns)
	bytesPerSample := info.BytesPerSample()

	header := make([]byte, rleHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(numSegments))

	plane := make([]byte, segmentLength)
	encoded := make([][]byte, numSegments)
	offset := rleHeaderSize
	for seg := 0; seg < numSegments; seg++ {
		sample := seg / bytesPerSample
		msbIndex := seg % bytesPerSample
		for pixel := 0; pixel < segmentLength; pixel++ {
			plane[pixel] = pixels[sampleByteOffset(info, pixel, sample, msbIndex)]
		}

		segBytes := encodePackBits(plane)
		if len(segBytes)%2 == 1 {
			segBytes = append(segBytes, 0x00)
		}
		encoded[seg] = segBytes

		binary.LittleEndian.PutUint32(header[4+seg*4:8+seg*4], uint32(offset))
		offset += len(segBytes)
	}

	frame := make([]byte, 0, offset)
	frame = append(frame, header...)
	for _, segBytes := range encoded {
		frame = append(frame, segBytes...)
	}

	return NewFragmentSequence(frame), nil
}

// Validate structurally checks every frame header without decoding.
func (c *RLECodec) Validate(fragments *FragmentSequence, info PixelDataInfo) ValidationResult {
	result := ValidationResult{OK: true}
	flag := func(format string, args ...any) {
		result.OK = false
		result.Issues = append(result.Issues, fmt.Sprintf(format, args...))
	}

	expected := segmentCount(info)
	for frame := 0; frame < fragments.NumFrames(); frame++ {
		data, err := fragments.FrameData(frame)
		if err != nil {
			flag("frame %d: %v", frame, err)
			continue
		}
		if len(data) < rleHeaderSize {
			flag("frame %d: %d bytes, header needs %d", frame, len(data), rleHeaderSize)
			continue
		}
		if len(data)%2 == 1 {
			flag("frame %d: odd fragment length %d", frame, len(data))
		}
		numSegments := int(binary.LittleEndian.Uint32(data[0:4]))
		if numSegments != expected {
			flag("frame %d: %d segments, image attributes require %d", frame, numSegments, expected)
			continue
		}
		for seg := 0; seg < numSegments; seg++ {
			off := int(binary.LittleEndian.Uint32(data[4+seg*4 : 8+seg*4]))
			if seg == 0 && off != rleHeaderSize {
				flag("frame %d: first segment offset %d, want %d", frame, off, rleHeaderSize)
			}
			if off > len(data) {
				flag("frame %d: segment %d offset %d beyond fragment of %d bytes", frame, seg, off, len(data))
			}
		}
	}
	return result
}

// decodePackBits expands PackBits-coded bytes into dst, returning the number
// of bytes produced. The control byte h is interpreted as int8: h >= 0 copies
// h+1 literal bytes, h in [-127,-1] repeats the next byte -h+1 times, and
// -128 is a no-op. Decoding stops once dst is full, so a trailing segment pad
// byte is ignored.
func decodePackBits(src, dst []byte) (int, error) {
	pos, out := 0, 0
	for pos < len(src) && out < len(dst) {
		control := int8(src[pos])
		pos++

		switch {
		case control >= 0:
			count := int(control) + 1
			if pos+count > len(src) {
				return 0, fmt.Errorf("literal run of %d bytes overruns input at %d", count, pos)
			}
			if out+count > len(dst) {
				return 0, fmt.Errorf("literal run of %d bytes overruns output at %d", count, out)
			}
			copy(dst[out:], src[pos:pos+count])
			pos += count
			out += count

		case control != -128:
			count := 1 - int(control)
			if pos >= len(src) {
				return 0, fmt.Errorf("replicate run missing data byte at %d", pos)
			}
			if out+count > len(dst) {
				return 0, fmt.Errorf("replicate run of %d bytes overruns output at %d", count, out)
			}
			b := src[pos]
			pos++
			for i := 0; i < count; i++ {
				dst[out+i] = b
			}
			out += count
		}
		// control == -128: no-op, never emitted by the encoder
	}
	return out, nil
}

// encodePackBits compresses src with PackBits: runs of three or more
// identical bytes become replicate runs, everything else accumulates into
// literal runs of at most 128 bytes. The -128 no-op is never emitted.
func encodePackBits(src []byte) []byte {
	var out []byte
	var literal []byte

	flushLiteral := func() {
		for len(literal) > 0 {
			n := len(literal)
			if n > 128 {
				n = 128
			}
			out = append(out, byte(n-1))
			out = append(out, literal[:n]...)
			literal = literal[n:]
		}
	}

	i := 0
	for i < len(src) {
		run := 1
		for i+run < len(src) && src[i+run] == src[i] && run < 128 {
			run++
		}
		if run >= 3 {
			flushLiteral()
			out = append(out, byte(int8(1-run)), src[i])
		} else {
			literal = append(literal, src[i:i+run]...)
			if len(literal) >= 128 {
				flushLiteral()
			}
		}
		i += run
	}
	flushLiteral()
	return out
}

func init() {
	Register(&RLECodec{}, PriorityPure)
}
