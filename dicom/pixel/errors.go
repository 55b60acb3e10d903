package pixel

import "errors"

var (
	// ErrCodecNotFound indicates no codec is registered for the transfer syntax.
	ErrCodecNotFound = errors.New("no codec registered for transfer syntax")

	// ErrCodecUnsupported indicates the codec exists but cannot perform the
	// requested operation (e.g. a stand-in for an external plug-in).
	ErrCodecUnsupported = errors.New("codec does not support this operation")

	// ErrSegmentHeader indicates an invalid RLE segment header: bad segment
	// count or an offset outside the fragment.
	ErrSegmentHeader = errors.New("invalid RLE segment header")

	// ErrFragmentTruncated indicates a fragment shorter than its declared
	// structure requires.
	ErrFragmentTruncated = errors.New("pixel data fragment truncated")

	// ErrDecodedLengthMismatch indicates a decoded segment or frame whose
	// length does not match the image dimensions.
	ErrDecodedLengthMismatch = errors.New("decoded length does not match image dimensions")

	// ErrBufferTooSmall indicates the destination buffer cannot hold a
	// decoded frame.
	ErrBufferTooSmall = errors.New("destination buffer too small")
)
