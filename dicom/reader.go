package dicom

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// Reader wraps an io.Reader with the byte-level operations the element
// decoder needs: endianness-aware integers, exact-count byte reads and
// stream position tracking. The byte order can change mid-stream, which
// happens once per file when the main dataset's transfer syntax takes over
// from the always-little-endian file meta group.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.3
type Reader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
	position  int64

	scratch [8]byte
}

// NewReader creates a binary reader over r with the given byte order.
func NewReader(r io.Reader, byteOrder binary.ByteOrder) *Reader {
	return &Reader{r: r, byteOrder: byteOrder}
}

// readFull fills buf from the stream, mapping short reads to io.EOF (nothing
// read) or io.ErrUnexpectedEOF (partial read) and advancing the position.
func (r *Reader) readFull(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.position += int64(n)
	if err != nil {
		if err == io.EOF && n == 0 {
			return io.EOF
		}
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return fmt.Errorf("read %d bytes: %w", len(buf), err)
	}
	return nil
}

// ReadUint16 reads a 16-bit unsigned integer in the current byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	buf := r.scratch[:2]
	if err := r.readFull(buf); err != nil {
		return 0, err
	}
	return r.byteOrder.Uint16(buf), nil
}

// ReadUint32 reads a 32-bit unsigned integer in the current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	buf := r.scratch[:4]
	if err := r.readFull(buf); err != nil {
		return 0, err
	}
	return r.byteOrder.Uint32(buf), nil
}

// ReadTag reads a tag as two consecutive uint16s (group then element) in the
// current byte order.
func (r *Reader) ReadTag() (tag.Tag, error) {
	group, err := r.ReadUint16()
	if err != nil {
		return tag.Tag{}, err
	}
	elem, err := r.ReadUint16()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return tag.Tag{}, err
	}
	return tag.New(group, elem), nil
}

// ReadBytes reads exactly n bytes. Returns an empty slice for n == 0.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString reads exactly n bytes as a string. Trailing padding is
// preserved; trimming is the caller's concern.
func (r *Reader) ReadString(n int) (string, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int) error {
	if n == 0 {
		return nil
	}
	skipped, err := io.CopyN(io.Discard, r.r, int64(n))
	r.position += skipped
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// ByteOrder returns the current byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.byteOrder
}

// SetByteOrder changes the byte order for subsequent reads.
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// Position returns the number of bytes consumed from the underlying stream.
func (r *Reader) Position() int64 {
	return r.position
}

// WrapReader replaces the underlying reader, preserving the position
// counter. Used to splice in a DEFLATE decompressor for the deflated
// transfer syntax.
func (r *Reader) WrapReader(wrap func(io.Reader) io.Reader) {
	r.r = wrap(r.r)
}
