package dicom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codeninja55/go-dcmx/dicom/element"
	"github.com/codeninja55/go-dcmx/dicom/pixel"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// implementationClassUID identifies this implementation in file meta and
// association negotiation.
const implementationClassUID = "1.2.826.0.1.3680043.10.1511"

// implementationVersionName is the (0002,0013) value this implementation
// writes.
const implementationVersionName = "GO-DCMX_1_0"

// WriteOptions configures DICOM file writing behavior.
type WriteOptions struct {
	// TransferSyntax selects the main dataset encoding. The zero value means
	// Explicit VR Little Endian. Explicit VR Big Endian is decode-only and
	// rejected here.
	TransferSyntax uid.TransferSyntax

	// Overwrite allows replacing an existing file.
	Overwrite bool

	// Atomic writes through a temp file and rename so a failed write never
	// leaves a partial file behind.
	Atomic bool

	// ValidateAfterWrite re-parses the file after writing to verify
	// integrity.
	ValidateAfterWrite bool
}

// WriteFile writes a dataset to a DICOM Part 10 file with default options
// (Explicit VR Little Endian, atomic replace).
func WriteFile(path string, ds *DataSet) error {
	return WriteFileWithOptions(path, ds, WriteOptions{Overwrite: true, Atomic: true})
}

// WriteFileWithOptions writes a dataset to a DICOM Part 10 file.
func WriteFileWithOptions(path string, ds *DataSet, opts WriteOptions) error {
	if ds == nil {
		return fmt.Errorf("cannot write nil dataset")
	}
	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
	}

	write := func(f *os.File) error {
		return Write(f, ds, opts)
	}

	if opts.Atomic {
		if err := writeFileAtomic(path, write); err != nil {
			return err
		}
	} else {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := write(file); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file: %w", err)
		}
	}

	if opts.ValidateAfterWrite {
		if _, err := ParseFile(path); err != nil {
			return fmt.Errorf("validation failed after write: %w", err)
		}
	}
	return nil
}

// writeFileAtomic writes through a same-directory temp file and rename.
func writeFileAtomic(path string, write func(*os.File) error) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".dcmx-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if err := write(tempFile); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Write serializes a dataset as a complete Part 10 stream: preamble, DICM
// prefix, file meta group, then the dataset in the selected transfer syntax.
func Write(w io.Writer, ds *DataSet, opts WriteOptions) error {
	ts := opts.TransferSyntax
	if ts.UID == "" {
		ts = uid.TransferSyntaxExplicitVRLittleEndian
	}
	if ts.UID == uid.ExplicitVRBigEndian.String() {
		return fmt.Errorf("%w: %s is decode-only", ErrUnsupportedTransferSyntax, ts.UID)
	}
	if _, err := uid.FindTransferSyntax(ts.UID); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedTransferSyntax, ts.UID)
	}

	// 128-byte preamble and magic.
	if _, err := w.Write(make([]byte, 128)); err != nil {
		return fmt.Errorf("failed to write preamble: %w", err)
	}
	if _, err := w.Write([]byte("DICM")); err != nil {
		return fmt.Errorf("failed to write DICM prefix: %w", err)
	}

	if err := writeFileMeta(w, ds, ts); err != nil {
		return err
	}

	enc := &elementEncoder{explicitVR: ts.ExplicitVR, order: ts.ByteOrder(), encapsulated: ts.Encapsulated}
	for _, elem := range ds.Elements() {
		if elem.Tag().IsMetaElement() {
			continue
		}
		if err := enc.writeElement(w, elem); err != nil {
			return fmt.Errorf("failed to write element %s: %w", elem.Tag(), err)
		}
	}
	return nil
}

// writeFileMeta builds and serializes group 0x0002: existing meta elements
// are carried over, the mandatory ones are synthesized when absent, the
// transfer syntax UID is forced to the target syntax, and (0002,0000) is
// recomputed over the serialized remainder.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
func writeFileMeta(w io.Writer, ds *DataSet, ts uid.TransferSyntax) error {
	meta := NewDataSet()
	if existing := ds.FileMetaInformation(); existing != nil {
		for _, elem := range existing.Elements() {
			if elem.Tag().Equals(tag.New(0x0002, 0x0000)) {
				continue
			}
			if err := meta.Insert(elem); err != nil {
				return err
			}
		}
	}

	ensureString := func(t tag.Tag, v vr.VR, val string) error {
		if meta.Contains(t) {
			return nil
		}
		sv, err := value.NewStringValue(v, []string{val})
		if err != nil {
			return err
		}
		elem, err := element.New(t, v, sv)
		if err != nil {
			return err
		}
		return meta.Insert(elem)
	}

	// (0002,0001) File Meta Information Version = 00 01
	if !meta.Contains(tag.New(0x0002, 0x0001)) {
		bv, err := value.NewBytesValue(vr.OtherByte, []byte{0x00, 0x01})
		if err != nil {
			return err
		}
		elem, err := element.New(tag.New(0x0002, 0x0001), vr.OtherByte, bv)
		if err != nil {
			return err
		}
		if err := meta.Insert(elem); err != nil {
			return err
		}
	}

	// (0002,0002)/(0002,0003) inherit the dataset's SOP identity.
	if !meta.Contains(tag.New(0x0002, 0x0002)) {
		sopClass, err := ds.GetString(tag.New(0x0008, 0x0016))
		if err != nil {
			return fmt.Errorf("missing SOPClassUID (0008,0016): %w", err)
		}
		if err := ensureString(tag.New(0x0002, 0x0002), vr.UniqueIdentifier, sopClass); err != nil {
			return err
		}
	}
	if !meta.Contains(tag.New(0x0002, 0x0003)) {
		sopInstance, err := ds.GetString(tag.New(0x0008, 0x0018))
		if err != nil {
			return fmt.Errorf("missing SOPInstanceUID (0008,0018): %w", err)
		}
		if err := ensureString(tag.New(0x0002, 0x0003), vr.UniqueIdentifier, sopInstance); err != nil {
			return err
		}
	}

	// (0002,0010) always reflects the syntax actually written.
	tsValue, err := value.NewStringValue(vr.UniqueIdentifier, []string{ts.UID})
	if err != nil {
		return err
	}
	tsElem, err := element.New(tag.TransferSyntaxUID, vr.UniqueIdentifier, tsValue)
	if err != nil {
		return err
	}
	if meta.Contains(tag.TransferSyntaxUID) {
		if err := meta.Replace(tag.TransferSyntaxUID, tsElem); err != nil {
			return err
		}
	} else if err := meta.Insert(tsElem); err != nil {
		return err
	}

	if err := ensureString(tag.New(0x0002, 0x0012), vr.UniqueIdentifier, implementationClassUID); err != nil {
		return err
	}
	if err := ensureString(tag.New(0x0002, 0x0013), vr.ShortString, implementationVersionName); err != nil {
		return err
	}

	// File meta is always explicit VR little endian.
	enc := &elementEncoder{explicitVR: true, order: binary.LittleEndian}
	var body bytes.Buffer
	for _, elem := range meta.Elements() {
		if err := enc.writeElement(&body, elem); err != nil {
			return fmt.Errorf("failed to write meta element %s: %w", elem.Tag(), err)
		}
	}

	// (0002,0000) carries the byte count of everything after itself.
	lengthValue, err := value.NewIntValue(vr.UnsignedLong, []int64{int64(body.Len())})
	if err != nil {
		return err
	}
	lengthElem, err := element.New(tag.New(0x0002, 0x0000), vr.UnsignedLong, lengthValue)
	if err != nil {
		return err
	}
	if err := enc.writeElement(w, lengthElem); err != nil {
		return fmt.Errorf("failed to write file meta group length: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("failed to write file meta group: %w", err)
	}
	return nil
}

// elementEncoder serializes elements under one transfer syntax.
type elementEncoder struct {
	explicitVR   bool
	order        binary.ByteOrder
	encapsulated bool
}

// writeElement serializes one element, dispatching on its value shape.
func (e *elementEncoder) writeElement(w io.Writer, elem *element.Element) error {
	switch v := elem.Value().(type) {
	case *Sequence:
		return e.writeSequence(w, elem.Tag(), v)
	case *pixel.FragmentSequence:
		return e.writeFragmentSequence(w, elem.Tag(), elem.VR(), v)
	default:
		return e.writeFlatElement(w, elem)
	}
}

// valueBytes returns the wire bytes of a flat value in the encoder's byte
// order, padded to even length with the VR's padding byte.
func (e *elementEncoder) valueBytes(elem *element.Element) []byte {
	var data []byte
	switch v := elem.Value().(type) {
	case *value.IntValue:
		data = v.EncodeBytes(e.order)
	case *value.FloatValue:
		data = v.EncodeBytes(e.order)
	default:
		data = elem.Value().Bytes()
	}
	if len(data)%2 == 1 {
		data = append(append([]byte(nil), data...), elem.VR().PaddingByte())
	}
	return data
}

// writeFlatElement serializes a string, numeric or binary element.
func (e *elementEncoder) writeFlatElement(w io.Writer, elem *element.Element) error {
	data := e.valueBytes(elem)
	if err := e.writeHeader(w, elem.Tag(), elem.VR(), uint32(len(data))); err != nil {
		return err
	}
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader serializes a tag, VR code and length in the active encoding.
func (e *elementEncoder) writeHeader(w io.Writer, t tag.Tag, v vr.VR, length uint32) error {
	if err := e.writeTag(w, t); err != nil {
		return err
	}

	if !e.explicitVR {
		return binary.Write(w, e.order, length)
	}

	if _, err := w.Write([]byte(v.String())); err != nil {
		return err
	}
	if v.UsesExplicitLength32() {
		if err := binary.Write(w, e.order, uint16(0)); err != nil {
			return err
		}
		return binary.Write(w, e.order, length)
	}
	if length > 0xFFFF {
		return fmt.Errorf("%w: value length %d exceeds 16-bit field for VR %s", ErrInvalidLength, length, v)
	}
	return binary.Write(w, e.order, uint16(length))
}

func (e *elementEncoder) writeTag(w io.Writer, t tag.Tag) error {
	if err := binary.Write(w, e.order, t.Group); err != nil {
		return err
	}
	return binary.Write(w, e.order, t.Element)
}

// writeSequence serializes an SQ element in the length form the sequence
// carries: delimited items under undefined length, or a precomputed byte
// count.
func (e *elementEncoder) writeSequence(w io.Writer, t tag.Tag, seq *Sequence) error {
	if seq.UndefinedLength() {
		if err := e.writeHeader(w, t, vr.SequenceOfItems, undefinedLength); err != nil {
			return err
		}
		for _, item := range seq.Items() {
			if err := e.writeTag(w, tag.Item); err != nil {
				return err
			}
			if err := binary.Write(w, e.order, uint32(undefinedLength)); err != nil {
				return err
			}
			if err := e.writeItemBody(w, item); err != nil {
				return err
			}
			if err := e.writeTag(w, tag.ItemDelimitation); err != nil {
				return err
			}
			if err := binary.Write(w, e.order, uint32(0)); err != nil {
				return err
			}
		}
		if err := e.writeTag(w, tag.SequenceDelimitation); err != nil {
			return err
		}
		return binary.Write(w, e.order, uint32(0))
	}

	// Defined length: serialize items first to know the byte counts.
	var body bytes.Buffer
	for _, item := range seq.Items() {
		var itemBody bytes.Buffer
		if err := e.writeItemBody(&itemBody, item); err != nil {
			return err
		}
		if err := e.writeTag(&body, tag.Item); err != nil {
			return err
		}
		if err := binary.Write(&body, e.order, uint32(itemBody.Len())); err != nil {
			return err
		}
		if _, err := body.Write(itemBody.Bytes()); err != nil {
			return err
		}
	}

	if err := e.writeHeader(w, t, vr.SequenceOfItems, uint32(body.Len())); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// writeItemBody serializes an item dataset's elements in ascending order.
func (e *elementEncoder) writeItemBody(w io.Writer, item *DataSet) error {
	for _, elem := range item.Elements() {
		if err := e.writeElement(w, elem); err != nil {
			return fmt.Errorf("failed to write item element %s: %w", elem.Tag(), err)
		}
	}
	return nil
}

// writeFragmentSequence serializes encapsulated pixel data: the element
// header with undefined length, the Basic Offset Table item, each fragment
// as an item, and the sequence delimitation item.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func (e *elementEncoder) writeFragmentSequence(w io.Writer, t tag.Tag, v vr.VR, fs *pixel.FragmentSequence) error {
	if !e.encapsulated {
		return fmt.Errorf("%w: fragment sequence at %s requires an encapsulated transfer syntax", ErrUnsupportedTransferSyntax, t)
	}

	if err := e.writeHeader(w, t, v, undefinedLength); err != nil {
		return err
	}

	// Basic Offset Table item, possibly empty.
	offsets := fs.OffsetTable()
	if err := e.writeTag(w, tag.Item); err != nil {
		return err
	}
	if err := binary.Write(w, e.order, uint32(len(offsets)*4)); err != nil {
		return err
	}
	for _, off := range offsets {
		if err := binary.Write(w, binary.LittleEndian, off); err != nil {
			return err
		}
	}

	for i, frag := range fs.Fragments() {
		if len(frag)%2 == 1 {
			return fmt.Errorf("%w: fragment %d has odd length %d", ErrInvalidLength, i, len(frag))
		}
		if err := e.writeTag(w, tag.Item); err != nil {
			return err
		}
		if err := binary.Write(w, e.order, uint32(len(frag))); err != nil {
			return err
		}
		if _, err := w.Write(frag); err != nil {
			return err
		}
	}

	if err := e.writeTag(w, tag.SequenceDelimitation); err != nil {
		return err
	}
	return binary.Write(w, e.order, uint32(0))
}
