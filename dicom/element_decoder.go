package dicom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/codeninja55/go-dcmx/dicom/element"
	"github.com/codeninja55/go-dcmx/dicom/pixel"
	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dicom/validate"
	"github.com/codeninja55/go-dcmx/dicom/value"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// undefinedLength is the sentinel value length marking delimited sequences
// and encapsulated pixel data.
const undefinedLength = 0xFFFFFFFF

// elementDecoder turns the byte stream into elements under one transfer
// syntax. The file meta group and the main dataset use separate decoder
// instances since their syntaxes differ.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type elementDecoder struct {
	r    *Reader
	ts   uid.TransferSyntax
	opts ReaderOptions

	// issues accumulates collected validation issues across the decode.
	issues []validate.Issue
}

func newElementDecoder(r *Reader, ts uid.TransferSyntax, opts ReaderOptions) *elementDecoder {
	return &elementDecoder{r: r, ts: ts, opts: opts}
}

// readElement reads the next data element. ds supplies (and receives) the
// private-creator context for VR resolution. Returns io.EOF at a clean
// element boundary.
func (d *elementDecoder) readElement(ds *DataSet) (*element.Element, error) {
	startPos := d.r.Position()
	t, err := d.r.ReadTag()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, parseErrorf(ErrTruncatedElement, tag.Tag{}, startPos, "truncated tag")
	}

	if t.Equals(tag.ItemDelimitation) || t.Equals(tag.SequenceDelimitation) || t.Equals(tag.Item) {
		return nil, parseErrorf(ErrInvalidSequence, t, startPos, "delimiter outside sequence context")
	}

	return d.readElementBody(t, ds, startPos)
}

// readElementBody decodes VR, length and value for a tag that has already
// been read.
func (d *elementDecoder) readElementBody(t tag.Tag, ds *DataSet, startPos int64) (*element.Element, error) {
	v, length, err := d.readVRAndLength(t, ds, startPos)
	if err != nil {
		return nil, err
	}

	elem, raw, err := d.readValue(t, v, length, ds, startPos)
	if err != nil {
		return nil, err
	}

	if raw != nil {
		if err := d.validateElement(elem, raw, ds, startPos); err != nil {
			return nil, err
		}
	}
	return elem, nil
}

// readVRAndLength reads the VR (explicit) or resolves it (implicit), then
// the value length in the form the VR dictates.
func (d *elementDecoder) readVRAndLength(t tag.Tag, ds *DataSet, startPos int64) (vr.VR, uint32, error) {
	if !d.ts.ExplicitVR {
		length, err := d.r.ReadUint32()
		if err != nil {
			return 0, 0, parseErrorf(ErrTruncatedElement, t, startPos, "truncated length")
		}
		return d.resolveImplicitVR(t, ds), length, nil
	}

	vrStr, err := d.r.ReadString(2)
	if err != nil {
		return 0, 0, parseErrorf(ErrTruncatedElement, t, startPos, "truncated VR")
	}
	v, err := vr.Parse(vrStr)
	if err != nil {
		return 0, 0, parseErrorf(ErrInvalidVR, t, startPos, "unrecognized VR %q", vrStr)
	}

	if v.UsesExplicitLength32() {
		// Two reserved bytes, then a 32-bit length.
		if _, err := d.r.ReadUint16(); err != nil {
			return 0, 0, parseErrorf(ErrTruncatedElement, t, startPos, "truncated reserved field")
		}
		length, err := d.r.ReadUint32()
		if err != nil {
			return 0, 0, parseErrorf(ErrTruncatedElement, t, startPos, "truncated 32-bit length")
		}
		return v, length, nil
	}

	length, err := d.r.ReadUint16()
	if err != nil {
		return 0, 0, parseErrorf(ErrTruncatedElement, t, startPos, "truncated 16-bit length")
	}
	return v, uint32(length), nil
}

// resolveImplicitVR resolves the VR for implicit-VR streams: private
// creators are LO by definition, private data consults the creator-bound
// private dictionaries, standard tags consult the data dictionary. Tags
// with multiple possible VRs resolve to the first listed.
func (d *elementDecoder) resolveImplicitVR(t tag.Tag, ds *DataSet) vr.VR {
	if t.IsPrivateCreator() {
		return vr.LongString
	}
	if t.IsPrivate() {
		if creator, ok := ds.PrivateCreators().Lookup(t); ok {
			if info, err := tag.FindPrivate(t, creator); err == nil && len(info.VRs) > 0 {
				return info.VRs[0]
			}
		}
		return vr.Unknown
	}
	if info, err := tag.Find(t); err == nil && len(info.VRs) > 0 {
		return info.VRs[0]
	}
	return vr.Unknown
}

// readValue reads and types the value field. The returned raw slice holds
// the value bytes for flat values and is nil for sequences and fragment
// sequences, which have no single byte run to validate.
func (d *elementDecoder) readValue(t tag.Tag, v vr.VR, length uint32, ds *DataSet, startPos int64) (*element.Element, []byte, error) {
	if length == undefinedLength {
		switch {
		case v == vr.SequenceOfItems:
			seq, err := d.readSequenceUndefined(t, startPos)
			if err != nil {
				return nil, nil, err
			}
			elem, err := element.New(t, v, seq)
			return elem, nil, err

		case t.Equals(tag.PixelData) && d.ts.Encapsulated && v.IsBinaryType():
			fragments, err := d.readFragmentSequence(t, startPos)
			if err != nil {
				return nil, nil, err
			}
			elem, err := element.New(t, vr.OtherByte, fragments)
			return elem, nil, err

		default:
			return nil, nil, parseErrorf(ErrInvalidLength, t, startPos, "undefined length on non-sequence VR %s", v)
		}
	}

	if v == vr.SequenceOfItems {
		seq, err := d.readSequenceDefined(t, int64(length), startPos)
		if err != nil {
			return nil, nil, err
		}
		elem, err := element.New(t, v, seq)
		return elem, nil, err
	}

	data, err := d.r.ReadBytes(int(length))
	if err != nil {
		return nil, nil, parseErrorf(ErrTruncatedElement, t, startPos, "value of %d bytes overruns stream", length)
	}

	// An explicit UN on a private data element may still resolve through the
	// creator-bound private dictionary once the bytes are in hand.
	if v == vr.Unknown && t.IsPrivateData() {
		v = d.resolvePrivateUN(t, ds, data)
	}

	val, err := d.typeValue(t, v, data, startPos)
	if err != nil {
		return nil, nil, err
	}
	elem, err := element.New(t, v, val)
	return elem, data, err
}

// resolvePrivateUN returns the private dictionary's VR for an explicit-UN
// private data element when the stored length is consistent with it, else UN.
func (d *elementDecoder) resolvePrivateUN(t tag.Tag, ds *DataSet, data []byte) vr.VR {
	creator, ok := ds.PrivateCreators().Lookup(t)
	if !ok {
		return vr.Unknown
	}
	info, err := tag.FindPrivate(t, creator)
	if err != nil || len(info.VRs) == 0 {
		return vr.Unknown
	}

	candidate := info.VRs[0]
	if size := candidate.ElementSize(); size > 0 && len(data)%size != 0 {
		return vr.Unknown
	}
	if candidate == vr.SequenceOfItems {
		return vr.Unknown
	}
	return candidate
}

// typeValue converts flat value bytes into the typed value for the VR.
func (d *elementDecoder) typeValue(t tag.Tag, v vr.VR, data []byte, startPos int64) (value.Value, error) {
	switch {
	case v.IsStringType():
		val, err := value.NewStringValueRaw(v, data)
		if err != nil {
			return nil, parseErrorf(ErrInvalidLength, t, startPos, "%v", err)
		}
		return val, nil

	case v == vr.FloatingPointSingle || v == vr.FloatingPointDouble:
		val, err := value.DecodeFloatValue(v, data, d.r.ByteOrder())
		if err != nil {
			return nil, parseErrorf(ErrInvalidLength, t, startPos, "%v", err)
		}
		return val, nil

	case v.IsNumericType():
		val, err := value.DecodeIntValue(v, data, d.r.ByteOrder())
		if err != nil {
			return nil, parseErrorf(ErrInvalidLength, t, startPos, "%v", err)
		}
		return val, nil

	default:
		val, err := value.NewBytesValue(v, data)
		if err != nil {
			return nil, parseErrorf(ErrInvalidLength, t, startPos, "%v", err)
		}
		return val, nil
	}
}

// readSequenceUndefined parses delimited items until the Sequence
// Delimitation Item (FFFE,E0DD).
func (d *elementDecoder) readSequenceUndefined(seqTag tag.Tag, startPos int64) (*Sequence, error) {
	seq := NewSequence()
	seq.SetUndefinedLength(true)

	for {
		itemTag, err := d.r.ReadTag()
		if err != nil {
			return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "sequence not terminated before end of stream")
		}

		itemLen, err := d.r.ReadUint32()
		if err != nil {
			return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "truncated item header")
		}

		switch {
		case itemTag.Equals(tag.SequenceDelimitation):
			return seq, nil

		case itemTag.Equals(tag.Item):
			item, err := d.readItem(seqTag, itemLen)
			if err != nil {
				return nil, err
			}
			seq.Append(item)

		default:
			return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "unexpected tag %s in sequence", itemTag)
		}
	}
}

// readSequenceDefined parses exactly length bytes of items.
func (d *elementDecoder) readSequenceDefined(seqTag tag.Tag, length int64, startPos int64) (*Sequence, error) {
	seq := NewSequence()
	seq.SetUndefinedLength(false)

	end := d.r.Position() + length
	for d.r.Position() < end {
		itemTag, err := d.r.ReadTag()
		if err != nil {
			return nil, parseErrorf(ErrTruncatedElement, seqTag, startPos, "sequence content overruns stream")
		}
		itemLen, err := d.r.ReadUint32()
		if err != nil {
			return nil, parseErrorf(ErrTruncatedElement, seqTag, startPos, "truncated item header")
		}
		if !itemTag.Equals(tag.Item) {
			return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "unexpected tag %s in sequence", itemTag)
		}

		item, err := d.readItem(seqTag, itemLen)
		if err != nil {
			return nil, err
		}
		seq.Append(item)
	}

	// Children running past the parent's declared length fail at the parent.
	if d.r.Position() > end {
		return nil, parseErrorf(ErrTruncatedElement, seqTag, startPos,
			"sequence children consumed %d bytes beyond declared length %d", d.r.Position()-end, length)
	}
	return seq, nil
}

// readItem parses one sequence item into its own dataset. Private-creator
// bindings live per item and never cross item boundaries.
func (d *elementDecoder) readItem(seqTag tag.Tag, itemLen uint32) (*DataSet, error) {
	item := NewDataSet()

	if itemLen == undefinedLength {
		for {
			startPos := d.r.Position()
			t, err := d.r.ReadTag()
			if err != nil {
				return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "item not terminated before end of stream")
			}
			if t.Equals(tag.ItemDelimitation) {
				if _, err := d.r.ReadUint32(); err != nil {
					return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "truncated item delimitation")
				}
				return item, nil
			}
			if t.Equals(tag.SequenceDelimitation) {
				return nil, parseErrorf(ErrInvalidSequence, seqTag, startPos, "sequence delimitation inside undelimited item")
			}

			elem, err := d.readElementBody(t, item, startPos)
			if err != nil {
				return nil, err
			}
			if err := d.insertElement(item, elem, startPos); err != nil {
				return nil, err
			}
		}
	}

	end := d.r.Position() + int64(itemLen)
	for d.r.Position() < end {
		elem, err := d.readElement(item)
		if err != nil {
			if err == io.EOF {
				return nil, parseErrorf(ErrTruncatedElement, seqTag, d.r.Position(), "item content overruns stream")
			}
			return nil, err
		}
		if err := d.insertElement(item, elem, d.r.Position()); err != nil {
			return nil, err
		}
	}
	if d.r.Position() > end {
		return nil, parseErrorf(ErrTruncatedElement, seqTag, d.r.Position(),
			"item children consumed %d bytes beyond declared length %d", d.r.Position()-end, itemLen)
	}
	return item, nil
}

// readFragmentSequence parses encapsulated pixel data: an offset-table item
// followed by fragments, terminated by the Sequence Delimitation Item.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func (d *elementDecoder) readFragmentSequence(pixelTag tag.Tag, startPos int64) (*pixel.FragmentSequence, error) {
	var offsets []uint32
	var fragments [][]byte
	first := true

	for {
		itemTag, err := d.r.ReadTag()
		if err != nil {
			return nil, parseErrorf(ErrInvalidSequence, pixelTag, startPos, "encapsulated pixel data not terminated")
		}
		itemLen, err := d.r.ReadUint32()
		if err != nil {
			return nil, parseErrorf(ErrInvalidSequence, pixelTag, startPos, "truncated fragment header")
		}

		if itemTag.Equals(tag.SequenceDelimitation) {
			return pixel.NewFragmentSequenceWithOffsets(offsets, fragments), nil
		}
		if !itemTag.Equals(tag.Item) {
			return nil, parseErrorf(ErrInvalidSequence, pixelTag, startPos, "unexpected tag %s in encapsulated pixel data", itemTag)
		}
		if itemLen == undefinedLength {
			return nil, parseErrorf(ErrInvalidLength, pixelTag, startPos, "fragment with undefined length")
		}

		data, err := d.r.ReadBytes(int(itemLen))
		if err != nil {
			return nil, parseErrorf(ErrTruncatedElement, pixelTag, startPos, "fragment of %d bytes overruns stream", itemLen)
		}

		if first {
			first = false
			// The first item is the Basic Offset Table, possibly empty.
			if len(data)%4 != 0 {
				return nil, parseErrorf(ErrInvalidLength, pixelTag, startPos, "offset table length %d not a multiple of 4", len(data))
			}
			for off := 0; off < len(data); off += 4 {
				offsets = append(offsets, binary.LittleEndian.Uint32(data[off:]))
			}
			continue
		}
		fragments = append(fragments, data)
	}
}

// insertElement adds a parsed element to the dataset, applying the
// private-tag reader options.
func (d *elementDecoder) insertElement(ds *DataSet, elem *element.Element, pos int64) error {
	t := elem.Tag()

	if t.IsPrivateData() {
		if !d.opts.RetainUnknownPrivateTags && elem.VR() == vr.Unknown {
			return nil
		}
		if ds.IsOrphan(t) {
			if d.opts.FailOnOrphanPrivateElements {
				return parseErrorf(ErrOrphanPrivateElement, t, pos, "no creator bound for block xx%02X", t.Slot())
			}
			if err := d.report(validate.Issue{
				RuleID:         "orphan-private-element",
				Severity:       validate.SeverityWarning,
				Tag:            t,
				VR:             elem.VR(),
				StreamPosition: pos,
				Message:        fmt.Sprintf("no creator bound for block xx%02X", t.Slot()),
			}); err != nil {
				return err
			}
		}
	}

	err := ds.Insert(elem)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicateCreatorSlot) {
		if d.opts.FailOnDuplicatePrivateSlots {
			return parseErrorf(ErrDuplicateCreatorSlot, t, pos, "%v", err)
		}
		// Keep the first binding; store the element anyway.
		ds.elements[t] = elem
		ds.sorted = nil
		return d.report(validate.Issue{
			RuleID:         "duplicate-private-slot",
			Severity:       validate.SeverityWarning,
			Tag:            t,
			VR:             elem.VR(),
			StreamPosition: pos,
			Message:        err.Error(),
		})
	}
	return err
}

// validateElement runs the configured profile against a parsed element,
// passing the raw bytes before any padding trim.
func (d *elementDecoder) validateElement(elem *element.Element, raw []byte, ds *DataSet, pos int64) error {
	profile := d.opts.ValidationProfile
	if profile == nil {
		return nil
	}

	t := elem.Tag()
	ctx := &validate.Context{
		Tag:               t,
		DeclaredVR:        elem.VR(),
		Raw:               raw,
		TransferSyntaxUID: d.ts.UID,
		StreamPosition:    pos,
		IsPrivate:         t.IsPrivate(),
	}
	if t.IsPrivate() {
		ctx.PrivateCreator, _ = ds.PrivateCreators().Lookup(t)
	} else if info, err := tag.Find(t); err == nil && len(info.VRs) > 0 {
		ctx.ExpectedVR = info.VRs[0]
		ctx.HasExpectedVR = true
	}

	for _, issue := range profile.Run(ctx) {
		if err := d.report(issue); err != nil {
			return err
		}
		if profile.IsFatal(issue) {
			return parseErrorf(ErrValidationFailed, t, pos, "%s", issue.Message)
		}
	}
	return nil
}

// report routes one issue through collection and the abort callback.
func (d *elementDecoder) report(issue validate.Issue) error {
	if d.opts.CollectIssues {
		d.issues = append(d.issues, issue)
	}
	if d.opts.OnIssue != nil && !d.opts.OnIssue(issue) {
		return parseErrorf(ErrValidationFailed, issue.Tag, issue.StreamPosition,
			"parsing aborted by validation callback: %s", issue.Message)
	}
	return nil
}
