package dicom

import (
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dicom/validate"
	"github.com/codeninja55/go-dcmx/dicom/value"
)

// ParseResult is the outcome of decoding a DICOM file: the merged dataset
// (file meta plus main dataset), the transfer syntax the main dataset was
// read with, and the collected validation issues when the options requested
// collection.
type ParseResult struct {
	DataSet        *DataSet
	TransferSyntax uid.TransferSyntax
	Issues         []validate.Issue
}

// Parser decodes a DICOM Part 10 file: 128-byte preamble, "DICM" prefix,
// file meta information (group 0x0002, always explicit VR little endian),
// then the main dataset in the transfer syntax (0002,0010) declares.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7
type Parser struct {
	r    *Reader
	opts ReaderOptions
}

// ParseFile reads and parses a DICOM file from the filesystem with default
// options.
func ParseFile(path string) (*DataSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads and parses a complete DICOM file from r with default
// options.
func ParseReader(r io.Reader) (*DataSet, error) {
	result, err := ParseReaderWithOptions(r, DefaultReaderOptions())
	if err != nil {
		return nil, err
	}
	return result.DataSet, nil
}

// ParseReaderWithOptions reads and parses a complete DICOM file from r.
func ParseReaderWithOptions(r io.Reader, opts ReaderOptions) (*ParseResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		// File meta is always little endian.
		r:    NewReader(r, binary.LittleEndian),
		opts: opts,
	}

	if err := p.readPreamble(); err != nil {
		return nil, fmt.Errorf("invalid DICOM file: %w", err)
	}

	metaDecoder := newElementDecoder(p.r, uid.TransferSyntaxExplicitVRLittleEndian, opts)
	meta, err := p.readFileMeta(metaDecoder)
	if err != nil {
		return nil, fmt.Errorf("failed to read File Meta Information: %w", err)
	}

	ts, err := p.resolveTransferSyntax(meta)
	if err != nil {
		return nil, err
	}

	p.r.SetByteOrder(ts.ByteOrder())

	// The deflated syntax compresses everything after the file meta group as
	// one raw DEFLATE (RFC 1951) stream.
	if ts.Deflated {
		p.r.WrapReader(func(underlying io.Reader) io.Reader {
			return flate.NewReader(underlying)
		})
	}

	mainDecoder := newElementDecoder(p.r, ts, opts)
	mainDecoder.issues = metaDecoder.issues
	ds, err := p.readDataset(mainDecoder)
	if err != nil {
		return nil, err
	}

	// Merge the meta group into the result dataset.
	for _, elem := range meta.Elements() {
		if err := ds.Insert(elem); err != nil {
			return nil, err
		}
	}

	issues := mainDecoder.issues
	validate.SortIssues(issues)

	return &ParseResult{DataSet: ds, TransferSyntax: ts, Issues: issues}, nil
}

// readPreamble consumes the 128-byte preamble and the "DICM" prefix. The
// preamble content is implementation-defined and not validated.
func (p *Parser) readPreamble() error {
	if err := p.r.Skip(128); err != nil {
		return fmt.Errorf("%w: file truncated in preamble", ErrInvalidPreamble)
	}

	prefix, err := p.r.ReadString(4)
	if err != nil {
		return fmt.Errorf("%w: file truncated at DICM prefix", ErrInvalidPreamble)
	}
	if prefix != "DICM" {
		return fmt.Errorf("%w: expected \"DICM\", got %q", ErrInvalidPreamble, prefix)
	}
	return nil
}

// readFileMeta parses group 0x0002. The group starts with the mandatory
// (0002,0000) FileMetaInformationGroupLength, whose value bounds the
// remaining meta bytes exactly.
func (p *Parser) readFileMeta(d *elementDecoder) (*DataSet, error) {
	meta := NewDataSet()

	first, err := d.readElement(meta)
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: stream ends before file meta group", ErrInvalidPreamble)
		}
		return nil, err
	}
	if !first.Tag().Equals(tag.New(0x0002, 0x0000)) {
		return nil, parseErrorf(ErrInvalidTag, first.Tag(), p.r.Position(),
			"file meta group must start with (0002,0000) FileMetaInformationGroupLength")
	}
	groupLength, ok := first.Value().(*value.IntValue)
	if !ok || groupLength.Multiplicity() == 0 {
		return nil, parseErrorf(ErrInvalidLength, first.Tag(), p.r.Position(), "unreadable file meta group length")
	}
	if err := meta.Insert(first); err != nil {
		return nil, err
	}

	end := p.r.Position() + groupLength.First()
	for p.r.Position() < end {
		elem, err := d.readElement(meta)
		if err != nil {
			if err == io.EOF {
				return nil, parseErrorf(ErrTruncatedElement, tag.Tag{}, p.r.Position(),
					"stream ends inside file meta group")
			}
			return nil, err
		}
		if err := meta.Insert(elem); err != nil {
			return nil, err
		}
	}
	if p.r.Position() > end {
		return nil, parseErrorf(ErrInvalidLength, tag.Tag{}, p.r.Position(),
			"file meta elements overran the declared group length")
	}
	return meta, nil
}

// resolveTransferSyntax determines the main dataset's encoding from the
// options override or (0002,0010).
func (p *Parser) resolveTransferSyntax(meta *DataSet) (uid.TransferSyntax, error) {
	tsUID := p.opts.TransferSyntaxOverride
	if tsUID == "" {
		declared, err := meta.GetString(tag.TransferSyntaxUID)
		if err != nil {
			return uid.TransferSyntax{}, fmt.Errorf("%w: (0002,0010) absent", ErrMissingTransferSyntax)
		}
		tsUID = declared
	}
	if tsUID == "" {
		return uid.TransferSyntax{}, fmt.Errorf("%w: (0002,0010) is empty", ErrMissingTransferSyntax)
	}

	ts, err := uid.FindTransferSyntax(tsUID)
	if err != nil {
		return uid.TransferSyntax{}, fmt.Errorf("%w: %q", ErrUnsupportedTransferSyntax, tsUID)
	}
	return ts, nil
}

// readDataset reads main dataset elements until end of stream.
func (p *Parser) readDataset(d *elementDecoder) (*DataSet, error) {
	ds := NewDataSet()
	for {
		pos := p.r.Position()
		elem, err := d.readElement(ds)
		if err != nil {
			if err == io.EOF {
				return ds, nil
			}
			return nil, fmt.Errorf("failed to read dataset element: %w", err)
		}
		if err := d.insertElement(ds, elem, pos); err != nil {
			return nil, err
		}
	}
}
