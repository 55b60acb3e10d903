// Package dicom provides DICOM dataset, file and stream handling.
package dicom

import (
	"errors"
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Structural errors. These are always fatal for the current decode operation.
var (
	// ErrInvalidPreamble indicates the file doesn't have a valid DICOM preamble.
	// A valid DICOM file must have 128 bytes followed by "DICM" (ASCII).
	ErrInvalidPreamble = errors.New("invalid DICOM preamble: missing or invalid DICM prefix")

	// ErrInvalidVR indicates an invalid or unknown VR was encountered.
	ErrInvalidVR = errors.New("invalid or unknown VR")

	// ErrInvalidTag indicates a malformed tag was encountered.
	ErrInvalidTag = errors.New("invalid or malformed tag")

	// ErrUnsupportedTransferSyntax indicates an unsupported or invalid transfer syntax.
	ErrUnsupportedTransferSyntax = errors.New("invalid or unsupported transfer syntax")

	// ErrMissingTransferSyntax indicates the Transfer Syntax UID was not found
	// in File Meta Information.
	ErrMissingTransferSyntax = errors.New("missing Transfer Syntax UID in File Meta Information")

	// ErrInvalidLength indicates an invalid value length was encountered.
	ErrInvalidLength = errors.New("invalid value length")

	// ErrTruncatedElement indicates an element's declared length exceeds the
	// bytes remaining in its enclosing container.
	ErrTruncatedElement = errors.New("element truncated")

	// ErrInvalidSequence indicates malformed sequence or item structure, such
	// as a missing delimitation item.
	ErrInvalidSequence = errors.New("invalid sequence structure")
)

// Private-tag errors, surfaced according to the reader options.
var (
	// ErrOrphanPrivateElement indicates a private data element whose block has
	// no creator element in the same dataset.
	ErrOrphanPrivateElement = errors.New("orphan private data element")

	// ErrDuplicateCreatorSlot indicates two distinct creator strings claiming
	// the same (group, slot).
	ErrDuplicateCreatorSlot = errors.New("duplicate private creator slot")

	// ErrSlotExhausted indicates no free private block slot remains in the
	// group.
	ErrSlotExhausted = errors.New("private creator slots exhausted")
)

// ErrValidationFailed indicates an error-level validation issue under
// Validate behavior, or an abort requested by the validation callback.
var ErrValidationFailed = errors.New("validation failed")

// Typed-access errors returned by the DataSet getters.
var (
	// ErrNotFound indicates the requested tag is not present in the dataset.
	ErrNotFound = errors.New("element not found")

	// ErrWrongVR indicates the element exists but its VR does not support the
	// requested accessor.
	ErrWrongVR = errors.New("element has wrong VR for requested access")

	// ErrValueParse indicates the element's bytes could not be interpreted as
	// the requested type.
	ErrValueParse = errors.New("element value could not be parsed")
)

// ParseError decorates a decode failure with the stream location and VR
// context a caller needs to report it usefully. It wraps one of the sentinel
// errors above, so errors.Is matching keeps working.
type ParseError struct {
	// Err is the underlying sentinel or cause.
	Err error
	// Tag is the element being decoded when the failure occurred, when known.
	Tag tag.Tag
	// StreamPosition is the byte offset from the start of the stream.
	StreamPosition int64
	// DeclaredVR is the VR read from (or resolved for) the wire.
	DeclaredVR vr.VR
	// ExpectedVR is the dictionary VR, when it differs.
	ExpectedVR vr.VR
	// Message is the human-readable description.
	Message string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Message, e.StreamPosition)
	if e.Tag != (tag.Tag{}) {
		msg = fmt.Sprintf("%s: %s", e.Tag, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseErrorf builds a ParseError wrapping the given sentinel.
func parseErrorf(err error, t tag.Tag, pos int64, format string, args ...any) *ParseError {
	return &ParseError{
		Err:            err,
		Tag:            t,
		StreamPosition: pos,
		Message:        fmt.Sprintf(format, args...),
	}
}
