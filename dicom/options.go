package dicom

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/validate"
	"github.com/go-playground/validator/v10"
)

// optionsValidator checks ReaderOptions struct tags.
var optionsValidator = validator.New()

// ReaderOptions configures dataset decoding.
type ReaderOptions struct {
	// TransferSyntaxOverride forces the main dataset's transfer syntax,
	// overriding (0002,0010). Empty means use the file's declared syntax.
	TransferSyntaxOverride string `validate:"omitempty,min=1,max=64"`

	// RetainUnknownPrivateTags keeps private data elements whose VR cannot be
	// resolved (stored as UN). When false such elements are dropped.
	RetainUnknownPrivateTags bool

	// FailOnOrphanPrivateElements makes a private data element without a
	// creator binding fatal instead of a collected issue.
	FailOnOrphanPrivateElements bool

	// FailOnDuplicatePrivateSlots makes two distinct creator strings on one
	// (group, slot) fatal instead of keeping the first binding.
	FailOnDuplicatePrivateSlots bool

	// ValidationProfile selects the rules run as each element finishes
	// parsing. Nil runs no validation.
	ValidationProfile *validate.Profile

	// OnIssue is invoked for every issue produced during the decode.
	// Returning false aborts parsing with a fatal error.
	OnIssue func(validate.Issue) bool

	// CollectIssues gathers issues into the parse result, stable-ordered by
	// stream position.
	CollectIssues bool

	// CharacterSetOverride names a character set to use in place of
	// (0008,0005). Validate checks its length; the decoder does not read it,
	// and string values are kept as raw bytes in every case.
	CharacterSetOverride string `validate:"omitempty,max=64"`
}

// DefaultReaderOptions returns the options ParseFile and ParseReader use:
// unknown private tags retained, lenient private-tag handling, no
// validation.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{RetainUnknownPrivateTags: true}
}

// Validate checks the option values themselves.
func (o *ReaderOptions) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("invalid reader options: %w", err)
	}
	return nil
}
