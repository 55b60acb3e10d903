package pixel

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/uid"
)

// unsupportedCodec is the stand-in registered for transfer syntaxes whose
// codecs are external plug-ins (the JPEG family). It reports empty
// capabilities and fails every operation cleanly, so callers can distinguish
// "known syntax, no implementation linked" from "unknown syntax".
type unsupportedCodec struct {
	ts uid.TransferSyntax
}

func (c *unsupportedCodec) TransferSyntax() uid.TransferSyntax {
	return c.ts
}

func (c *unsupportedCodec) Capabilities() Capabilities {
	return Capabilities{Lossy: c.ts.Lossy}
}

func (c *unsupportedCodec) Decode(_ *FragmentSequence, _ PixelDataInfo, _ int, _ []byte) DecodeResult {
	return DecodeResult{
		Diagnostics: []string{fmt.Sprintf("%v: %s requires an external codec plug-in", ErrCodecUnsupported, c.ts.UID)},
	}
}

func (c *unsupportedCodec) Encode(_ []byte, _ PixelDataInfo, _ *EncodeOptions) (*FragmentSequence, error) {
	return nil, fmt.Errorf("%w: %s requires an external codec plug-in", ErrCodecUnsupported, c.ts.UID)
}

func (c *unsupportedCodec) Validate(_ *FragmentSequence, _ PixelDataInfo) ValidationResult {
	return ValidationResult{
		Issues: []string{fmt.Sprintf("%v: %s requires an external codec plug-in", ErrCodecUnsupported, c.ts.UID)},
	}
}

func init() {
	// Route the JPEG family to stand-ins. A linked plug-in re-registers at
	// PriorityNative and wins.
	jpegFamily := []string{
		uid.JPEGBaseline8Bit.String(),
		uid.JPEGExtended12Bit.String(),
		uid.JPEGLossless.String(),
		uid.JPEGLosslessSV1.String(),
		uid.JPEGLSLossless.String(),
		uid.JPEGLSNearLossless.String(),
		uid.JPEG2000Lossless.String(),
		uid.JPEG2000.String(),
	}
	for _, tsUID := range jpegFamily {
		ts, err := uid.FindTransferSyntax(tsUID)
		if err != nil {
			panic(err)
		}
		Register(&unsupportedCodec{ts: ts}, PriorityPure)
	}
}
