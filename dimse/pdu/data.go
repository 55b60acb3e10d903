package pdu

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DataTF is the P-DATA-TF PDU (type 0x04): one or more presentation data
// values, each bound to a presentation context.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part08.html#sect_9.3.5
type DataTF struct {
	Items []PresentationDataValue
}

// PresentationDataValue is one PDV item: a context ID, a message control
// header and a DIMSE fragment.
type PresentationDataValue struct {
	PresentationContextID uint8
	MessageControlHeader  uint8
	Data                  []byte
}

// Message control header flags per PS3.8 Annex E.
const (
	// ControlCommand marks a command (rather than dataset) fragment.
	ControlCommand uint8 = 0x01
	// ControlLastFragment marks the final fragment of a message.
	ControlLastFragment uint8 = 0x02
)

// Type returns TypeDataTF.
func (p *DataTF) Type() byte {
	return TypeDataTF
}

// Encode writes the complete P-DATA-TF.
func (p *DataTF) Encode(w io.Writer) error {
	var body []byte
	for _, item := range p.Items {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(2+len(item.Data)))
		body = append(body, length[:]...)
		body = append(body, item.PresentationContextID, item.MessageControlHeader)
		body = append(body, item.Data...)
	}
	return encodeWithHeader(w, TypeDataTF, body)
}

// Decode reads P-DATA-TF items until the body is exhausted.
func (p *DataTF) Decode(r io.Reader) error {
	for {
		var lengthBuf [4]byte
		if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		length := binary.BigEndian.Uint32(lengthBuf[:])
		if length < 2 {
			return fmt.Errorf("%w: PDV item length %d too short", ErrMalformed, length)
		}
		if length > MaxLength {
			return fmt.Errorf("%w: PDV item length %d", ErrTooLarge, length)
		}

		var pdv PresentationDataValue
		var prefix [2]byte
		if _, err := io.ReadFull(r, prefix[:]); err != nil {
			return io.ErrUnexpectedEOF
		}
		pdv.PresentationContextID = prefix[0]
		pdv.MessageControlHeader = prefix[1]

		pdv.Data = make([]byte, length-2)
		if _, err := io.ReadFull(r, pdv.Data); err != nil {
			return io.ErrUnexpectedEOF
		}
		p.Items = append(p.Items, pdv)
	}
}

// IsCommand returns true if the PDV carries a command fragment.
func (pdv *PresentationDataValue) IsCommand() bool {
	return pdv.MessageControlHeader&ControlCommand != 0
}

// IsLastFragment returns true if the PDV is the final fragment of its
// message.
func (pdv *PresentationDataValue) IsLastFragment() bool {
	return pdv.MessageControlHeader&ControlLastFragment != 0
}
