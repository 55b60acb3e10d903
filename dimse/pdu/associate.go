package pdu

import (
	"bytes"
	"encoding/binary"
	"io"
)

// AssociateRQ is the A-ASSOCIATE-RQ PDU (type 0x01): the association request
// carrying the AE titles, the application context, the proposed presentation
// contexts and the requestor's user information.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part08.html#sect_9.3.2
type AssociateRQ struct {
	ProtocolVersion      uint16
	CalledAETitle        [16]byte
	CallingAETitle       [16]byte
	ApplicationContext   string
	PresentationContexts []PresentationContextRQ
	UserInfo             UserInformation
}

// PresentationContextRQ proposes one abstract syntax with candidate transfer
// syntaxes. IDs are odd in [1, 255].
type PresentationContextRQ struct {
	ID               uint8
	AbstractSyntax   string
	TransferSyntaxes []string
}

// AssociateAC is the A-ASSOCIATE-AC PDU (type 0x02): the acceptance response
// echoing the AE titles and reporting a result per proposed presentation
// context.
type AssociateAC struct {
	ProtocolVersion      uint16
	CalledAETitle        [16]byte
	CallingAETitle       [16]byte
	ApplicationContext   string
	PresentationContexts []PresentationContextAC
	UserInfo             UserInformation
}

// PresentationContextAC reports the negotiation result for one proposed
// presentation context. TransferSyntax is set only on acceptance.
type PresentationContextAC struct {
	ID             uint8
	Result         uint8
	TransferSyntax string
}

// Presentation context results per PS3.8 Table 9-18.
const (
	PresentationContextAcceptance                   uint8 = 0
	PresentationContextUserRejection                uint8 = 1
	PresentationContextProviderRejection            uint8 = 2
	PresentationContextAbstractSyntaxNotSupported   uint8 = 3
	PresentationContextTransferSyntaxesNotSupported uint8 = 4
)

// AssociateRJ is the A-ASSOCIATE-RJ PDU (type 0x03).
type AssociateRJ struct {
	Result uint8
	Source uint8
	Reason uint8
}

// Rejection results per PS3.8 Table 9-21.
const (
	RejectResultPermanent uint8 = 1
	RejectResultTransient uint8 = 2
)

// Rejection sources per PS3.8 Table 9-21.
const (
	RejectSourceServiceUser                 uint8 = 1
	RejectSourceServiceProviderACSE         uint8 = 2
	RejectSourceServiceProviderPresentation uint8 = 3
)

// UserInformation is the user information item (0x50) carried by both
// associate PDUs.
type UserInformation struct {
	MaxPDULength           uint32
	ImplementationClassUID string
	ImplementationVersion  string
}

// associateBody serializes the fields shared by A-ASSOCIATE-RQ and -AC.
func associateBody(version uint16, called, calling [16]byte, appContext string, contexts []byte, ui UserInformation) []byte {
	body := make([]byte, 0, 128+len(contexts))
	body = append(body, byte(version>>8), byte(version))
	body = append(body, 0, 0)
	body = append(body, called[:]...)
	body = append(body, calling[:]...)
	body = append(body, make([]byte, 32)...)
	body = appendItem(body, itemTypeApplicationContext, []byte(appContext))
	body = append(body, contexts...)
	return append(body, encodeUserInformation(ui)...)
}

// decodeAssociateFixed reads the fixed 68-byte prefix shared by both
// associate PDUs.
func decodeAssociateFixed(r *bytes.Reader, version *uint16, called, calling *[16]byte) error {
	var prefix [68]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return err
	}
	*version = binary.BigEndian.Uint16(prefix[0:2])
	copy(called[:], prefix[4:20])
	copy(calling[:], prefix[20:36])
	// prefix[36:68] is reserved
	return nil
}

// Type returns TypeAssociateRQ.
func (p *AssociateRQ) Type() byte {
	return TypeAssociateRQ
}

// Encode writes the complete A-ASSOCIATE-RQ.
func (p *AssociateRQ) Encode(w io.Writer) error {
	var contexts []byte
	for _, pc := range p.PresentationContexts {
		contexts = append(contexts, encodePresentationContextRQ(pc)...)
	}
	body := associateBody(p.ProtocolVersion, p.CalledAETitle, p.CallingAETitle, p.ApplicationContext, contexts, p.UserInfo)
	return encodeWithHeader(w, TypeAssociateRQ, body)
}

// Decode reads the A-ASSOCIATE-RQ body.
func (p *AssociateRQ) Decode(r io.Reader) error {
	br, ok := r.(*bytes.Reader)
	if !ok {
		body, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		br = bytes.NewReader(body)
	}

	if err := decodeAssociateFixed(br, &p.ProtocolVersion, &p.CalledAETitle, &p.CallingAETitle); err != nil {
		return err
	}

	for {
		itemType, itemData, err := readItem(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch itemType {
		case itemTypeApplicationContext:
			p.ApplicationContext = string(itemData)
		case itemTypePresentationContextRQ:
			pc, err := decodePresentationContextRQ(itemData)
			if err != nil {
				return err
			}
			p.PresentationContexts = append(p.PresentationContexts, pc)
		case itemTypeUserInformation:
			ui, err := decodeUserInformation(itemData)
			if err != nil {
				return err
			}
			p.UserInfo = ui
		}
	}
}

// Type returns TypeAssociateAC.
func (p *AssociateAC) Type() byte {
	return TypeAssociateAC
}

// Encode writes the complete A-ASSOCIATE-AC.
func (p *AssociateAC) Encode(w io.Writer) error {
	var contexts []byte
	for _, pc := range p.PresentationContexts {
		contexts = append(contexts, encodePresentationContextAC(pc)...)
	}
	body := associateBody(p.ProtocolVersion, p.CalledAETitle, p.CallingAETitle, p.ApplicationContext, contexts, p.UserInfo)
	return encodeWithHeader(w, TypeAssociateAC, body)
}

// Decode reads the A-ASSOCIATE-AC body.
func (p *AssociateAC) Decode(r io.Reader) error {
	br, ok := r.(*bytes.Reader)
	if !ok {
		body, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		br = bytes.NewReader(body)
	}

	if err := decodeAssociateFixed(br, &p.ProtocolVersion, &p.CalledAETitle, &p.CallingAETitle); err != nil {
		return err
	}

	for {
		itemType, itemData, err := readItem(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch itemType {
		case itemTypeApplicationContext:
			p.ApplicationContext = string(itemData)
		case itemTypePresentationContextAC:
			pc, err := decodePresentationContextAC(itemData)
			if err != nil {
				return err
			}
			p.PresentationContexts = append(p.PresentationContexts, pc)
		case itemTypeUserInformation:
			ui, err := decodeUserInformation(itemData)
			if err != nil {
				return err
			}
			p.UserInfo = ui
		}
	}
}

// Type returns TypeAssociateRJ.
func (p *AssociateRJ) Type() byte {
	return TypeAssociateRJ
}

// Encode writes the complete A-ASSOCIATE-RJ.
func (p *AssociateRJ) Encode(w io.Writer) error {
	return encodeWithHeader(w, TypeAssociateRJ, []byte{0, p.Result, p.Source, p.Reason})
}

// Decode reads the A-ASSOCIATE-RJ body.
func (p *AssociateRJ) Decode(r io.Reader) error {
	var body [4]byte
	if _, err := io.ReadFull(r, body[:]); err != nil {
		return err
	}
	p.Result = body[1]
	p.Source = body[2]
	p.Reason = body[3]
	return nil
}

func encodePresentationContextRQ(pc PresentationContextRQ) []byte {
	inner := []byte{pc.ID, 0, 0, 0}
	inner = appendItem(inner, itemTypeAbstractSyntax, []byte(pc.AbstractSyntax))
	for _, ts := range pc.TransferSyntaxes {
		inner = appendItem(inner, itemTypeTransferSyntax, []byte(ts))
	}
	return appendItem(nil, itemTypePresentationContextRQ, inner)
}

func decodePresentationContextRQ(data []byte) (PresentationContextRQ, error) {
	var pc PresentationContextRQ
	if len(data) < 4 {
		return pc, io.ErrUnexpectedEOF
	}
	pc.ID = data[0]

	r := bytes.NewReader(data[4:])
	for {
		itemType, itemData, err := readItem(r)
		if err == io.EOF {
			return pc, nil
		}
		if err != nil {
			return pc, err
		}
		switch itemType {
		case itemTypeAbstractSyntax:
			pc.AbstractSyntax = string(itemData)
		case itemTypeTransferSyntax:
			pc.TransferSyntaxes = append(pc.TransferSyntaxes, string(itemData))
		}
	}
}

func encodePresentationContextAC(pc PresentationContextAC) []byte {
	inner := []byte{pc.ID, 0, pc.Result, 0}
	if pc.Result == PresentationContextAcceptance {
		inner = appendItem(inner, itemTypeTransferSyntax, []byte(pc.TransferSyntax))
	}
	return appendItem(nil, itemTypePresentationContextAC, inner)
}

func decodePresentationContextAC(data []byte) (PresentationContextAC, error) {
	var pc PresentationContextAC
	if len(data) < 4 {
		return pc, io.ErrUnexpectedEOF
	}
	pc.ID = data[0]
	pc.Result = data[2]

	r := bytes.NewReader(data[4:])
	for {
		itemType, itemData, err := readItem(r)
		if err == io.EOF {
			return pc, nil
		}
		if err != nil {
			return pc, err
		}
		if itemType == itemTypeTransferSyntax {
			pc.TransferSyntax = string(itemData)
		}
	}
}

func encodeUserInformation(ui UserInformation) []byte {
	var inner []byte
	if ui.MaxPDULength > 0 {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], ui.MaxPDULength)
		inner = appendItem(inner, itemTypeMaxLength, length[:])
	}
	if ui.ImplementationClassUID != "" {
		inner = appendItem(inner, itemTypeImplementationClassUID, []byte(ui.ImplementationClassUID))
	}
	if ui.ImplementationVersion != "" {
		inner = appendItem(inner, itemTypeImplementationVersion, []byte(ui.ImplementationVersion))
	}
	return appendItem(nil, itemTypeUserInformation, inner)
}

func decodeUserInformation(data []byte) (UserInformation, error) {
	var ui UserInformation
	r := bytes.NewReader(data)
	for {
		itemType, itemData, err := readItem(r)
		if err == io.EOF {
			return ui, nil
		}
		if err != nil {
			return ui, err
		}
		switch itemType {
		case itemTypeMaxLength:
			if len(itemData) != 4 {
				return ui, io.ErrUnexpectedEOF
			}
			ui.MaxPDULength = binary.BigEndian.Uint32(itemData)
		case itemTypeImplementationClassUID:
			ui.ImplementationClassUID = string(itemData)
		case itemTypeImplementationVersion:
			ui.ImplementationVersion = string(itemData)
		}
	}
}
