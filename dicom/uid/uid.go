// Package uid provides DICOM Unique Identifier (UID) handling, the UID
// dictionary and transfer syntax definitions.
//
// UIDs are used throughout DICOM to uniquely identify various entities
// including transfer syntaxes, SOP classes, and instances.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9
package uid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidUID is returned when a UID string is invalid.
var ErrInvalidUID = errors.New("invalid UID")

// UID represents a DICOM Unique Identifier.
//
// UIDs are character strings composed of numeric components separated by
// periods (.). They follow the ISO 8824 object identifier format and must:
//   - Contain only digits (0-9) and periods (.)
//   - Not exceed 64 characters in length
//   - Not have leading or trailing periods
//   - Not have empty components (consecutive periods)
//   - Not have leading zeros in multi-digit components
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
type UID struct {
	value string
}

// String returns the string representation of the UID.
func (u UID) String() string {
	return u.value
}

// Equals returns true if this UID equals the other UID.
func (u UID) Equals(other UID) bool {
	return u.value == other.value
}

// IsValid checks if a string is a valid DICOM UID per Part 5 Section 9.1.
func IsValid(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	if s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for _, comp := range strings.Split(s, ".") {
		if comp == "" {
			return false
		}
		if len(comp) > 1 && comp[0] == '0' {
			return false
		}
		for _, ch := range comp {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}

// Parse validates and creates a UID from a string.
// Returns an error wrapping ErrInvalidUID if the string is not a valid DICOM UID.
func Parse(s string) (UID, error) {
	if !IsValid(s) {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidUID, s)
	}
	return UID{value: s}, nil
}

// MustParse validates and creates a UID from a string, panicking on error.
// This should only be used for well-known UIDs that are guaranteed to be valid.
func MustParse(s string) UID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Lookup returns the Info for the given UID string.
// Returns false if the UID is not found in the dictionary.
func Lookup(uid string) (Info, bool) {
	info, ok := uidMap[uid]
	return info, ok
}

// Find returns the Info for the given UID string, returning an error if not
// found. This is the error-returning form of Lookup.
func Find(uid string) (Info, error) {
	info, ok := uidMap[uid]
	if !ok {
		return Info{}, fmt.Errorf("UID %q not found in dictionary", uid)
	}
	return info, nil
}

// Name returns the human-readable name for the given UID.
// Returns empty string if the UID is not found.
func Name(uid string) string {
	return uidMap[uid].Name
}

// IsRetired returns true if the given UID has been retired from the DICOM
// standard. Returns false if the UID is not found or is not retired.
func IsRetired(uid string) bool {
	return uidMap[uid].Retired
}

// IsTransferSyntax returns true if the given UID represents a Transfer Syntax.
func IsTransferSyntax(uid string) bool {
	return uidMap[uid].Type == TypeTransferSyntax
}

// IsSOPClass returns true if the given UID represents a SOP Class.
func IsSOPClass(uid string) bool {
	t := uidMap[uid].Type
	return t == TypeSOPClass || t == TypeMetaSOPClass
}

// orgRoot is the registered root under which generated UIDs are issued.
const orgRoot = "1.2.826.0.1.3680043.10"

// Generate creates a new unique DICOM UID.
//
// The 128 bits of a v4 UUID (122 of them random) are split into two uint64
// components and
// appended to the organizational root in decimal form, which keeps the result
// within the 64-character limit while retaining the UUID's collision
// resistance.
//
// Example:
//
//	studyUID := uid.Generate()
//	// e.g. "1.2.826.0.1.3680043.10.9876543210987654321.1234567890123456789"
func Generate() string {
	id := uuid.New()
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return fmt.Sprintf("%s.%d.%d", orgRoot, hi, lo)
}
