package tag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Info stores detailed information about a Tag defined in the DICOM
// standard or a private dictionary.
type Info struct {
	Tag Tag
	// List of all possible data encodings for this tag, e.g., "UL", "CS".
	// At least one entry is present; the first is the canonical encoding.
	VRs []vr.VR
	// Human-readable name of the tag formatted for printing, e.g., "Pixel Data"
	Name string
	// Human-readable identifier of the tag, e.g., "PixelData"
	Keyword string
	// Cardinality (# of values expected in the element)
	VM string
	// Whether the tag is retired.
	Retired bool
}

// maskedDict covers the repeating-group entries of PS3.6 Table 6-1 that a
// direct hash lookup cannot resolve. A miss in TagDict falls back to a linear
// scan of these patterns; the canonical tag indexes the full entry in TagDict.
var maskedDict = []MaskedTag{
	// Overlay groups 60xx (every even group 6000-60FE), e.g. (60xx,3000)
	// Overlay Data.
	{Pattern: 0x60000000, Mask: 0xFF010000, Canonical: New(0x6000, 0x0000)},
	// Retired curve groups 50xx (every even group 5000-50FE), e.g. (50xx,3000)
	// Curve Data.
	{Pattern: 0x50000000, Mask: 0xFF010000, Canonical: New(0x5000, 0x0000)},
}

// Find returns information about the given tag from the DICOM standard
// dictionary. Returns an error if the tag is not found.
//
// Lookup is a direct hash probe first; on a miss the masked repeating-group
// patterns (overlay 60xx, curve 50xx) are scanned and the canonical group
// entry is rewritten to the queried tag.
//
// Special case: for even-numbered groups with element 0x0000 a
// GenericGroupLength entry is synthesized, per the standard's (gggg,0000)
// group length convention.
func Find(t Tag) (Info, error) {
	if info, ok := TagDict[t]; ok {
		return info, nil
	}

	// Masked fallback: map e.g. (6002,3000) onto the canonical (6000,3000)
	// entry and report it under the queried tag.
	for _, m := range maskedDict {
		if !m.Matches(t) || t.Group == m.Canonical.Group {
			continue
		}
		canonical := New(m.Canonical.Group, t.Element)
		if info, ok := TagDict[canonical]; ok {
			info.Tag = t
			return info, nil
		}
	}

	// (0000-u-ffff,0000) UL GenericGroupLength 1
	if t.Group%2 == 0 && t.Element == 0x0000 {
		return Info{
			Tag:     t,
			VRs:     []vr.VR{vr.UnsignedLong},
			Name:    "Generic Group Length",
			Keyword: "GenericGroupLength",
			VM:      "1",
			Retired: false,
		}, nil
	}

	return Info{}, fmt.Errorf("tag %s not found in dictionary", t.String())
}

// FindByKeyword searches for a tag by its keyword or name field.
// Returns an error if no tag with the given keyword or name is found.
//
// Note: this performs a linear search through all tags, so it's less
// efficient than Find.
func FindByKeyword(keyword string) (Info, error) {
	if keyword == "" {
		return Info{}, fmt.Errorf("keyword cannot be empty")
	}
	for _, info := range TagDict {
		if info.Keyword == keyword || info.Name == keyword {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("tag with keyword %q not found in dictionary", keyword)
}

// MustFind is like Find, but panics if the tag is not found.
// This should only be used for well-known tags that are guaranteed to exist.
func MustFind(t Tag) Info {
	info, err := Find(t)
	if err != nil {
		panic(fmt.Sprintf("tag %s not found: %v", t.String(), err))
	}
	return info
}

// privateKey identifies a private dictionary entry by normalized creator and
// block offset.
type privateKey struct {
	creator string
	offset  uint8
}

var (
	privateDictMu sync.RWMutex
	privateDict   = make(map[privateKey]Info)
)

// PrivateEntry describes one element of a vendor's private block for
// registration with RegisterPrivateDictionary.
type PrivateEntry struct {
	// Offset is the low byte of the element number within the reserved block.
	Offset uint8
	// VRs lists the possible encodings; the first is canonical.
	VRs []vr.VR
	// Name is the human-readable element name.
	Name string
	// Keyword is the identifier form of the name.
	Keyword string
	// VM is the value multiplicity, e.g. "1" or "1-n".
	VM string
}

// NormalizeCreator canonicalizes a private creator string for dictionary
// comparison: trailing spaces and NULs are trimmed and case is folded. The
// original bytes are never rewritten by this function; callers that need
// byte-exact round trips keep the raw value separately.
func NormalizeCreator(creator string) string {
	return strings.ToUpper(strings.TrimRight(creator, " \x00"))
}

// RegisterPrivateDictionary registers (or extends) the private dictionary for
// the given creator string. Entries registered at runtime shadow any entry
// previously registered under the same (creator, offset).
//
// Safe for concurrent use with FindPrivate.
func RegisterPrivateDictionary(creator string, entries []PrivateEntry) {
	normalized := NormalizeCreator(creator)

	privateDictMu.Lock()
	defer privateDictMu.Unlock()
	for _, e := range entries {
		privateDict[privateKey{creator: normalized, offset: e.Offset}] = Info{
			VRs:     e.VRs,
			Name:    e.Name,
			Keyword: e.Keyword,
			VM:      e.VM,
		}
	}
}

// FindPrivate resolves a private data element through the registered private
// dictionaries. The creator is the private creator string bound to the
// element's block; t supplies the block offset. Returns an error when no
// dictionary covers the (creator, offset) pair, in which case callers treat
// the VR as UN.
func FindPrivate(t Tag, creator string) (Info, error) {
	if creator == "" {
		return Info{}, fmt.Errorf("private tag %s has no creator", t.String())
	}

	privateDictMu.RLock()
	info, ok := privateDict[privateKey{creator: NormalizeCreator(creator), offset: t.Offset()}]
	privateDictMu.RUnlock()
	if !ok {
		return Info{}, fmt.Errorf("private tag %s (creator %q) not found in dictionary", t.String(), creator)
	}

	info.Tag = t
	return info, nil
}
