package validate

import (
	"strings"

	"github.com/codeninja55/go-dcmx/dicom/datetime"
	"github.com/codeninja55/go-dcmx/dicom/uid"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// logicalValues trims the VR's padding from the raw bytes and splits
// multi-valued VRs on the backslash separator. Empty values produce an empty
// slice.
func logicalValues(ctx *Context) []string {
	s := strings.TrimRight(string(ctx.Raw), string([]byte{ctx.DeclaredVR.PaddingByte(), ' ', 0x00}))
	if s == "" {
		return nil
	}
	if !ctx.DeclaredVR.AllowsMultiValue() {
		return []string{s}
	}
	return strings.Split(s, "\\")
}

// repertoireOf reports whether every byte of s is in the allowed set.
func repertoireOf(s, allowed string) (byte, bool) {
	for i := 0; i < len(s); i++ {
		if !strings.Contains(allowed, s[i:i+1]) {
			return s[i], false
		}
	}
	return 0, true
}

// RuleEvenLength flags odd value lengths on the wire. The reader keeps going
// (it never inserts an implicit pad), so this is a warning.
var RuleEvenLength = Rule{
	ID:          "even-length",
	Description: "element value length must be even",
	Check: func(ctx *Context) *Issue {
		if len(ctx.Raw)%2 == 0 {
			return nil
		}
		issue := newIssue(ctx, "even-length", SeverityWarning, "odd value length %d", len(ctx.Raw))
		issue.SuggestedFix = "pad the value with the VR's padding byte"
		return issue
	},
}

// RuleMaxLength enforces each VR's maximum value length, per logical value.
var RuleMaxLength = Rule{
	ID:          "max-length",
	Description: "value must not exceed the VR's maximum length",
	Check: func(ctx *Context) *Issue {
		maxLen := ctx.DeclaredVR.MaxLength()
		if maxLen == 0 {
			return nil
		}
		if !ctx.DeclaredVR.IsStringType() {
			if len(ctx.Raw) > maxLen {
				return newIssue(ctx, "max-length", SeverityError, "value length %d exceeds VR %s maximum %d", len(ctx.Raw), ctx.DeclaredVR, maxLen)
			}
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if len(v) > maxLen {
				return newIssue(ctx, "max-length", SeverityError, "value %q length %d exceeds VR %s maximum %d", v, len(v), ctx.DeclaredVR, maxLen)
			}
		}
		return nil
	},
}

// RuleDateFormat validates DA values as YYYYMMDD.
var RuleDateFormat = Rule{
	ID:          "da-format",
	Description: "DA values must be valid YYYYMMDD dates",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.Date {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if _, err := datetime.ParseDate(v); err != nil {
				return newIssue(ctx, "da-format", SeverityError, "invalid DA value %q: %v", v, err)
			}
		}
		return nil
	},
}

// RuleTimeFormat validates TM values as HH[MM[SS[.F{1,6}]]].
var RuleTimeFormat = Rule{
	ID:          "tm-format",
	Description: "TM values must be valid HH[MM[SS[.FFFFFF]]] times",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.Time {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if _, err := datetime.ParseTime(v); err != nil {
				return newIssue(ctx, "tm-format", SeverityError, "invalid TM value %q: %v", v, err)
			}
		}
		return nil
	},
}

// RuleDateTimeFormat validates DT values.
var RuleDateTimeFormat = Rule{
	ID:          "dt-format",
	Description: "DT values must be valid date-time strings",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.DateTime {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if _, err := datetime.ParseDateTime(v); err != nil {
				return newIssue(ctx, "dt-format", SeverityError, "invalid DT value %q: %v", v, err)
			}
		}
		return nil
	},
}

// RuleAgeFormat validates AS values as nnnD/W/M/Y.
var RuleAgeFormat = Rule{
	ID:          "as-format",
	Description: "AS values must be nnnD, nnnW, nnnM or nnnY",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.AgeString {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if _, err := datetime.ParseAge(v); err != nil {
				return newIssue(ctx, "as-format", SeverityError, "invalid AS value %q: %v", v, err)
			}
		}
		return nil
	},
}

// RuleUIDFormat validates UI values: at most 64 characters of digits and
// dots, no empty components, no leading zeros in multi-digit components.
var RuleUIDFormat = Rule{
	ID:          "ui-format",
	Description: "UI values must be valid dotted-decimal UIDs",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.UniqueIdentifier {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			if !uid.IsValid(v) {
				return newIssue(ctx, "ui-format", SeverityError, "invalid UID %q", v)
			}
		}
		return nil
	},
}

// RulePersonNameStructure validates PN component-group/component structure:
// at most 3 component groups separated by '=', each at most 64 characters
// with at most 5 '^'-separated components.
var RulePersonNameStructure = Rule{
	ID:          "pn-structure",
	Description: "PN values must have at most 3 component groups of at most 5 components",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.PersonName {
			return nil
		}
		for _, v := range logicalValues(ctx) {
			groups := strings.Split(v, "=")
			if len(groups) > 3 {
				return newIssue(ctx, "pn-structure", SeverityError, "PN value %q has %d component groups (max 3)", v, len(groups))
			}
			for _, group := range groups {
				if len(group) > 64 {
					return newIssue(ctx, "pn-structure", SeverityError, "PN component group %q exceeds 64 characters", group)
				}
				if components := strings.Split(group, "^"); len(components) > 5 {
					return newIssue(ctx, "pn-structure", SeverityError, "PN component group %q has %d components (max 5)", group, len(components))
				}
			}
		}
		return nil
	},
}

// RuleCodeStringRepertoire validates CS values: uppercase letters, digits,
// space and underscore only.
var RuleCodeStringRepertoire = Rule{
	ID:          "cs-repertoire",
	Description: "CS values use uppercase letters, digits, space and underscore",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.CodeString {
			return nil
		}
		const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_ "
		for _, v := range logicalValues(ctx) {
			if ch, ok := repertoireOf(v, allowed); !ok {
				return newIssue(ctx, "cs-repertoire", SeverityError, "CS value %q contains invalid character %q", v, ch)
			}
		}
		return nil
	},
}

// RuleAERepertoire validates AE titles: printable default-repertoire
// characters excluding backslash, and not all spaces.
var RuleAERepertoire = Rule{
	ID:          "ae-repertoire",
	Description: "AE titles use printable characters without backslash or controls",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.ApplicationEntity {
			return nil
		}
		if strings.Contains(string(ctx.Raw), "\\") {
			return newIssue(ctx, "ae-repertoire", SeverityError, "AE title %q contains backslash", string(ctx.Raw))
		}
		for _, v := range logicalValues(ctx) {
			for i := 0; i < len(v); i++ {
				ch := v[i]
				if ch < 0x20 || ch > 0x7E {
					return newIssue(ctx, "ae-repertoire", SeverityError, "AE title %q contains control or non-ASCII byte 0x%02X", v, ch)
				}
				if ch == '\\' {
					return newIssue(ctx, "ae-repertoire", SeverityError, "AE title %q contains backslash", v)
				}
			}
			if strings.TrimSpace(v) == "" {
				return newIssue(ctx, "ae-repertoire", SeverityError, "AE title is all spaces")
			}
		}
		return nil
	},
}

// RuleDecimalStringRepertoire validates DS values: digits, sign, exponent
// markers, decimal point and space.
var RuleDecimalStringRepertoire = Rule{
	ID:          "ds-repertoire",
	Description: "DS values use 0-9 + - E e . and space",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.DecimalString {
			return nil
		}
		const allowed = "0123456789+-Ee. "
		for _, v := range logicalValues(ctx) {
			if ch, ok := repertoireOf(v, allowed); !ok {
				return newIssue(ctx, "ds-repertoire", SeverityError, "DS value %q contains invalid character %q", v, ch)
			}
		}
		return nil
	},
}

// RuleIntegerStringRepertoire validates IS values: digits, sign and space.
var RuleIntegerStringRepertoire = Rule{
	ID:          "is-repertoire",
	Description: "IS values use 0-9 + - and space",
	Check: func(ctx *Context) *Issue {
		if ctx.DeclaredVR != vr.IntegerString {
			return nil
		}
		const allowed = "0123456789+- "
		for _, v := range logicalValues(ctx) {
			if ch, ok := repertoireOf(v, allowed); !ok {
				return newIssue(ctx, "is-repertoire", SeverityError, "IS value %q contains invalid character %q", v, ch)
			}
		}
		return nil
	},
}

// AllRules returns every standard rule.
func AllRules() []Rule {
	return []Rule{
		RuleEvenLength,
		RuleMaxLength,
		RuleDateFormat,
		RuleTimeFormat,
		RuleDateTimeFormat,
		RuleAgeFormat,
		RuleUIDFormat,
		RulePersonNameStructure,
		RuleCodeStringRepertoire,
		RuleAERepertoire,
		RuleDecimalStringRepertoire,
		RuleIntegerStringRepertoire,
	}
}

// LengthRules returns only the length-related rules used by the Permissive
// preset.
func LengthRules() []Rule {
	return []Rule{RuleEvenLength, RuleMaxLength}
}
