// Package validate provides the element validation engine: rules bundled
// into profiles, producing severity-tagged issues during or after decode.
//
// A Rule checks one constraint of a single element and reports at most one
// issue. A Profile selects the active rules and maps each tag to a behavior:
// Validate (error-level issues are fatal), Warn (issues are collected), or
// Skip (no checks run).
package validate

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/tag"
	"github.com/codeninja55/go-dcmx/dicom/vr"
)

// Severity classifies an issue.
type Severity int

const (
	// SeverityWarning marks a tolerated deviation from the standard.
	SeverityWarning Severity = iota + 1
	// SeverityError marks a violation that Validate behavior treats as fatal.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// Behavior selects how a profile disposes of issues for a tag.
type Behavior int

const (
	// BehaviorValidate runs the rules and treats error-level issues as fatal.
	BehaviorValidate Behavior = iota + 1
	// BehaviorWarn runs the rules and collects issues without failing.
	BehaviorWarn
	// BehaviorSkip runs no rules.
	BehaviorSkip
)

// Context carries everything a rule may inspect about one element. Raw holds
// the value bytes exactly as read, before any padding trim.
type Context struct {
	Tag        tag.Tag
	DeclaredVR vr.VR
	// ExpectedVR is the dictionary VR when one was resolved.
	ExpectedVR    vr.VR
	HasExpectedVR bool
	Raw           []byte
	// TransferSyntaxUID identifies the active encoding.
	TransferSyntaxUID string
	// StreamPosition is the byte offset of the element's value in the stream,
	// or -1 when validating outside a decode.
	StreamPosition int64
	IsPrivate      bool
	PrivateCreator string
}

// Issue is one validation finding for one element.
type Issue struct {
	RuleID         string
	Severity       Severity
	Tag            tag.Tag
	VR             vr.VR
	StreamPosition int64
	Message        string
	// SuggestedFix optionally describes how to repair the value.
	SuggestedFix string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s %s: %s", i.Severity, i.RuleID, i.Tag, i.Message)
}

// Rule checks one constraint of an element.
type Rule struct {
	// ID uniquely names the rule, e.g. "da-format".
	ID string
	// Description states the constraint the rule enforces.
	Description string
	// Check returns at most one issue for the element, or nil.
	Check func(ctx *Context) *Issue
}

// newIssue binds a finding to its rule identity and context location.
func newIssue(ctx *Context, ruleID string, severity Severity, format string, args ...any) *Issue {
	return &Issue{
		RuleID:         ruleID,
		Severity:       severity,
		Tag:            ctx.Tag,
		VR:             ctx.DeclaredVR,
		StreamPosition: ctx.StreamPosition,
		Message:        fmt.Sprintf(format, args...),
	}
}
