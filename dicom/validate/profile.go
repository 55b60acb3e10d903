package validate

import (
	"sort"

	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// Profile bundles a rule set with a default behavior and per-tag overrides.
type Profile struct {
	Rules           []Rule
	DefaultBehavior Behavior
	// TagOverrides replaces the default behavior for specific tags.
	TagOverrides map[tag.Tag]Behavior
}

// BehaviorFor returns the behavior in effect for the given tag.
func (p *Profile) BehaviorFor(t tag.Tag) Behavior {
	if b, ok := p.TagOverrides[t]; ok {
		return b
	}
	if p.DefaultBehavior == 0 {
		return BehaviorWarn
	}
	return p.DefaultBehavior
}

// Run evaluates the profile's rules against one element. Each rule
// contributes at most one issue. Skip behavior short-circuits to no issues.
func (p *Profile) Run(ctx *Context) []Issue {
	if p == nil || p.BehaviorFor(ctx.Tag) == BehaviorSkip {
		return nil
	}

	var issues []Issue
	for _, rule := range p.Rules {
		if issue := rule.Check(ctx); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// IsFatal reports whether an issue aborts decoding under this profile: only
// error-level issues under Validate behavior are fatal.
func (p *Profile) IsFatal(issue Issue) bool {
	return p != nil && p.BehaviorFor(issue.Tag) == BehaviorValidate && issue.Severity == SeverityError
}

// SortIssues stable-orders collected issues by stream position.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].StreamPosition < issues[j].StreamPosition
	})
}

// StrictProfile runs every rule and fails decode on error-level issues.
func StrictProfile() *Profile {
	return &Profile{Rules: AllRules(), DefaultBehavior: BehaviorValidate}
}

// LenientProfile runs every rule and collects issues without failing.
func LenientProfile() *Profile {
	return &Profile{Rules: AllRules(), DefaultBehavior: BehaviorWarn}
}

// PermissiveProfile runs only the length rules, collecting issues.
func PermissiveProfile() *Profile {
	return &Profile{Rules: LengthRules(), DefaultBehavior: BehaviorWarn}
}

// NoneProfile runs no rules.
func NoneProfile() *Profile {
	return &Profile{DefaultBehavior: BehaviorSkip}
}
