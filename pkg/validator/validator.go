// Package validator checks request payloads before they are sent.
package validator

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/pteropackages/soar/pkg/session"
)

// ValidationIssue represents a single validation issue
type ValidationIssue struct {
	Key     string
	Message string
	Level   string // "error" or "warning"
}

// ValidationResult contains the results of validation
type ValidationResult struct {
	Issues []ValidationIssue
	Valid  bool
}

// HasErrors returns true if there are any error-level issues
func (v *ValidationResult) HasErrors() bool {
	for _, issue := range v.Issues {
		if issue.Level == "error" {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning-level issues
func (v *ValidationResult) HasWarnings() bool {
	for _, issue := range v.Issues {
		if issue.Level == "warning" {
			return true
		}
	}
	return false
}

// Warnings returns the warning messages.
func (v *ValidationResult) Warnings() []string {
	var out []string
	for _, issue := range v.Issues {
		if issue.Level == "warning" {
			out = append(out, issue.String())
		}
	}
	return out
}

func (i ValidationIssue) String() string {
	if i.Key == "" {
		return i.Message
	}
	return i.Key + ": " + i.Message
}

// Err converts a failed result into an *session.ArgumentError. Missing keys
// are reported together, as "missing required keys: a, b".
func (v *ValidationResult) Err() error {
	if v.Valid {
		return nil
	}

	var missing, other []string
	for _, issue := range v.Issues {
		switch {
		case issue.Message == msgMissing:
			missing = append(missing, issue.Key)
		case issue.Level == "error" || issue.Level == "warning":
			other = append(other, issue.String())
		}
	}

	if len(missing) > 0 {
		noun := "key"
		if len(missing) > 1 {
			noun = "keys"
		}
		return session.NewArgumentError(fmt.Sprintf("missing required %s: %s", noun, strings.Join(missing, ", ")), other...)
	}
	if len(other) == 1 {
		return session.NewArgumentError(other[0])
	}
	return session.NewArgumentError("invalid payload", other...)
}

// Rule inspects a payload and reports issues.
type Rule func(payload map[string]any) []ValidationIssue

const msgMissing = "is required"

// Validator validates request payloads
type Validator struct {
	strict bool // If true, treat warnings as errors
}

// NewValidator creates a new validator
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate applies rules in order.
func (v *Validator) Validate(payload map[string]any, rules ...Rule) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Issues: []ValidationIssue{},
	}

	for _, rule := range rules {
		result.Issues = append(result.Issues, rule(payload)...)
	}

	for _, issue := range result.Issues {
		if issue.Level == "error" || (v.strict && issue.Level == "warning") {
			result.Valid = false
		}
	}
	return result
}

// Required reports every key absent from the payload.
func Required(keys ...string) Rule {
	return func(payload map[string]any) []ValidationIssue {
		var issues []ValidationIssue
		for _, k := range keys {
			if _, ok := payload[k]; !ok {
				issues = append(issues, ValidationIssue{Key: k, Message: msgMissing, Level: "error"})
			}
		}
		return issues
	}
}

// NonEmpty rejects a payload with no keys.
func NonEmpty() Rule {
	return func(payload map[string]any) []ValidationIssue {
		if len(payload) == 0 {
			return []ValidationIssue{{Message: "no data was provided to update", Level: "error"}}
		}
		return nil
	}
}

// Strings requires the given keys, when present and not null, to be strings.
func Strings(keys ...string) Rule {
	return func(payload map[string]any) []ValidationIssue {
		var issues []ValidationIssue
		for _, k := range keys {
			v, ok := payload[k]
			if !ok || v == nil {
				continue
			}
			if _, isString := v.(string); !isString {
				issues = append(issues, ValidationIssue{Key: k, Message: fmt.Sprintf("must be a string, got %T", v), Level: "error"})
			}
		}
		return issues
	}
}

// Email checks that key, when present, holds a single address.
func Email(key string) Rule {
	return func(payload map[string]any) []ValidationIssue {
		s, ok := payload[key].(string)
		if !ok || s == "" {
			return nil
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return []ValidationIssue{{Key: key, Message: fmt.Sprintf("%q is not a valid email address", s), Level: "error"}}
		}
		return nil
	}
}

// Known warns about keys the panel does not accept for this resource.
func Known(keys ...string) Rule {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	return func(payload map[string]any) []ValidationIssue {
		var unknown []string
		for k := range payload {
			if !allowed[k] {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)

		issues := make([]ValidationIssue, 0, len(unknown))
		for _, k := range unknown {
			issues = append(issues, ValidationIssue{Key: k, Message: "is not a known field and will be ignored by the panel", Level: "warning"})
		}
		return issues
	}
}
