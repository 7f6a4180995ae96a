package dhi

import (
	"fmt"

	"github.com/dhilabs/dhi-go/internal/check"
)

// Single-value validators with descriptive errors, for callers validating one
// value at a time instead of batches. Batch paths never build these Issues;
// they only report booleans.

// BoundedInt validates an integer against inclusive bounds.
type BoundedInt struct {
	Min int64
	Max int64
}

// Validate returns the value unchanged, or Issues describing which bound
// failed.
func (b BoundedInt) Validate(v int64) (int64, error) {
	if v < b.Min {
		return 0, Issues{{Path: "/", Code: CodeTooSmall, Message: fmt.Sprintf("value %d must be >= %d", v, b.Min), Offset: -1}}
	}
	if v > b.Max {
		return 0, Issues{{Path: "/", Code: CodeTooBig, Message: fmt.Sprintf("value %d must be <= %d", v, b.Max), Offset: -1}}
	}
	return v, nil
}

// BoundedString validates a string's byte length against inclusive bounds.
type BoundedString struct {
	MinLen int64
	MaxLen int64
}

// Validate returns the value unchanged, or Issues describing which bound
// failed.
func (b BoundedString) Validate(s string) (string, error) {
	if int64(len(s)) < b.MinLen {
		return "", Issues{{Path: "/", Code: CodeTooShort, Message: fmt.Sprintf("string length %d must be >= %d", len(s), b.MinLen), Offset: -1}}
	}
	if int64(len(s)) > b.MaxLen {
		return "", Issues{{Path: "/", Code: CodeTooLong, Message: fmt.Sprintf("string length %d must be <= %d", len(s), b.MaxLen), Offset: -1}}
	}
	return s, nil
}

// ValidateEmail checks the simplified email shape and returns the value
// unchanged, or Issues on failure.
func ValidateEmail(s string) (string, error) {
	if !check.Email(s) {
		return "", Issues{{Path: "/", Code: CodeInvalidFormat, Message: "invalid email format (expected: local@domain)", Offset: -1}}
	}
	return s, nil
}

// ---- homogeneous scalar batches ----

// ValidateInts bounds-checks a batch of integers.
func ValidateInts(values []int64, min, max int64) Result {
	res := Result{Results: make([]bool, 0, len(values))}
	for _, v := range values {
		res.append(check.IntRange(v, min, max))
	}
	return res
}

// ValidateStringLengths length-checks a batch of strings (UTF-8 bytes).
func ValidateStringLengths(values []string, minLen, maxLen int64) Result {
	res := Result{Results: make([]bool, 0, len(values))}
	for _, v := range values {
		res.append(check.StringLength(v, minLen, maxLen))
	}
	return res
}

// ValidateEmails format-checks a batch of email addresses.
func ValidateEmails(values []string) Result {
	res := Result{Results: make([]bool, 0, len(values))}
	for _, v := range values {
		res.append(check.Email(v))
	}
	return res
}
