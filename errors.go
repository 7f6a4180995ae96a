package dhi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhilabs/dhi-go/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeUnknownRule   = "unknown_rule"
	CodeMissingParam  = "missing_param"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

// Issue represents a single schema-compilation or input-structure problem.
// Per-record validation failures are never Issues; they are reported as false
// outcomes with a failing field name.
type Issue struct {
	Path    string // JSON Pointer into the schema document or input (for example: /age).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, known rule names, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_rule at /age
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// LocalizedMessage returns the issue's message, falling back to the i18n
// dictionary entry for its code when no message was set.
func (it Issue) LocalizedMessage() string {
	if it.Message != "" {
		return it.Message
	}
	return i18n.T(it.Code, nil)
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string) Issues {
	return Issues{{Path: "/", Code: code, Message: msg, Offset: -1}}
}
