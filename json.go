package dhi

import (
	"context"
	"errors"
	"io"

	eng "github.com/dhilabs/dhi-go/internal/engine"
)

// ValidateJSON validates a JSON array of objects against a compiled schema in
// a single pass: each element is decoded into a transient record and
// validated immediately, so the array is never materialized as a whole.
//
// Per-element malformation (a non-object element, wrong value types) is a
// false outcome in that element's slot. Only structural problems return an
// error: input that fails to parse, a top-level value that is not an array,
// data trailing the closing bracket, or a resource limit set via
// MaxDepth/MaxBytes. On error no Result is produced.
func ValidateJSON(ctx context.Context, s *Schema, src Source, opts ...JSONOption) (Result, error) {
	if s == nil {
		return Result{}, singleIssue(CodeParseError, "nil schema")
	}
	var cfg jsonConfig
	for _, o := range opts {
		o(&cfg)
	}
	es := eng.Guard(engineSource(src), eng.GuardOptions{MaxDepth: cfg.maxDepth, MaxBytes: cfg.maxBytes})

	tok, err := es.NextToken()
	if err != nil {
		return Result{}, structuralError(err)
	}
	if tok.Kind != eng.KindBeginArray {
		return Result{}, Issues{{Path: "/", Code: CodeInvalidType, Message: "top-level value must be an array of objects", Offset: tok.Offset}}
	}

	var res Result
	for {
		tok, err := es.NextToken()
		if err != nil {
			return Result{}, structuralError(err)
		}
		switch tok.Kind {
		case eng.KindEndArray:
			// the array must be the whole input
			tail, err := es.NextToken()
			if err == io.EOF {
				return res, nil
			}
			if err != nil {
				return Result{}, structuralError(err)
			}
			return Result{}, Issues{{Path: "/", Code: CodeParseError, Message: "unexpected data after top-level array", Offset: tail.Offset}}
		case eng.KindBeginObject:
			rec, err := eng.DecodeRecord(es)
			if err != nil {
				return Result{}, structuralError(err)
			}
			res.append(s.ValidateRecord(MapRecord(rec)).Valid)
		default:
			// scalar or nested array element: not a record, but still one slot
			if err := eng.SkipValue(es, tok); err != nil {
				return Result{}, structuralError(err)
			}
			res.append(false)
		}
	}
}

// ValidateJSONBytes is shorthand for ValidateJSON over raw bytes.
func ValidateJSONBytes(ctx context.Context, s *Schema, data []byte, opts ...JSONOption) (Result, error) {
	return ValidateJSON(ctx, s, JSONBytes(data), opts...)
}

// structuralError converts driver and guard errors into Issues. An EOF here
// is always premature: the array was still open.
func structuralError(err error) error {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var le eng.LimitError
	if errors.As(err, &le) {
		return Issues{{Path: "/", Code: le.Code, Message: le.Message, Offset: le.Offset}}
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return Issues{{Path: "/", Code: CodeParseError, Message: "unexpected end of JSON input", Cause: err, Offset: -1}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1}}
}
