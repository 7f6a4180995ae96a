// Package engine defines the streaming token model shared by the JSON
// drivers and the single-pass pipeline, plus the per-element record decoder.
package engine

import (
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // kept as text; DecodeRecord splits int64 vs float64 lexically
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface the engine requires of a driver.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// DecodeRecord builds one flat record from a token stream positioned just
// after a BeginObject token. Number tokens without a '.' or exponent become
// int64 (falling back to float64 on overflow); all others become float64.
// Nested containers decode generically so typed checks can reject them.
func DecodeRecord(src TokenSource) (map[string]any, error) {
	rec := make(map[string]any)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		if tok.Kind == KindEndObject {
			return rec, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		rec[tok.String] = v
	}
}

func decodeValue(src TokenSource, tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return DecodeRecord(src)
	case KindBeginArray:
		return decodeArray(src)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return NumberValue(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeArray(src TokenSource) (any, error) {
	var arr []any
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// SkipValue consumes the remainder of the value opened by tok, for array
// elements that are not objects.
func SkipValue(src TokenSource, tok Token) error {
	depth := 0
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		depth = 1
	default:
		return nil
	}
	for depth > 0 {
		t, err := src.NextToken()
		if err != nil {
			return unexpected(err)
		}
		switch t.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		}
	}
	return nil
}

// NumberValue converts JSON number text into int64 or float64. The lexical
// shape decides the type: "25" is an integer, "25.0" and "2e1" are floats.
func NumberValue(text string) any {
	if !strings.ContainsAny(text, ".eE") {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n
		}
	}
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

// unexpected maps a mid-value EOF to ErrUnexpectedEOF so callers see a single
// truncation error, while other driver errors pass through.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
