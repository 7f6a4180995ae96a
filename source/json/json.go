// Package json provides the encoding/json-backed token source.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/dhilabs/dhi-go/internal/engine"
)

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type frame struct {
	kind         frameKind
	expectingKey bool
}

type jsonSource struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(frameObject)
			return s.emit(eng.Token{Kind: eng.KindBeginObject}), nil
		case '}':
			s.pop()
			return s.emit(eng.Token{Kind: eng.KindEndObject}), nil
		case '[':
			s.push(frameArray)
			return s.emit(eng.Token{Kind: eng.KindBeginArray}), nil
		default: // ']'
			s.pop()
			return s.emit(eng.Token{Kind: eng.KindEndArray}), nil
		}
	case string:
		if s.takeKey() {
			return eng.Token{Kind: eng.KindKey, String: v, Offset: s.lastOffset}, nil
		}
		return s.emit(eng.Token{Kind: eng.KindString, String: v}), nil
	case json.Number:
		return s.emit(eng.Token{Kind: eng.KindNumber, Number: string(v)}), nil
	case float64:
		// only reachable without UseNumber; kept for safety
		return s.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}), nil
	case bool:
		return s.emit(eng.Token{Kind: eng.KindBool, Bool: v}), nil
	default: // nil
		return s.emit(eng.Token{Kind: eng.KindNull}), nil
	}
}

func (s *jsonSource) Location() int64 { return s.lastOffset }

func (s *jsonSource) push(k frameKind) {
	s.stack = append(s.stack, frame{kind: k, expectingKey: k == frameObject})
}

func (s *jsonSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

// takeKey reports whether the current string token is an object key and, if
// so, flips the frame to expect a value next.
func (s *jsonSource) takeKey() bool {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == frameObject && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// emit stamps the offset and, after a completed value inside an object, flips
// the enclosing frame back to expecting a key.
func (s *jsonSource) emit(t eng.Token) eng.Token {
	t.Offset = s.lastOffset
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == frameObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
	return t
}
