// Package gojson provides the goccy/go-json-backed token driver, the
// performance default for the single-pass pipeline.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	dhi "github.com/dhilabs/dhi-go"
	eng "github.com/dhilabs/dhi-go/internal/engine"
)

// Driver returns a dhi.JSONDriver backed by goccy/go-json.
func Driver() dhi.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) dhi.Source {
	return dhi.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) dhi.Source {
	return dhi.SourceFromEngine(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

// ---- engine.TokenSource implementation using go-json Decoder ----

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type frame struct {
	kind         frameKind
	expectingKey bool
}

type source struct {
	dec        *j.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case j.Delim:
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
	case j.Number:
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

// Location reports the decoder's input offset so the byte-limit guard works
// the same as with the encoding/json driver.
func (s *source) Location() int64 { return s.lastOffset }

func (s *source) push(k frameKind) {
	s.stack = append(s.stack, frame{kind: k, expectingKey: k == frameObject})
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

// takeKey reports whether the current string token is an object key and, if
// so, flips the frame to expect a value next.
func (s *source) takeKey() bool {
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
func (s *source) emit(t eng.Token) eng.Token {
	t.Offset = s.lastOffset
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == frameObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
	return t
}
