package engine_test

import (
	"io"
	"testing"

	eng "github.com/dhilabs/dhi-go/internal/engine"
)

// sliceSource feeds a fixed token stream.
type sliceSource struct {
	toks []eng.Token
	i    int
}

func (s *sliceSource) NextToken() (eng.Token, error) {
	if s.i >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.i) }

func key(k string) eng.Token    { return eng.Token{Kind: eng.KindKey, String: k} }
func num(n string) eng.Token    { return eng.Token{Kind: eng.KindNumber, Number: n} }
func str(v string) eng.Token    { return eng.Token{Kind: eng.KindString, String: v} }
func mark(k eng.Kind) eng.Token { return eng.Token{Kind: k} }

func TestNumberValue_LexicalShape(t *testing.T) {
	if v := eng.NumberValue("25"); v != int64(25) {
		t.Fatalf("25 should be int64, got %T %v", v, v)
	}
	if v := eng.NumberValue("-3"); v != int64(-3) {
		t.Fatalf("-3 should be int64, got %T %v", v, v)
	}
	if v := eng.NumberValue("25.0"); v != float64(25) {
		t.Fatalf("25.0 should be float64, got %T %v", v, v)
	}
	if v := eng.NumberValue("2e1"); v != float64(20) {
		t.Fatalf("2e1 should be float64, got %T %v", v, v)
	}
	// int64 overflow falls back to float64
	if v := eng.NumberValue("99999999999999999999"); v != float64(1e20) {
		t.Fatalf("overflowing integer should fall back to float64, got %T %v", v, v)
	}
}

func TestDecodeRecord_FlatAndNested(t *testing.T) {
	src := &sliceSource{toks: []eng.Token{
		key("name"), str("Alice"),
		key("age"), num("25"),
		key("score"), num("9.5"),
		key("ok"), {Kind: eng.KindBool, Bool: true},
		key("nothing"), mark(eng.KindNull),
		key("tags"), mark(eng.KindBeginArray), str("a"), str("b"), mark(eng.KindEndArray),
		key("meta"), mark(eng.KindBeginObject), key("deep"), num("1"), mark(eng.KindEndObject),
		mark(eng.KindEndObject),
	}}
	rec, err := eng.DecodeRecord(src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["name"] != "Alice" || rec["age"] != int64(25) || rec["score"] != 9.5 || rec["ok"] != true {
		t.Fatalf("scalar decode wrong: %#v", rec)
	}
	if v, ok := rec["nothing"]; !ok || v != nil {
		t.Fatalf("null must be present as nil")
	}
	if tags, ok := rec["tags"].([]any); !ok || len(tags) != 2 {
		t.Fatalf("array decode wrong: %#v", rec["tags"])
	}
	if meta, ok := rec["meta"].(map[string]any); !ok || meta["deep"] != int64(1) {
		t.Fatalf("nested object decode wrong: %#v", rec["meta"])
	}
}

func TestDecodeRecord_TruncatedStream(t *testing.T) {
	src := &sliceSource{toks: []eng.Token{key("a"), num("1")}}
	_, err := eng.DecodeRecord(src)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestSkipValue_BalancedContainers(t *testing.T) {
	src := &sliceSource{toks: []eng.Token{
		str("x"), mark(eng.KindBeginArray), num("1"), mark(eng.KindEndArray), mark(eng.KindEndObject),
		num("7"),
	}}
	open := mark(eng.KindBeginObject)
	if err := eng.SkipValue(src, open); err != nil {
		t.Fatalf("skip: %v", err)
	}
	next, err := src.NextToken()
	if err != nil || next.Number != "7" {
		t.Fatalf("skip must stop at the matching close, next=%v err=%v", next, err)
	}
}

func TestGuard_MaxDepth(t *testing.T) {
	src := &sliceSource{toks: []eng.Token{
		mark(eng.KindBeginArray), mark(eng.KindBeginArray), mark(eng.KindBeginArray),
	}}
	g := eng.Guard(src, eng.GuardOptions{MaxDepth: 2})
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		_, err = g.NextToken()
	}
	le, ok := err.(eng.LimitError)
	if !ok || le.Code != "parse_error" {
		t.Fatalf("expected depth LimitError, got %v", err)
	}
}

func TestGuard_MaxBytes(t *testing.T) {
	src := &sliceSource{toks: []eng.Token{
		mark(eng.KindBeginArray), num("1"), num("2"), num("3"),
	}}
	// sliceSource reports its token index as the byte offset
	g := eng.Guard(src, eng.GuardOptions{MaxBytes: 2})
	var err error
	for i := 0; i < 4 && err == nil; i++ {
		_, err = g.NextToken()
	}
	le, ok := err.(eng.LimitError)
	if !ok || le.Code != "truncated" {
		t.Fatalf("expected bytes LimitError, got %v", err)
	}
}

func TestGuard_Disabled(t *testing.T) {
	src := &sliceSource{}
	if eng.Guard(src, eng.GuardOptions{}) != eng.TokenSource(src) {
		t.Fatalf("zero limits must not wrap the source")
	}
}
