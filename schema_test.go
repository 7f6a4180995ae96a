package dhi_test

import (
	"testing"

	dhi "github.com/dhilabs/dhi-go"
)

func TestCompile_LenientNeverFails(t *testing.T) {
	s, err := dhi.Compile([]dhi.Field{
		dhi.F("a", "definitely_not_a_rule"),
		dhi.F("b", "int_gt"), // missing param defaults to 0
	})
	if err != nil {
		t.Fatalf("lenient compile must not fail: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 compiled fields, got %d", s.Len())
	}

	// unknown rule always passes, even against garbage
	out := s.ValidateRecord(dhi.MapRecord{"a": struct{}{}, "b": int64(1)})
	if !out.Valid {
		t.Fatalf("unknown rule must pass and int_gt 0 holds for 1, got failing field %q", out.FailingField)
	}

	// the defaulted bound is zero: int_gt fails for 0
	out = s.ValidateRecord(dhi.MapRecord{"a": "x", "b": int64(0)})
	if out.Valid || out.FailingField != "b" {
		t.Fatalf("int_gt with defaulted 0 bound must reject 0, got %+v", out)
	}
}

func TestCompile_StrictRejectsUnknownRule(t *testing.T) {
	_, err := dhi.Compile([]dhi.Field{dhi.F("a", "definitely_not_a_rule")}, dhi.Strict())
	if err == nil {
		t.Fatalf("strict compile must fail on unknown rules")
	}
	iss, ok := dhi.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one Issue, got %v", err)
	}
	if iss[0].Code != dhi.CodeUnknownRule || iss[0].Path != "/a" {
		t.Fatalf("unexpected issue %+v", iss[0])
	}
}

func TestCompile_StrictRejectsMissingParams(t *testing.T) {
	_, err := dhi.Compile([]dhi.Field{
		dhi.F("age", "int_range", 18), // wants 2 params
		dhi.F("tag", "string_contains"),
	}, dhi.Strict())
	iss, ok := dhi.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two Issues, got %v", err)
	}
	if iss[0].Code != dhi.CodeMissingParam || iss[1].Code != dhi.CodeMissingParam {
		t.Fatalf("expected missing_param issues, got %+v", iss)
	}
}

func TestCompile_StrictRejectsNonIntegerParam(t *testing.T) {
	_, err := dhi.Compile([]dhi.Field{dhi.F("age", "int_gt", "eighteen")}, dhi.Strict())
	iss, ok := dhi.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dhi.CodeInvalidType {
		t.Fatalf("expected invalid_type for a string bound, got %v", err)
	}
}

func TestCompile_IntegralFloatParamsAccepted(t *testing.T) {
	// schema documents decoded from JSON carry numbers as float64
	s, err := dhi.Compile([]dhi.Field{dhi.F("age", "int_gt", float64(18))}, dhi.Strict())
	if err != nil {
		t.Fatalf("integral float param should compile: %v", err)
	}
	if out := s.ValidateRecord(dhi.MapRecord{"age": int64(19)}); !out.Valid {
		t.Fatalf("19 > 18 expected to pass")
	}
	if out := s.ValidateRecord(dhi.MapRecord{"age": int64(18)}); out.Valid {
		t.Fatalf("18 > 18 must fail")
	}
}

func TestCompile_ParamIntegerKindsMatchRecordCoercion(t *testing.T) {
	// every integer kind a record value may carry also works as a bound
	for _, p := range []any{
		int(18), int8(18), int16(18), int32(18), int64(18),
		uint(18), uint8(18), uint16(18), uint32(18), uint64(18),
		float32(18), float64(18),
	} {
		s, err := dhi.Compile([]dhi.Field{dhi.F("age", "int_gt", p)}, dhi.Strict())
		if err != nil {
			t.Fatalf("param %T(18) should compile: %v", p, err)
		}
		if out := s.ValidateRecord(dhi.MapRecord{"age": int64(18)}); out.Valid {
			t.Fatalf("param %T(18) must compile to bound 18, but 18 passed", p)
		}
		if out := s.ValidateRecord(dhi.MapRecord{"age": int64(19)}); !out.Valid {
			t.Fatalf("param %T(18) must compile to bound 18, but 19 failed", p)
		}
	}

	// out-of-range and fractional params stay rejected
	for _, p := range []any{uint64(1 << 63), float64(18.5), float32(18.5)} {
		_, err := dhi.Compile([]dhi.Field{dhi.F("age", "int_gt", p)}, dhi.Strict())
		iss, ok := dhi.AsIssues(err)
		if !ok || len(iss) == 0 || iss[0].Code != dhi.CodeInvalidType {
			t.Fatalf("param %T should be invalid_type, got %v", p, err)
		}
	}
}

func TestCompile_DuplicateFieldLastWriteWins(t *testing.T) {
	s, err := dhi.Compile([]dhi.Field{
		dhi.F("age", "int_gt", 100),
		dhi.F("name", "string", 1, 10),
		dhi.F("age", "int_gt", 10),
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("duplicate field must collapse, got %d fields", s.Len())
	}
	out := s.ValidateRecord(dhi.MapRecord{"age": int64(50), "name": "x"})
	if !out.Valid {
		t.Fatalf("the later int_gt 10 spec must win, got failing field %q", out.FailingField)
	}
}
