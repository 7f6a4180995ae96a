package dhi_test

import (
	"testing"

	dhi "github.com/dhilabs/dhi-go"
)

func TestTagOf_Total(t *testing.T) {
	if dhi.TagOf("email") != dhi.TagEmail {
		t.Fatalf("email should resolve to TagEmail")
	}
	if dhi.TagOf("int") != dhi.TagIntRange || dhi.TagOf("int_range") != dhi.TagIntRange {
		t.Fatalf("int and int_range are aliases for TagIntRange")
	}
	// total function: unrecognized names resolve, never error
	if dhi.TagOf("no_such_rule") != dhi.TagUnknown {
		t.Fatalf("unknown names must map to TagUnknown")
	}
	// names are case-sensitive
	if dhi.TagOf("Email") != dhi.TagUnknown {
		t.Fatalf("rule names are case-sensitive")
	}
}

func TestKnownRules_CoversRegistry(t *testing.T) {
	names := dhi.KnownRules()
	if len(names) == 0 {
		t.Fatalf("expected a non-empty rule list")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
		if dhi.TagOf(n) == dhi.TagUnknown {
			t.Fatalf("listed rule %q does not resolve", n)
		}
	}
	for _, want := range []string{"string", "email", "uuid", "ipv4", "int_gt", "int_multiple_of", "float_finite", "iso_datetime"} {
		if !seen[want] {
			t.Fatalf("expected %q in KnownRules", want)
		}
	}
}
