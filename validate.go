package dhi

import "github.com/dhilabs/dhi-go/internal/check"

// Outcome is the result of validating one record: all-or-nothing validity
// plus the first failing field for diagnostics. Evaluation short-circuits, so
// later fields are never inspected once one fails; collecting every failing
// field is deliberately not offered.
type Outcome struct {
	Valid        bool
	FailingField string
}

// ValidateRecord evaluates each compiled field in schema order against rec.
// A missing key fails exactly like a failing check, with that field reported.
func (s *Schema) ValidateRecord(rec Record) Outcome {
	for i := range s.fields {
		f := &s.fields[i]
		v, ok := rec.Get(f.name)
		if !ok || !checkValue(f, v) {
			return Outcome{FailingField: f.name}
		}
	}
	return Outcome{Valid: true}
}

// checkValue dispatches on the compiled tag. A value of the wrong underlying
// type is a plain failure; adversarial input must never panic here.
func checkValue(f *fieldSpec, v any) bool {
	switch f.tag {
	case TagUnknown:
		return true

	case TagIntRange:
		n, ok := asInt(v)
		return ok && check.IntRange(n, f.p1, f.p2)
	case TagIntGT:
		n, ok := asInt(v)
		return ok && check.IntGT(n, f.p1)
	case TagIntGTE:
		n, ok := asInt(v)
		return ok && check.IntGTE(n, f.p1)
	case TagIntLT:
		n, ok := asInt(v)
		return ok && check.IntLT(n, f.p1)
	case TagIntLTE:
		n, ok := asInt(v)
		return ok && check.IntLTE(n, f.p1)
	case TagIntPositive:
		n, ok := asInt(v)
		return ok && check.IntPositive(n)
	case TagIntNonNegative:
		n, ok := asInt(v)
		return ok && check.IntNonNegative(n)
	case TagIntNegative:
		n, ok := asInt(v)
		return ok && check.IntNegative(n)
	case TagIntNonPositive:
		n, ok := asInt(v)
		return ok && check.IntNonPositive(n)
	case TagIntMultipleOf:
		n, ok := asInt(v)
		return ok && check.IntMultipleOf(n, f.p1)

	case TagFloatGT:
		x, ok := asFloat(v)
		return ok && check.FloatGT(x, float64(f.p1))
	case TagFloatGTE:
		x, ok := asFloat(v)
		return ok && check.FloatGTE(x, float64(f.p1))
	case TagFloatLT:
		x, ok := asFloat(v)
		return ok && check.FloatLT(x, float64(f.p1))
	case TagFloatLTE:
		x, ok := asFloat(v)
		return ok && check.FloatLTE(x, float64(f.p1))
	case TagFloatPositive:
		x, ok := asFloat(v)
		return ok && check.FloatPositive(x)
	case TagFloatFinite:
		x, ok := asFloat(v)
		return ok && check.FloatFinite(x)

	case TagStringLength:
		str, ok := v.(string)
		return ok && check.StringLength(str, f.p1, f.p2)
	case TagStringContains:
		str, ok := v.(string)
		return ok && check.StringContains(str, f.sp)
	case TagStringStartsWith:
		str, ok := v.(string)
		return ok && check.StringStartsWith(str, f.sp)
	case TagStringEndsWith:
		str, ok := v.(string)
		return ok && check.StringEndsWith(str, f.sp)

	case TagEmail:
		str, ok := v.(string)
		return ok && check.Email(str)
	case TagURL:
		str, ok := v.(string)
		return ok && check.URL(str)
	case TagUUID:
		str, ok := v.(string)
		return ok && check.UUID(str)
	case TagIPv4:
		str, ok := v.(string)
		return ok && check.IPv4(str)
	case TagBase64:
		str, ok := v.(string)
		return ok && check.Base64(str)
	case TagISODate:
		str, ok := v.(string)
		return ok && check.ISODate(str)
	case TagISODateTime:
		str, ok := v.(string)
		return ok && check.ISODateTime(str)
	}
	return false
}

// asInt accepts integer-typed values only. Floats fail even when integral:
// the int family requires an integer-typed value, and the JSON pipeline
// decodes 25.0 as float64.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// asFloat accepts floats and integers; the float family tolerates both JSON
// number shapes.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		if i, ok := asInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}
