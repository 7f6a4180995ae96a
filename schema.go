package dhi

import "fmt"

// Field is one uncompiled schema entry: a field name, a rule name from the
// registry, and the rule's parameters in wire order.
type Field struct {
	Name   string
	Rule   string
	Params []any
}

// F builds a Field. It mirrors the wire format's name -> (rule, params...)
// tuples:
//
//	dhi.F("age", "int_gt", 18)
//	dhi.F("name", "string", 2, 100)
func F(name, rule string, params ...any) Field {
	return Field{Name: name, Rule: rule, Params: params}
}

// fieldSpec is one compiled schema entry. Parameters are interpreted per tag:
// for TagIntRange p1=min and p2=max, for TagStringLength p1=min_len and
// p2=max_len, for the single-bound comparisons only p1 is used, and the
// affix rules use sp.
type fieldSpec struct {
	name string
	tag  Tag
	p1   int64
	p2   int64
	sp   string
}

// Schema is a compiled, immutable sequence of field specs. Field order is the
// caller's declaration order; it decides short-circuit order and therefore
// which field a failing record reports. A Schema is safe for concurrent use
// once compiled.
type Schema struct {
	fields []fieldSpec
}

// Len returns the number of compiled fields.
func (s *Schema) Len() int { return len(s.fields) }

// Compile resolves each field's rule name through the registry and freezes
// the result for reuse across any number of batches. Compilation is
// side-effect-free; compiling the same fields twice yields equivalent
// schemas.
//
// In the default lenient mode Compile never fails: unknown rules compile to
// TagUnknown (always pass) and absent parameters default to zero. With
// Strict() those degrade-silently cases become Issues and the schema is nil.
// Duplicate field names are resolved last-write-wins in both modes.
func Compile(fields []Field, opts ...CompileOption) (*Schema, error) {
	var cfg compileConfig
	for _, o := range opts {
		o(&cfg)
	}

	specs := make([]fieldSpec, 0, len(fields))
	index := make(map[string]int, len(fields))
	var iss Issues

	for _, f := range fields {
		tag := TagOf(f.Rule)
		if tag == TagUnknown && cfg.strict {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + f.Name,
				Code:    CodeUnknownRule,
				Message: fmt.Sprintf("unknown rule %q", f.Rule),
				Hint:    "see dhi.KnownRules()",
				Offset:  -1,
			})
			continue
		}

		spec := fieldSpec{name: f.Name, tag: tag}
		want := intParams(tag)
		for i := 0; i < want; i++ {
			if i >= len(f.Params) {
				if cfg.strict {
					iss = AppendIssues(iss, Issue{
						Path:    "/" + f.Name,
						Code:    CodeMissingParam,
						Message: fmt.Sprintf("rule %q wants %d parameter(s), got %d", f.Rule, want, len(f.Params)),
						Offset:  -1,
					})
				}
				break
			}
			n, ok := paramInt(f.Params[i])
			if !ok {
				if cfg.strict {
					iss = AppendIssues(iss, Issue{
						Path:    "/" + f.Name,
						Code:    CodeInvalidType,
						Message: fmt.Sprintf("rule %q parameter %d must be an integer", f.Rule, i+1),
						Offset:  -1,
					})
				}
				continue
			}
			if i == 0 {
				spec.p1 = n
			} else {
				spec.p2 = n
			}
		}
		if needsStringParam(tag) {
			if len(f.Params) > 0 {
				if s, ok := f.Params[0].(string); ok {
					spec.sp = s
				} else if cfg.strict {
					iss = AppendIssues(iss, Issue{
						Path:    "/" + f.Name,
						Code:    CodeInvalidType,
						Message: fmt.Sprintf("rule %q parameter must be a string", f.Rule),
						Offset:  -1,
					})
				}
			} else if cfg.strict {
				iss = AppendIssues(iss, Issue{
					Path:    "/" + f.Name,
					Code:    CodeMissingParam,
					Message: fmt.Sprintf("rule %q wants a string parameter", f.Rule),
					Offset:  -1,
				})
			}
		}

		if at, seen := index[f.Name]; seen {
			specs[at] = spec
			continue
		}
		index[f.Name] = len(specs)
		specs = append(specs, spec)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return &Schema{fields: specs}, nil
}

// paramInt coerces a wire parameter into int64. The accepted integer kinds
// match the record-value coercion in asInt; integral floats are additionally
// accepted because schema documents decoded from JSON carry numbers as
// float64.
func paramInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
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
	case float32:
		if float64(n) == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
