package dhi

import "sort"

// Tag identifies which primitive check a compiled field runs. The set is
// closed: dispatch in the hot loop is a switch over Tag, never a string
// comparison or a virtual call.
type Tag uint8

const (
	// TagUnknown is the total-function fallback for unrecognized rule names.
	// It always passes, matching the lenient compile mode.
	TagUnknown Tag = iota

	TagIntRange
	TagIntGT
	TagIntGTE
	TagIntLT
	TagIntLTE
	TagIntPositive
	TagIntNonNegative
	TagIntNegative
	TagIntNonPositive
	TagIntMultipleOf

	TagStringLength
	TagStringContains
	TagStringStartsWith
	TagStringEndsWith

	TagEmail
	TagURL
	TagUUID
	TagIPv4
	TagBase64
	TagISODate
	TagISODateTime

	TagFloatGT
	TagFloatGTE
	TagFloatLT
	TagFloatLTE
	TagFloatPositive
	TagFloatFinite
)

// ruleTags maps wire-format rule names to tags. Names are case-sensitive and
// resolved exactly once per field at compile time.
var ruleTags = map[string]Tag{
	"int":              TagIntRange,
	"int_range":        TagIntRange,
	"int_gt":           TagIntGT,
	"int_gte":          TagIntGTE,
	"int_lt":           TagIntLT,
	"int_lte":          TagIntLTE,
	"int_positive":     TagIntPositive,
	"int_non_negative": TagIntNonNegative,
	"int_negative":     TagIntNegative,
	"int_non_positive": TagIntNonPositive,
	"int_multiple_of":  TagIntMultipleOf,

	"string":             TagStringLength,
	"string_contains":    TagStringContains,
	"string_starts_with": TagStringStartsWith,
	"string_ends_with":   TagStringEndsWith,

	"email":        TagEmail,
	"url":          TagURL,
	"uuid":         TagUUID,
	"ipv4":         TagIPv4,
	"base64":       TagBase64,
	"iso_date":     TagISODate,
	"iso_datetime": TagISODateTime,

	"float_gt":       TagFloatGT,
	"float_gte":      TagFloatGTE,
	"float_lt":       TagFloatLT,
	"float_lte":      TagFloatLTE,
	"float_positive": TagFloatPositive,
	"float_finite":   TagFloatFinite,
}

// TagOf resolves a rule name to its Tag. It is total: unrecognized names
// resolve to TagUnknown, never an error.
func TagOf(name string) Tag {
	if t, ok := ruleTags[name]; ok {
		return t
	}
	return TagUnknown
}

// KnownRules returns the sorted list of rule names the registry accepts.
func KnownRules() []string {
	names := make([]string, 0, len(ruleTags))
	for n := range ruleTags {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// intParams reports how many integer parameters a tag consumes.
func intParams(t Tag) int {
	switch t {
	case TagIntRange, TagStringLength:
		return 2
	case TagIntGT, TagIntGTE, TagIntLT, TagIntLTE, TagIntMultipleOf,
		TagFloatGT, TagFloatGTE, TagFloatLT, TagFloatLTE:
		return 1
	default:
		return 0
	}
}

// needsStringParam reports whether a tag consumes a string parameter.
func needsStringParam(t Tag) bool {
	switch t {
	case TagStringContains, TagStringStartsWith, TagStringEndsWith:
		return true
	default:
		return false
	}
}
