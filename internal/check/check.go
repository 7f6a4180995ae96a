// Package check holds the primitive validators: pure boolean functions over
// one scalar or string value plus up to two parameters. No allocation, no
// I/O, no panics; malformed input of the expected type yields false.
package check

import (
	"math"
	"strings"
)

// ---- integers ----

// IntRange reports min <= v <= max (inclusive both ends).
func IntRange(v, min, max int64) bool { return v >= min && v <= max }

func IntGT(v, bound int64) bool { return v > bound }
func IntGTE(v, bound int64) bool { return v >= bound }
func IntLT(v, bound int64) bool { return v < bound }
func IntLTE(v, bound int64) bool { return v <= bound }

func IntPositive(v int64) bool { return v > 0 }
func IntNonNegative(v int64) bool { return v >= 0 }
func IntNegative(v int64) bool { return v < 0 }
func IntNonPositive(v int64) bool { return v <= 0 }

// IntMultipleOf reports v mod divisor == 0. A zero divisor is false, never a
// runtime panic.
func IntMultipleOf(v, divisor int64) bool {
	if divisor == 0 {
		return false
	}
	return v%divisor == 0
}

// ---- floats ----

func FloatGT(v, bound float64) bool { return v > bound }
func FloatGTE(v, bound float64) bool { return v >= bound }
func FloatLT(v, bound float64) bool { return v < bound }
func FloatLTE(v, bound float64) bool { return v <= bound }

func FloatPositive(v float64) bool { return v > 0 }

// FloatFinite is false for NaN and both infinities.
func FloatFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// ---- strings ----

// StringLength reports min <= len(s) <= max. Length counts UTF-8 bytes, not
// codepoints; "héllo" is 6 bytes long.
func StringLength(s string, min, max int64) bool {
	n := int64(len(s))
	return n >= min && n <= max
}

func StringContains(s, sub string) bool { return strings.Contains(s, sub) }
func StringStartsWith(s, pre string) bool { return strings.HasPrefix(s, pre) }
func StringEndsWith(s, suf string) bool { return strings.HasSuffix(s, suf) }

// Email checks for exactly one '@' that is neither first nor last, a local
// part restricted to alnum plus "._-+", and a domain containing at least one
// dot. Deliberately simplified; not RFC 5322.
func Email(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if strings.IndexByte(domain, '@') >= 0 {
		return false
	}
	for i := 0; i < len(local); i++ {
		c := local[i]
		if !isAlnum(c) && c != '.' && c != '_' && c != '-' && c != '+' {
			return false
		}
	}
	return strings.IndexByte(domain, '.') >= 0
}

// URL accepts http:// or https:// followed by a remainder longer than two
// bytes that contains a dot.
func URL(s string) bool {
	var rest string
	switch {
	case strings.HasPrefix(s, "http://"):
		rest = s[len("http://"):]
	case strings.HasPrefix(s, "https://"):
		rest = s[len("https://"):]
	default:
		return false
	}
	return len(rest) > 2 && strings.IndexByte(rest, '.') >= 0
}

// UUID checks the 8-4-4-4-12 shape: 36 bytes, hyphens at 8/13/18/23, hex
// digits elsewhere. Version and variant bits are not inspected.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < 36; i++ {
		c := s[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHex(c) {
				return false
			}
		}
	}
	return true
}

// IPv4 checks four non-empty dot-separated decimal groups, each 0-255.
// Leading zeros are allowed.
func IPv4(s string) bool {
	groups := 0
	i := 0
	for {
		if i >= len(s) {
			return false
		}
		n := 0
		digits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			n = n*10 + int(s[i]-'0')
			if n > 255 {
				return false
			}
			digits++
			i++
		}
		if digits == 0 {
			return false
		}
		groups++
		if i == len(s) {
			return groups == 4
		}
		if s[i] != '.' || groups == 4 {
			return false
		}
		i++
	}
}

// Base64 requires a length that is a multiple of four and the standard
// alphabet, with '=' padding allowed only in the last two positions.
func Base64(s string) bool {
	if len(s)%4 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || c == '+' || c == '/' {
			continue
		}
		if c == '=' && i >= len(s)-2 {
			continue
		}
		return false
	}
	return true
}

// ISODate checks the YYYY-MM-DD shape with month in [1,12] and day in
// [1,31]. There is no month-specific day count or leap-year logic; Feb 30
// passes.
func ISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for _, i := range [...]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(s[i]) {
			return false
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// ISODateTime checks a valid ISODate, a 'T' or ' ' separator, and a time
// portion of at least eight bytes shaped hh:mm:ss. Hour/minute/second ranges
// are not enforced.
func ISODateTime(s string) bool {
	if len(s) < 19 {
		return false
	}
	if !ISODate(s[:10]) {
		return false
	}
	if s[10] != 'T' && s[10] != ' ' {
		return false
	}
	t := s[11:]
	if len(t) < 8 || t[2] != ':' || t[5] != ':' {
		return false
	}
	for _, i := range [...]int{0, 1, 3, 4, 6, 7} {
		if !isDigit(t[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
