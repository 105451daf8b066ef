// Package validate checks individual fields of a decoded JSON payload.
//
// Rules are separated by "|" and evaluated left to right; Check stops at
// the first failing rule and returns its name so the caller can pick the
// message:
//
//	required            field is truthy (not missing, null, false, 0, NaN or "")
//	present             field is set and not null (0 and "" count as present)
//	string              field is a string
//	numeric             field is a JSON number
//	integer             field is a JSON number with no fractional part
//	array               field is a JSON array
//	min_items=N         array holds at least N items
//	gt=N                number > N
//	gte=N               number >= N
//	in=a,b,c            string equals one of the listed values exactly
//
// Example:
//
//	if rule := body.Check("price", "present|numeric|gt=-1"); rule != "" {
//	    return httperr.Validation("price cannot be less than 0.")
//	}
package validate

import (
	"math"
	"strconv"
	"strings"
)

// Fields is a decoded JSON object, as produced by encoding/json into
// map[string]any: numbers are float64, arrays are []any.
type Fields map[string]any

// Get returns the raw value for key, or nil.
func (f Fields) Get(key string) any { return f[key] }

// Has reports whether key is set to a non-null value.
func (f Fields) Has(key string) bool { return f[key] != nil }

// Str returns the string at key, or "" when missing or not a string.
func (f Fields) Str(key string) string {
	s, _ := f[key].(string)
	return s
}

// Num returns the number at key and whether it was a number.
func (f Fields) Num(key string) (float64, bool) {
	n, ok := f[key].(float64)
	return n, ok
}

// Slice returns the array at key, or nil when missing or not an array.
func (f Fields) Slice(key string) []any {
	s, _ := f[key].([]any)
	return s
}

// Check applies rules to the field named key and returns the first rule
// that fails, or "" when all pass.
func (f Fields) Check(key, rules string) string {
	v := f[key]
	for _, rule := range strings.Split(rules, "|") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if !applyRule(rule, v) {
			return rule
		}
	}
	return ""
}

// Valid is shorthand for Check(key, rules) == "".
func (f Fields) Valid(key, rules string) bool {
	return f.Check(key, rules) == ""
}

// ─── Core dispatcher ──────────────────────────────────────────────────────────

func applyRule(rule string, v any) bool {
	name, param, _ := strings.Cut(rule, "=")

	switch name {
	// ── Presence ──────────────────────────────────────────────────────
	case "required":
		return Truthy(v)
	case "present":
		return v != nil

	// ── Type ──────────────────────────────────────────────────────────
	case "string":
		_, ok := v.(string)
		return ok
	case "numeric":
		_, ok := v.(float64)
		return ok
	case "integer":
		n, ok := v.(float64)
		return ok && IsInteger(n)
	case "array":
		_, ok := v.([]any)
		return ok

	// ── Size / range ──────────────────────────────────────────────────
	case "min_items":
		s, ok := v.([]any)
		return ok && float64(len(s)) >= mustParseFloat(param)
	case "gt":
		n, ok := v.(float64)
		return ok && n > mustParseFloat(param)
	case "gte":
		n, ok := v.(float64)
		return ok && n >= mustParseFloat(param)

	// ── Inclusion ─────────────────────────────────────────────────────
	case "in":
		s, ok := v.(string)
		return ok && OneOf(s, strings.Split(param, ",")...)
	}

	// Unknown rules never pass, so a typo in a rule string is loud.
	return false
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// Truthy reports whether v is truthy under JSON-client conventions: null,
// false, 0, NaN and "" are falsy; everything else, including empty arrays
// and objects, is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	}
	return true
}

// IsInteger reports whether n has no fractional part.
func IsInteger(n float64) bool {
	return !math.IsInf(n, 0) && n == math.Trunc(n)
}

// OneOf reports whether s exactly equals one of allowed.
func OneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == strings.TrimSpace(a) {
			return true
		}
	}
	return false
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
