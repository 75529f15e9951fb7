// Package check holds the small predicates attribute validation is built on.
package check

import (
	"math"
	"reflect"
)

// IsString reports whether v holds a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsInt reports whether v holds a value of one of Go's integer kinds.
func IsInt(v any) bool {
	_, ok := AsInt64(v)
	return ok
}

// AsInt64 converts a value of any integer kind, named integer types
// included, to int64. Unsigned values above math.MaxInt64 are rejected.
func AsInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	}
	return 0, false
}

// IsFirstLetter reports whether s starts with an ASCII letter.
func IsFirstLetter(s string) bool {
	if len(s) == 0 {
		return false
	}
	c := s[0] | 0x20
	return c >= 'a' && c <= 'z'
}

func IsNonNegInt(v int64) bool {
	return v >= 0
}

func IsPosInt(v int64) bool {
	return v > 0
}

// FitsWidth reports whether the non-negative value v can be stored in width bits.
func FitsWidth(v int64, width int) bool {
	if v < 0 || width <= 0 {
		return false
	}
	if width >= 63 {
		return true
	}
	return v < int64(1)<<width
}
