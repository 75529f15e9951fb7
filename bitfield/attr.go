package bitfield

import (
	"fmt"
	"math"

	"omibyte.io/csrgen/check"
)

// Attrs lists the attribute keys accepted by SetAttr, in AsDict order.
var Attrs = []string{"name", "desc", "reset", "width", "lsb", "access"}

// SetAttr assigns an attribute from a dynamically typed value, such as one
// decoded from a description file. The value's kind is checked before
// anything is committed; range checks are left to Validate.
func (b *BitField) SetAttr(key string, value any) error {
	switch key {
	case "name", "desc":
		if !check.IsString(value) {
			return &AttrError{Attr: key, Want: "string", Value: value}
		}
		s := value.(string)
		if key == "name" {
			b.name = s
		} else {
			b.desc = s
		}
	case "reset":
		v, ok := check.AsInt64(value)
		if !ok {
			return &AttrError{Attr: key, Want: "integer", Value: value}
		}
		b.reset = v
	case "width", "lsb":
		v, ok := check.AsInt64(value)
		if !ok || v < math.MinInt32 || v > math.MaxInt32 {
			return &AttrError{Attr: key, Want: "integer", Value: value}
		}
		if key == "width" {
			b.width = int(v)
		} else {
			b.lsb = int(v)
		}
	case "access":
		switch v := value.(type) {
		case Access:
			b.access = v
		case string:
			b.access = Access(v)
		default:
			return &AttrError{Attr: key, Want: "string", Value: value}
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownAttr, key)
	}
	return nil
}
