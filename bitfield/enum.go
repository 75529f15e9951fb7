package bitfield

import (
	"fmt"
	"strings"

	"omibyte.io/csrgen/check"
)

// Enum labels one value of a field.
type Enum struct {
	Name  string
	Value int64
	Desc  string
}

func (e Enum) AsDict() map[string]any {
	return map[string]any{
		"name":  e.Name,
		"value": e.Value,
		"desc":  e.Desc,
	}
}

// AsStr renders the enum one level deeper than idt.
func (e Enum) AsStr(idt string) string {
	indent := idt + "  "
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s: %s\n", indent, e.Name, e.Desc)
	fmt.Fprintf(&b, "%svalue = %d", indent, e.Value)
	return b.String()
}

func (e Enum) String() string {
	return e.AsStr("")
}

func (e Enum) check() error {
	if len(e.Name) == 0 {
		return fmt.Errorf("%w: empty enum name is not allowed", ErrInvalidEnum)
	}
	if !check.IsFirstLetter(e.Name) {
		return fmt.Errorf("%w: name value '%s' is wrong, must start from a letter", ErrInvalidEnum, e.Name)
	}
	return nil
}
