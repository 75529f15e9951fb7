package bitfield

import (
	"fmt"
	"strings"
)

// AsDict returns a snapshot of the field's attributes and enums. Two fields
// are Equal exactly when their snapshots are deeply equal.
func (b *BitField) AsDict() map[string]any {
	enums := make([]map[string]any, 0, len(b.enums))
	for _, e := range b.enums {
		enums = append(enums, e.AsDict())
	}

	return map[string]any{
		"name":   b.name,
		"desc":   b.desc,
		"reset":  b.reset,
		"width":  b.width,
		"lsb":    b.lsb,
		"access": string(b.access),
		"enum":   enums,
	}
}

// AsStr renders the field for diagnostics, one level deeper than idt.
// The output is descriptive only and is not meant to be parsed back.
func (b *BitField) AsStr(idt string) string {
	indent := idt + "  "
	var w strings.Builder
	fmt.Fprintf(&w, "%s%s: %s\n", indent, b.name, b.desc)
	fmt.Fprintf(&w, "%sreset = %d\n", indent, b.reset)
	fmt.Fprintf(&w, "%swidth = %d\n", indent, b.width)
	fmt.Fprintf(&w, "%slsb = %d\n", indent, b.lsb)
	fmt.Fprintf(&w, "%saccess = %s\n", indent, b.access)
	fmt.Fprintf(&w, "%senum:\n", indent)

	if len(b.enums) == 0 {
		w.WriteString(indent + "empty")
		return w.String()
	}

	enums := make([]string, len(b.enums))
	for i, e := range b.enums {
		enums[i] = e.AsStr(indent + indent)
	}
	w.WriteString(strings.Join(enums, "\n"))
	return w.String()
}

func (b *BitField) String() string {
	return b.AsStr("")
}

// GoString identifies the field by name in %#v output.
func (b *BitField) GoString() string {
	return fmt.Sprintf("BitField(%q)", b.name)
}
