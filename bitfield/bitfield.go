// Package bitfield models one named bit range of a control/status register
// and how that range lands on the byte lanes of a write-data bus.
package bitfield

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"

	"omibyte.io/csrgen/check"
)

// BitField is a single field of a register. The zero value is not useful;
// construct fields with New.
type BitField struct {
	name   string
	desc   string
	reset  int64
	width  int
	lsb    int
	access Access
	enums  []Enum
}

type Option func(b *BitField)

func WithName(name string) Option     { return func(b *BitField) { b.name = name } }
func WithDesc(desc string) Option     { return func(b *BitField) { b.desc = desc } }
func WithReset(reset int64) Option    { return func(b *BitField) { b.reset = reset } }
func WithWidth(width int) Option      { return func(b *BitField) { b.width = width } }
func WithLSB(lsb int) Option          { return func(b *BitField) { b.lsb = lsb } }
func WithAccess(access Access) Option { return func(b *BitField) { b.access = access } }

// New creates a one bit wide read-write field at bit 0 and applies opts.
func New(opts ...Option) *BitField {
	b := &BitField{
		width:  1,
		access: AccessRW,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *BitField) Name() string   { return b.name }
func (b *BitField) Desc() string   { return b.desc }
func (b *BitField) Reset() int64   { return b.reset }
func (b *BitField) Width() int     { return b.width }
func (b *BitField) LSB() int       { return b.lsb }
func (b *BitField) Access() Access { return b.access }

func (b *BitField) SetName(name string)     { b.name = name }
func (b *BitField) SetDesc(desc string)     { b.desc = desc }
func (b *BitField) SetReset(reset int64)    { b.reset = reset }
func (b *BitField) SetWidth(width int)      { b.width = width }
func (b *BitField) SetLSB(lsb int)          { b.lsb = lsb }
func (b *BitField) SetAccess(access Access) { b.access = access }

// MSB returns the position of the most significant bit of the field.
func (b *BitField) MSB() int {
	return b.lsb + b.width - 1
}

// Mask returns the field's bits set in register bit numbering. The result
// is a big.Int since a field may sit above bit 63 of a wide register.
func (b *BitField) Mask() *big.Int {
	mask := new(big.Int)
	if b.width <= 0 {
		return mask
	}
	one := big.NewInt(1)
	mask.Lsh(one, uint(b.width))
	mask.Sub(mask, one)
	if b.lsb > 0 {
		mask.Lsh(mask, uint(b.lsb))
	} else if b.lsb < 0 {
		mask.Rsh(mask, uint(-b.lsb))
	}
	return mask
}

// Bits returns every bit position covered by the field, lsb first.
func (b *BitField) Bits() []int {
	var bits []int
	for i := b.lsb; i <= b.MSB(); i++ {
		bits = append(bits, i)
	}
	return bits
}

// IsVector reports whether the field is wider than one bit.
func (b *BitField) IsVector() bool {
	return b.width > 1
}

// Validate checks the field's invariants and reports the first violation.
func (b *BitField) Validate() error {
	if len(b.name) == 0 {
		return b.invalid("name", b.name, "empty bitfield name is not allowed")
	}
	if !check.IsFirstLetter(b.name) {
		return b.invalid("name", b.name, "must start from a letter")
	}
	if !check.IsNonNegInt(b.reset) {
		return b.invalid("reset", b.reset, "only non-negative integers are allowed")
	}
	if b.width == 0 {
		return b.invalid("width", b.width, "empty bitfield width is not allowed")
	}
	if !check.IsPosInt(int64(b.width)) {
		return b.invalid("width", b.width, "only positive integers are allowed")
	}
	if !check.IsNonNegInt(int64(b.lsb)) {
		return b.invalid("lsb", b.lsb, "only non-negative integers are allowed")
	}
	if !b.access.Valid() {
		return b.invalid("access", b.access, "unknown access mode")
	}
	if !check.FitsWidth(b.reset, b.width) {
		return b.invalid("reset", b.reset, fmt.Sprintf("does not fit in %d bits", b.width))
	}
	for _, e := range b.enums {
		if !check.FitsWidth(e.Value, b.width) {
			return b.invalid("enum", e.Name, fmt.Sprintf("value %d does not fit in %d bits", e.Value, b.width))
		}
	}
	return nil
}

func (b *BitField) invalid(attr string, value any, reason string) error {
	return &ValidationError{
		Field:  b.name,
		Attr:   attr,
		Value:  value,
		Reason: reason,
	}
}

// Equal reports whether both fields carry the same attributes and the same
// enums in the same order.
func (b *BitField) Equal(other *BitField) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.name == other.name &&
		b.desc == other.desc &&
		b.reset == other.reset &&
		b.width == other.width &&
		b.lsb == other.lsb &&
		b.access == other.access &&
		slices.Equal(b.enums, other.enums)
}

// Clone returns a deep copy of the field.
func (b *BitField) Clone() *BitField {
	c := *b
	c.enums = slices.Clone(b.enums)
	return &c
}

// AddEnum appends e to the field's enums. Names must be unique within the field.
func (b *BitField) AddEnum(e Enum) error {
	if err := e.check(); err != nil {
		return fmt.Errorf("%w in the '%s' bitfield", err, b.name)
	}
	if slices.Contains(b.EnumNames(), e.Name) {
		return fmt.Errorf("%w: '%s' in the '%s' bitfield", ErrEnumExists, e.Name, b.name)
	}
	b.enums = append(b.enums, e)
	return nil
}

// FindEnum returns the first enum named name.
func (b *BitField) FindEnum(name string) (Enum, error) {
	i := slices.IndexFunc(b.enums, func(e Enum) bool { return e.Name == name })
	if i < 0 {
		return Enum{}, b.enumNotFound(name)
	}
	return b.enums[i], nil
}

// EnumAt returns the enum at position i.
func (b *BitField) EnumAt(i int) (Enum, error) {
	if i < 0 || i >= len(b.enums) {
		return Enum{}, b.enumNotFound(i)
	}
	return b.enums[i], nil
}

func (b *BitField) enumNotFound(key any) error {
	return fmt.Errorf("%w: there is no enum with the name/index '%v' in the '%s' bitfield", ErrEnumNotFound, key, b.name)
}

// Enums returns a copy of the field's enums in insertion order.
func (b *BitField) Enums() []Enum {
	return slices.Clone(b.enums)
}

func (b *BitField) NumEnums() int {
	return len(b.enums)
}

func (b *BitField) EnumNames() []string {
	names := make([]string, 0, len(b.enums))
	for _, e := range b.enums {
		names = append(names, e.Name)
	}
	return names
}
