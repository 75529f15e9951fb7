// Package atdf decodes the Microchip ATDF module elements that describe
// register bitfields.
package atdf

import (
	"errors"
	"fmt"
	"math/bits"

	"omibyte.io/csrgen/bitfield"
	"omibyte.io/csrgen/types"
)

var (
	ErrNonContiguousMask = errors.New("bitfield mask is not contiguous")
	ErrMissingValueGroup = errors.New("value group not found")
)

type ModuleElement struct {
	Name           string                       `xml:"name,attr"`
	Id             string                       `xml:"id,attr"`
	Caption        string                       `xml:"caption,attr,omitempty"`
	RegisterGroups []ModuleRegisterGroupElement `xml:"register-group"`
	ValueGroups    []ModuleValueGroupElement    `xml:"value-group"`
}

func (m *ModuleElement) FindValueGroup(name string) *ModuleValueGroupElement {
	for i := range m.ValueGroups {
		if m.ValueGroups[i].Name == name {
			return &m.ValueGroups[i]
		}
	}
	return nil
}

type ModuleRegisterGroupElement struct {
	Name      string                       `xml:"name,attr"`
	Caption   string                       `xml:"caption,attr,omitempty"`
	Registers []RegisterElement            `xml:"register"`
	Groups    []ModuleRegisterGroupElement `xml:"register-group"`
}

type RegisterElement struct {
	Name      string            `xml:"name,attr"`
	RW        string            `xml:"rw,attr"`
	Size      types.Integer     `xml:"size,attr"`
	InitValue types.Integer     `xml:"initval,attr"`
	Caption   string            `xml:"caption,attr,omitempty"`
	BitFields []BitFieldElement `xml:"bitfield"`
}

type BitFieldElement struct {
	Name    string        `xml:"name,attr"`
	Caption string        `xml:"caption,attr,omitempty"`
	Mask    types.Integer `xml:"mask,attr"`
	RW      string        `xml:"rw,attr"`
	Values  string        `xml:"values,attr,omitempty"`
}

type ModuleValueGroupElement struct {
	Name     string               `xml:"name,attr"`
	Elements []ModuleValueElement `xml:"value"`
}

type ModuleValueElement struct {
	Name    string        `xml:"name,attr"`
	Caption string        `xml:"caption,attr,omitempty"`
	Value   types.Integer `xml:"value,attr"`
}

// Position derives lsb and width from the bitfield mask.
func (b BitFieldElement) Position() (lsb, width int, err error) {
	mask := uint64(b.Mask)
	if mask == 0 {
		return 0, 0, fmt.Errorf("%w: %s has an empty mask", ErrNonContiguousMask, b.Name)
	}
	lsb = bits.TrailingZeros64(mask)
	width = bits.OnesCount64(mask)
	if bits.Len64(mask)-lsb != width {
		return 0, 0, fmt.Errorf("%w: %s mask %#x", ErrNonContiguousMask, b.Name, mask)
	}
	return lsb, width, nil
}

func accessForRW(rw string) bitfield.Access {
	switch rw {
	case "R":
		return bitfield.AccessRO
	case "W":
		return bitfield.AccessWO
	}
	return bitfield.AccessRW
}

// Walk calls fn for every register in the module, nested register groups
// included, in document order.
func (m *ModuleElement) Walk(fn func(group string, register RegisterElement) error) error {
	var walk func(groups []ModuleRegisterGroupElement) error
	walk = func(groups []ModuleRegisterGroupElement) error {
		for _, group := range groups {
			for _, register := range group.Registers {
				if err := fn(group.Name, register); err != nil {
					return err
				}
			}
			if err := walk(group.Groups); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(m.RegisterGroups)
}

// BitFields converts the bitfields of register, resolving value groups
// against the module.
func (m *ModuleElement) BitFields(register RegisterElement) ([]*bitfield.BitField, error) {
	var fields []*bitfield.BitField
	for _, bf := range register.BitFields {
		lsb, width, err := bf.Position()
		if err != nil {
			return nil, err
		}

		rw := bf.RW
		if len(rw) == 0 {
			rw = register.RW
		}

		reset := int64(uint64(register.InitValue)&uint64(bf.Mask)) >> lsb
		b := bitfield.New(
			bitfield.WithName(bf.Name),
			bitfield.WithDesc(bf.Caption),
			bitfield.WithReset(reset),
			bitfield.WithWidth(width),
			bitfield.WithLSB(lsb),
			bitfield.WithAccess(accessForRW(rw)),
		)

		if len(bf.Values) > 0 {
			group := m.FindValueGroup(bf.Values)
			if group == nil {
				return nil, fmt.Errorf("%w: %s referenced by %s", ErrMissingValueGroup, bf.Values, bf.Name)
			}
			for _, value := range group.Elements {
				if err := b.AddEnum(bitfield.Enum{Name: value.Name, Value: int64(value.Value), Desc: value.Caption}); err != nil {
					return nil, err
				}
			}
		}
		fields = append(fields, b)
	}
	return fields, nil
}
