// Package svd decodes the CMSIS-SVD elements that describe register fields.
package svd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"omibyte.io/csrgen/bitfield"
	"omibyte.io/csrgen/types"
)

var (
	ErrUnknownAccess = errors.New("unknown access")
	ErrBadBitRange   = errors.New("malformed bit range")
)

type RegisterElement struct {
	Name        string        `xml:"name"`
	Description string        `xml:"description"`
	Size        types.Integer `xml:"size"`
	Access      string        `xml:"access"`
	ResetValue  types.Integer `xml:"resetValue"`
	Fields      FieldElements `xml:"fields"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name                string                    `xml:"name"`
	Description         string                    `xml:"description"`
	BitOffset           *types.Integer            `xml:"bitOffset"`
	BitWidth            *types.Integer            `xml:"bitWidth"`
	LSB                 *types.Integer            `xml:"lsb"`
	MSB                 *types.Integer            `xml:"msb"`
	BitRange            string                    `xml:"bitRange"`
	Access              string                    `xml:"access"`
	ModifiedWriteValues string                    `xml:"modifiedWriteValues"`
	ReadAction          string                    `xml:"readAction"`
	EnumeratedValues    []EnumeratedValuesElement `xml:"enumeratedValues"`
}

type EnumeratedValuesElement struct {
	Name     string                   `xml:"name"`
	Usage    string                   `xml:"usage"`
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description"`
	Value       *types.Integer `xml:"value"`
}

var bitRangeRegex = regexp.MustCompile(`^\[\s*(\d+)\s*:\s*(\d+)\s*\]$`)

// Position returns the field's lsb and width from whichever of the three
// SVD position forms is present.
func (f FieldElement) Position() (lsb, width int, err error) {
	switch {
	case len(f.BitRange) > 0:
		m := bitRangeRegex.FindStringSubmatch(f.BitRange)
		if m == nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadBitRange, f.BitRange)
		}
		msb, _ := strconv.Atoi(m[1])
		lsb, _ = strconv.Atoi(m[2])
		return lsb, msb - lsb + 1, nil
	case f.LSB != nil && f.MSB != nil:
		return f.LSB.Int(), f.MSB.Int() - f.LSB.Int() + 1, nil
	case f.BitOffset != nil:
		width = 1
		if f.BitWidth != nil {
			width = f.BitWidth.Int()
		}
		return f.BitOffset.Int(), width, nil
	}
	return 0, 0, fmt.Errorf("%w: no position given", ErrBadBitRange)
}

// FieldAccess maps the SVD access attributes onto a bitfield access mode.
// Field access overrides register access; with neither set it is read-write.
func (f FieldElement) FieldAccess(registerAccess string) (bitfield.Access, error) {
	access := f.Access
	if len(access) == 0 {
		access = registerAccess
	}

	switch access {
	case "", "read-write", "read-writeOnce":
		switch f.ModifiedWriteValues {
		case "oneToClear":
			return bitfield.AccessRW1C, nil
		case "oneToSet":
			return bitfield.AccessRW1S, nil
		case "oneToToggle":
			return bitfield.AccessRW1T, nil
		}
		return bitfield.AccessRW, nil
	case "read-only":
		if f.ReadAction == "clear" {
			return bitfield.AccessROC, nil
		}
		return bitfield.AccessRO, nil
	case "write-only":
		return bitfield.AccessWO, nil
	case "writeOnce":
		return bitfield.AccessWOSC, nil
	}
	return "", fmt.Errorf("%w %q on field %s", ErrUnknownAccess, access, f.Name)
}

// BitFields converts every field of the register. Each field's reset value
// is sliced out of the register reset value.
func (r RegisterElement) BitFields() ([]*bitfield.BitField, error) {
	var fields []*bitfield.BitField
	for _, f := range r.Fields.Elements {
		lsb, width, err := f.Position()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		access, err := f.FieldAccess(r.Access)
		if err != nil {
			return nil, err
		}

		b := bitfield.New(
			bitfield.WithName(f.Name),
			bitfield.WithDesc(f.Description),
			bitfield.WithReset(sliceReset(int64(r.ResetValue), lsb, width)),
			bitfield.WithWidth(width),
			bitfield.WithLSB(lsb),
			bitfield.WithAccess(access),
		)

		// Read and write usages may describe the same values twice
		for _, group := range f.EnumeratedValues {
			for _, ev := range group.Elements {
				if ev.Value == nil {
					continue
				}
				if _, err := b.FindEnum(ev.Name); err == nil {
					continue
				}
				if err := b.AddEnum(bitfield.Enum{Name: ev.Name, Value: int64(*ev.Value), Desc: ev.Description}); err != nil {
					return nil, err
				}
			}
		}
		fields = append(fields, b)
	}
	return fields, nil
}

func sliceReset(reset int64, lsb, width int) int64 {
	if lsb < 0 || lsb > 63 || width <= 0 {
		return 0
	}
	v := int64(uint64(reset) >> uint(lsb))
	if width < 63 {
		v &= int64(1)<<width - 1
	}
	return v
}
