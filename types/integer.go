package types

import (
	"encoding/xml"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Integer is a signed scalar written in decimal, 0x-prefixed hex or binary,
// the way register descriptions spell offsets, masks and reset values.
type Integer int64

// ParseInteger parses decimal, 0x/0X hex, or 0b/# binary text.
func ParseInteger(s string) (Integer, error) {
	v := strings.ReplaceAll(strings.TrimSpace(s), "X", "x")

	var value int64
	var err error
	if strings.HasPrefix(v, "0b") || strings.HasPrefix(v, "0B") {
		value, err = strconv.ParseInt(v[2:], 2, 64)
	} else if strings.HasPrefix(v, "#") {
		value, err = strconv.ParseInt(v[1:], 2, 64)
	} else if strings.HasPrefix(v, "0x") {
		value, err = strconv.ParseInt(strings.TrimPrefix(v, "0x"), 16, 64)
	} else if strings.HasPrefix(v, "-0x") {
		value, err = strconv.ParseInt("-"+strings.TrimPrefix(v, "-0x"), 16, 64)
	} else {
		value, err = strconv.ParseInt(v, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	return Integer(value), nil
}

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}

	value, err := ParseInteger(v)
	if err != nil {
		return err
	}
	*i = value
	return nil
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) (err error) {
	value, err := ParseInteger(attr.Value)
	if err != nil {
		return err
	}
	*i = value
	return nil
}

func (i *Integer) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"line " + strconv.Itoa(node.Line) + ": expected an integer scalar"}}
	}

	value, err := ParseInteger(node.Value)
	if err != nil {
		return err
	}
	*i = value
	return nil
}

// Int returns the value as an int.
func (i Integer) Int() int {
	return int(i)
}
