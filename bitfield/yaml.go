package bitfield

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"omibyte.io/csrgen/types"
)

type fieldDoc struct {
	Name   string    `yaml:"name"`
	Desc   string    `yaml:"desc"`
	Reset  int64     `yaml:"reset"`
	Width  int       `yaml:"width"`
	LSB    int       `yaml:"lsb"`
	Access Access    `yaml:"access"`
	Enum   []enumDoc `yaml:"enum"`
}

type enumDoc struct {
	Name  string        `yaml:"name"`
	Value types.Integer `yaml:"value"`
	Desc  string        `yaml:"desc"`
}

func (b *BitField) MarshalYAML() (any, error) {
	doc := fieldDoc{
		Name:   b.name,
		Desc:   b.desc,
		Reset:  b.reset,
		Width:  b.width,
		LSB:    b.lsb,
		Access: b.access,
		Enum:   []enumDoc{},
	}
	for _, e := range b.enums {
		doc.Enum = append(doc.Enum, enumDoc{Name: e.Name, Value: types.Integer(e.Value), Desc: e.Desc})
	}
	return doc, nil
}

// UnmarshalYAML decodes a field mapping. Keys that are left out keep the
// defaults of New.
func (b *BitField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: bitfield must be a mapping", node.Line)
	}

	*b = *New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		if key.Value == "enum" {
			if err := b.unmarshalEnums(val); err != nil {
				return err
			}
			continue
		}

		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %w", val.Line, &AttrError{Attr: key.Value, Want: "scalar", Value: val.Value})
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", val.Line, err)
		}
		if v == nil {
			continue
		}
		if err := b.SetAttr(key.Value, v); err != nil {
			return fmt.Errorf("line %d: %w", val.Line, err)
		}
	}
	return nil
}

func (b *BitField) unmarshalEnums(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: 'enum' attribute has to be a sequence", node.Line)
	}

	for _, item := range node.Content {
		var doc enumDoc
		if err := item.Decode(&doc); err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}
		if err := b.AddEnum(Enum{Name: doc.Name, Value: int64(doc.Value), Desc: doc.Desc}); err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}
	}
	return nil
}
