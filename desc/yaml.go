package desc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"omibyte.io/csrgen/bitfield"
)

type document struct {
	Register  string               `yaml:"register,omitempty"`
	BitFields []*bitfield.BitField `yaml:"bitfields"`
}

// decodeYAML reads a stream of documents, each an optional register label
// and a list of bitfields.
func decodeYAML(r io.Reader) ([]Entry, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	var entries []Entry
	for {
		var doc document
		if err := d.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			return nil, err
		}
		for i, field := range doc.BitFields {
			if field == nil {
				return nil, fmt.Errorf("bitfield %d of register %q is empty", i, doc.Register)
			}
			entries = append(entries, Entry{Register: doc.Register, Field: field})
		}
	}
}

// Dump writes entries as YAML documents, starting a new document whenever
// the source file or register changes. The output loads back with Load.
func Dump(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	var doc *document
	var path string
	flush := func() error {
		if doc == nil {
			return nil
		}
		return enc.Encode(doc)
	}

	for _, entry := range entries {
		if doc == nil || entry.Path != path || entry.Register != doc.Register {
			if err := flush(); err != nil {
				return err
			}
			doc = &document{Register: entry.Register}
			path = entry.Path
		}
		doc.BitFields = append(doc.BitFields, entry.Field)
	}
	if err := flush(); err != nil {
		return err
	}
	return enc.Close()
}
