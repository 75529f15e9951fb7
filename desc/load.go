// Package desc loads bitfield descriptions from YAML, CMSIS-SVD and ATDF files.
package desc

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"omibyte.io/csrgen/bitfield"
	"omibyte.io/csrgen/desc/atdf"
	"omibyte.io/csrgen/desc/svd"
)

// Entry is one loaded field together with where it came from.
type Entry struct {
	Path     string
	Register string
	Field    *bitfield.BitField
}

// Load reads every file matched by opts.Inputs, in pattern order.
func Load(ctx context.Context, opts Options) ([]Entry, error) {
	var fnames []string
	for _, pattern := range opts.Inputs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoInputs, pattern)
		}
		fnames = append(fnames, matches...)
	}

	var entries []Entry
	for _, fname := range fnames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		buf, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}

		loaded, err := Decode(fname, buf)
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}

	if opts.Validate {
		if err := Validate(entries); err != nil {
			return entries, err
		}
	}
	return entries, nil
}

// Decode picks a decoder from the extension of fname.
func Decode(fname string, buf []byte) ([]Entry, error) {
	var entries []Entry
	var err error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		entries, err = decodeYAML(bytes.NewReader(buf))
	case ".svd":
		entries, err = decodeSVD(bytes.NewReader(buf))
	case ".atdf":
		entries, err = decodeATDF(bytes.NewReader(buf))
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedFileType, filepath.Ext(fname))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	for i := range entries {
		entries[i].Path = fname
	}
	return entries, nil
}

// Validate validates every entry and joins the failures.
func Validate(entries []Entry) error {
	var errs []error
	for _, entry := range entries {
		if err := entry.Field.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Path, err))
		}
	}
	return errors.Join(errs...)
}

func rootElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, fmt.Errorf("%w: empty document", ErrUnsupportedRoot)
			}
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func decodeSVD(r io.Reader) ([]Entry, error) {
	d := xml.NewDecoder(r)
	start, err := rootElement(d)
	if err != nil {
		return nil, err
	}

	var register svd.RegisterElement
	switch start.Name.Local {
	case "register":
		err = d.DecodeElement(&register, &start)
	case "fields":
		err = d.DecodeElement(&register.Fields, &start)
	default:
		return nil, fmt.Errorf("%w <%s>", ErrUnsupportedRoot, start.Name.Local)
	}
	if err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}

	fields, err := register.BitFields()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(fields))
	for i, field := range fields {
		entries[i] = Entry{Register: register.Name, Field: field}
	}
	return entries, nil
}

func decodeATDF(r io.Reader) ([]Entry, error) {
	d := xml.NewDecoder(r)
	start, err := rootElement(d)
	if err != nil {
		return nil, err
	}
	if start.Name.Local != "module" {
		return nil, fmt.Errorf("%w <%s>", ErrUnsupportedRoot, start.Name.Local)
	}

	var module atdf.ModuleElement
	if err = d.DecodeElement(&module, &start); err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}

	var entries []Entry
	err = module.Walk(func(group string, register atdf.RegisterElement) error {
		fields, err := module.BitFields(register)
		if err != nil {
			return fmt.Errorf("register %s: %w", register.Name, err)
		}
		for _, field := range fields {
			entries = append(entries, Entry{Register: register.Name, Field: field})
		}
		return nil
	})
	return entries, err
}
