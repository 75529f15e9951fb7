package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"omibyte.io/csrgen/bitfield"
	"omibyte.io/csrgen/desc"
	"omibyte.io/csrgen/types"
)

func newSetCmd() *cobra.Command {
	var opts struct {
		attrs []string
		field string
	}

	cmd := &cobra.Command{
		Use:   "set [files]",
		Short: "Change field attributes and print the result as YAML",
		Long:  "Apply KEY=VALUE attribute assignments to the loaded fields, validate them and print the result as YAML.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := desc.Load(cmd.Context(), desc.Options{Inputs: args})
			if err != nil {
				return err
			}

			matched := false
			for _, entry := range entries {
				if len(opts.field) > 0 && entry.Field.Name() != opts.field && label(entry) != opts.field {
					continue
				}
				matched = true
				for _, attr := range opts.attrs {
					if err := applyAttr(entry.Field, attr); err != nil {
						return fmt.Errorf("%s: %w", label(entry), err)
					}
				}
			}
			if !matched && len(opts.field) > 0 {
				return fmt.Errorf("no field named %q", opts.field)
			}

			if err := desc.Validate(entries); err != nil {
				return err
			}
			return desc.Dump(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.attrs, "attr", "a", nil, "attribute assignment KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&opts.field, "field", "f", "", "only change the field with this name or REGISTER.NAME label")
	return cmd
}

var integerAttrs = []string{"reset", "width", "lsb"}

func applyAttr(field *bitfield.BitField, assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("expected KEY=VALUE, got %q", assignment)
	}

	if slices.Contains(integerAttrs, key) {
		v, err := types.ParseInteger(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%s", bitfield.ErrInvalidAttr, key, value)
		}
		return field.SetAttr(key, int64(v))
	}
	return field.SetAttr(key, value)
}
