package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/csrgen/desc"
)

func newShowCmd(env Env) *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "show [files]",
		Short: "Print every field of the description files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := desc.Load(cmd.Context(), desc.Options{Inputs: args})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(w, "%s%s (%s)\n", indent, label(entry), entry.Path)
				fmt.Fprintln(w, entry.Field.AsStr(indent))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&indent, "indent", "i", env["CSRFIELD_INDENT"], "indentation prefix. Default: $CSRFIELD_INDENT")
	return cmd
}
