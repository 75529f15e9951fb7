package main

import (
	"github.com/spf13/cobra"

	"omibyte.io/csrgen/desc"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [files]",
		Short: "Re-emit the description files as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := desc.Load(cmd.Context(), desc.Options{Inputs: args})
			if err != nil {
				return err
			}
			return desc.Dump(cmd.OutOrStdout(), entries)
		},
	}
}
