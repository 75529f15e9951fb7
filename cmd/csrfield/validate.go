package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/csrgen/desc"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files]",
		Short: "Check every field of the description files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := desc.Load(cmd.Context(), desc.Options{Inputs: args, Validate: true})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d fields ok\n", len(entries))
			return nil
		},
	}
}
