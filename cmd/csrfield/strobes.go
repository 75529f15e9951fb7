package main

import (
	"fmt"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/csrgen/desc"
)

func newStrobesCmd(env Env) *cobra.Command {
	var dataWidth int

	cmd := &cobra.Command{
		Use:   "strobes [files]",
		Short: "Print the byte lanes each field occupies",
		Long:  "Print, per field, which bits of each write-data byte lane belong to the field and which field bits they carry.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataWidth <= 0 || dataWidth%8 != 0 {
				return fmt.Errorf("data width must be a positive multiple of 8, got %d", dataWidth)
			}

			entries, err := desc.Load(cmd.Context(), desc.Options{Inputs: args, Validate: true})
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "csrfield: ", 0)
			numLanes := dataWidth / 8

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range entries {
				field := entry.Field
				fmt.Fprintf(w, "%s [%d:%d] mask=%#x\n", label(entry), field.MSB(), field.LSB(), field.Mask())
				fmt.Fprintln(w, "\tlane\twdata\tfield\tstrobe mask")
				for _, strb := range field.ByteStrobes() {
					fmt.Fprintf(w, "\t%d\t[%d:%d]\t[%d:%d]\t%#02x\n", strb.Lane, strb.WDataMSB, strb.WDataLSB, strb.BFMSB, strb.BFLSB, strb.Mask())
					if strb.Lane >= numLanes {
						logger.Printf("%s: lane %d is outside the %d-bit data bus", label(entry), strb.Lane, dataWidth)
					}
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&dataWidth, "data-width", "w", env.Int("CSRFIELD_DATA_WIDTH", 32), "write-data bus width in bits. Default: $CSRFIELD_DATA_WIDTH")
	return cmd
}
