package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"omibyte.io/csrgen/desc"
)

func newRootCmd(env Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "csrfield",
		Short:         "Inspect register bitfield descriptions",
		Long:          "Load bitfield descriptions from YAML, SVD or ATDF files and report their layout, byte strobes and validity.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newShowCmd(env),
		newStrobesCmd(env),
		newValidateCmd(),
		newDumpCmd(),
		newSetCmd(),
		newEnvCmd(env),
	)
	return rootCmd
}

func newEnvCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print csrfield environment information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			env.Print(cmd.OutOrStdout())
		},
	}
}

func label(entry desc.Entry) string {
	if len(entry.Register) > 0 {
		return fmt.Sprintf("%s.%s", entry.Register, entry.Field.Name())
	}
	return entry.Field.Name()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("csrfield: ")

	if err := newRootCmd(Environment()).Execute(); err != nil {
		log.Fatal(err)
	}
}
