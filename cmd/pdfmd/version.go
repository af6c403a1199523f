package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfmd/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of pdfmd",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pdfmd %s\n", version.String())
		},
	}
}
