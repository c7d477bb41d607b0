package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}

func logAppVersion(cc *commandContext) {
	cc.log.Info("starting gourmet", "version", buildVersion, "date", buildDate, "commit", buildCommit)
}
