package main

import (
	"fmt"

	"github.com/obeliskdev/mcchat/protocol"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "mcchat %s\ncommit: %s\ngame versions: %s - %s\n",
				version, commit, protocol.First, protocol.Latest)
			return nil
		},
	}
}
