package main

import (
	"fmt"

	"github.com/obeliskdev/mcchat/component"
	"github.com/spf13/cobra"
)

func newPlainCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plain [file]",
		Short: "Print the text of a component without formatting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := flags.readComponent(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), component.Plain(c))
			return err
		},
	}
}
