package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCwdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cwd",
		Short: "Print the current working directory through the adapter",
		Long:  "Invoke the current_directory primitive on the selected backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			dir, err := backend.CurrentDirectory()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
