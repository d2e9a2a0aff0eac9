package main

import (
	"github.com/spf13/cobra"
)

func newMkdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory through the adapter",
		Long:  "Invoke the make_directory primitive on the selected backend.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			return backend.MakeDirectory(args[0])
		},
	}
}
