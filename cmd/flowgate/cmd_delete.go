package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd removes one interface record from the store.
var deleteCmd = &cobra.Command{
	Use:   "delete <interface-id>",
	Short: "Delete one interface record from the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteInterface(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}
