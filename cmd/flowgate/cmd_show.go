package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowgate-net/flowgate/pkg/cli"
)

// showCmd displays one stored interface record.
var showCmd = &cobra.Command{
	Use:   "show <interface-id>",
	Short: "Show one interface record",
	Long: `Show the stored record of one interface.

The interface id is "<switch-id>:<port-number>", as printed by
"flowgate list".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.GetInterface(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		fmt.Printf("Interface: %s\n", rec.ID)
		fmt.Printf("Name: %s\n", rec.Name)
		fmt.Printf("Port Number: %d\n", rec.PortNumber)
		fmt.Printf("Switch: %s\n", rec.Switch)
		fmt.Printf("Type: %s\n", cli.PortType(rec.NNI))
		fmt.Printf("MAC: %s\n", cli.OrDash(rec.MAC))
		fmt.Printf("Speed: %s\n", cli.OrDash(recordSpeed(rec)))

		if len(rec.Metadata) > 0 {
			fmt.Println("\nMetadata:")
			for k, v := range rec.Metadata {
				fmt.Printf("  %s: %v\n", k, v)
			}
		}
		if len(rec.Stats) > 0 {
			fmt.Println("\nStats:")
			for k, v := range rec.Stats {
				fmt.Printf("  %s: %v\n", k, v)
			}
		}
		return nil
	},
}
