package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowgate-net/flowgate/pkg/cli"
	"github.com/flowgate-net/flowgate/pkg/port"
)

// listCmd lists all stored interface records.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored interface records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.ListInterfaces(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(records)
		}

		if len(records) == 0 {
			fmt.Println("No interfaces in store")
			return nil
		}

		table := cli.NewTable(os.Stdout, "INTERFACE", "NAME", "TYPE", "MAC", "SPEED", "SWITCH")
		for _, rec := range records {
			table.Row(
				rec.ID,
				rec.Name,
				cli.PortType(rec.NNI),
				cli.OrDash(rec.MAC),
				cli.OrDash(recordSpeed(rec)),
				rec.Switch,
			)
		}
		table.Flush()
		return nil
	},
}

// recordSpeed renders a record's speed for display; empty when the
// speed could not be determined.
func recordSpeed(rec *port.Record) string {
	if rec.Speed == nil {
		return ""
	}
	return port.FormatSpeed(*rec.Speed)
}
