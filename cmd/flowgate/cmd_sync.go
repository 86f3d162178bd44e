package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowgate-net/flowgate/pkg/util"
)

// syncCmd builds interfaces from the configured inventory and writes
// their records to the store.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push configured interfaces to the inventory store",
	Long: `Build interface models from the switch inventory and write their
records to the Redis store. Existing records with the same id are
overwritten; records of interfaces no longer configured are left in
place (use "flowgate delete" to remove them).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interfaces, err := cfg.BuildInterfaces()
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, intf := range interfaces {
			rec := intf.Record()
			if err := s.SaveInterface(cmd.Context(), rec); err != nil {
				return err
			}
			util.WithField("interface", rec.ID).Debug("synced")
		}

		fmt.Printf("Synced %d interface(s)\n", len(interfaces))
		return nil
	},
}
