// Flowgate - OpenFlow Port Inventory Tool
//
// A CLI for managing the flowgate port inventory:
//   - Builds interface models from the YAML switch inventory
//   - Resolves port speeds from feature bits and protocol generation
//   - Publishes stable JSON records to the Redis inventory store
//
// Usage:
//
//	flowgate sync                 # push configured interfaces to the store
//	flowgate list                 # list stored interface records
//	flowgate show <interface-id>  # show one record
//	flowgate delete <interface-id>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flowgate-net/flowgate/pkg/config"
	"github.com/flowgate-net/flowgate/pkg/store"
	"github.com/flowgate-net/flowgate/pkg/util"
)

var (
	configPath string
	redisAddr  string
	verbose    bool
	jsonOutput bool

	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "flowgate",
	Short:             "OpenFlow Port Inventory Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Flowgate models OpenFlow switch ports and publishes their records
to a Redis inventory store.

The switch inventory is read from a YAML configuration file
(default ~/.flowgate/config.yaml).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.LoadFrom(path)
		if err != nil {
			return err
		}

		if redisAddr != "" {
			cfg.Store.RedisAddr = redisAddr
		}

		if verbose {
			util.SetLogLevel("debug")
		} else if err := util.SetLogLevel(cfg.Log.Level); err != nil {
			return err
		}
		if cfg.Log.Format == "json" {
			util.SetJSONFormat()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	for _, cmd := range []*cobra.Command{listCmd, showCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	}

	rootCmd.AddCommand(syncCmd, listCmd, showCmd, deleteCmd)
}

// openStore connects to the inventory store, prompting for the SSH
// password when the store is behind a tunnel.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	opts := store.Options{
		Addr:      cfg.Store.RedisAddr,
		DB:        cfg.Store.RedisDB,
		KeyPrefix: cfg.Store.KeyPrefix,
		SSHHost:   cfg.Store.SSHHost,
		SSHUser:   cfg.Store.SSHUser,
	}

	if opts.SSHHost != "" {
		pass, err := sshPassword(opts.SSHUser, opts.SSHHost)
		if err != nil {
			return nil, err
		}
		opts.SSHPassword = pass
	}

	s, err := store.New(opts)
	if err != nil {
		return nil, err
	}
	if err := s.Connect(cmd.Context()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// sshPassword returns the tunnel password from FLOWGATE_SSH_PASSWORD,
// or prompts on the terminal.
func sshPassword(user, host string) (string, error) {
	if pass := os.Getenv("FLOWGATE_SSH_PASSWORD"); pass != "" {
		return pass, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("SSH password required: set FLOWGATE_SSH_PASSWORD or run interactively")
	}

	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", user, host)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pass), nil
}
