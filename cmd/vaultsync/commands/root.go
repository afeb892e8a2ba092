package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vaultsync/internal/app"
)

var (
	home       string
	passphrase string
	apiBase    string

	wire *app.Wire
)

func Execute() error {
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "vaultsync",
		Short:         "Client-side identity and synchronization core",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".vaultsync")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}

			wire, err = app.NewWire(app.Config{
				Home:    home,
				APIBase: apiBase,
				Logger:  logger,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.vaultsync)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().StringVar(&apiBase, "api", "http://127.0.0.1:8080", "remote API base URL")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		exportCmd(),
		importCmd(),
		regenerateCmd(),
		tokenCmd(),
		settingsCmd(),
		activityCmd(),
		importCSVCmd(),
	)
	return root.Execute()
}

// unlock activates the identity for commands that need it.
func unlock() error {
	if passphrase == "" {
		return errPassphraseRequired
	}
	return wire.Identity.Unlock(passphrase)
}
