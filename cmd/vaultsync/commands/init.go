package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errPassphraseRequired = errors.New("passphrase required (-p)")

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate identity keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return errPassphraseRequired
			}
			_, fp, err := wire.Identity.Create(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Identity created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
