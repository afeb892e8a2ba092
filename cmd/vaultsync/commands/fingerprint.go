package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsync/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint and masked keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}
			id, err := wire.Identity.Current()
			if err != nil {
				return err
			}
			maskedSigning, err := wire.Identity.MaskedSigningKey()
			if err != nil {
				return err
			}
			maskedEncryption, err := wire.Identity.MaskedEncryptionKey()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint:     %s\n", crypto.Fingerprint(id.XPub.Slice()))
			fmt.Printf("Signing key:     %s\n", maskedSigning)
			fmt.Printf("Encryption key:  %s\n", maskedEncryption)
			return nil
		},
	}
}
