package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vaultsync/internal/domain"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [bundle-file]",
		Short: "Replace the identity from an export bundle",
		Long: "Validates the bundle and atomically replaces the current " +
			"identity. On any validation or persistence failure the " +
			"existing identity is untouched. Reads stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}

			var raw []byte
			var err error
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			var bundle domain.KeyExportBundle
			if err := json.Unmarshal(raw, &bundle); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrMalformedKeyData, err)
			}

			reload, err := wire.Identity.ImportBundle(bundle)
			if err != nil {
				return err
			}
			fmt.Println("Identity imported.")
			if reload {
				fmt.Println("Bearer token changed; cached data derived from the old identity is stale.")
			}
			return nil
		},
	}
}
