package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the key export bundle for backup",
		Long: "Serializes both key pairs into a JSON bundle suitable for " +
			"clipboard transfer and later re-import. The bundle contains " +
			"private key material; treat it like the keys themselves.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}
			bundle, err := wire.Identity.ExportBundle()
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, append(b, '\n'), 0o600)
			}
			fmt.Println(string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the bundle to a file instead of stdout")
	return cmd
}
