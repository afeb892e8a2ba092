package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func importCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-csv <file>",
		Short: "Ingest a CSV file into records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			sum, err := wire.Ingest.ImportCSV(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Printf("Ingested %d rows into %d record(s)", sum.Rows, sum.Records)
			if sum.Uploaded {
				fmt.Print(", uploaded")
			}
			fmt.Println(".")
			return nil
		},
	}
}
