package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vaultsync/internal/domain"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change sync settings",
	}
	cmd.AddCommand(settingsGetCmd(), settingsSetCmd())
	return cmd
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current sync settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := wire.Settings.Load()
			if err != nil {
				return err
			}
			printSettings(s)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		apiSync       string
		csvRowRecords string
		cloudStorage  string
		tokenOverride string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change sync settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			var err error
			if patch.APISyncEnabled, err = parseBoolFlag(apiSync); err != nil {
				return fmt.Errorf("--api-sync: %w", err)
			}
			if patch.CSVRowRecordsEnabled, err = parseBoolFlag(csvRowRecords); err != nil {
				return fmt.Errorf("--csv-row-records: %w", err)
			}
			if patch.CloudStorageEnabled, err = parseBoolFlag(cloudStorage); err != nil {
				return fmt.Errorf("--cloud-storage: %w", err)
			}
			if cmd.Flags().Changed("token-override") {
				patch.BearerTokenOverride = &tokenOverride
			}

			s, err := wire.Settings.Save(patch)
			if err != nil {
				return err
			}
			printSettings(s)
			return nil
		},
	}
	cmd.Flags().StringVar(&apiSync, "api-sync", "", "propagate local writes to the remote API (true/false)")
	cmd.Flags().StringVar(&csvRowRecords, "csv-row-records", "", "produce one record per ingested CSV row (true/false)")
	cmd.Flags().StringVar(&cloudStorage, "cloud-storage", "", "enable cloud storage (true/false)")
	cmd.Flags().StringVar(&tokenOverride, "token-override", "", "override the derived bearer token (empty clears)")
	return cmd
}

func parseBoolFlag(v string) (*bool, error) {
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func printSettings(s domain.SyncSettings) {
	fmt.Printf("api sync:         %v\n", s.APISyncEnabled)
	fmt.Printf("csv row records:  %v\n", s.CSVRowRecordsEnabled)
	fmt.Printf("cloud storage:    %v\n", s.CloudStorageEnabled)
	if s.BearerTokenOverride != "" {
		fmt.Printf("token override:   %s\n", s.BearerTokenOverride)
	}
}
