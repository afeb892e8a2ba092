package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func regenerateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Destructively replace the identity with fresh keys",
		Long: "Generates a brand-new identity. Data encrypted under the " +
			"current encryption key becomes permanently unrecoverable. " +
			"Asks for confirmation unless --yes is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}

			intent, err := wire.Identity.RequestRegenerate()
			if err != nil {
				return err
			}

			if !yes {
				fmt.Printf("This permanently invalidates all data encrypted under the current keys.\n")
				fmt.Printf("Type %q to continue: ", intent.ID[:8])
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				if strings.TrimSpace(line) != intent.ID[:8] {
					fmt.Println("Aborted; identity unchanged.")
					return nil
				}
			}

			reload, err := wire.Identity.ConfirmRegenerate(intent)
			if err != nil {
				return err
			}
			fmt.Println("Identity regenerated.")
			if reload {
				token, err := wire.Identity.BearerToken()
				if err != nil {
					return err
				}
				fmt.Printf("New bearer token: %s\n", token)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the interactive confirmation")
	return cmd
}
