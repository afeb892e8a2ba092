package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the bearer token presented to the remote API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}
			token, err := wire.Identity.BearerToken()
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}
