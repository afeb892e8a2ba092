package main

import (
	"os"

	"vaultsync/cmd/vaultsync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
