package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vaultsync/internal/domain"
)

func activityCmd() *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity view",
		Long: "Fetches the latest activity snapshot and prints the merged " +
			"view. With --follow, keeps the view reconciled against the " +
			"live insert stream until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(); err != nil {
				return err
			}

			if !follow {
				if err := wire.Feed.Refresh(cmd.Context()); err != nil {
					return err
				}
				printEvents(wire.Feed.Events())
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			wire.Feed.OnChange = func(events []domain.TimelineEvent) {
				fmt.Println("---")
				printEvents(events)
			}
			return wire.Feed.Run(ctx)
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "follow the live insert stream")
	return cmd
}

func printEvents(events []domain.TimelineEvent) {
	if len(events) == 0 {
		fmt.Println("no activity")
		return
	}
	for _, ev := range events {
		ts := time.UnixMilli(ev.EventTimestamp).Format(time.RFC3339)
		fmt.Printf("%s  %-24s %s\n", ts, ev.EventType, ev.ID)
	}
}
