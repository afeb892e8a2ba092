package interfaces

import (
	"context"

	domaintypes "vaultsync/internal/domain/types"
)

// ActivityClient fetches bounded, most-recent-first activity snapshots
// from the remote API.
type ActivityClient interface {
	FetchActivity(ctx context.Context, limit int) ([]domaintypes.TimelineEvent, error)
}

// PushStream delivers individual TimelineEvent insert notifications.
// Delivery is at-least-once with no ordering guarantee relative to
// snapshot fetches.
type PushStream interface {
	Listen(ctx context.Context, fn func(domaintypes.TimelineEvent)) error
}

// RecordSink accepts locally produced records for upload.
type RecordSink interface {
	PostRecords(ctx context.Context, events []domaintypes.TimelineEvent) error
}
