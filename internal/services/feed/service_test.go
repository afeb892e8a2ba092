package feed_test

import (
	"context"
	"errors"
	"testing"

	"vaultsync/internal/domain"
	feedsvc "vaultsync/internal/services/feed"
)

// scriptedClient serves queued snapshot results in order.
type scriptedClient struct {
	results []snapshotResult
}

type snapshotResult struct {
	events []domain.TimelineEvent
	err    error
}

func (c *scriptedClient) FetchActivity(ctx context.Context, limit int) ([]domain.TimelineEvent, error) {
	if len(c.results) == 0 {
		return nil, nil
	}
	r := c.results[0]
	c.results = c.results[1:]
	return r.events, r.err
}

// scriptedStream replays queued pushes and then returns its terminal error.
type scriptedStream struct {
	pushes []domain.TimelineEvent
	err    error
}

func (s *scriptedStream) Listen(ctx context.Context, fn func(domain.TimelineEvent)) error {
	for _, ev := range s.pushes {
		fn(ev)
	}
	return s.err
}

func ev(id string, ts int64) domain.TimelineEvent {
	return domain.TimelineEvent{ID: id, EventType: "test_event", EventTimestamp: ts}
}

func TestRefresh_PopulatesView(t *testing.T) {
	client := &scriptedClient{results: []snapshotResult{
		{events: []domain.TimelineEvent{ev("a", 10), ev("b", 8)}},
	}}
	svc := feedsvc.New(client, &scriptedStream{}, nil)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	events := svc.Events()
	if len(events) != 2 || events[0].ID != "a" {
		t.Fatalf("view = %+v", events)
	}
}

func TestRefresh_FailureEmptiesView(t *testing.T) {
	client := &scriptedClient{results: []snapshotResult{
		{events: []domain.TimelineEvent{ev("a", 10)}},
		{err: domain.ErrSnapshotFetch},
	}}
	svc := feedsvc.New(client, &scriptedStream{}, nil)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if err := svc.Refresh(context.Background()); !errors.Is(err, domain.ErrSnapshotFetch) {
		t.Fatalf("want ErrSnapshotFetch, got %v", err)
	}
	if len(svc.Events()) != 0 {
		t.Fatal("failed fetch left stale data in the view")
	}
}

func TestRun_MergesPushesAndKeepsViewOnStreamError(t *testing.T) {
	client := &scriptedClient{results: []snapshotResult{
		{events: []domain.TimelineEvent{ev("a", 10), ev("b", 8)}},
	}}
	stream := &scriptedStream{
		pushes: []domain.TimelineEvent{ev("c", 9), ev("a", 10)}, // second is a duplicate
		err:    domain.ErrPushStream,
	}
	svc := feedsvc.New(client, stream, nil)

	if err := svc.Run(context.Background()); !errors.Is(err, domain.ErrPushStream) {
		t.Fatalf("want ErrPushStream, got %v", err)
	}

	events := svc.Events()
	if len(events) != 3 {
		t.Fatalf("view length = %d, want 3", len(events))
	}
	want := []string{"a", "c", "b"}
	for i, id := range want {
		if events[i].ID != id {
			t.Fatalf("view[%d] = %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestRun_NotifiesOnChange(t *testing.T) {
	client := &scriptedClient{results: []snapshotResult{
		{events: []domain.TimelineEvent{ev("a", 10)}},
	}}
	stream := &scriptedStream{pushes: []domain.TimelineEvent{ev("b", 9)}}
	svc := feedsvc.New(client, stream, nil)

	var calls int
	svc.OnChange = func(events []domain.TimelineEvent) { calls++ }

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 2 { // one for the snapshot, one for the push
		t.Fatalf("OnChange calls = %d, want 2", calls)
	}
}
