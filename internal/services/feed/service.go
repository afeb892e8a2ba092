package feed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vaultsync/internal/domain"
	"vaultsync/internal/timeline"
)

// Service reconciles the polled snapshot with the live insert stream
// into one bounded activity view.
type Service struct {
	client     domain.ActivityClient
	stream     domain.PushStream
	reconciler *timeline.Reconciler
	logger     *zap.Logger

	// OnChange, when set before Run or Refresh, is invoked with a copy
	// of the view after every change. Called from the goroutine that
	// caused the change.
	OnChange func([]domain.TimelineEvent)
}

// New returns a feed service over the given collaborators. A nil
// logger falls back to zap.NewNop.
func New(client domain.ActivityClient, stream domain.PushStream, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		stream:     stream,
		reconciler: timeline.NewReconciler(timeline.DefaultCap),
		logger:     logger,
	}
}

// Refresh issues a snapshot fetch and applies the result. If a newer
// fetch was issued while this one was in flight, the result is
// discarded. On failure of the current fetch the view degrades to
// empty and the wrapped error is returned.
func (s *Service) Refresh(ctx context.Context) error {
	seq := s.reconciler.Begin()
	events, err := s.client.FetchActivity(ctx, timeline.DefaultCap)
	if err != nil {
		if s.reconciler.Fail(seq) {
			s.logger.Warn("activity snapshot failed, view cleared", zap.Error(err))
			s.notify()
		}
		return err
	}
	if s.reconciler.ApplySnapshot(seq, events) {
		s.notify()
	}
	return nil
}

// Run performs an initial refresh and then consumes the push stream
// until ctx is cancelled. Stream errors keep the last-known-good view
// and are returned wrapped in domain.ErrPushStream; a failed initial
// refresh is logged but does not stop the stream.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("initial activity refresh failed", zap.Error(err))
	}
	err := s.stream.Listen(ctx, func(ev domain.TimelineEvent) {
		if s.reconciler.Push(ev) {
			s.notify()
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("push stream terminated", zap.Error(err))
		return err
	}
	return nil
}

// Events returns a copy of the current activity view.
func (s *Service) Events() []domain.TimelineEvent {
	return s.reconciler.Events()
}

func (s *Service) notify() {
	if s.OnChange != nil {
		s.OnChange(s.reconciler.Events())
	}
}
