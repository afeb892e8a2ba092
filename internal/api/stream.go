package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"vaultsync/internal/domain"
)

// Stream subscribes to the live insert notifications over a websocket.
type Stream struct {
	Base   string
	Dialer *websocket.Dialer
	Token  TokenSource
}

// NewStream returns a Stream for the given API base URL.
func NewStream(base string, token TokenSource) *Stream {
	return &Stream{Base: base, Dialer: websocket.DefaultDialer, Token: token}
}

// Listen dials the stream endpoint and invokes fn for every insert
// notification until ctx is cancelled or the connection fails.
// Delivery is at-least-once with no ordering guarantee; undecodable
// frames are skipped. Connection and read errors wrap
// domain.ErrPushStream.
func (s *Stream) Listen(ctx context.Context, fn func(domain.TimelineEvent)) error {
	header := http.Header{}
	if s.Token != nil {
		token, err := s.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPushStream, err)
		}
		header.Set("Authorization", "Bearer "+token.String())
	}

	conn, resp, err := s.Dialer.DialContext(ctx, s.streamURL(), header)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: dial: %v", domain.ErrPushStream, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Unblock ReadMessage when the caller cancels.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: read: %v", domain.ErrPushStream, err)
		}
		var ev domain.TimelineEvent
		if err := json.Unmarshal(data, &ev); err != nil || ev.ID == "" {
			continue
		}
		fn(ev)
	}
}

func (s *Stream) streamURL() string {
	u := s.Base
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/v1/activity/stream"
}

// Compile-time assertion that Stream implements domain.PushStream.
var _ domain.PushStream = (*Stream)(nil)
