package types

// TimelineEvent is one server-created activity record. Events are
// immutable once observed by the client; ID is the uniqueness key.
// Timestamps are Unix milliseconds.
type TimelineEvent struct {
	ID             string            `json:"id"`
	EventType      string            `json:"event_type"`
	EventTimestamp int64             `json:"event_timestamp"`
	EntityRefs     map[string]string `json:"entity_refs,omitempty"`
	SourceID       string            `json:"source_id,omitempty"`
	CreatedAt      int64             `json:"created_at"`
	UserID         string            `json:"user_id"`
}
