package service

import (
	"context"
)

// BroadcastEvent is the audit record published after an admin broadcast,
// consumed by downstream analytics.
type BroadcastEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Type         string `json:"type"`
	Title        string `json:"title"`
	RestaurantID int64  `json:"restaurant_id,omitempty"`
	SentBy       int64  `json:"sent_by"`
	Recipients   int    `json:"recipients"`
	PushSent     int    `json:"push_sent"`
	PushFailed   int    `json:"push_failed"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast audit event for async processing.
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
