package service

import (
	"context"
)

// PushService defines the interface for push notification delivery.
type PushService interface {
	// SendBatch sends a push message to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
