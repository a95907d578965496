package notification

import (
	"context"
	"fmt"

	"goveggie/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// firebase limits multicast requests to 500 tokens.
const multicastTokenLimit = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatch sends a push message to multiple device tokens, chunked to the
// Firebase multicast limit.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += multicastTokenLimit {
		end := min(start+multicastTokenLimit, len(tokens))
		chunk := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return successCount, failureCount, invalidTokens, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		// Collect invalid tokens so callers can deactivate the registrations.
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil {
				if messaging.IsInvalidArgument(sendResponse.Error) ||
					messaging.IsUnregistered(sendResponse.Error) {
					invalidTokens = append(invalidTokens, chunk[idx])
				}
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
