package notification

import (
	"context"
	"log/slog"

	"goveggie/internal/domain/service"
)

type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a push service that drops every message. Used when
// Firebase is not configured so broadcasts still write notification rows.
func NewNoopService(logger *slog.Logger) service.PushService {
	return &noopService{logger: logger}
}

func (s *noopService) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.DebugContext(ctx, "push delivery disabled, dropping batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return 0, 0, nil, nil
}
