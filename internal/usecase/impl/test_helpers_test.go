package impl

import (
	"io"
	"log/slog"

	"goveggie/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:   "test-secret",
			APIKey:      "test-api-key",
			AdminEmails: []string{"admin@goveggie.app"},
		},
		Search: &config.SearchConfig{
			HotKeywords:     []string{"素食自助餐", "vegan", "经济饭"},
			DefaultRadiusM:  5000,
			DefaultPageSize: 20,
		},
		Stats: &config.StatsConfig{
			Country: "MY",
		},
	}
}
