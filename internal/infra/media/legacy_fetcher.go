package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"goveggie/config"
	"goveggie/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultFetchTimeout = 10 * time.Second

// legacyPhotoFetcher pulls photos from the legacy CMS origin over HTTP.
type legacyPhotoFetcher struct {
	origin     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLegacyPhotoFetcher creates the fetcher from config. The timeout bounds
// the whole fetch so a slow origin cannot stall photo requests.
func NewLegacyPhotoFetcher(cfg *config.Config, logger *slog.Logger) (service.LegacyPhotoFetcher, error) {
	if cfg.Media == nil || cfg.Media.LegacyOrigin == "" {
		return nil, errors.New("media.legacyOrigin must be configured")
	}

	timeout := cfg.Media.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &legacyPhotoFetcher{
		origin: cfg.Media.LegacyOrigin,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Fetch downloads the photo bytes, or returns ErrPhotoNotFound when the
// origin does not have it. Any non-200 origin answer counts as missing so
// clients always see a plain 404 rather than a proxied origin error.
func (f *legacyPhotoFetcher) Fetch(ctx context.Context, filename string) ([]byte, error) {
	fetchURL, err := url.JoinPath(f.origin, url.PathEscape(sanitizeKey(filename)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build photo url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build photo request")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Warn("legacy photo fetch failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()),
		)

		return nil, service.ErrPhotoNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, service.ErrPhotoNotFound
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read photo body")
	}

	return data, nil
}
