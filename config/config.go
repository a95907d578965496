package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultTokenTTL           = 365 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth holds all credential material. No field has a default baked into
	// source; the service refuses to start without a signing secret and API key.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Search configuration for suggestions and geo defaults.
	Search *SearchConfig `json:"search" yaml:"search"`

	// Media configuration for the legacy photo proxy and uploads.
	Media *MediaConfig `json:"media" yaml:"media"`

	// Stats configuration for admin aggregates.
	Stats *StatsConfig `json:"stats" yaml:"stats"`

	// Firebase configuration for push notifications (optional).
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for broadcast audit events (optional).
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for restaurant share codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies access tokens (HS256).
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	// APIKey is the static shared secret accepted from trusted beta clients.
	APIKey string `json:"apiKey" yaml:"apiKey"`
	// TokenTTL is the access token lifetime. The mobile client has no refresh
	// flow, so this is intentionally long.
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// AdminEmails are granted the admin role on first social login.
	AdminEmails []string `json:"adminEmails" yaml:"adminEmails"`
}

// SearchConfig defines search and suggestion configuration.
type SearchConfig struct {
	// HotKeywords are offered as suggestions whenever they contain the query.
	HotKeywords []string `json:"hotKeywords" yaml:"hotKeywords"`
	// DefaultRadiusM is applied when a geo query omits the radius (meters).
	DefaultRadiusM int `json:"defaultRadiusM" yaml:"defaultRadiusM"`
	// DefaultPageSize is applied when a listing omits the limit.
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
}

// MediaConfig defines photo cache, upload, and legacy origin configuration.
type MediaConfig struct {
	// PhotoCacheDir is the local directory backing the photo cache bucket.
	PhotoCacheDir string `json:"photoCacheDir" yaml:"photoCacheDir"`
	// UploadDir is the local directory backing the upload bucket.
	UploadDir string `json:"uploadDir" yaml:"uploadDir"`
	// LegacyOrigin is the base URL of the legacy CMS photo host.
	LegacyOrigin string `json:"legacyOrigin" yaml:"legacyOrigin"`
	// FetchTimeout bounds a single legacy origin fetch.
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
}

// StatsConfig defines admin statistics configuration.
type StatsConfig struct {
	// Country restricts restaurant aggregates (ISO code, e.g. "MY").
	Country string `json:"country" yaml:"country"`
}

// FirebaseConfig defines Firebase configuration for push notifications.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for broadcast audit events.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub.
	Provider string `json:"provider" yaml:"provider"`
	// Google Cloud project ID (for google provider).
	ProjectID string `json:"projectId" yaml:"projectId"`
	// Pub/Sub topic ID (for google provider).
	TopicID string `json:"topicId" yaml:"topicId"`
	// Local HTTP endpoint for development (for local provider).
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: AUTH_JWTSECRET -> auth.jwtSecret (not auth.jwtsecret)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" || cfg.Auth.APIKey == "" {
		return nil, errors.New("auth.jwtSecret and auth.apiKey must be configured")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
