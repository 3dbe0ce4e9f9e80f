package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost          = 12
	defaultAccessTokenTTL      = 15 * time.Minute
	defaultRefreshTokenTTL     = 7 * 24 * time.Hour
	defaultRefreshRotateWindow = 48 * time.Hour
	defaultRefreshCookieName   = "refresh_token"

	defaultRevocationBackend = RevocationBackendPostgres
	defaultPurgeInterval     = time.Hour
	defaultRevocationPrefix  = "revoked:"

	defaultTelegramPollTimeout = 60
	defaultRegistrationURL     = "http://localhost:5173/registration"
)

// Revocation backends.
const (
	RevocationBackendPostgres = "postgres"
	RevocationBackendRedis    = "redis"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migrations struct {
		AutoApply bool `json:"autoApply" yaml:"autoApply"`
	} `json:"migrations" yaml:"migrations"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Revocation selects where revoked tokens are tracked
	Revocation *RevocationConfig `json:"revocation" yaml:"revocation"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Telegram configures the invitation bot and the notification side-channel
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	Invitation *InvitationConfig `json:"invitation" yaml:"invitation"`

	// QRCode configuration for invitation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SecretKey holds the HMAC keys for each token kind.
type SecretKey struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost          int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL      time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL     time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	RefreshRotateWindow time.Duration `json:"refreshRotateWindow" yaml:"refreshRotateWindow"`
	Cookie              CookieConfig  `json:"cookie" yaml:"cookie"`
}

// CookieConfig describes the refresh token cookie.
type CookieConfig struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Domain string `json:"domain" yaml:"domain"`
	// Insecure drops the Secure attribute, for plain-HTTP local development only
	Insecure bool `json:"insecure" yaml:"insecure"`
}

// RevocationConfig defines the revocation store backend
type RevocationConfig struct {
	Backend       string        `json:"backend" yaml:"backend"`
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
	KeyPrefix     string        `json:"keyPrefix" yaml:"keyPrefix"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// TelegramConfig defines the bot token and delivery tuning
type TelegramConfig struct {
	BotToken    string        `json:"botToken" yaml:"botToken"`
	APIEndpoint string        `json:"apiEndpoint" yaml:"apiEndpoint"`
	PollTimeout int           `json:"pollTimeout" yaml:"pollTimeout"`
	Breaker     BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig tunes the circuit breaker around outbound notification calls
type BreakerConfig struct {
	MaxRequests  uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	MinRequests  uint32        `json:"minRequests" yaml:"minRequests"`
	FailureRatio float64       `json:"failureRatio" yaml:"failureRatio"`
}

// InvitationConfig defines how invitation links are built and delivered
type InvitationConfig struct {
	RegistrationURL string `json:"registrationUrl" yaml:"registrationUrl"`
	SendQRCode      bool   `json:"sendQrCode" yaml:"sendQrCode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PublishTimeout bounds one push to the local endpoint
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections and validates the settings the service cannot start without.
func (cfg *Config) ApplyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}
	if cfg.SecretKey.Refresh == "" {
		cfg.SecretKey.Refresh = cfg.SecretKey.Access
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.RefreshRotateWindow <= 0 {
		cfg.Auth.RefreshRotateWindow = defaultRefreshRotateWindow
	}
	if cfg.Auth.Cookie.Name == "" {
		cfg.Auth.Cookie.Name = defaultRefreshCookieName
	}
	if cfg.Auth.Cookie.Path == "" {
		cfg.Auth.Cookie.Path = "/"
	}

	if cfg.Revocation == nil {
		cfg.Revocation = &RevocationConfig{}
	}
	if cfg.Revocation.Backend == "" {
		cfg.Revocation.Backend = defaultRevocationBackend
	}
	if cfg.Revocation.PurgeInterval <= 0 {
		cfg.Revocation.PurgeInterval = defaultPurgeInterval
	}
	if cfg.Revocation.KeyPrefix == "" {
		cfg.Revocation.KeyPrefix = defaultRevocationPrefix
	}
	switch cfg.Revocation.Backend {
	case RevocationBackendPostgres:
	case RevocationBackendRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis revocation backend")
		}
	default:
		return errors.Errorf("unknown revocation backend: %s", cfg.Revocation.Backend)
	}

	if cfg.Telegram == nil {
		cfg.Telegram = &TelegramConfig{}
	}
	if cfg.Telegram.PollTimeout <= 0 {
		cfg.Telegram.PollTimeout = defaultTelegramPollTimeout
	}

	if cfg.Invitation == nil {
		cfg.Invitation = &InvitationConfig{}
	}
	if cfg.Invitation.RegistrationURL == "" {
		cfg.Invitation.RegistrationURL = defaultRegistrationURL
	}

	return nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
