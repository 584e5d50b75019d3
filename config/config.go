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
	defaultMaxRequestBodySize = "100KB"

	DefaultThirdwebBaseURL     = "https://api.thirdweb.com"
	DefaultDirectoryPageSize   = 20
	DefaultSessionCookieName   = "wallet_session"
	DefaultSessionIdleTimeout  = 30 * time.Minute
	DefaultJanitorInterval     = time.Minute
	DefaultTokenStorageKey     = "thirdweb_token"
	DefaultRedisTokenKeyPrefix = "walletportal:tokens:"
	DefaultQRCodeSize          = 256
)

// Token store drivers.
const (
	TokenStoreMemory   = "memory"
	TokenStorePostgres = "postgres"
	TokenStoreRedis    = "redis"
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

		// AllowedOrigins enables credentialed CORS for a front end served from another origin.
		// Empty means same-origin only.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Thirdweb holds the wallet provider credentials. They never leave the server.
	Thirdweb ThirdwebConfig `json:"thirdweb" yaml:"thirdweb"`

	Directory DirectoryConfig `json:"directory" yaml:"directory"`

	Session SessionConfig `json:"session" yaml:"session"`

	TokenStore TokenStoreConfig `json:"tokenStore" yaml:"tokenStore"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Postgres is only required when tokenStore.driver is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is only required when tokenStore.driver is "redis".
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for wallet address QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ThirdwebConfig defines the wallet provider endpoint and static credentials.
type ThirdwebConfig struct {
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	ClientID  string `json:"clientId" yaml:"clientId"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
}

// DirectoryConfig defines user directory listing behavior
type DirectoryConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// SessionConfig defines browser session handling
type SessionConfig struct {
	CookieName      string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure    bool          `json:"cookieSecure" yaml:"cookieSecure"`
	IdleTimeout     time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	JanitorInterval time.Duration `json:"janitorInterval" yaml:"janitorInterval"`
}

// TokenStoreConfig selects where bearer tokens are persisted
type TokenStoreConfig struct {
	// Driver is one of "memory", "postgres" or "redis".
	Driver string `json:"driver" yaml:"driver"`

	// Key is the fixed storage key name; it is namespaced per browser session.
	Key string `json:"key" yaml:"key"`

	RedisPrefix string        `json:"redisPrefix" yaml:"redisPrefix"`
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
}

// SecretKeyConfig holds server-side secrets
type SecretKeyConfig struct {
	// Session signs the browser session cookie.
	Session string `json:"session" yaml:"session"`

	// TokenSeal, when set, seals stored bearer tokens at rest. Must decode to 32 bytes (hex or base64).
	TokenSeal string `json:"tokenSeal" yaml:"tokenSeal"`
}

// RedisConfig defines the redis connection for the token store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := loadEnv(koanfInstance); err != nil {
		return nil, err
	}

	if err := unmarshal(koanfInstance, cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// LoadFromEnv builds a config from environment variables only, for tools that run without a config file.
func LoadFromEnv() (*Config, error) {
	cfg := new(Config)
	koanfInstance := koanf.New(".")

	if err := loadEnv(koanfInstance); err != nil {
		return nil, err
	}

	if err := unmarshal(koanfInstance, cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal env config failed")
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

func loadEnv(koanfInstance *koanf.Koanf) error {
	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: THIRDWEB_CLIENTID -> thirdweb.clientId
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return errors.Wrap(err, "load env variables failed")
	}

	return nil
}

func unmarshal(koanfInstance *koanf.Koanf, cfg any) error {
	return koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	})
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Thirdweb.BaseURL == "" {
		cfg.Thirdweb.BaseURL = DefaultThirdwebBaseURL
	}
	if cfg.Directory.PageSize <= 0 {
		cfg.Directory.PageSize = DefaultDirectoryPageSize
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultSessionCookieName
	}
	if cfg.Session.IdleTimeout <= 0 {
		cfg.Session.IdleTimeout = DefaultSessionIdleTimeout
	}
	if cfg.Session.JanitorInterval <= 0 {
		cfg.Session.JanitorInterval = DefaultJanitorInterval
	}
	if cfg.TokenStore.Driver == "" {
		cfg.TokenStore.Driver = TokenStoreMemory
	}
	if cfg.TokenStore.Key == "" {
		cfg.TokenStore.Key = DefaultTokenStorageKey
	}
	if cfg.TokenStore.RedisPrefix == "" {
		cfg.TokenStore.RedisPrefix = DefaultRedisTokenKeyPrefix
	}
}

// Validate checks cross-field requirements that defaults cannot fill.
func (c *Config) Validate() error {
	if c.Thirdweb.ClientID == "" || c.Thirdweb.SecretKey == "" {
		return errors.New("thirdweb clientId and secretKey must be provided")
	}

	switch c.TokenStore.Driver {
	case TokenStoreMemory:
	case TokenStorePostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres token store")
		}
	case TokenStoreRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis token store")
		}
	default:
		return errors.Errorf("unknown token store driver: %s", c.TokenStore.Driver)
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
