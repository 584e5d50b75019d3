package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DefaultThirdwebBaseURL, cfg.Thirdweb.BaseURL)
	assert.Equal(t, DefaultDirectoryPageSize, cfg.Directory.PageSize)
	assert.Equal(t, DefaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, DefaultSessionIdleTimeout, cfg.Session.IdleTimeout)
	assert.Equal(t, TokenStoreMemory, cfg.TokenStore.Driver)
	assert.Equal(t, "thirdweb_token", cfg.TokenStore.Key)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Directory.PageSize = 50
	cfg.TokenStore.Driver = TokenStoreRedis
	cfg.Thirdweb.BaseURL = "http://localhost:9999"

	ApplyDefaults(cfg)

	assert.Equal(t, 50, cfg.Directory.PageSize)
	assert.Equal(t, TokenStoreRedis, cfg.TokenStore.Driver)
	assert.Equal(t, "http://localhost:9999", cfg.Thirdweb.BaseURL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		ApplyDefaults(cfg)
		cfg.Thirdweb.ClientID = "client"
		cfg.Thirdweb.SecretKey = "secret"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "memory store", mutate: func(*Config) {}},
		{
			name:    "missing credentials",
			mutate:  func(cfg *Config) { cfg.Thirdweb.SecretKey = "" },
			wantErr: "thirdweb clientId and secretKey must be provided",
		},
		{
			name:    "postgres without section",
			mutate:  func(cfg *Config) { cfg.TokenStore.Driver = TokenStorePostgres },
			wantErr: "postgres section is required",
		},
		{
			name: "postgres with section",
			mutate: func(cfg *Config) {
				cfg.TokenStore.Driver = TokenStorePostgres
				cfg.Postgres = &postgres.DBConn{}
			},
		},
		{
			name:    "redis without addr",
			mutate:  func(cfg *Config) { cfg.TokenStore.Driver = TokenStoreRedis },
			wantErr: "redis.addr is required",
		},
		{
			name: "redis with addr",
			mutate: func(cfg *Config) {
				cfg.TokenStore.Driver = TokenStoreRedis
				cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.TokenStore.Driver = "etcd" },
			wantErr: "unknown token store driver: etcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("THIRDWEB_CLIENTID", "client-from-env")
	t.Setenv("THIRDWEB_SECRETKEY", "secret-from-env")
	t.Setenv("DIRECTORY_PAGESIZE", "5")
	t.Setenv("HTTP_ALLOWEDORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "client-from-env", cfg.Thirdweb.ClientID)
	assert.Equal(t, "secret-from-env", cfg.Thirdweb.SecretKey)
	assert.Equal(t, 5, cfg.Directory.PageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, DefaultThirdwebBaseURL, cfg.Thirdweb.BaseURL)
}
