package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"thirdweb": map[string]any{
			"clientId":  "",
			"secretKey": "",
		},
		"tokenStore": map[string]any{
			"redisPrefix": "",
		},
		"secretKey": map[string]any{
			"tokenSeal": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "THIRDWEB_CLIENTID", want: "thirdweb.clientId"},
		{envKey: "THIRDWEB_SECRETKEY", want: "thirdweb.secretKey"},
		{envKey: "TOKENSTORE_REDISPREFIX", want: "tokenStore.redisPrefix"},
		{envKey: "SECRETKEY_TOKENSEAL", want: "secretKey.tokenSeal"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
