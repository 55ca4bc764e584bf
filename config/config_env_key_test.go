package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "pulse",
		},
		"providers": map[string]any{
			"google": map[string]any{
				"clientId": "",
			},
		},
		"secretKey": map[string]any{
			"access":      "",
			"tokenCipher": "",
		},
		"briefing": map[string]any{
			"minFreeBlock": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "PROVIDERS_GOOGLE_CLIENTID", want: "providers.google.clientId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_TOKENCIPHER", want: "secretKey.tokenCipher"},
		{envKey: "BRIEFING_MINFREEBLOCK", want: "briefing.minFreeBlock"},
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
