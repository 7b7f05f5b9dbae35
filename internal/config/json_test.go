package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "file-secret",
			"token_issuer": "cloud-vault",
			"token_duration": "1m",
			"log_level": "info",
			"version": "0.9.0"
		},
		"storage": {
			"db": {"engine": "sqlite", "dsn": "vault.db"}
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "45s"
		},
		"client": {
			"server_url": "http://localhost:8080",
			"identity": "alice",
			"request_timeout": "15s",
			"log_file": "/tmp/vault.log"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Engine)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "alice", cfg.Client.Identity)
	assert.Equal(t, 15*time.Second, cfg.Client.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"app": {`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "number form is nanoseconds", input: `1000000000`, want: time.Second},
		{name: "unparseable string", input: `"ninety minutes"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1h30m0s"`, string(out))
}
