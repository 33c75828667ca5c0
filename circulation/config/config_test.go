package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage: memory
server:
  port: "9090"
  readTimeout: 3s
notify:
  backend: kafka
auth:
  jwtSecret: from-file
`), 0o600))

	t.Setenv("CIRCULATION_HTTP_HOST", "127.0.0.1")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := Load(path, WithLogLevel(zapcore.DebugLevel), WithStorage(StoragePostgres))
	require.NoError(t, err)

	require.Equal(t, StorageMemory, cfg.Storage)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, NotifierKafka, cfg.Notify.Backend)
	require.Equal(t, 20, cfg.Notify.Breaker.RecordLength)
	require.Equal(t, "from-file", cfg.Auth.JWTSecret)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, "circulation", cfg.Database.NameDB)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load("")
	require.Error(t, err)
}

func TestPrintedConfigHasNoSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "db-secret")
	t.Setenv("SMTP_PASSWORD", "mail-secret")
	t.Setenv("JWT_SECRET", "jwt-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "db-secret", cfg.Database.Password)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	for _, secret := range []string{"db-secret", "mail-secret", "jwt-secret"} {
		require.NotContains(t, string(data), secret)
	}
}
