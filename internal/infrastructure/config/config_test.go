package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  public_base_url: https://promotionx.example/
database:
  driver: sqlite
  database: ":memory:"
payment:
  gateway: mock
  reconcile_interval_minutes: 2
auth:
  session:
    store: memory
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.GetAddr())
	assert.Equal(t, "https://promotionx.example", cfg.Server.GetPublicBaseURL())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.GetDSN())
	assert.Equal(t, sharedConfig.GatewayMock, cfg.Payment.Gateway)
	assert.Equal(t, 2*time.Minute, cfg.Payment.GetReconcileInterval())
	assert.Equal(t, 30*time.Minute, cfg.Payment.GetReconcileStaleAfter())
	assert.Equal(t, 24*time.Hour, cfg.Auth.Session.GetTTL())
	assert.Equal(t, "Asia/Kolkata", cfg.Telegram.Timezone)
	assert.False(t, cfg.Telegram.IsConfigured())
	assert.False(t, cfg.Email.IsConfigured())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  database: app.db
`)
	t.Setenv("PROMOTIONX_PAYMENT_GATEWAY", "midtrans")
	t.Setenv("PROMOTIONX_SERVER_PORT", "9000")

	cfg, err := Load("production", path)
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.GatewayMidtrans, cfg.Payment.Gateway)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "driver",
			content: "database:\n  driver: oracle\n",
			wantErr: "unsupported database driver",
		},
		{
			name:    "gateway",
			content: "database:\n  driver: sqlite\npayment:\n  gateway: paypal\n",
			wantErr: "unsupported payment gateway",
		},
		{
			name:    "session store",
			content: "database:\n  driver: sqlite\nauth:\n  session:\n    store: file\n",
			wantErr: "unsupported session store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestModeForEnv(t *testing.T) {
	assert.Equal(t, "release", ModeForEnv("production"))
	assert.Equal(t, "debug", ModeForEnv("dev"))
	assert.Equal(t, "test", ModeForEnv("testing"))
	assert.Equal(t, "", ModeForEnv(""))
}
