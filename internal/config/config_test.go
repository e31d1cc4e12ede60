package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, IDStrategyUUID, cfg.Store.IDStrategy)
	assert.True(t, cfg.Store.SeedDemoData)
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.False(t, cfg.WhatsApp.WebhookEnabled())
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.MongoDB.Enabled())
	assert.Equal(t, "0 8 * * *", cfg.Reporting.CheckupCronSchedule)
	assert.Equal(t, 7, cfg.Reporting.CheckupWindowDays)
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nID_STRATEGY=COUNTER\nSEED_DEMO_DATA=false\nCORS_ALLOWED_ORIGINS=https://a.example,https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"APP_PORT", "ID_STRATEGY", "SEED_DEMO_DATA", "CORS_ALLOWED_ORIGINS"} {
			_ = os.Unsetenv(key)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, IDStrategyCounter, cfg.Store.IDStrategy)
	assert.False(t, cfg.Store.SeedDemoData)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad id strategy", map[string]string{"ID_STRATEGY": "sequential"}},
		{"whatsapp without phone id", map[string]string{"WHATSAPP_TOKEN": "t", "WHATSAPP_COORDINATOR_ID": "91"}},
		{"whatsapp without coordinator", map[string]string{"WHATSAPP_TOKEN": "t", "WHATSAPP_PHONE_NUMBER_ID": "p"}},
		{"sheets without credentials", map[string]string{"GOOGLE_SHEET_ROSTER_ID": "sheet"}},
		{"bad cron", map[string]string{"CHECKUP_CRON_SCHEDULE": "every morning"}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"zero window", map[string]string{"CHECKUP_WINDOW_DAYS": "0"}},
		{"non numeric window", map[string]string{"CHECKUP_WINDOW_DAYS": "soon"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}

func TestReportingConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Kolkata", ReportingConfig{Timezone: "Asia/Kolkata"}.Location().String())
	assert.Equal(t, "UTC", ReportingConfig{Timezone: "nowhere"}.Location().String())
}

func TestWhatsAppConfig_WebhookEnabled(t *testing.T) {
	assert.False(t, WhatsAppConfig{VerifyToken: "v"}.WebhookEnabled())
	assert.False(t, WhatsAppConfig{AccessToken: "t"}.WebhookEnabled())
	assert.True(t, WhatsAppConfig{AccessToken: "t", VerifyToken: "v"}.WebhookEnabled())
}
