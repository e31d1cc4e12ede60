package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // load zones on hosts without a system tz database

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// ID strategies supported by the entity store.
const (
	IDStrategyUUID    = "uuid"
	IDStrategyCounter = "counter"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Store     StoreConfig
	WhatsApp  WhatsAppConfig
	Sheets    SheetsConfig
	Reporting ReportingConfig
	MongoDB   MongoDBConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port            string   `env:"APP_PORT" envDefault:"8080"`
	AllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	PublicRateLimit float64  `env:"PUBLIC_RATE_LIMIT" envDefault:"1"`
	PublicBurst     int      `env:"PUBLIC_RATE_BURST" envDefault:"5"`
}

// AdminConfig holds the single admin credential. When PasswordHash is set it
// takes precedence over the plain password.
type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password     string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// StoreConfig tunes the in-memory entity store.
type StoreConfig struct {
	IDStrategy   string `env:"ID_STRATEGY" envDefault:"uuid"`
	SeedDemoData bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
}

// WhatsAppConfig contains credentials and options for the Meta WhatsApp Cloud API.
// Notifications are disabled when AccessToken is empty.
type WhatsAppConfig struct {
	AccessToken   string `env:"WHATSAPP_TOKEN"`
	PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	BaseURL       string `env:"WHATSAPP_BASE_URL" envDefault:"https://graph.facebook.com"`
	APIVersion    string `env:"WHATSAPP_API_VERSION" envDefault:"v20.0"`
	CoordinatorID string `env:"WHATSAPP_COORDINATOR_ID"`
	VerifyToken   string `env:"WHATSAPP_VERIFY_TOKEN"`
}

// Enabled reports whether outbound WhatsApp notifications are configured.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccessToken != ""
}

// WebhookEnabled reports whether the coordinator command webhook is mounted.
func (c WhatsAppConfig) WebhookEnabled() bool {
	return c.Enabled() && c.VerifyToken != ""
}

// SheetsConfig contains configuration required to mirror the roster to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string `env:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
	SpreadsheetID   string `env:"GOOGLE_SHEET_ROSTER_ID"`
}

// Enabled reports whether roster sync is configured.
func (c SheetsConfig) Enabled() bool {
	return c.SpreadsheetID != ""
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CheckupCronSchedule    string `env:"CHECKUP_CRON_SCHEDULE" envDefault:"0 8 * * *"`
	ReportCronSchedule     string `env:"REPORT_CRON_SCHEDULE" envDefault:"0 20 * * *"`
	RosterSyncCronSchedule string `env:"ROSTER_SYNC_CRON_SCHEDULE" envDefault:"0 21 * * *"`
	Timezone               string `env:"TIMEZONE" envDefault:"Asia/Kolkata"`
	CheckupWindowDays      int    `env:"CHECKUP_WINDOW_DAYS" envDefault:"7"`
}

// Location resolves the configured timezone, falling back to UTC.
func (c ReportingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MongoDBConfig holds settings for the report archive. The archive is
// disabled when URI is empty.
type MongoDBConfig struct {
	URI    string `env:"MONGODB_URI"`
	DBName string `env:"MONGODB_DB_NAME" envDefault:"lovelyhome"`
}

// Enabled reports whether the report archive is configured.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.Server.PublicRateLimit <= 0 || c.Server.PublicBurst <= 0 {
		return errors.New("PUBLIC_RATE_LIMIT and PUBLIC_RATE_BURST must be positive")
	}

	if c.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME must be provided")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be provided")
	}

	switch strings.ToLower(c.Store.IDStrategy) {
	case IDStrategyUUID, IDStrategyCounter:
		c.Store.IDStrategy = strings.ToLower(c.Store.IDStrategy)
	default:
		return fmt.Errorf("ID_STRATEGY must be %q or %q, got %q", IDStrategyUUID, IDStrategyCounter, c.Store.IDStrategy)
	}

	if c.WhatsApp.Enabled() {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided when WHATSAPP_TOKEN is set")
		case c.WhatsApp.CoordinatorID == "":
			return errors.New("WHATSAPP_COORDINATOR_ID must be provided when WHATSAPP_TOKEN is set")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	if c.Sheets.Enabled() && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_ROSTER_ID is set")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	schedules := map[string]string{
		"CHECKUP_CRON_SCHEDULE":     c.Reporting.CheckupCronSchedule,
		"REPORT_CRON_SCHEDULE":      c.Reporting.ReportCronSchedule,
		"ROSTER_SYNC_CRON_SCHEDULE": c.Reporting.RosterSyncCronSchedule,
	}
	for key, spec := range schedules {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("%s is invalid: %w", key, err)
		}
	}

	if _, err := time.LoadLocation(c.Reporting.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.Reporting.CheckupWindowDays <= 0 {
		return errors.New("CHECKUP_WINDOW_DAYS must be positive")
	}

	return nil
}
