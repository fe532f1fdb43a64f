package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	PublicBaseURL  string   `mapstructure:"public_base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GetPublicBaseURL returns the externally reachable base URL without a trailing slash.
func (s *ServerConfig) GetPublicBaseURL() string {
	return strings.TrimRight(s.PublicBaseURL, "/")
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver specific connection string. For sqlite the
// database field is the file path (":memory:" is accepted).
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverSQLite:
		return d.Database
	default:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type SessionConfig struct {
	Store    string `mapstructure:"store"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

func (s *SessionConfig) GetTTL() time.Duration {
	if s.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.TTLHours) * time.Hour
}

type LoginRateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxAttempts   int  `mapstructure:"max_attempts"`
	WindowMinutes int  `mapstructure:"window_minutes"`
}

func (l *LoginRateLimitConfig) GetWindow() time.Duration {
	if l.WindowMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(l.WindowMinutes) * time.Minute
}

type AuthConfig struct {
	Password       PasswordConfig       `mapstructure:"password"`
	Session        SessionConfig        `mapstructure:"session"`
	LoginRateLimit LoginRateLimitConfig `mapstructure:"login_rate_limit"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// IsConfigured reports whether outbound mail is enabled.
func (e *EmailConfig) IsConfigured() bool {
	return e.SMTPHost != "" && e.FromAddress != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

const (
	GatewayCashfree = "cashfree"
	GatewayMidtrans = "midtrans"
	GatewayMock     = "mock"
)

type CashfreeConfig struct {
	Environment  string `mapstructure:"environment"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	APIVersion   string `mapstructure:"api_version"`
	BaseURL      string `mapstructure:"base_url"`
}

// GetBaseURL returns the explicit base URL when set, otherwise the
// production or sandbox endpoint selected by environment.
func (c *CashfreeConfig) GetBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if strings.EqualFold(c.Environment, "prod") || strings.EqualFold(c.Environment, "production") {
		return "https://api.cashfree.com/pg"
	}
	return "https://sandbox.cashfree.com/pg"
}

type MidtransConfig struct {
	ServerKey    string `mapstructure:"server_key"`
	ClientKey    string `mapstructure:"client_key"`
	IsProduction bool   `mapstructure:"is_production"`
}

type PaymentConfig struct {
	Gateway                string         `mapstructure:"gateway"`
	HTTPTimeoutSeconds     int            `mapstructure:"http_timeout_seconds"`
	ReconcileIntervalMins  int            `mapstructure:"reconcile_interval_minutes"`
	ReconcileStaleAfterMin int            `mapstructure:"reconcile_stale_after_minutes"`
	Cashfree               CashfreeConfig `mapstructure:"cashfree"`
	Midtrans               MidtransConfig `mapstructure:"midtrans"`
}

func (p *PaymentConfig) GetHTTPTimeout() time.Duration {
	if p.HTTPTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(p.HTTPTimeoutSeconds) * time.Second
}

func (p *PaymentConfig) GetReconcileInterval() time.Duration {
	if p.ReconcileIntervalMins <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(p.ReconcileIntervalMins) * time.Minute
}

func (p *PaymentConfig) GetReconcileStaleAfter() time.Duration {
	if p.ReconcileStaleAfterMin <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(p.ReconcileStaleAfterMin) * time.Minute
}

type TelegramConfig struct {
	BotToken    string `mapstructure:"bot_token"`
	AdminChatID int64  `mapstructure:"admin_chat_id"`
	APIBaseURL  string `mapstructure:"api_base_url"`
	Timezone    string `mapstructure:"timezone"`
}

func (t *TelegramConfig) IsConfigured() bool {
	return t.BotToken != "" && t.AdminChatID != 0
}
