package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Payment  sharedConfig.PaymentConfig  `mapstructure:"payment"`
	Telegram sharedConfig.TelegramConfig `mapstructure:"telegram"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configuration from an optional .env file, the config file and
// PROMOTIONX_* environment variables. configPath may point at a specific file;
// when empty the usual configs directories are searched and a missing file is
// not an error.
func Load(env, configPath string) (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("PROMOTIONX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if mode := ModeForEnv(env); mode != "" {
		v.Set("server.mode", mode)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// ModeForEnv maps an environment name to a gin mode. An empty result keeps
// whatever mode the config file or environment sets.
func ModeForEnv(env string) string {
	switch strings.ToLower(env) {
	case "production", "prod", "release":
		return "release"
	case "development", "dev", "debug":
		return "debug"
	case "test", "testing":
		return "test"
	default:
		return ""
	}
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case sharedConfig.DriverPostgres, sharedConfig.DriverMySQL, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Payment.Gateway {
	case sharedConfig.GatewayCashfree, sharedConfig.GatewayMidtrans, sharedConfig.GatewayMock:
	default:
		return fmt.Errorf("unsupported payment gateway %q", c.Payment.Gateway)
	}

	switch c.Auth.Session.Store {
	case sharedConfig.SessionStoreMemory, sharedConfig.SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported session store %q", c.Auth.Session.Store)
	}

	if c.Server.PublicBaseURL == "" {
		return fmt.Errorf("server.public_base_url is required")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_base_url", "http://localhost:5000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5000"})

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.database", "promotionx")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.session.store", sharedConfig.SessionStoreMemory)
	v.SetDefault("auth.session.ttl_hours", 24)
	v.SetDefault("auth.login_rate_limit.enabled", false)
	v.SetDefault("auth.login_rate_limit.max_attempts", 10)
	v.SetDefault("auth.login_rate_limit.window_minutes", 15)

	// Email defaults, empty host disables receipts
	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "PromotionX")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Payment defaults
	v.SetDefault("payment.gateway", sharedConfig.GatewayCashfree)
	v.SetDefault("payment.http_timeout_seconds", 15)
	v.SetDefault("payment.reconcile_interval_minutes", 5)
	v.SetDefault("payment.reconcile_stale_after_minutes", 30)
	v.SetDefault("payment.cashfree.environment", "sandbox")
	v.SetDefault("payment.cashfree.client_id", "")
	v.SetDefault("payment.cashfree.client_secret", "")
	v.SetDefault("payment.cashfree.api_version", "2023-08-01")
	v.SetDefault("payment.cashfree.base_url", "")
	v.SetDefault("payment.midtrans.server_key", "")
	v.SetDefault("payment.midtrans.client_key", "")
	v.SetDefault("payment.midtrans.is_production", false)

	// Telegram defaults, empty token disables admin notifications
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("telegram.api_base_url", "https://api.telegram.org")
	v.SetDefault("telegram.timezone", "Asia/Kolkata")
}
