package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	MySQLHost string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB   string `env:"MYSQL_DB" envDefault:"simulador"`
	MySQLUser string `env:"MYSQL_USER" envDefault:"simulador"`
	MySQLPass string `env:"MYSQL_PASS" envDefault:"simulador"`

	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"2m"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"1m"`

	IdempTTL   time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"5m"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	LeadRateLimit float64 `env:"LEAD_RATE_LIMIT" envDefault:"0.2"`
	LeadRateBurst int     `env:"LEAD_RATE_BURST" envDefault:"3"`

	// Financing policy; the 20% variant is MIN_DOWN_PAYMENT_PCT=0.20 with
	// ENFORCE_AFFORDABILITY=true.
	MinDownPaymentPct    float64 `env:"MIN_DOWN_PAYMENT_PCT" envDefault:"0.05"`
	MinIncome            float64 `env:"MIN_INCOME" envDefault:"1000"`
	IncomeCommitmentPct  float64 `env:"INCOME_COMMITMENT_PCT" envDefault:"0.30"`
	EnforceAffordability bool    `env:"ENFORCE_AFFORDABILITY" envDefault:"false"`

	CatalogFallbackSample bool `env:"CATALOG_FALLBACK_SAMPLE" envDefault:"false"`

	OTELEndpoint    string `env:"OTEL_ENDPOINT"`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"simulador-backend"`

	TelegramToken    string `env:"TELEGRAM_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
	TelegramEndpoint string `env:"TELEGRAM_API_ENDPOINT"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

func (c *Config) Development() bool { return c.AppEnv == "development" }

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := strconv.ParseUint(c.MySQLPort, 10, 16); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.MinDownPaymentPct <= 0 || c.MinDownPaymentPct >= 1 {
		return fmt.Errorf("MIN_DOWN_PAYMENT_PCT must be in (0,1), got %v", c.MinDownPaymentPct)
	}
	if c.IncomeCommitmentPct <= 0 || c.IncomeCommitmentPct > 1 {
		return fmt.Errorf("INCOME_COMMITMENT_PCT must be in (0,1], got %v", c.IncomeCommitmentPct)
	}
	if c.MinIncome < 0 {
		return fmt.Errorf("MIN_INCOME must not be negative, got %v", c.MinIncome)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
