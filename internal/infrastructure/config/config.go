package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

type DynamoDBConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint         string `env:"DYNAMODB_ENDPOINT"`
	TablePrefix      string `env:"DYNAMODB_TABLE_PREFIX"`
	AutoCreateTables bool   `env:"DYNAMODB_AUTO_CREATE_TABLES" envDefault:"false"`
}

type Config struct {
	AppPort   int    `env:"APP_PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	JWTSecret string `env:"JWT_SECRET"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"dynamodb"`
	DynamoDB    DynamoDBConfig

	RabbitMQURL    string `env:"RABBITMQ_URL"`
	NotifyExchange string `env:"NOTIFY_EXCHANGE" envDefault:"order_core.events"`

	TxTimeout           time.Duration `env:"TX_TIMEOUT" envDefault:"5s"`
	NotifyTimeout       time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"3s"`
	ConvertMaxAttempts  int           `env:"CONVERT_MAX_ATTEMPTS" envDefault:"3"`
	ConvertRetryBackoff time.Duration `env:"CONVERT_RETRY_BACKOFF" envDefault:"25ms"`

	OrderNumberPrefix      string `env:"ORDER_NUMBER_PREFIX" envDefault:"ORD"`
	SampleRequestPrefix    string `env:"SAMPLE_REQUEST_PREFIX" envDefault:"SMP"`
	SampleMessageMinLength int    `env:"SAMPLE_MESSAGE_MIN_LENGTH" envDefault:"10"`
}

// Load reads .env files that exist in the working directory and then parses
// the process environment, which wins over file values.
func Load() (Config, error) {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return Config{}, errors.Wrap(err, "load env files")
	}
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return errors.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverDynamoDB, StoreDriverMemory, c.StoreDriver)
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return errors.Errorf("APP_PORT out of range: %d", c.AppPort)
	}
	if c.ConvertMaxAttempts < 1 {
		return errors.New("CONVERT_MAX_ATTEMPTS must be at least 1")
	}
	if c.TxTimeout <= 0 || c.NotifyTimeout <= 0 {
		return errors.New("TX_TIMEOUT and NOTIFY_TIMEOUT must be positive")
	}
	return nil
}

func loadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
