package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	BasePath string `env:"API_BASE_PATH"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`

	// DynamoDB
	AWSRegion           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint    string `env:"DYNAMODB_ENDPOINT"`
	InvoicesTable       string `env:"INVOICES_TABLE" envDefault:"invoices"`
	InvoiceNumbersTable string `env:"INVOICE_NUMBERS_TABLE" envDefault:"invoice_numbers"`
	AutoCreateTables    bool   `env:"DYNAMODB_AUTO_CREATE_TABLES" envDefault:"false"`

	// Connection pool
	MaxPoolSize    int           `env:"DB_MAX_POOL_SIZE" envDefault:"10"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	SocketTimeout  time.Duration `env:"DB_SOCKET_TIMEOUT" envDefault:"45s"`

	// Invoices
	RecomputeTotals bool   `env:"RECOMPUTE_TOTALS" envDefault:"false"`
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"NGN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.BasePath = strings.TrimRight(strings.TrimSpace(cfg.BasePath), "/")
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.MaxPoolSize <= 0 {
		return fmt.Errorf("DB_MAX_POOL_SIZE must be positive, got %d", c.MaxPoolSize)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must start with /, got %q", c.BasePath)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
