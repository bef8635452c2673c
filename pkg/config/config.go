package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
)

type Storage string

const (
	StorageMemory   Storage = "memory"
	StorageCosmos   Storage = "cosmos"
	StoragePostgres Storage = "postgres"
)

type Config struct {
	Storage Storage `env:"STORAGE" envDefault:"memory"`

	CosmoDbConnectionString string `env:"COSMO_DB_CONNECTION_STRING"`
	CosmoDbEndpoint         string `env:"COSMO_DB_ENDPOINT"`
	CosmoDbName             string `env:"COSMO_DB_NAME" envDefault:"fio_ynab"`

	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING"`

	TokenEncryptionKey string `env:"TOKEN_ENCRYPTION_KEY,required,notEmpty,unset"`
	TokenCacheSize     int    `env:"TOKEN_CACHE_SIZE" envDefault:"128"`

	FioApiURL          string        `env:"FIO_API_URL" envDefault:"https://fioapi.fio.cz"`
	FioTimeout         time.Duration `env:"FIO_TIMEOUT" envDefault:"30s"`
	FioRetryCount      int           `env:"FIO_RETRY_COUNT" envDefault:"3"`
	FioRetryBackoffMin time.Duration `env:"FIO_RETRY_BACKOFF_MIN" envDefault:"1s"`
	FioRetryBackoffMax time.Duration `env:"FIO_RETRY_BACKOFF_MAX" envDefault:"10s"`

	DedupPoolSize int `env:"DEDUP_POOL_SIZE" envDefault:"8"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,unset"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	LogPretty bool   `env:"LOG_PRETTY"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	ApiKey     string `env:"API_KEY,unset"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageCosmos:
		if c.CosmoDbConnectionString == "" && c.CosmoDbEndpoint == "" {
			return errors.New("COSMO_DB_CONNECTION_STRING or COSMO_DB_ENDPOINT is required for cosmos storage")
		}
	case StoragePostgres:
		if c.PostgresConnectionString == "" {
			return errors.New("POSTGRES_CONNECTION_STRING is required for postgres storage")
		}
	default:
		return errors.Newf("unknown storage %q", c.Storage)
	}

	if c.FioRetryBackoffMax < c.FioRetryBackoffMin {
		return errors.Newf("FIO_RETRY_BACKOFF_MAX %s is lower than FIO_RETRY_BACKOFF_MIN %s",
			c.FioRetryBackoffMax, c.FioRetryBackoffMin)
	}

	return nil
}
