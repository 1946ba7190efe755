package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverFile     = "file"
	StorageDriverDynamoDB = "dynamodb"

	// DefaultSlotKey is the storage key the shop front-end has always used.
	DefaultSlotKey = "ponto_eletronica_v3_stable"
)

// Config holds the process settings, read from the environment.
type Config struct {
	Env            string        `envconfig:"APP_ENV" default:"development"`
	HTTPPort       string        `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	StorageDriver  string        `envconfig:"STORAGE_DRIVER" default:"file"`
	DataDir        string        `envconfig:"DATA_DIR" default:"./data"`
	SlotKey        string        `envconfig:"SLOT_KEY" default:"ponto_eletronica_v3_stable"`
	SlotsTable     string        `envconfig:"SLOTS_TABLE" default:"slots"`
	MaxImageBytes  int64         `envconfig:"MAX_IMAGE_BYTES" default:"2097152"`
	DraftTTL       time.Duration `envconfig:"DRAFT_TTL" default:"2h"`
	MaxDrafts      int           `envconfig:"MAX_DRAFTS" default:"256"`
	DocumentLocale string        `envconfig:"DOCUMENT_LOCALE" default:"pt-BR"`
	ShopName       string        `envconfig:"SHOP_NAME" default:"PONTO DA ELETRÔNICA"`
	ShopTagline    string        `envconfig:"SHOP_TAGLINE" default:"Ponto da Eletrônica - Excelência em Assistência Técnica"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case StorageDriverFile, StorageDriverDynamoDB:
	default:
		return fmt.Errorf("config: unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if strings.TrimSpace(c.SlotKey) == "" {
		return fmt.Errorf("config: SLOT_KEY must not be empty")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("config: MAX_IMAGE_BYTES must be positive")
	}
	if c.DraftTTL <= 0 || c.MaxDrafts <= 0 {
		return fmt.Errorf("config: DRAFT_TTL and MAX_DRAFTS must be positive")
	}
	return nil
}
