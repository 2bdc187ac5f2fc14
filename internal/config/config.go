package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name    string `envconfig:"APP_NAME" default:"DepositFlow"`
		Port    int    `envconfig:"PORT" default:"8080"`
		SiteURL string `envconfig:"SITE_URL" default:"https://depositflow.co.uk"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"depositflow"`
	}

	Auth struct {
		SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
		SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`
		MagicLinkTTL  time.Duration `envconfig:"MAGIC_LINK_TTL" default:"15m"`
	}

	Resend struct {
		APIKey string `envconfig:"RESEND_API_KEY"`
		From   string `envconfig:"EMAIL_FROM" default:"DepositFlow <no-reply@depositflow.co.uk>"`
	}

	Admin struct {
		Email string `envconfig:"ADMIN_EMAIL"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
