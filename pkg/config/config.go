package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the full runtime configuration, populated from the environment.
type App struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Payment processor
	OmisePublicKey string `envconfig:"OMISE_PUBLIC_KEY" required:"true"`
	OmiseSecretKey string `envconfig:"OMISE_SECRET_KEY" required:"true"`
	Currency       string `envconfig:"PAYMENT_CURRENCY" default:"usd"`
	PlatformFeeBps int64  `envconfig:"PLATFORM_FEE_BPS" default:"1000"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
