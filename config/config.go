package config

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries everything read from the environment. A .env file is
// loaded first when present so local runs need no exported variables.
type Config struct {
	Port  string `env:"PORT, default=8080"`
	DBUrl string `env:"DB_URL, required"`

	JWTSecret string `env:"JWT_SECRET, required"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	PaymentSuccessURL   string `env:"PAYMENT_SUCCESS_URL, default=http://localhost:4200/payments/success"`
	PaymentCancelURL    string `env:"PAYMENT_CANCEL_URL, default=http://localhost:4200/payments/cancel"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
}

var cfg Config

// Load reads .env (if any) and the process environment into the package
// config. Call once at boot, before Get.
func Load() (*Config, error) {
	_ = godotenv.Load()

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the config loaded at boot. Tests may overwrite fields directly.
func Get() *Config {
	return &cfg
}
