// Package config loads the service configuration from the environment, with
// optional .env file support.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds every tunable of the storefront service. Values come from
// REDSTORE_* environment variables.
type Config struct {
	Port      string `envconfig:"PORT" default:"8000"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev_secret"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// memory, file or mongo
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"`
	StateFile      string `envconfig:"STATE_FILE" default:"redstore-state.json"`
	MongoURI       string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`

	CatalogURL  string `envconfig:"CATALOG_URL"` // remote catalog; empty uses the built-in one
	CatalogSize int    `envconfig:"CATALOG_SIZE" default:"100"`
	CatalogSeed int64  `envconfig:"CATALOG_SEED"` // 0 seeds from the clock
	ImagesDir   string `envconfig:"IMAGES_DIR"`   // static /images directory; empty disables it

	SendgridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	EmailSender    string `envconfig:"EMAIL_SENDER" default:"noreply@redstore.local"`
}

// Load reads .env when present and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Proceeding with environment variables.")
	}
	var cfg Config
	if err := envconfig.Process("redstore", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
