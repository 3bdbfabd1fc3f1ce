package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment of the quotation API.
// Outside production a .env file is loaded first.
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// Catalog source and write bridge.
	CatalogURL string `envconfig:"CATALOG_CSV_URL" required:"true"`
	BridgeURL  string `envconfig:"BRIDGE_URL" required:"true"`
	CacheTTL   int    `envconfig:"CATALOG_CACHE_TTL_SECONDS" default:"60"`

	// Admin write path.
	AdminAPIKey string `envconfig:"ADMIN_API_KEY" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	// Seller identity printed on every quotation.
	CompanyName  string `envconfig:"COMPANY_NAME" default:"PLASTSHOPP S.A.S"`
	CompanyTaxID string `envconfig:"COMPANY_TAX_ID" default:"901.854.467-9"`
	CompanyPhone string `envconfig:"COMPANY_PHONE" default:"310 8648172"`
	CompanyWeb   string `envconfig:"COMPANY_WEB" default:"www.plastshoppsas.com"`

	// Optional quotation archive (S3-compatible). Archiving is off
	// unless a bucket is configured.
	R2Endpoint  string `envconfig:"R2_ENDPOINT"`
	R2AccessKey string `envconfig:"R2_ACCESS_KEY"`
	R2SecretKey string `envconfig:"R2_SECRET_KEY"`
	R2Bucket    string `envconfig:"R2_BUCKET_NAME"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ArchiveEnabled() bool {
	return c.R2Bucket != ""
}
