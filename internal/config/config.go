package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	JWT      JWTConfig
	Postgres PostgresConfig
	Pricing  PricingConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type JWTConfig struct {
	Issuer          string        `env:"JWT_ISSUER" env-default:"go-coachly"`
	SigningKey      string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TOKEN_TTL" env-default:"720h"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	QueryTimeout   time.Duration `env:"POSTGRES_QUERY_TIMEOUT" env-default:"5s"`
}

// PricingConfig is the static plan catalog shown on the pricing page.
// Prices are display values only. The external ids belong to the
// payment processor, which owns the actual subscription state.
type PricingConfig struct {
	BasicMonthPrice   float64 `env:"PRICING_BASIC_MONTH_PRICE" env-default:"9.9"`
	BasicYearPrice    float64 `env:"PRICING_BASIC_YEAR_PRICE" env-default:"90"`
	BasicMonthPriceID string  `env:"PRICING_BASIC_MONTH_PRICE_ID" env-default:""`
	BasicYearPriceID  string  `env:"PRICING_BASIC_YEAR_PRICE_ID" env-default:""`
	BasicProductID    string  `env:"PRICING_BASIC_PRODUCT_ID" env-default:""`
	ProMonthPrice     float64 `env:"PRICING_PRO_MONTH_PRICE" env-default:"29.9"`
	ProYearPrice      float64 `env:"PRICING_PRO_YEAR_PRICE" env-default:"280"`
	ProMonthPriceID   string  `env:"PRICING_PRO_MONTH_PRICE_ID" env-default:""`
	ProYearPriceID    string  `env:"PRICING_PRO_YEAR_PRICE_ID" env-default:""`
	ProProductID      string  `env:"PRICING_PRO_PRODUCT_ID" env-default:""`
}
