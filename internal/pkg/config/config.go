package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: secrets and per-environment values (credentials, keys, DB, URL)
// - default: values common across all environments (ports, formats, timeouts)
// There are deliberately no fallbacks for secrets: a missing secret fails
// startup instead of silently running with an insecure default.
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Admin  AdminConfig
	JWT    JWTConfig
	Stripe StripeConfig
	Mail   MailConfig
	Cookie CookieConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// BaseURL is the public origin used to build Stripe success/cancel URLs.
	BaseURL string `envconfig:"BASE_URL" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	SessionDuration string `envconfig:"SESSION_DURATION" default:"12h"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	PublicKey     string `envconfig:"STRIPE_PUBLIC_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	PriceCents    int64  `envconfig:"BOOKING_PRICE_CENTS" default:"25000"`
	Currency      string `envconfig:"BOOKING_CURRENCY" default:"sek"`
}

type MailConfig struct {
	Host      string `envconfig:"MAIL_HOST" default:"smtp.gmail.com"`
	Port      int    `envconfig:"MAIL_PORT" default:"587"`
	Username  string `envconfig:"MAIL_USERNAME" required:"true"`
	Password  string `envconfig:"MAIL_PASSWORD" required:"true"`
	Recipient string `envconfig:"MAIL_RECIPIENT" required:"true"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889",
			BaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Admin: AdminConfig{
			Email: "admin@example.com",
			// bcrypt of "admin-test-password", generated in tests when needed
			PasswordHash: "",
		},
		JWT: JWTConfig{
			Secret:          "test-session-secret",
			SessionDuration: "12h",
		},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_dummy",
			PublicKey:     "pk_test_dummy",
			WebhookSecret: "whsec_dummy",
			PriceCents:    25000,
			Currency:      "sek",
		},
		Mail: MailConfig{
			Host:      "localhost",
			Port:      2525,
			Username:  "noreply@example.com",
			Password:  "test",
			Recipient: "admin@example.com",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
