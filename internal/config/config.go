package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type App struct {
	Environment   string `env:"ENVIRONMENT" envDefault:"production"`
	Port          int    `env:"PORT" envDefault:"8080"`
	ReferenceZone string `env:"POLL_REFERENCE_ZONE" envDefault:"Asia/Seoul"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

// Location resolves the zone used to compute "today" and "now" for polls and
// votes. Stored values are zone-less; this is the single deployment zone.
func (c App) Location() (*time.Location, error) {
	return time.LoadLocation(c.ReferenceZone)
}

type DB struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER,notEmpty"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME,notEmpty"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	SlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD" envDefault:"1s"`
}

// DSN builds the key/value connection string understood by the pgx driver.
func (c DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL  time.Duration `env:"JWT_TOKEN_TTL" envDefault:"72h"`
}

// SMS holds the Twilio credentials used for member notifications. Leaving
// TWILIO_ACCOUNT_SID empty turns SMS off.
type SMS struct {
	AccountSID  string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken   string `env:"TWILIO_AUTH_TOKEN"`
	From        string `env:"TWILIO_FROM_NUMBER"`
	CountryCode string `env:"SMS_COUNTRY_CODE" envDefault:"82"`
}

func (c SMS) Enabled() bool {
	return c.AccountSID != ""
}

type Config struct {
	App  App
	DB   DB
	Auth Auth
	SMS  SMS
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read env file: %w", err)
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.SMS.Enabled() && (config.SMS.AuthToken == "" || config.SMS.From == "") {
		return Config{}, errors.New("TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER are required when TWILIO_ACCOUNT_SID is set")
	}

	if _, err := config.App.Location(); err != nil {
		return Config{}, fmt.Errorf("invalid POLL_REFERENCE_ZONE %q: %w", config.App.ReferenceZone, err)
	}

	return config, nil
}
