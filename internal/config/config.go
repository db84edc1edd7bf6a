package config

import (
	"flag"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT"        envDefault:"8080"`
	DatabaseURI string `env:"DATABASE_URI"`
	DBHost      string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort      string `env:"DB_PORT"     envDefault:"5432"`
	DBName      string `env:"DB_NAME"     envDefault:"onlyfans_db"`
	DBUser      string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	JWTSecret   string `env:"JWT_SECRET"  envDefault:"default_secret"`
	LogLvl      string `env:"LOG_LVL"     envDefault:"info"`

	OnlyFansAPIURL     string        `env:"ONLYFANS_API_URL"     envDefault:"http://localhost:8081"`
	OnlyFansAPIKey     string        `env:"ONLYFANS_API_KEY"`
	OnlyFansAPITimeout time.Duration `env:"ONLYFANS_API_TIMEOUT" envDefault:"15s"`
}

// MockAPIConfig configures the local stand-in for the OnlyFans API.
type MockAPIConfig struct {
	Address string `env:"MOCK_ADDRESS" envDefault:"localhost:8081"`
	LogLvl  string `env:"LOG_LVL"      envDefault:"info"`
}

func New() *Config {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Port, "p", cfg.Port, "port (or host:port) to run server on")
	flag.StringVar(&cfg.OnlyFansAPIURL, "u", cfg.OnlyFansAPIURL, "onlyfans api base url")
	flag.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database DSN, overrides DB_* settings")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.DurationVar(&cfg.OnlyFansAPITimeout, "t", cfg.OnlyFansAPITimeout, "onlyfans api request timeout")
	flag.Parse()

	if !strings.HasPrefix(cfg.OnlyFansAPIURL, "http://") && !strings.HasPrefix(cfg.OnlyFansAPIURL, "https://") {
		cfg.OnlyFansAPIURL = "http://" + cfg.OnlyFansAPIURL
	}
	cfg.OnlyFansAPIURL = strings.TrimRight(cfg.OnlyFansAPIURL, "/")

	return cfg
}

func NewMockAPI() *MockAPIConfig {
	_ = godotenv.Load()

	cfg := &MockAPIConfig{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run mock api on")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}

// Address returns the listen address. A bare port listens on all interfaces.
func (c *Config) Address() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DSN returns DatabaseURI when set, otherwise builds one from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURI != "" {
		return c.DatabaseURI
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
