package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

// Cart store drivers.
const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type HTTPServer struct {
	Addr         string        `yaml:"address"       env:"HTTP_ADDRESS"       env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"HTTP_READ_TIMEOUT"  env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"HTTP_IDLE_TIMEOUT"  env-default:"60s"`
}

// Backend is the bakery's order and catalog API.
type Backend struct {
	BaseURL         string        `yaml:"BASE_URL"          env:"BACKEND_BASE_URL"    env-required:"true"`
	Timeout         time.Duration `yaml:"TIMEOUT"           env:"BACKEND_TIMEOUT"     env-default:"15s"`
	MaxRetries      uint64        `yaml:"MAX_RETRIES"       env:"BACKEND_MAX_RETRIES" env-default:"3"`
	TimeslotDaysOut int           `yaml:"TIMESLOT_DAYS_OUT" env:"TIMESLOT_DAYS_OUT"   env-default:"6"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST"            env:"PG_HOST"            env-default:"localhost"`
	Port            string        `yaml:"PG_PORT"            env:"PG_PORT"            env-default:"5432"`
	User            string        `yaml:"PG_USER"            env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD"        env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME"          env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE"         env:"PG_SSLMODE"         env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS"     env:"PG_MAX_OPEN_CONNS"  env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS"     env:"PG_MAX_IDLE_CONNS"  env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME"  env:"PG_CONN_MAX_LIFETIME"  env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type SQLite struct {
	Path string `yaml:"SQLITE_PATH" env:"SQLITE_PATH" env-default:"storefront.db"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST"     env:"REDIS_HOST"     env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT"     env:"REDIS_PORT"     env-default:"6379"`
	Username string `yaml:"REDIS_USER"     env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB"       env:"REDIS_DB"       env-default:"0"`
}

// CartStore picks where session carts live. Everything stored expires
// after TTL of inactivity.
type CartStore struct {
	Driver string        `yaml:"driver" env:"CART_STORE_DRIVER" env-default:"redis"`
	TTL    time.Duration `yaml:"ttl"    env:"CART_TTL"          env-default:"168h"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Session struct {
	SigningKey string        `yaml:"SESSION_KEY"    env:"SESSION_KEY"    env-required:"true"`
	CookieName string        `yaml:"COOKIE_NAME"    env:"SESSION_COOKIE" env-default:"bakery_session"`
	TTL        time.Duration `yaml:"TTL"            env:"SESSION_TTL"    env-default:"168h"`
	Secure     bool          `yaml:"SECURE_COOKIE"  env:"SESSION_SECURE" env-default:"true"`
}

// RateConfig limits payment attempts per session.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE"  env:"WINDOW_SIZE"  env-default:"10m"`
	SubmitLock  time.Duration `yaml:"SUBMIT_LOCK"  env:"SUBMIT_LOCK"  env-default:"2m"`
}

type Stripe struct {
	APIKey         string `yaml:"STRIPE_API_KEY"         env:"STRIPE_API_KEY"`
	PublishableKey string `yaml:"STRIPE_PUBLISHABLE_KEY" env:"STRIPE_PUBLISHABLE_KEY"`
	Currency       string `yaml:"STRIPE_CURRENCY"        env:"STRIPE_CURRENCY"        env-default:"usd"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY"    env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL"`
	FromName  string `yaml:"FROM_NAME"  env:"SENDGRID_FROM_NAME" env-default:"The Bakery"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME"      env:"OTEL_SERVICE_NAME"      env-default:"bakery-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO"     env:"OTEL_SAMPLER_RATIO"     env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Backend      Backend      `yaml:"backend"`
	Database     Database     `yaml:"database"`
	SQLite       SQLite       `yaml:"sqlite"`
	RedisConnect RedisConnect `yaml:"redis"`
	CartStore    CartStore    `yaml:"cart_store"`
	Cache        CacheConfig  `yaml:"cache"`
	Session      Session      `yaml:"session"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")
		flag.Parse()

		configPath = *flags
	}

	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

// LoadConfigFromPath reads the YAML file, applies environment overrides and
// checks cross-field rules.
func LoadConfigFromPath(path string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	drivers := []string{DriverRedis, DriverPostgres, DriverSQLite, DriverMemory}
	if !slices.Contains(drivers, c.CartStore.Driver) {
		return fmt.Errorf("cart_store.driver must be one of %v, got %q", drivers, c.CartStore.Driver)
	}

	if c.CartStore.Driver == DriverPostgres && (c.Database.User == "" || c.Database.Name == "") {
		return errors.New("database PG_USER and PG_DBNAME are required for the postgres cart store")
	}

	if c.CartStore.TTL <= 0 {
		return errors.New("cart_store.ttl must be positive")
	}

	if c.Stripe.PublishableKey != "" && c.Stripe.APIKey == "" {
		return errors.New("stripe STRIPE_API_KEY is required when STRIPE_PUBLISHABLE_KEY is set")
	}

	if len(c.Session.SigningKey) < 16 {
		return errors.New("session SESSION_KEY must be at least 16 bytes")
	}

	return nil
}

// PaymentsEnabled reports whether checkout can take card payments.
func (c *Config) PaymentsEnabled() bool {
	return c.Stripe.PublishableKey != ""
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	dsn := fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)

	if r.DB > 0 {
		dsn = fmt.Sprintf("%s/%d", dsn, r.DB)
	}

	return dsn
}
