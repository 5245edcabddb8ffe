package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	UserService   UserServiceConfig   `envconfig:"USER_SERVICE"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Payment       PaymentConfig       `envconfig:"PAYMENT"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
}

type AppConfig struct {
	Name        string `envconfig:"NAME" default:"ticketbari-booking-service"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"ticketbari"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"15m"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type HttpClientConfig struct {
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"5s"`
	ConsecutiveFails int64         `envconfig:"CONSECUTIVE_FAILS" default:"5"`
	ErrorRate        float64       `envconfig:"ERROR_RATE" default:"0.5"`
	Threshold        int64         `envconfig:"THRESHOLD" default:"10"`
	Type             string        `envconfig:"TYPE" default:"consecutive"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// MaxRetry is the number of redeliveries before a message is poisoned.
	MaxRetry int `envconfig:"MAX_RETRY" default:"3"`
}

type PaymentConfig struct {
	StripeSecretKey string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	Currency        string        `envconfig:"CURRENCY" default:"usd"`
	SuccessURL      string        `envconfig:"SUCCESS_URL" default:"http://localhost:5173/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL       string        `envconfig:"CANCEL_URL" default:"http://localhost:5173/dashboard/my-booked-tickets"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	ExpiryGrace     time.Duration `envconfig:"EXPIRY_GRACE" default:"5m"`
	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
	BreakerFailures int64         `envconfig:"BREAKER_FAILURES" default:"5"`
	LockExpiry      time.Duration `envconfig:"LOCK_EXPIRY" default:"15s"`
}

type SchedulerConfig struct {
	Concurrency       int  `envconfig:"CONCURRENCY" default:"10"`
	MonitoringEnabled bool `envconfig:"MONITORING_ENABLED" default:"false"`
}

func InitConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
