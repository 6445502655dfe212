package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	Payment   PaymentConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AMQP      AMQPConfig
	SMTP      SMTPConfig
	Blob      BlobConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60

	// File enables a rotated copy of the log stream.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"14"`
}

// JWTConfig describes the identity tokens issued by the auth provider.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type BookingConfig struct {
	TimeZone           string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kolkata"`
	CancellationWindow time.Duration `envconfig:"BOOKING_CANCEL_WINDOW" default:"2h"`
	CalendarDays       int           `envconfig:"BOOKING_CALENDAR_DAYS" default:"7"`
}

type PaymentConfig struct {
	KeyID          string  `envconfig:"RAZORPAY_KEY_ID"`
	KeySecret      string  `envconfig:"RAZORPAY_KEY_SECRET"`
	WebhookSecret  string  `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
	Currency       string  `envconfig:"PAYMENT_CURRENCY" default:"INR"`
	PayoutsEnabled bool    `envconfig:"PAYOUTS_ENABLED" default:"false"`
	PayoutAccount  string  `envconfig:"RAZORPAY_PAYOUT_ACCOUNT"`
	Commission     float64 `envconfig:"PAYOUT_COMMISSION" default:"0.15"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

type RateLimitConfig struct {
	Booking string `envconfig:"RATE_LIMIT_BOOKING" default:"10-1m"`
	Payment string `envconfig:"RATE_LIMIT_PAYMENT" default:"20-1m"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"find-my-space.events"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@findmyspace.local"`
}

type BlobConfig struct {
	Dir      string `envconfig:"BLOB_DIR" default:"./data/blobs"`
	BaseURL  string `envconfig:"BLOB_BASE_URL" default:"/files"`
	MaxBytes int64  `envconfig:"BLOB_MAX_BYTES" default:"5242880"`
}

type MetricsConfig struct {
	Enabled     bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path        string `envconfig:"METRICS_PATH" default:"/metrics"`
	ServiceName string `envconfig:"METRICS_SERVICE_NAME" default:"find_my_space"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database lacks the configured name.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Payment.Commission < 0 || cfg.Payment.Commission >= 1 {
		return Config{}, fmt.Errorf("PAYOUT_COMMISSION must be in [0,1), got %v", cfg.Payment.Commission)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			TimeZone:           "Asia/Kolkata",
			CancellationWindow: 2 * time.Hour,
			CalendarDays:       7,
		},
		Payment: PaymentConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "rzp_test_secret",
			WebhookSecret: "whsec_test",
			Currency:      "INR",
			Commission:    0.15,
		},
		RateLimit: RateLimitConfig{
			Booking: "1000-1m",
			Payment: "1000-1m",
		},
		Blob: BlobConfig{
			Dir:      "./testdata/blobs",
			BaseURL:  "/files",
			MaxBytes: 5 << 20,
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "find_my_space_test",
		},
	}
}
