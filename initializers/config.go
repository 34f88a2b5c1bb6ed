package initializers

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port               string        `mapstructure:"PORT"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	DBDriver           string        `mapstructure:"DB_DRIVER"`
	DBSource           string        `mapstructure:"DB_SOURCE"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTTTL             time.Duration `mapstructure:"JWT_TTL"`
	ResetTokenTTL      time.Duration `mapstructure:"RESET_TOKEN_TTL"`
	ClientURL          string        `mapstructure:"CLIENT_URL"`
	CORSOrigins        string        `mapstructure:"CORS_ORIGINS"`
	PaymentGatewayURL  string        `mapstructure:"PAYMENT_GATEWAY_URL"`
	PaymentKeyID       string        `mapstructure:"PAYMENT_KEY_ID"`
	PaymentKeySecret   string        `mapstructure:"PAYMENT_KEY_SECRET"`
	PaymentCurrency    string        `mapstructure:"PAYMENT_CURRENCY"`
	PaymentTimeout     time.Duration `mapstructure:"PAYMENT_TIMEOUT"`
	S3Bucket           string        `mapstructure:"AWS_S3_BUCKET"`
	FromEmail          string        `mapstructure:"FROM_EMAIL"`
	FromEmailPassword  string        `mapstructure:"FROM_EMAIL_PASSWORD"`
	FromEmailSMTP      string        `mapstructure:"FROM_EMAIL_SMTP"`
	SMTPAddress        string        `mapstructure:"SMTP_ADDRESS"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RateLimitPerMinute int           `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"GIN_MODE":              "debug",
	"LOG_LEVEL":             "info",
	"DB_DRIVER":             "sqlite",
	"DB_SOURCE":             "amexan-eats.db",
	"JWT_SECRET":            "",
	"JWT_TTL":               7 * 24 * time.Hour,
	"RESET_TOKEN_TTL":       time.Hour,
	"CLIENT_URL":            "http://localhost:5173",
	"CORS_ORIGINS":          "http://localhost:5173",
	"PAYMENT_GATEWAY_URL":   "https://api.razorpay.com",
	"PAYMENT_KEY_ID":        "",
	"PAYMENT_KEY_SECRET":    "",
	"PAYMENT_CURRENCY":      "INR",
	"PAYMENT_TIMEOUT":       30 * time.Second,
	"AWS_S3_BUCKET":         "amexan-eats",
	"FROM_EMAIL":            "",
	"FROM_EMAIL_PASSWORD":   "",
	"FROM_EMAIL_SMTP":       "",
	"SMTP_ADDRESS":          "",
	"REDIS_ADDR":            "",
	"REDIS_PASSWORD":        "",
	"RATE_LIMIT_PER_MINUTE": 20,
}

// LoadConfig reads an optional .env file and the process environment.
func LoadConfig() (*Config, error) {
	// a missing .env is fine, the environment may already carry everything
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.PaymentKeySecret == "" {
		return errors.New("PAYMENT_KEY_SECRET is not set")
	}
	if c.PaymentCurrency == "" {
		return errors.New("PAYMENT_CURRENCY is not set")
	}
	return nil
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
