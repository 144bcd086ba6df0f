package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Log          LogConfig          `mapstructure:"log"`
	SMTP         SMTPConfig         `mapstructure:"smtp"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Brand        BrandConfig        `mapstructure:"brand"`
	RateLimiting RateLimitingConfig `mapstructure:"rate_limiting"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SMTPConfig holds the outbound mail relay configuration.
type SMTPConfig struct {
	Host string `mapstructure:"host"`
	// Port 587 negotiates STARTTLS; every other port dials implicit TLS.
	Port int `mapstructure:"port"`
	// Address is both the login and the From address.
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	// SenderName is the display name put in front of Address.
	SenderName string `mapstructure:"sender_name"`
}

// Configured reports whether credentials are present.
func (c SMTPConfig) Configured() bool {
	return strings.TrimSpace(c.Address) != "" && c.Password != ""
}

// Addr returns the relay address
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig holds cross-origin settings for the lead endpoint
type CORSConfig struct {
	// AllowedOrigins may contain "*" to accept any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BrandConfig holds the company identity printed in lead emails
type BrandConfig struct {
	CompanyName string `mapstructure:"company_name"`
	Website     string `mapstructure:"website"`
}

// RateLimitingConfig holds rate limiting configuration
type RateLimitingConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// legacyEnv maps config keys to the unprefixed variable names older
// deployments already export.
var legacyEnv = map[string]string{
	"server.port":   "PORT",
	"smtp.host":     "SMTP_HOST",
	"smtp.port":     "SMTP_PORT",
	"smtp.address":  "EMAIL_ADDRESS",
	"smtp.password": "EMAIL_PASSWORD",
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/leadmail")

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEADMAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := "LEADMAIL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// SMTP defaults
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 465)
	v.SetDefault("smtp.address", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.sender_name", "House of Companies")

	v.SetDefault("cors.allowed_origins", []string{"https://chatbot-lead-qualification-flow.vercel.app"})

	v.SetDefault("brand.company_name", "House of Companies")
	v.SetDefault("brand.website", "https://www.houseofcompanies.io")

	// Rate limiting is off unless redis is provisioned
	v.SetDefault("rate_limiting.enabled", false)
	v.SetDefault("rate_limiting.limit", 10)
	v.SetDefault("rate_limiting.window", "1m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("metrics.enabled", true)
}
