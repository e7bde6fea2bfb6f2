package config

import (
	"log"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string         `json:"port"`
	BaseURL   string         `json:"base_url"`
	JWTSecret string         `json:"jwt_secret"`
	Database  DatabaseConfig `json:"database"`
	Redis     RedisConfig    `json:"redis"`
	Email     EmailConfig    `json:"email"`
	TokenFile TokenFileConfig `json:"token_file"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	CORS      CORSConfig     `json:"cors"`
	Log       LogConfig      `json:"log"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"db_host"`
	Port     string `mapstructure:"db_port"`
	Username string `mapstructure:"db_username"`
	Password string `mapstructure:"db_password"`
	Database string `mapstructure:"db_database"`
	SSLMode  string `mapstructure:"db_ssl_mode"` // e.g., "disable", "require", "verify-ca", "verify-full"
}

type RedisConfig struct {
	Host     string `mapstructure:"redis_host"` // empty host means Redis is not configured
	Port     string `mapstructure:"redis_port"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type EmailConfig struct {
	Provider  string `mapstructure:"email_provider"` // "smtp", "sendgrid" or "noop"
	FromEmail string `mapstructure:"email_from"`
	FromName  string `mapstructure:"email_from_name"`
	SMTP      SMTPConfig
	SendGrid  SendGridConfig
}

type SMTPConfig struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_username"`
	Password string `mapstructure:"smtp_password"`
	UseTLS   bool   `mapstructure:"smtp_use_tls"`
}

type SendGridConfig struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"sendgrid_from_email"`
	FromName  string `mapstructure:"sendgrid_from_name"`
}

// TokenFileConfig configures the file-based token store fallback used when
// Redis is not available. It does not survive multi-instance deployments.
type TokenFileConfig struct {
	Dir string `mapstructure:"token_file_dir"`
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"rate_limit_enabled"`
	// requests per window for the email-sending endpoints
	EmailLimit  int `mapstructure:"rate_limit_email_limit"`
	EmailWindow int `mapstructure:"rate_limit_email_window_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	AllowedMethods []string `mapstructure:"cors_allowed_methods"`
	AllowedHeaders []string `mapstructure:"cors_allowed_headers"`
}

type LogConfig struct {
	Level string `mapstructure:"log_level"`
}

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Could not find or load .env file.")
	}
}

func NewConfig() *Config {
	return &Config{
		Port:      getOptionalSecret("PORT", "8080"),
		BaseURL:   getOptionalSecret("BASE_URL", "http://localhost:3000"),
		JWTSecret: getRequiredSecret("JWT_SECRET"),
		Database: DatabaseConfig{
			Host:     getRequiredSecret("DB_HOST"),
			Port:     getOptionalSecret("DB_PORT", "5432"),
			Username: getRequiredSecret("DB_USERNAME"),
			Password: getRequiredSecret("DB_PASSWORD"),
			Database: getRequiredSecret("DB_DATABASE"),
			SSLMode:  getOptionalSecret("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getOptionalSecret("REDIS_HOST", ""),
			Port:     getOptionalSecret("REDIS_PORT", "6379"),
			Password: getOptionalSecret("REDIS_PASSWORD", ""),
			DB:       parseIntWithDefault("REDIS_DB", 0),
		},
		Email: EmailConfig{
			Provider:  getOptionalSecret("EMAIL_PROVIDER", "noop"),
			FromEmail: getOptionalSecret("EMAIL_FROM", "noreply@bewirtungsbeleg.docbits.com"),
			FromName:  getOptionalSecret("EMAIL_FROM_NAME", "DocBits Bewirtungsbeleg"),
			SMTP: SMTPConfig{
				Host:     getOptionalSecret("SMTP_HOST", ""),
				Port:     parseIntWithDefault("SMTP_PORT", 587),
				Username: getOptionalSecret("SMTP_USERNAME", ""),
				Password: getOptionalSecret("SMTP_PASSWORD", ""),
				UseTLS:   getOptionalSecret("SMTP_USE_TLS", "true") == "true",
			},
			SendGrid: SendGridConfig{
				APIKey:    getOptionalSecret("SENDGRID_API_KEY", ""),
				FromEmail: getOptionalSecret("SENDGRID_FROM_EMAIL", ""),
				FromName:  getOptionalSecret("SENDGRID_FROM_NAME", ""),
			},
		},
		TokenFile: TokenFileConfig{
			Dir: getOptionalSecret("TOKEN_FILE_DIR", ""),
		},
		RateLimit: RateLimitConfig{
			Enabled:     getOptionalSecret("RATE_LIMIT_ENABLED", "true") == "true",
			EmailLimit:  parseIntWithDefault("RATE_LIMIT_EMAIL_LIMIT", 3),
			EmailWindow: parseIntWithDefault("RATE_LIMIT_EMAIL_WINDOW_SECONDS", 60),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			AllowedMethods: parseList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: parseList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		},
		Log: LogConfig{
			Level: getOptionalSecret("LOG_LEVEL", "info"),
		},
	}
}
