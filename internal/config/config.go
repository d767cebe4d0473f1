package config

import (
	"os"
	"strconv"
)

// StripeConfig holds the payment processor keys.
type StripeConfig struct {
	PublishableKey string
	SecretKey      string
	WebhookSecret  string
}

// MailConfig holds the outbound SMTP relay settings.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// CompanyInfo is the contact info shown on the partners page.
type CompanyInfo struct {
	Email     string
	Instagram string
	Phone     string
}

type Config struct {
	Addr              string
	BaseURL           string // external base URL for stripe success/cancel links
	DatabaseDSN       string
	RedisAddr         string
	SessionSecret     string
	AdminPasswordHash string // bcrypt hash; empty means admin login is disabled
	Stripe            StripeConfig
	Mail              MailConfig
	Company           CompanyInfo
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Addr:              getenv("ADDR", ":5000"),
		BaseURL:           getenv("BASE_URL", "http://localhost:5000"),
		DatabaseDSN:       getenv("DATABASE_DSN", "thryfted:thryfted@tcp(127.0.0.1:3306)/thryfted?parseTime=true"),
		RedisAddr:         getenv("REDIS_ADDR", "127.0.0.1:6379"),
		SessionSecret:     getenv("SECRET_KEY", "dev-key-dont-use"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Stripe: StripeConfig{
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Mail: MailConfig{
			Host:     getenv("MAIL_SERVER", "smtp.gmail.com"),
			Port:     getenvInt("MAIL_PORT", 587),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
		},
		Company: CompanyInfo{
			Email:     getenv("COMPANY_EMAIL", "shopthryfted@gmail.com"),
			Instagram: getenv("COMPANY_INSTAGRAM", "@shop.thryfted"),
			Phone:     getenv("COMPANY_PHONE", "+1 (929) 459-8466"),
		},
	}
}
