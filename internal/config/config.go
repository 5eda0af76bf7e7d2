package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes read access to the application configuration.
type Provider interface {
	GetServerAddr() string
	GetDataDir() string
	GetDataBaseURL() string
	GetImagesDir() string
	GetStaticDir() string
	GetSiteLang() string
	GetCurrencySymbol() string
	GetFeaturedCount() int
	GetEmailProvider() string
	GetEmailJSEndpoint() string
	GetEmailJSPrivateKey() string
	GetIPLookupURL() string
	GetHTTPTimeout() time.Duration
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetContactRateLimit() int
	GetTrustedProxies() []string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr        string
	DataDir           string
	DataBaseURL       string
	ImagesDir         string
	StaticDir         string
	SiteLang          string
	CurrencySymbol    string
	FeaturedCount     int
	EmailProvider     string
	EmailJSEndpoint   string
	EmailJSPrivateKey string
	IPLookupURL       string
	HTTPTimeout       time.Duration
	SessionSecret     string
	LogFormat         string
	LogLevel          string
	ContactRateLimit  int
	TrustedProxies    []string
}

const (
	DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	DefaultIPLookupURL     = "https://api64.ipify.org?format=json"
)

// New loads configuration from a .env file (if present) and environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		DataBaseURL:       os.Getenv("DATA_BASE_URL"),
		ImagesDir:         getEnv("IMAGES_DIR", "images"),
		StaticDir:         getEnv("STATIC_DIR", "web/static"),
		SiteLang:          getEnv("SITE_LANG", "en"),
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "¥"),
		FeaturedCount:     getEnvInt("FEATURED_COUNT", 3),
		EmailProvider:     getEnv("EMAIL_PROVIDER", "log"),
		EmailJSEndpoint:   getEnv("EMAILJS_ENDPOINT", DefaultEmailJSEndpoint),
		EmailJSPrivateKey: os.Getenv("EMAILJS_PRIVATE_KEY"),
		IPLookupURL:       lookupURL(getEnv("IP_LOOKUP_URL", DefaultIPLookupURL)),
		HTTPTimeout:       getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		SessionSecret:     getEnv("SESSION_SECRET", "folio-dev-session-secret-change-me"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LogLevel:          getEnv("LOG_LEVEL", "debug"),
		ContactRateLimit:  getEnvInt("CONTACT_RATE_LIMIT", 10),
		TrustedProxies:    getEnvList("TRUSTED_PROXIES"),
	}
}

// lookupURL maps the "off" sentinel to an empty URL, which disables lookups.
func lookupURL(v string) string {
	if v == "off" {
		return ""
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetDataDir() string            { return c.DataDir }
func (c *Config) GetDataBaseURL() string        { return c.DataBaseURL }
func (c *Config) GetImagesDir() string          { return c.ImagesDir }
func (c *Config) GetStaticDir() string          { return c.StaticDir }
func (c *Config) GetSiteLang() string           { return c.SiteLang }
func (c *Config) GetCurrencySymbol() string     { return c.CurrencySymbol }
func (c *Config) GetFeaturedCount() int         { return c.FeaturedCount }
func (c *Config) GetEmailProvider() string      { return c.EmailProvider }
func (c *Config) GetEmailJSEndpoint() string    { return c.EmailJSEndpoint }
func (c *Config) GetEmailJSPrivateKey() string  { return c.EmailJSPrivateKey }
func (c *Config) GetIPLookupURL() string        { return c.IPLookupURL }
func (c *Config) GetHTTPTimeout() time.Duration { return c.HTTPTimeout }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetLogFormat() string          { return c.LogFormat }
func (c *Config) GetLogLevel() string           { return c.LogLevel }
func (c *Config) GetContactRateLimit() int      { return c.ContactRateLimit }
func (c *Config) GetTrustedProxies() []string   { return c.TrustedProxies }
