package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host string
	Port string

	LogLevel  string
	LogFormat string

	// Static data
	CatalogPath        string // YAML file; empty means the built-in catalog
	CatalogDatabaseURL string // optional Postgres source for employer requirements

	PDFBackend string // "pure", "fitz" or "docconv"

	// NER collaborator
	NERProvider string // "huggingface", "prose" or "none"
	NERAPIURL   string
	NERModel    string
	NERAPIKey   string
	NERTimeout  time.Duration

	StrictPhones bool
	PhoneRegion  string

	MaxUploadBytes int64
}

// LoadConfig reads .env (if any) and the process environment. The returned
// error is the .env load failure; the Config is usable either way, so callers
// can log it once their logger is set up.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	envErr := godotenv.Load(envFile)
	if envErr != nil {
		envErr = fmt.Errorf("load %s: %w", envFile, envErr)
	}
	return FromEnv(os.Getenv), envErr
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	nerKey := get("NER_API_KEY", getenv("HF_API_TOKEN"))

	return &Config{
		Host:               get("HOST", ""),
		Port:               get("PORT", "8080"),
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "json"),
		CatalogPath:        get("CATALOG_PATH", ""),
		CatalogDatabaseURL: get("CATALOG_DATABASE_URL", ""),
		PDFBackend:         get("PDF_BACKEND", "pure"),
		NERProvider:        get("NER_PROVIDER", "prose"),
		NERAPIURL:          get("NER_API_URL", "https://api-inference.huggingface.co"),
		NERModel:           get("NER_MODEL", "dslim/bert-base-NER"),
		NERAPIKey:          nerKey,
		NERTimeout:         parseDuration(get("NER_TIMEOUT", ""), 30*time.Second),
		StrictPhones:       parseBool(get("PHONE_STRICT", ""), false),
		PhoneRegion:        get("PHONE_REGION", "US"),
		MaxUploadBytes:     int64(parseInt(get("MAX_UPLOAD_MB", ""), 10)) << 20,
	}
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}

func parseBool(s string, def bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return def
}

func parseInt(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return def
}
