package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the quote service and CLI.
type Config struct {
	Env      string `yaml:"env"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	Store     StoreConfig     `yaml:"store"`
	AWS       AWSConfig       `yaml:"aws"`
	Notify    NotifyConfig    `yaml:"notify"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// StoreConfig selects the quote backend and its write lock.
type StoreConfig struct {
	Backend      string `yaml:"backend"` // file | dynamodb
	File         string `yaml:"file"`
	Lock         string `yaml:"lock"` // local | redis | none
	RedisAddr    string `yaml:"redis_addr"`
	LockTTLMs    int    `yaml:"lock_ttl_ms"`
	DynamoTable  string `yaml:"dynamodb_table"`
	LockWaitSecs int    `yaml:"lock_wait_seconds"`
}

type AWSConfig struct {
	Region           string `yaml:"region"`
	AccessKeyID      string `yaml:"access_key_id"`
	SecretAccessKey  string `yaml:"secret_access_key"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	SESRegion        string `yaml:"ses_region"`
}

// NotifyConfig holds admin email notification settings.
type NotifyConfig struct {
	From           string `yaml:"from"`
	AdminEmail     string `yaml:"admin_email"`
	SiteURL        string `yaml:"site_url"`
	Mock           bool   `yaml:"mock"`
	Workers        int    `yaml:"workers"`
	QueueSize      int    `yaml:"queue_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

func (c NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Enabled reports whether an admin notification can be addressed at all.
func (c NotifyConfig) Enabled() bool {
	return strings.TrimSpace(c.AdminEmail) != "" && strings.TrimSpace(c.From) != ""
}

func (c StoreConfig) LockTTL() time.Duration {
	return time.Duration(c.LockTTLMs) * time.Millisecond
}

func (c StoreConfig) LockWait() time.Duration {
	return time.Duration(c.LockWaitSecs) * time.Second
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads an optional YAML file. A missing file yields defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads CONFIG_FILE (if any) and applies environment overrides.
// The .env file is loaded by the binaries through godotenv/autoload.
func LoadFromEnv() (*Config, error) {
	cfg, err := Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	overrideString(&cfg.Env, "APP_ENV")
	overrideInt(&cfg.Port, "PORT")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	overrideString(&cfg.Store.Backend, "STORE_BACKEND")
	overrideString(&cfg.Store.File, "QUOTES_FILE")
	overrideString(&cfg.Store.Lock, "STORE_LOCK")
	overrideString(&cfg.Store.RedisAddr, "REDIS_ADDR")
	overrideString(&cfg.Store.DynamoTable, "QUOTES_TABLE")

	overrideString(&cfg.AWS.Region, "AWS_REGION")
	overrideString(&cfg.AWS.AccessKeyID, "AWS_ACCESS_KEY_ID")
	overrideString(&cfg.AWS.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	overrideString(&cfg.AWS.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")
	overrideString(&cfg.AWS.SESRegion, "SES_REGION")

	overrideString(&cfg.Notify.From, "NOTIFY_FROM")
	overrideString(&cfg.Notify.AdminEmail, "ADMIN_EMAIL")
	overrideString(&cfg.Notify.SiteURL, "SITE_URL")
	overrideBool(&cfg.Notify.Mock, "NOTIFICATION_MOCK")
	overrideInt(&cfg.Notify.Workers, "NOTIFY_WORKERS")
	overrideInt(&cfg.Notify.TimeoutSeconds, "NOTIFY_TIMEOUT")

	overrideInt(&cfg.RateLimit.PerMinute, "RATE_LIMIT_PER_MINUTE")

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "production"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendFile
	}
	if c.Store.File == "" {
		c.Store.File = "data/quotes.json"
	}
	if c.Store.Lock == "" {
		c.Store.Lock = "local"
	}
	if c.Store.RedisAddr == "" {
		c.Store.RedisAddr = "localhost:6379"
	}
	if c.Store.LockTTLMs == 0 {
		c.Store.LockTTLMs = 5000
	}
	if c.Store.LockWaitSecs == 0 {
		c.Store.LockWaitSecs = 10
	}
	if c.Store.DynamoTable == "" {
		c.Store.DynamoTable = "quotes"
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.AWS.AccessKeyID == "" {
		c.AWS.AccessKeyID = "local"
	}
	if c.AWS.SecretAccessKey == "" {
		c.AWS.SecretAccessKey = "local"
	}
	if c.AWS.SESRegion == "" {
		c.AWS.SESRegion = c.AWS.Region
	}
	if c.Notify.SiteURL == "" {
		c.Notify.SiteURL = "http://localhost:8080"
	}
	if c.Notify.Workers <= 0 {
		c.Notify.Workers = 2
	}
	if c.Notify.QueueSize <= 0 {
		c.Notify.QueueSize = 64
	}
	if c.Notify.TimeoutSeconds <= 0 {
		c.Notify.TimeoutSeconds = 10
	}
	if c.RateLimit.PerMinute < 0 {
		c.RateLimit.PerMinute = 0
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = c.RateLimit.PerMinute
	}
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideBool(dst *bool, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
