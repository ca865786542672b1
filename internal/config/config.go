package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Verification VerificationConfig `yaml:"verification"`
	Notify       NotifyConfig       `yaml:"notify"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// RedisConfig holds Redis settings for the domain liveness cache
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// VerificationConfig holds email admissibility pipeline settings.
// The extra_* lists extend the built-in policy tables at startup;
// the pipeline itself never reads configuration.
type VerificationConfig struct {
	LookupTimeoutSeconds   int               `yaml:"lookup_timeout_seconds"`
	CacheTTLMinutes        int               `yaml:"cache_ttl_minutes"`
	ExtraDisposableDomains []string          `yaml:"extra_disposable_domains"`
	ExtraRoleAccounts      []string          `yaml:"extra_role_accounts"`
	TypoFixes              map[string]string `yaml:"typo_fixes"`
}

// NotifyConfig holds AWS SES settings for case confirmation emails
type NotifyConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Region      string `yaml:"region"`
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	FromAddress string `yaml:"from_address"`
	FromName    string `yaml:"from_name"`
}

// GetHost returns the configured host, defaulting to localhost.
func (s ServerConfig) GetHost() string {
	if s.Host == "" {
		return "localhost"
	}
	return s.Host
}

// Load reads configuration from a YAML file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Verification.LookupTimeoutSeconds == 0 {
		cfg.Verification.LookupTimeoutSeconds = 5
	}
	if cfg.Verification.CacheTTLMinutes == 0 {
		cfg.Verification.CacheTTLMinutes = 60
	}
	if cfg.Notify.Region == "" {
		cfg.Notify.Region = "us-west-2"
	}

	return &cfg, nil
}

// LoadFromEnv loads the YAML config and applies environment overrides.
// A .env file is honored when present (local development).
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if accessKey := os.Getenv("AWS_SES_ACCESS_KEY"); accessKey != "" {
		cfg.Notify.AccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_SES_SECRET_KEY"); secretKey != "" {
		cfg.Notify.SecretKey = secretKey
	}
	if region := os.Getenv("AWS_SES_REGION"); region != "" {
		cfg.Notify.Region = region
	}
	if from := os.Getenv("NOTIFY_FROM_ADDRESS"); from != "" {
		cfg.Notify.FromAddress = from
	}

	return cfg, nil
}
