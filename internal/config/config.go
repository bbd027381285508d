package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Cache     CacheConfig     `yaml:"cache"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	// APIKey protects the MCP endpoint.
	APIKey string `yaml:"api_key"`
	// OwnerLogins are promoted to the owner role when they sign in.
	OwnerLogins []string `yaml:"owner_logins"`
	// DevLogin is the identity used when Tailscale is disabled.
	DevLogin string `yaml:"dev_login"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type RedisConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	WritesPerMinute int    `yaml:"writes_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CacheConfig struct {
	SizeMB     int `yaml:"size_mb"`
	TTLSeconds int `yaml:"ttl_seconds"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// IsOwnerLogin reports whether login is listed in auth.owner_logins.
func (a AuthConfig) IsOwnerLogin(login string) bool {
	for _, l := range a.OwnerLogins {
		if strings.EqualFold(l, login) {
			return true
		}
	}
	return false
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file next to the working directory is loaded first, if present.
// Env vars use the prefix INVICTUS_ and underscore-separated paths:
//
//	INVICTUS_SERVER_HOST, INVICTUS_SERVER_PORT,
//	INVICTUS_DB_HOST, INVICTUS_DB_PORT, INVICTUS_DB_NAME,
//	INVICTUS_DB_USER, INVICTUS_DB_PASSWORD, INVICTUS_DB_SSLMODE,
//	INVICTUS_AUTH_API_KEY, INVICTUS_AUTH_OWNER_LOGINS (comma-separated),
//	INVICTUS_TAILSCALE_ENABLED, INVICTUS_TAILSCALE_HOSTNAME,
//	INVICTUS_REDIS_ENABLED, INVICTUS_REDIS_ADDR, INVICTUS_REDIS_PASSWORD,
//	INVICTUS_LOG_LEVEL, INVICTUS_LOG_FORMAT, INVICTUS_LOG_FILE,
//	INVICTUS_TRACING_ENABLED
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Auth:      AuthConfig{DevLogin: "local"},
		Tailscale: TailscaleConfig{Hostname: "invictus", StateDir: "tsnet-state"},
		Redis:     RedisConfig{Addr: "localhost:6379", WritesPerMinute: 120},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		Cache:     CacheConfig{SizeMB: 64, TTLSeconds: 300},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INVICTUS_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("INVICTUS_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("INVICTUS_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("INVICTUS_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("INVICTUS_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("INVICTUS_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("INVICTUS_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("INVICTUS_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("INVICTUS_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("INVICTUS_AUTH_OWNER_LOGINS"); v != "" {
		cfg.Auth.OwnerLogins = splitList(v)
	}
	if v := os.Getenv("INVICTUS_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("INVICTUS_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("INVICTUS_REDIS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Redis.Enabled = b
		}
	}
	if v := os.Getenv("INVICTUS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("INVICTUS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("INVICTUS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("INVICTUS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("INVICTUS_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("INVICTUS_TRACING_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tracing.Enabled = b
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Redis.Enabled && c.Redis.WritesPerMinute <= 0 {
		return fmt.Errorf("redis.writes_per_minute must be positive when redis is enabled")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
