package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 5000
	DefaultRedfinBaseURL = "https://www.redfin.com/stingray/"
	DefaultUserAgent     = "redfin"
	DefaultRedfinTimeout = 30 * time.Second
	DefaultLogLevel      = "INFO"
)

type Config struct {
	Server struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		Debug           bool          `yaml:"debug"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Redfin struct {
		BaseURL   string        `yaml:"base_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		// FixturesDir, when set, serves canned responses instead of calling Redfin.
		FixturesDir string `yaml:"fixtures_dir"`
	} `yaml:"redfin"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Env string `yaml:"env"`
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, then validates the result. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %v", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if debug := os.Getenv("DEBUG"); debug != "" {
		parsed, err := strconv.ParseBool(debug)
		if err != nil {
			return fmt.Errorf("invalid DEBUG value: %v", err)
		}
		cfg.Server.Debug = parsed
	}
	if baseURL := os.Getenv("REDFIN_BASE_URL"); baseURL != "" {
		cfg.Redfin.BaseURL = baseURL
	}
	if ua := os.Getenv("REDFIN_USER_AGENT"); ua != "" {
		cfg.Redfin.UserAgent = ua
	}
	if timeout := os.Getenv("REDFIN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid REDFIN_TIMEOUT value: %v", err)
		}
		cfg.Redfin.Timeout = d
	}
	if dir := os.Getenv("REDFIN_FIXTURES_DIR"); dir != "" {
		cfg.Redfin.FixturesDir = dir
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Redfin.BaseURL == "" {
		cfg.Redfin.BaseURL = DefaultRedfinBaseURL
	}
	if cfg.Redfin.UserAgent == "" {
		cfg.Redfin.UserAgent = DefaultUserAgent
	}
	if cfg.Redfin.Timeout <= 0 {
		cfg.Redfin.Timeout = DefaultRedfinTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
		if cfg.Server.Debug {
			cfg.Log.Level = "DEBUG"
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Redfin.FixturesDir != "" {
		if info, err := os.Stat(c.Redfin.FixturesDir); err != nil || !info.IsDir() {
			return fmt.Errorf("REDFIN_FIXTURES_DIR is not a directory: %s", c.Redfin.FixturesDir)
		}
	}
	u, err := url.Parse(c.Redfin.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("REDFIN_BASE_URL must be an absolute URL: %q", c.Redfin.BaseURL)
	}
	return nil
}
