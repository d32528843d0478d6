package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Influx    InfluxConfig    `yaml:"influx"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type InfluxConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

type AuthConfig struct {
	// APIKey guards the ingest endpoints. Empty disables auth, which is fine
	// on a private network or behind tsnet.
	APIKey string `yaml:"api_key"`
}

type StorageConfig struct {
	// Path is the sqlite file holding import history.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// SlogLevel translates the configured level name, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error — env vars alone can carry the
// whole configuration. Env vars use the prefix HEALTHSINK_:
//
//	HEALTHSINK_SERVER_HOST, HEALTHSINK_SERVER_PORT,
//	HEALTHSINK_INFLUX_URL, HEALTHSINK_INFLUX_TOKEN,
//	HEALTHSINK_INFLUX_ORG, HEALTHSINK_INFLUX_BUCKET,
//	HEALTHSINK_AUTH_API_KEY, HEALTHSINK_STORAGE_PATH,
//	HEALTHSINK_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HEALTHSINK_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("HEALTHSINK_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("HEALTHSINK_INFLUX_URL"); v != "" {
		cfg.Influx.URL = v
	}
	if v := os.Getenv("HEALTHSINK_INFLUX_TOKEN"); v != "" {
		cfg.Influx.Token = v
	}
	if v := os.Getenv("HEALTHSINK_INFLUX_ORG"); v != "" {
		cfg.Influx.Org = v
	}
	if v := os.Getenv("HEALTHSINK_INFLUX_BUCKET"); v != "" {
		cfg.Influx.Bucket = v
	}
	if v := os.Getenv("HEALTHSINK_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("HEALTHSINK_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("HEALTHSINK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Influx.Bucket == "" {
		cfg.Influx.Bucket = "applehealth"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "healthsink.db"
	}
}

func (c *Config) validate() error {
	if c.Influx.URL == "" {
		return fmt.Errorf("influx.url is required")
	}
	if c.Influx.Token == "" {
		return fmt.Errorf("influx.token is required")
	}
	if c.Influx.Org == "" {
		return fmt.Errorf("influx.org is required")
	}
	return nil
}

// LogSummary logs the effective configuration with secrets elided.
func (c *Config) LogSummary(log *slog.Logger) {
	apiKey := "not configured"
	if c.Auth.APIKey != "" {
		apiKey = "configured"
	}
	log.Info("configuration loaded",
		"influx_url", c.Influx.URL,
		"influx_org", c.Influx.Org,
		"influx_bucket", c.Influx.Bucket,
		"api_key", apiKey,
		"storage_path", c.Storage.Path,
		"port", c.Server.Port,
		"tailscale", c.Tailscale.Enabled,
	)
}
