package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RateConfig is a token bucket description for outbound call pacing.
type RateConfig struct {
	Capacity     float64 `yaml:"capacity"`
	RefillPerSec float64 `yaml:"refill_per_sec"`
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Helius struct {
		APIKey  string        `yaml:"api_key"`
		RPCURL  string        `yaml:"rpc_url"`
		APIURL  string        `yaml:"api_url"`
		Timeout time.Duration `yaml:"timeout"`
		Rate    RateConfig    `yaml:"rate"`
	} `yaml:"helius"`
	Bitquery struct {
		APIKey  string        `yaml:"api_key"`
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"bitquery"`
	OpenAI struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"openai"`
	Cache struct {
		TTL struct {
			Helius   time.Duration `yaml:"helius"`
			Bitquery time.Duration `yaml:"bitquery"`
		} `yaml:"ttl"`
		MemoryMaxSize int `yaml:"memory_max_size"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Retry struct {
		MaxAttempts     int           `yaml:"max_attempts"`
		InitialInterval time.Duration `yaml:"initial_interval"`
		MaxInterval     time.Duration `yaml:"max_interval"`
	} `yaml:"retry"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	c, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func loadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables before validating, so secrets can live outside the file.
func LoadWithEnv(path string) (*Config, error) {
	c, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("HELIUS_API_KEY"); v != "" {
		c.Helius.APIKey = v
	}
	if v := os.Getenv("BITQUERY_API_KEY"); v != "" {
		c.Bitquery.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Helius.RPCURL == "" {
		c.Helius.RPCURL = "https://mainnet.helius-rpc.com"
	}
	if c.Helius.APIURL == "" {
		c.Helius.APIURL = "https://api.helius.xyz"
	}
	if c.Helius.Timeout == 0 {
		c.Helius.Timeout = 10 * time.Second
	}
	if c.Helius.Rate.Capacity == 0 {
		c.Helius.Rate.Capacity = 10
	}
	if c.Helius.Rate.RefillPerSec == 0 {
		c.Helius.Rate.RefillPerSec = 10
	}
	if c.Bitquery.URL == "" {
		c.Bitquery.URL = "https://streaming.bitquery.io/eap"
	}
	if c.Bitquery.Timeout == 0 {
		c.Bitquery.Timeout = 30 * time.Second
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Cache.TTL.Helius == 0 {
		c.Cache.TTL.Helius = 10 * time.Minute
	}
	if c.Cache.TTL.Bitquery == 0 {
		c.Cache.TTL.Bitquery = 5 * time.Minute
	}
	if c.Cache.MemoryMaxSize == 0 {
		c.Cache.MemoryMaxSize = 1000
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "solpulse"
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 5
	}
	if c.Retry.InitialInterval == 0 {
		c.Retry.InitialInterval = 100 * time.Millisecond
	}
	if c.Retry.MaxInterval == 0 {
		c.Retry.MaxInterval = 10 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Helius.APIKey == "" {
		return fmt.Errorf("helius.api_key is required")
	}
	if c.Bitquery.APIKey == "" {
		return fmt.Errorf("bitquery.api_key is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	return nil
}
