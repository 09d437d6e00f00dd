// Package conf loads the tool configuration: YAML file, environment
// overrides, with flag values layered on top by the commands.
package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"arcparse/xlog"
)

type Train struct {
	Iterations int `yaml:"iterations"`
	WordCutoff int `yaml:"word_cutoff"`
}

type Parse struct {
	Workers int `yaml:"workers"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	RateLimit       int           `yaml:"rate_limit"` // requests per minute, 0 disables
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Train  Train  `yaml:"train"`
	Parse  Parse  `yaml:"parse"`
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Train:  Train{Iterations: 10, WordCutoff: 2},
		Parse:  Parse{Workers: 0}, // 0 = GOMAXPROCS
		Server: Server{Addr: ":8090", RateLimit: 600, ShutdownTimeout: 10 * time.Second},
		Log:    Log{Level: "info"},
	}
}

// Load reads the optional YAML file over the defaults, then applies
// environment overrides. An empty path yields defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = envString("ARCPARSE_ADDR", c.Server.Addr)
	c.Server.RateLimit = envInt("ARCPARSE_RATE_LIMIT", c.Server.RateLimit)
	c.Log.Level = envString("ARCPARSE_LOG_LEVEL", c.Log.Level)
	c.Parse.Workers = envInt("ARCPARSE_WORKERS", c.Parse.Workers)
}

func envString(key, defaultValue string) string {
	logger := xlog.WithComponent("conf")
	if value, exists := os.LookupEnv(key); exists && value != "" {
		logger.Debug().Str("key", key).Str("value", value).Str("source", "environment").Msg("using environment variable")
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	logger := xlog.WithComponent("conf")
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			logger.Debug().Str("key", key).Int("value", i).Str("source", "environment").Msg("using environment variable")
			return i
		}
		logger.Warn().Str("key", key).Str("value", value).Int("default", defaultValue).Msg("invalid integer in environment variable, using default")
	}
	return defaultValue
}
