package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"marble-solitaire/internal/game"
)

type Config struct {
	Topology  string `mapstructure:"topology" yaml:"topology"`
	Size      int    `mapstructure:"size" yaml:"size"` // 0 = topology default
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"` // console or json
}

// env var -> config key
var envKeys = map[string]string{
	"SOLITAIRE_TOPOLOGY": "topology",
	"SOLITAIRE_SIZE":     "size",
	"LOG_LEVEL":          "log_level",
	"LOG_FORMAT":         "log_format",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"topology":   "english",
		"size":       0,
		"log_level":  "warn",
		"log_format": "console",
	}
}

// Load layers the defaults, the YAML file at path (if any) and the
// environment, in that order. A .env file in the working directory is read
// first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	raw := defaults()
	if path != "" {
		if err := mergeFile(raw, path); err != nil {
			return nil, err
		}
	}
	for env, key := range envKeys {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			raw[key] = v
		}
	}

	var cfg Config
	if err := mapstructure.WeakDecode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeFile(raw map[string]interface{}, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var file map[string]interface{}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	for k, v := range file {
		raw[k] = v
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := game.ParseTopology(c.Topology); err != nil {
		return err
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: size %d", game.ErrInvalidConfiguration, c.Size)
	}
	return nil
}

// Board resolves the configured topology and size into game options.
func (c *Config) Board() (*game.Topology, []game.Option, error) {
	t, err := game.ParseTopology(c.Topology)
	if err != nil {
		return nil, nil, err
	}
	var opts []game.Option
	if c.Size > 0 {
		opts = append(opts, game.WithSize(c.Size))
	}
	return t, opts, nil
}
