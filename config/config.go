package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abrokate/powerplant-coding-challenge/core/metrics"
	"github.com/abrokate/powerplant-coding-challenge/infra/mqtt"
)

// Config is the root configuration of the dispatch service.
type Config struct {
	API      APIConfig      `json:"api"`
	Dispatch DispatchConfig `json:"dispatch"`
	Metrics  metrics.Config `json:"metrics"`
	MQTT     mqtt.Config    `json:"mqtt"`
}

// APIConfig defines the HTTP endpoint settings.
type APIConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8888"
	}
}

// DispatchConfig selects the allocation strategy.
type DispatchConfig struct {
	// Strategy is "merit" (greedy with bounded repair) or "lp" (linear
	// relaxation with merit fallback).
	Strategy string `json:"strategy"`
}

// SetDefaults applies sane defaults.
func (c *DispatchConfig) SetDefaults() {
	if c.Strategy == "" {
		c.Strategy = "merit"
	}
}

// Validate checks mandatory fields.
func (c DispatchConfig) Validate() error {
	if c.Strategy != "merit" && c.Strategy != "lp" {
		return fmt.Errorf("unknown dispatch strategy %s", c.Strategy)
	}
	return nil
}

// Load reads the configuration file at path, applying PP_-prefixed
// environment overrides (PP_API__ADDR -> api.addr).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.API.SetDefaults()
	cfg.Dispatch.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	if err := cfg.Dispatch.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
