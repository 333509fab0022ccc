// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is resolved once at startup and passed into components; nothing
// reads the environment after that.
type Config struct {
	Port        string   `yaml:"port"`
	DataFile    string   `yaml:"data_file"`
	CatalogFile string   `yaml:"catalog_file"`
	JWTSecret   string   `yaml:"jwt_secret"`
	AI          AIConfig `yaml:"ai,omitempty"`
}

// AIConfig configures the enhancement provider. An empty APIKey disables
// enhancement entirely.
type AIConfig struct {
	APIKey         string `yaml:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Load reads path when it exists, then applies environment overrides on top
// of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:        "3000",
		DataFile:    "data/users.json",
		CatalogFile: "data/templates.json",
		JWTSecret:   "dev_secret_change_me",
		AI:          AIConfig{Model: "gpt-4o-mini", TimeoutSeconds: 30},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Port, "PORT")
	set(&cfg.DataFile, "DATA_FILE")
	set(&cfg.CatalogFile, "CATALOG_FILE")
	set(&cfg.JWTSecret, "JWT_SECRET")
	set(&cfg.AI.APIKey, "OPENAI_API_KEY")
	set(&cfg.AI.BaseURL, "OPENAI_BASE_URL")
	set(&cfg.AI.Model, "OPENAI_MODEL")
}
