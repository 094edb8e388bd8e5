package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hubpick/internal/search"
)

// Config holds the static configuration established at startup. The
// controller never mutates it.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	SearchTypes    string `yaml:"search_types"` // "all" or comma-separated type keys
	ResultLimit    int    `yaml:"result_limit"`
	SubmitOnSelect bool   `yaml:"submit_on_select"`
	ValueFile      string `yaml:"value_file,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	Placeholder    string `yaml:"placeholder,omitempty"`
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		BaseURL:        search.DefaultBaseURL,
		SearchTypes:    "all",
		ResultLimit:    search.ResultLimitDefault,
		SubmitOnSelect: true,
		Placeholder:    "Search Hugging Face Hub...",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hubpick", "config")
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks bounds and type keys, returning the parsed type list.
func (c *Config) Validate() ([]string, error) {
	if c.ResultLimit < 1 || c.ResultLimit > search.ResultLimitMax {
		return nil, fmt.Errorf("result_limit must be between 1 and %d, got %d", search.ResultLimitMax, c.ResultLimit)
	}
	types, err := search.ParseTypes(c.SearchTypes)
	if err != nil {
		return nil, err
	}
	return types, nil
}
